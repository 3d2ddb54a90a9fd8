package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "what are my odds?" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"85"}}]}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(server.URL, "test-key", "gpt-4o-mini", server.Client())
	got, err := p.Complete(context.Background(), "what are my odds?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "85" {
		t.Errorf("Complete() = %q, want %q", got, "85")
	}
}

func TestOpenAIProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewOpenAIProvider(server.URL, "test-key", "gpt-4o-mini", server.Client())
	if _, err := p.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for HTTP 503, got nil")
	}
}

func TestOpenAIProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(server.URL, "bad-key", "gpt-4o-mini", server.Client())
	if _, err := p.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for API error body, got nil")
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(server.URL, "test-key", "gpt-4o-mini", server.Client())
	if _, err := p.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty choices, got nil")
	}
}
