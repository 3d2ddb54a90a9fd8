package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/treyhall/jobscout/internal/model"
)

func sampleAnalysis() model.JobAnalysis {
	return model.JobAnalysis{
		JobID:                 "abc123def456",
		Company:               "initech",
		Title:                 "Automation Engineer",
		Location:              "Austin, TX",
		URL:                   "https://boards.example.com/jobs/1",
		OverallRating:         82.5,
		SkillMatchScore:       90,
		CultureFitScore:       75,
		GrowthPotentialScore:  80,
		SuccessProbability:    65,
		OptimalTiming:         model.TimingImmediate,
		ApplicationStrategy:   "Lead with your automation background.",
		CompetitiveAdvantages: []string{"Expert-level automation", "Expert-level python"},
	}
}

func TestSlackNotify_SendsBlockKitPayload(t *testing.T) {
	var received slackPayload
	posts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := NewSlackNotifier(server.URL, server.Client(), discardLogger())
	if err := n.Notify([]model.JobAnalysis{sampleAnalysis()}); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if posts != 1 {
		t.Fatalf("expected 1 POST, got %d", posts)
	}
	if len(received.Blocks) == 0 {
		t.Fatal("payload has no blocks")
	}
	header := received.Blocks[0]
	if header.Type != "header" || header.Text == nil {
		t.Fatalf("first block = %+v, want header with text", header)
	}
	if !strings.Contains(header.Text.Text, "Initech") {
		t.Errorf("header text = %q, want capitalized company name", header.Text.Text)
	}
	if !strings.Contains(header.Text.Text, "Automation Engineer") {
		t.Errorf("header text = %q, want job title", header.Text.Text)
	}

	// Last two blocks are the View Posting button and a divider.
	last := received.Blocks[len(received.Blocks)-1]
	if last.Type != "divider" {
		t.Errorf("last block type = %q, want divider", last.Type)
	}
	actions := received.Blocks[len(received.Blocks)-2]
	if actions.Type != "actions" || len(actions.Elements) != 1 {
		t.Fatalf("actions block = %+v", actions)
	}
	if actions.Elements[0].URL != "https://boards.example.com/jobs/1" {
		t.Errorf("button URL = %q", actions.Elements[0].URL)
	}
}

func TestSlackNotify_AllFailuresReturnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer server.Close()

	n := NewSlackNotifier(server.URL, server.Client(), discardLogger())
	err := n.Notify([]model.JobAnalysis{sampleAnalysis()})
	if err == nil {
		t.Fatal("expected error when every notification fails, got nil")
	}
	if !strings.Contains(err.Error(), "all 1 slack notifications failed") {
		t.Errorf("error = %v", err)
	}
}

func TestSlackNotify_PartialFailureIsTolerated(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := NewSlackNotifier(server.URL, server.Client(), discardLogger())
	a := sampleAnalysis()
	if err := n.Notify([]model.JobAnalysis{a, a}); err != nil {
		t.Fatalf("Notify: %v (one success should suppress the error)", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 POSTs, got %d", calls)
	}
}

func TestSlackNotify_EmptyInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected POST for empty input")
	}))
	defer server.Close()

	n := NewSlackNotifier(server.URL, server.Client(), discardLogger())
	if err := n.Notify(nil); err != nil {
		t.Fatalf("Notify(nil): %v", err)
	}
}

func TestSlackNotify_RetriesOn429(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := NewSlackNotifier(server.URL, server.Client(), discardLogger())
	if err := n.Notify([]model.JobAnalysis{sampleAnalysis()}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected retry after 429, got %d calls", calls)
	}
}
