package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/treyhall/jobscout/internal/model"
)

// Browser-like User-Agent; several job boards reject default Go clients.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// maxDocumentBytes bounds how much of a posting page is read.
const maxDocumentBytes = 4 << 20

// Ensure HTTPFetcher implements model.DocumentFetcher.
var _ model.DocumentFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher retrieves a posting document over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher using the given client. The client's
// timeout (or the request context deadline) bounds every fetch.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the raw document at url. Non-2xx responses are
// returned as *model.HTTPError so retry logic can classify them.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("fetch %s", url),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return "", fmt.Errorf("fetch %s: reading body: %w", url, err)
	}

	return string(body), nil
}
