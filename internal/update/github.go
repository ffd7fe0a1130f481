package update

import (
	"io"
	"net/http"
	"time"
)

// HTTPDoer is the transport seam. *http.Client satisfies it; tests
// substitute a mock.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves release metadata documents over HTTP. Each Fetcher
// owns its client; concurrent checks with separate Fetchers share
// nothing.
type Fetcher struct {
	http      HTTPDoer
	userAgent string
}

// NewFetcher builds a Fetcher with a timeout-bounded HTTP client. The
// timeout is the only latency bound in the pipeline (the check itself
// imposes none).
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch performs the single outbound request of a check. Connection
// faults, timeouts, and non-success statuses all collapse to the
// Transport kind with the underlying message preserved. No retries.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "build request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "fetch release metadata", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "read response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newErrorf(KindTransport, "GitHub API request failed: %s", resp.Status)
	}

	return body, nil
}
