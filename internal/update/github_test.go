package update

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"
)

// mockHTTPDoer is a test helper for mocking HTTP calls.
type mockHTTPDoer struct {
	doFunc func(*http.Request) (*http.Response, error)
}

func (m *mockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		status     string
		body       string
		wantErr    bool
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			status:     "200 OK",
			body:       `{"tag_name":"v1.2.3"}`,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			status:     "404 Not Found",
			body:       `{"message":"Not Found"}`,
			wantErr:    true,
		},
		{
			name:       "rate limited",
			statusCode: http.StatusForbidden,
			status:     "403 Forbidden",
			body:       `{"message":"API rate limit exceeded"}`,
			wantErr:    true,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			status:     "500 Internal Server Error",
			body:       ``,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockHTTPDoer{
				doFunc: func(req *http.Request) (*http.Response, error) {
					if req.Header.Get("Accept") != "application/vnd.github.v3+json" {
						t.Errorf("Accept header = %q, want %q",
							req.Header.Get("Accept"), "application/vnd.github.v3+json")
					}
					if req.Header.Get("User-Agent") != "relcheck" {
						t.Errorf("User-Agent header = %q, want %q",
							req.Header.Get("User-Agent"), "relcheck")
					}
					return &http.Response{
						StatusCode: tt.statusCode,
						Status:     tt.status,
						Body:       io.NopCloser(bytes.NewReader([]byte(tt.body))),
					}, nil
				},
			}

			f := &Fetcher{http: mock, userAgent: "relcheck"}

			body, err := f.Fetch("https://api.github.com/repos/owner/repo/releases/latest")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ue *Error
				if !errors.As(err, &ue) || ue.Kind != KindTransport {
					t.Fatalf("Fetch() error = %v, want kind %s", err, KindTransport)
				}
				return
			}
			if string(body) != tt.body {
				t.Fatalf("Fetch() body = %q, want %q", body, tt.body)
			}
		})
	}
}

func TestFetchNetworkError(t *testing.T) {
	cause := fmt.Errorf("network unreachable")
	mock := &mockHTTPDoer{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, cause
		},
	}

	f := &Fetcher{http: mock, userAgent: "relcheck"}

	_, err := f.Fetch("https://api.github.com/repos/owner/repo/releases/latest")
	if err == nil {
		t.Fatal("Fetch() expected error for network failure, got nil")
	}
	var ue *Error
	if !errors.As(err, &ue) || ue.Kind != KindTransport {
		t.Fatalf("Fetch() error = %v, want kind %s", err, KindTransport)
	}
	if !errors.Is(err, cause) {
		t.Error("Fetch() error does not unwrap to the underlying fault")
	}
}

func TestFetchStatusMessagePreserved(t *testing.T) {
	mock := &mockHTTPDoer{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusBadGateway,
				Status:     "502 Bad Gateway",
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		},
	}

	f := &Fetcher{http: mock, userAgent: "relcheck"}

	_, err := f.Fetch("https://api.github.com/repos/owner/repo/releases/latest")
	if err == nil {
		t.Fatal("expected error")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("502 Bad Gateway")) {
		t.Fatalf("error %q does not preserve the status text", err.Error())
	}
}

func TestNewFetcherClient(t *testing.T) {
	f := NewFetcher(5*time.Second, "relcheck")
	client, ok := f.http.(*http.Client)
	if !ok {
		t.Fatalf("NewFetcher() http = %T, want *http.Client", f.http)
	}
	if client.Timeout != 5*time.Second {
		t.Fatalf("client timeout = %v, want %v", client.Timeout, 5*time.Second)
	}
}
