package espncricinfo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/cricinfo/internal/usecase"
)

func TestFeedClient_Fetch(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		status  int
		body    string
		want    string
		wantErr error
	}{
		"ok":          {status: http.StatusOK, body: "<rss><channel></channel></rss>", want: "<rss><channel></channel></rss>"},
		"not found":   {status: http.StatusNotFound, wantErr: usecase.ErrNotFound},
		"unavailable": {status: http.StatusServiceUnavailable, wantErr: errTransient},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var gotAgent string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAgent = r.Header.Get("User-Agent")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			feed := NewFeedClient(FeedConfig{URL: srv.URL, UserAgent: "feed-test", Timeout: time.Second})
			body, err := feed.Fetch(context.Background())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("unexpected error got=%v want=%v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(body) != tc.want {
				t.Fatalf("unexpected body got=%q want=%q", body, tc.want)
			}
			if gotAgent != "feed-test" {
				t.Fatalf("unexpected user agent got=%q want=%q", gotAgent, "feed-test")
			}
		})
	}
}

func TestFeedClient_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFeedClient(FeedConfig{URL: "http://127.0.0.1:1/rss"}).Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error got=%v want=%v", err, context.Canceled)
	}
}

func TestNewFeedClient_Defaults(t *testing.T) {
	t.Parallel()

	feed := NewFeedClient(FeedConfig{})
	if feed.url != DefaultFeedURL {
		t.Fatalf("unexpected url got=%s want=%s", feed.url, DefaultFeedURL)
	}
	if feed.timeout != 20*time.Second {
		t.Fatalf("unexpected timeout got=%s", feed.timeout)
	}
}
