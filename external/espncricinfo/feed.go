package espncricinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/cricinfo/internal/usecase"
)

// FeedFetcher returns the raw livescore RSS document.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type FeedConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// FeedClient polls the livescore feed. The document is small and fetched
// often, so it goes through a dedicated fasthttp client.
type FeedClient struct {
	client    *fasthttp.Client
	url       string
	userAgent string
	timeout   time.Duration
}

func NewFeedClient(cfg FeedConfig) *FeedClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	feedURL := strings.TrimSpace(cfg.URL)
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &FeedClient{
		client: &fasthttp.Client{
			Name:                     userAgent,
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxBodyBytes,
			NoDefaultUserAgentHeader: true,
		},
		url:       feedURL,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (f *FeedClient) Fetch(ctx context.Context) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(f.userAgent)
	req.Header.Set("accept", "application/rss+xml, application/xml, text/xml")

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.client.DoTimeout(req, resp, timeout); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: feed request: %v", errTransient, err)
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		return append([]byte(nil), resp.Body()...), nil
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: feed status=404 url=%s", usecase.ErrNotFound, f.url)
	case isRetryableStatus(status):
		return nil, fmt.Errorf("%w: feed status=%d", errTransient, status)
	default:
		return nil, fmt.Errorf("feed status=%d body=%s", status, abbreviateBody(resp.Body()))
	}
}
