package espncricinfo

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/platform/cache"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
	"github.com/riskibarqy/cricinfo/internal/platform/resilience"
	"github.com/riskibarqy/cricinfo/internal/usecase"
)

const (
	SourceName       = "espncricinfo"
	defaultUserAgent = "Mozilla/5.0"
	maxBodyBytes     = 8 << 20
)

var errTransient = crerr.New("espncricinfo transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	Endpoints      Endpoints
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Renderer, when set, loads match scorecards through a browser instead
	// of the consumer API.
	Renderer Renderer
	// Feed overrides the livescore feed fetcher.
	Feed FeedFetcher
}

// Client fetches raw payloads over HTTP. It implements usecase.Provider.
type Client struct {
	httpClient   *http.Client
	endpoints    Endpoints
	userAgent    string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[[]byte]
	cache        *cache.Store[[]byte]
	renderer     Renderer
	feed         FeedFetcher
	now          func() time.Time
}

var _ usecase.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := logging.OrDefault(cfg.Logger)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	endpoints := cfg.Endpoints.WithDefaults()

	feed := cfg.Feed
	if feed == nil {
		feed = NewFeedClient(FeedConfig{URL: endpoints.FeedURL, UserAgent: userAgent, Timeout: timeout})
	}

	return &Client{
		httpClient:   httpClient,
		endpoints:    endpoints,
		userAgent:    userAgent,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		cache:        cache.NewStore[[]byte](cfg.CacheTTL),
		renderer:     cfg.Renderer,
		feed:         feed,
		now:          time.Now,
	}
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// fetch GETs fullURL and wraps the body as a payload.
func (c *Client) fetch(ctx context.Context, entityType, entityKey, fullURL string) (rawdata.Payload, error) {
	return c.load(ctx, entityType, entityKey, fullURL, c.executeRequest)
}

// load runs do for fullURL. Concurrent loads of one URL share a call, and
// successful bodies are cached when a TTL is configured.
func (c *Client) load(
	ctx context.Context,
	entityType, entityKey, fullURL string,
	do func(context.Context, string) ([]byte, error),
) (rawdata.Payload, error) {
	body, err := c.cache.GetOrLoad(ctx, fullURL, func(ctx context.Context) ([]byte, error) {
		body, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
			return c.guarded(ctx, fullURL, do)
		})
		return body, err
	})
	if err != nil {
		return rawdata.Payload{}, fmt.Errorf("%s %s: %w", entityType, entityKey, err)
	}
	return rawdata.Payload{
		Source:     SourceName,
		EntityType: entityType,
		EntityKey:  entityKey,
		URL:        fullURL,
		Body:       body,
		FetchedAt:  c.now().UTC(),
	}, nil
}

// guarded runs do behind the circuit breaker and maps failures onto the
// usecase taxonomy.
func (c *Client) guarded(ctx context.Context, fullURL string, do func(context.Context, string) ([]byte, error)) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "espncricinfo circuit breaker rejected request", "url", fullURL, "state", c.breaker.State())
		return nil, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}

	body, err := do(ctx, fullURL)
	c.breaker.Record(!isCircuitFailure(err))
	switch {
	case err == nil:
		return body, nil
	case stderrors.Is(err, usecase.ErrNotFound), stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		body, err := c.get(ctx, fullURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !stderrors.Is(err, errTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		c.logger.WarnContext(ctx, "espncricinfo request failed, retrying", "url", fullURL, "attempt", attempt+1, "error", err)
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "espncricinfo request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("user-agent", c.userAgent)
	req.Header.Set("accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: send request: %v", errTransient, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errTransient, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// buf goes back to the pool, so the body is copied out.
		return append([]byte(nil), buf.B...), nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: status=404 url=%s", usecase.ErrNotFound, fullURL)
	case isRetryableStatus(resp.StatusCode):
		return nil, fmt.Errorf("%w: status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(buf.B))
	default:
		return nil, fmt.Errorf("status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
	}
}

func isCircuitFailure(err error) bool {
	return err != nil && stderrors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
