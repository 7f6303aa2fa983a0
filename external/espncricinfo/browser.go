package espncricinfo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/riskibarqy/cricinfo/internal/platform/logging"
	"github.com/riskibarqy/cricinfo/internal/usecase"
)

// Renderer loads a page in a real browser and returns the match data it
// embeds.
type Renderer interface {
	Render(ctx context.Context, pageURL string) ([]byte, error)
}

const (
	nextDataScript = `(() => { const el = document.getElementById("__NEXT_DATA__"); return el ? el.textContent : ""; })()`
	outerHTMLQuery = `document.documentElement.outerHTML`
)

type BrowserConfig struct {
	UserAgent string
	Timeout   time.Duration
	// ExecPath points at a Chrome binary; empty uses the default lookup.
	ExecPath string
	Logger   *logging.Logger
}

// BrowserRenderer drives headless Chrome. Each render gets its own browser
// process, so concurrent renders share nothing.
type BrowserRenderer struct {
	opts    []chromedp.ExecAllocatorOption
	timeout time.Duration
	logger  *logging.Logger
}

func NewBrowserRenderer(cfg BrowserConfig) *BrowserRenderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(userAgent),
	)
	if path := strings.TrimSpace(cfg.ExecPath); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	return &BrowserRenderer{
		opts:    opts,
		timeout: timeout,
		logger:  logging.OrDefault(cfg.Logger),
	}
}

// Render returns the __NEXT_DATA__ script text, or the whole document when
// the page has none so the caller can tell an empty page from a broken one.
func (r *BrowserRenderer) Render(ctx context.Context, pageURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	resp, err := chromedp.RunResponse(browserCtx, chromedp.Navigate(pageURL))
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: navigate %s: %v", errTransient, pageURL, err)
	}
	if resp != nil {
		status := int(resp.Status)
		switch {
		case status == http.StatusNotFound:
			return nil, fmt.Errorf("%w: status=404 url=%s", usecase.ErrNotFound, pageURL)
		case isRetryableStatus(status):
			return nil, fmt.Errorf("%w: status=%d url=%s", errTransient, status, pageURL)
		case status >= 400:
			return nil, fmt.Errorf("status=%d url=%s", status, pageURL)
		}
	}

	var script string
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(nextDataScript, &script)); err != nil {
		return nil, fmt.Errorf("%w: read page data: %v", errTransient, err)
	}
	r.logger.DebugContext(ctx, "rendered page", "url", pageURL, "duration_ms", time.Since(start).Milliseconds())
	if strings.TrimSpace(script) != "" {
		return []byte(script), nil
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(outerHTMLQuery, &html)); err != nil {
		return nil, fmt.Errorf("%w: read page html: %v", errTransient, err)
	}
	return []byte(html), nil
}
