package cricinfo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/riskibarqy/cricinfo/external/espncricinfo"
	"github.com/riskibarqy/cricinfo/internal/config"
	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/normalize"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
	"github.com/riskibarqy/cricinfo/internal/platform/resilience"
	"github.com/riskibarqy/cricinfo/internal/usecase"
)

type CircuitBreakerConfig = resilience.CircuitBreakerConfig

// Config tunes the client. Zero values fall back to the public hosts and
// the defaults listed on each field.
type Config struct {
	SiteBaseURL     string `validate:"omitempty,url"`
	CoreBaseURL     string `validate:"omitempty,url"`
	ConsumerBaseURL string `validate:"omitempty,url"`
	FeedURL         string `validate:"omitempty,url"`
	UserAgent       string
	// Timeout bounds one request. Default 20s.
	Timeout    time.Duration `validate:"gte=0"`
	MaxRetries int           `validate:"gte=0"`
	// Browser renders match pages with headless Chrome instead of reading
	// the consumer API.
	Browser         bool
	BrowserTimeout  time.Duration `validate:"gte=0"`
	BrowserExecPath string
	CircuitBreaker  CircuitBreakerConfig
	// CacheTTL keeps fetched bodies in memory; zero disables the cache.
	CacheTTL time.Duration `validate:"gte=0"`
	// Workers bounds Series and Summary hydration. Default 4.
	Workers    int          `validate:"gte=0"`
	HTTPClient *http.Client `validate:"-"`
	// Logger defaults to a no-op logger.
	Logger *zap.Logger `validate:"-"`
	// Archive, when set, receives every raw payload fetched.
	Archive Archive `validate:"-"`
}

const defaultWorkers = 4

var configValidator = validator.New()

// Option adjusts a Config built by NewFromEnv.
type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

func WithArchive(archive Archive) Option {
	return func(cfg *Config) { cfg.Archive = archive }
}

func WithHTTPClient(client *http.Client) Option {
	return func(cfg *Config) { cfg.HTTPClient = client }
}

func WithBrowser(enabled bool) Option {
	return func(cfg *Config) { cfg.Browser = enabled }
}

// Client fetches and normalizes cricket data. It is safe for concurrent use.
type Client struct {
	endpoints espncricinfo.Endpoints

	matches  *usecase.MatchService
	series   *usecase.SeriesService
	profiles *usecase.ProfileService
	summary  *usecase.SummaryService
}

func New(cfg Config) (*Client, error) {
	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: config: %v", ErrInvalidInput, err)
	}

	var logger *logging.Logger
	if cfg.Logger != nil {
		logger = logging.FromZap(cfg.Logger)
	}
	logger = logging.OrDefault(logger)

	var renderer espncricinfo.Renderer
	if cfg.Browser {
		renderer = espncricinfo.NewBrowserRenderer(espncricinfo.BrowserConfig{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.BrowserTimeout,
			ExecPath:  cfg.BrowserExecPath,
			Logger:    logger,
		})
	}

	fetcher := espncricinfo.NewClient(espncricinfo.ClientConfig{
		HTTPClient: cfg.HTTPClient,
		Endpoints: espncricinfo.Endpoints{
			SiteBaseURL:     cfg.SiteBaseURL,
			CoreBaseURL:     cfg.CoreBaseURL,
			ConsumerBaseURL: cfg.ConsumerBaseURL,
			FeedURL:         cfg.FeedURL,
		},
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		CacheTTL:       cfg.CacheTTL,
		Logger:         logger,
		CircuitBreaker: cfg.CircuitBreaker,
		Renderer:       renderer,
	})

	workers := cfg.Workers
	if workers == 0 {
		workers = defaultWorkers
	}
	return newClient(fetcher, fetcher.Endpoints(), usecase.Options{
		Logger:  logger,
		Archive: cfg.Archive,
		Workers: workers,
	}), nil
}

// NewFromEnv builds a client from the CRICINFO_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := configFromSettings(settings)
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

func configFromSettings(s config.Config) Config {
	return Config{
		SiteBaseURL:     s.SiteBaseURL,
		CoreBaseURL:     s.CoreBaseURL,
		ConsumerBaseURL: s.ConsumerBaseURL,
		FeedURL:         s.FeedURL,
		UserAgent:       s.UserAgent,
		Timeout:         s.Timeout,
		MaxRetries:      s.MaxRetries,
		Browser:         s.BrowserEnabled,
		BrowserTimeout:  s.BrowserTimeout,
		CircuitBreaker:  s.Circuit,
		CacheTTL:        s.CacheTTL,
		Workers:         s.Workers,
	}
}

func newClient(provider usecase.Provider, endpoints espncricinfo.Endpoints, opts usecase.Options) *Client {
	matches := usecase.NewMatchService(provider, opts)
	return &Client{
		endpoints: endpoints.WithDefaults(),
		matches:   matches,
		series:    usecase.NewSeriesService(provider, matches, opts),
		profiles:  usecase.NewProfileService(provider, opts),
		summary:   usecase.NewSummaryService(provider, opts),
	}
}

// Normalize builds a match record from a raw payload without any network
// access. It fails with a *StructureError when the payload matches no known
// shape or breaks a record invariant, and with ErrNoScorecard when a page
// carries no match data yet.
func Normalize(raw RawPayload, matchID, seriesID int64) (MatchRecord, error) {
	return normalize.MatchPayload(raw, matchID, seriesID)
}

// Match fetches one match of a series.
func (c *Client) Match(ctx context.Context, seriesID, matchID int64) (*Match, error) {
	return c.MatchByRef(ctx, MatchRef{SeriesID: seriesID, MatchID: matchID})
}

func (c *Client) MatchByRef(ctx context.Context, ref MatchRef) (*Match, error) {
	record, err := c.matches.Get(ctx, ref.domain())
	if err != nil {
		return nil, err
	}
	return newMatch(record, c.endpoints), nil
}

// Matches hydrates refs in order. The first failure cancels the rest and
// no partial list is returned.
func (c *Client) Matches(ctx context.Context, refs []MatchRef) ([]*Match, error) {
	domainRefs := make([]match.Ref, len(refs))
	for idx, ref := range refs {
		domainRefs[idx] = ref.domain()
	}
	records, err := c.matches.GetMany(ctx, domainRefs)
	if err != nil {
		return nil, err
	}
	return c.wrapMatches(records), nil
}

func (c *Client) wrapMatches(records []match.Record) []*Match {
	out := make([]*Match, len(records))
	for idx, record := range records {
		out[idx] = newMatch(record, c.endpoints)
	}
	return out
}

// Ground merges the venue document with the ground page. The page is
// optional; without it the page-only fields stay nil.
func (c *Client) Ground(ctx context.Context, groundID int64) (Ground, error) {
	return c.profiles.Ground(ctx, groundID)
}

// Player merges the athlete document with the profile page; the document
// wins where both have a value.
func (c *Client) Player(ctx context.Context, playerID int64) (Player, error) {
	return c.profiles.Player(ctx, playerID)
}

func (c *Client) Team(ctx context.Context, leagueID, teamID int64) (TeamProfile, error) {
	return c.profiles.Team(ctx, leagueID, teamID)
}

func (c *Client) Series(ctx context.Context, seriesID int64) (*Series, error) {
	record, err := c.series.Get(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return &Series{record: record, client: c}, nil
}

func (c *Client) Season(ctx context.Context, seriesID int64, year int) (Season, error) {
	return c.series.Season(ctx, seriesID, year)
}

// Summary lists the matches on the results page of a date, given as
// YYYY-MM-DD or DD-MM-YYYY. An empty date means today in UTC.
func (c *Client) Summary(ctx context.Context, date string) (*Summary, error) {
	day, err := usecase.ParseSummaryDate(date, time.Now())
	if err != nil {
		return nil, err
	}
	refs, err := c.summary.Summary(ctx, day.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	return &Summary{Date: day, Matches: fromDomainRefs(refs), client: c}, nil
}

// LiveScores reads the livescore feed.
func (c *Client) LiveScores(ctx context.Context) ([]LiveScore, error) {
	return c.summary.LiveScores(ctx)
}
