package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricinfo/internal/platform/logging"
	"github.com/riskibarqy/cricinfo/internal/platform/resilience"
)

// Config stores runtime configuration for the client and the CLI.
type Config struct {
	AppEnv          string `validate:"oneof=dev stage prod"`
	ServiceName     string `validate:"required"`
	ServiceVersion  string `validate:"required"`
	LogLevel        logging.Level
	SiteBaseURL     string        `validate:"required,url"`
	CoreBaseURL     string        `validate:"required,url"`
	ConsumerBaseURL string        `validate:"required,url"`
	FeedURL         string        `validate:"required,url"`
	UserAgent       string        `validate:"required"`
	Timeout         time.Duration `validate:"gt=0"`
	MaxRetries      int           `validate:"gte=0"`
	BrowserEnabled  bool
	BrowserTimeout  time.Duration `validate:"gt=0"`
	Circuit         resilience.CircuitBreakerConfig
	CacheTTL        time.Duration `validate:"gte=0"`
	Workers         int           `validate:"gt=0"`
	ArchiveEnabled  bool
	DBURL           string `validate:"required_if=ArchiveEnabled true"`
	UptraceEnabled  bool
	UptraceDSN      string `validate:"required_if=UptraceEnabled true"`

	// UptraceLogsEnabled mirrors log entries to Uptrace next to the traces.
	UptraceLogsEnabled bool
	// DBDisablePreparedBinary adds disable_prepared_binary_result=yes to DBURL.
	DBDisablePreparedBinary bool

	// HTTPAddr and CORSAllowedOrigins only apply to cmd/api.
	HTTPAddr           string   `validate:"required"`
	CORSAllowedOrigins []string `validate:"min=1"`
}

var configValidator = validator.New()

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	timeout, err := getEnvAsDuration("CRICINFO_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("CRICINFO_TIMEOUT must be > 0")
	}

	maxRetries, err := getEnvAsInt("CRICINFO_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_MAX_RETRIES: %w", err)
	}
	if maxRetries < 0 {
		return Config{}, fmt.Errorf("CRICINFO_MAX_RETRIES must be >= 0")
	}

	browserEnabled, err := getEnvAsBool("CRICINFO_BROWSER_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_BROWSER_ENABLED: %w", err)
	}
	browserTimeout, err := getEnvAsDuration("CRICINFO_BROWSER_TIMEOUT", 45*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_BROWSER_TIMEOUT: %w", err)
	}
	if browserTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICINFO_BROWSER_TIMEOUT must be > 0")
	}

	circuit, err := loadCircuit()
	if err != nil {
		return Config{}, err
	}

	cacheTTL, err := getEnvAsDuration("CRICINFO_CACHE_TTL", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CRICINFO_CACHE_TTL must be >= 0")
	}

	workers, err := getEnvAsInt("CRICINFO_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICINFO_WORKERS: %w", err)
	}
	if workers <= 0 {
		return Config{}, fmt.Errorf("CRICINFO_WORKERS must be > 0")
	}

	archiveEnabled, err := getEnvAsBool("ARCHIVE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse ARCHIVE_ENABLED: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if archiveEnabled && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when ARCHIVE_ENABLED=true")
	}
	dbDisablePreparedBinary, err := getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := getEnvAsBool("UPTRACE_LOGS_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:          appEnv,
		ServiceName:     getEnv("APP_SERVICE_NAME", "cricinfo"),
		ServiceVersion:  getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:        logLevel,
		SiteBaseURL:     strings.TrimRight(getEnv("CRICINFO_SITE_BASE_URL", "https://www.espncricinfo.com"), "/"),
		CoreBaseURL:     strings.TrimRight(getEnv("CRICINFO_CORE_BASE_URL", "http://core.espnuk.org/v2/sports/cricket"), "/"),
		ConsumerBaseURL: strings.TrimRight(getEnv("CRICINFO_CONSUMER_BASE_URL", "https://hs-consumer-api.espncricinfo.com/v1/pages"), "/"),
		FeedURL:         getEnv("CRICINFO_FEED_URL", "http://static.cricinfo.com/rss/livescores.xml"),
		UserAgent:       getEnv("CRICINFO_USER_AGENT", "Mozilla/5.0"),
		Timeout:         timeout,
		MaxRetries:      maxRetries,
		BrowserEnabled:  browserEnabled,
		BrowserTimeout:  browserTimeout,
		Circuit:         circuit,
		CacheTTL:        cacheTTL,
		Workers:         workers,
		ArchiveEnabled:  archiveEnabled,
		DBURL:           dbURL,
		UptraceEnabled:  uptraceEnabled,
		UptraceDSN:      uptraceDSN,

		UptraceLogsEnabled:      uptraceLogsEnabled,
		DBDisablePreparedBinary: dbDisablePreparedBinary,

		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if err := configValidator.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadCircuit() (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()

	enabled, err := getEnvAsBool("CRICINFO_CIRCUIT_ENABLED", defaults.Enabled)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse CRICINFO_CIRCUIT_ENABLED: %w", err)
	}
	failures, err := getEnvAsInt("CRICINFO_CIRCUIT_FAILURE_THRESHOLD", defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse CRICINFO_CIRCUIT_FAILURE_THRESHOLD: %w", err)
	}
	if failures <= 0 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("CRICINFO_CIRCUIT_FAILURE_THRESHOLD must be > 0")
	}
	openTimeout, err := getEnvAsDuration("CRICINFO_CIRCUIT_OPEN_TIMEOUT", defaults.OpenTimeout)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse CRICINFO_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if openTimeout <= 0 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("CRICINFO_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	halfOpen, err := getEnvAsInt("CRICINFO_CIRCUIT_HALF_OPEN_MAX_REQ", defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse CRICINFO_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpen <= 0 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("CRICINFO_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	return resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failures,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpen,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseBool(value)
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
