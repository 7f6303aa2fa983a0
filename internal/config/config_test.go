package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("UPTRACE_ENABLED", "")
	t.Setenv("ARCHIVE_ENABLED", "")
	t.Setenv("CRICINFO_TIMEOUT", "")
	t.Setenv("CRICINFO_WORKERS", "")
	t.Setenv("CRICINFO_CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env got=%q want=%q", cfg.AppEnv, EnvDev)
	}
	if cfg.Timeout != 20*time.Second {
		t.Fatalf("unexpected timeout got=%s want=20s", cfg.Timeout)
	}
	if cfg.Workers != 4 {
		t.Fatalf("unexpected workers got=%d want=4", cfg.Workers)
	}
	if cfg.CacheTTL != 0 {
		t.Fatalf("expected cache disabled by default, got=%s", cfg.CacheTTL)
	}
	if cfg.BrowserEnabled {
		t.Fatalf("expected browser fetcher disabled by default")
	}
	if !cfg.Circuit.Enabled || cfg.Circuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.Circuit)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level got=%v want=info", cfg.LogLevel)
	}
}

func TestLoad_CricinfoParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CRICINFO_CORE_BASE_URL", "http://core.example.test/v2/sports/cricket/")
	t.Setenv("CRICINFO_TIMEOUT", "5s")
	t.Setenv("CRICINFO_MAX_RETRIES", "0")
	t.Setenv("CRICINFO_BROWSER_ENABLED", "true")
	t.Setenv("CRICINFO_CIRCUIT_ENABLED", "false")
	t.Setenv("CRICINFO_CIRCUIT_OPEN_TIMEOUT", "1m")
	t.Setenv("CRICINFO_CACHE_TTL", "30s")
	t.Setenv("CRICINFO_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CoreBaseURL != "http://core.example.test/v2/sports/cricket" {
		t.Fatalf("expected trailing slash trimmed, got=%q", cfg.CoreBaseURL)
	}
	if cfg.Timeout != 5*time.Second || cfg.MaxRetries != 0 {
		t.Fatalf("unexpected transport config timeout=%s retries=%d", cfg.Timeout, cfg.MaxRetries)
	}
	if !cfg.BrowserEnabled {
		t.Fatalf("expected browser fetcher enabled")
	}
	if cfg.Circuit.Enabled || cfg.Circuit.OpenTimeout != time.Minute {
		t.Fatalf("unexpected circuit config: %+v", cfg.Circuit)
	}
	if cfg.CacheTTL != 30*time.Second || cfg.Workers != 8 {
		t.Fatalf("unexpected cache/workers ttl=%s workers=%d", cfg.CacheTTL, cfg.Workers)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level got=%v want=debug", cfg.LogLevel)
	}
}

func TestLoad_RejectsNonPositiveValues(t *testing.T) {
	cases := map[string]string{
		"CRICINFO_TIMEOUT":                   "0s",
		"CRICINFO_WORKERS":                   "0",
		"CRICINFO_MAX_RETRIES":               "-1",
		"CRICINFO_CIRCUIT_FAILURE_THRESHOLD": "0",
		"CRICINFO_BROWSER_TIMEOUT":           "-5s",
		"CRICINFO_CACHE_TTL":                 "-1s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CRICINFO_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for CRICINFO_TIMEOUT")
	}
}

func TestLoad_ArchiveRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ARCHIVE_ENABLED", "true")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when archive enabled without DB_URL")
	}

	t.Setenv("DB_URL", "postgres://localhost:5432/cricinfo?sslmode=disable")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.ArchiveEnabled {
		t.Fatalf("expected archive enabled")
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected prepared binary results disabled by default")
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for DB_DISABLE_PREPARED_BINARY_RESULT")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true and UPTRACE_DSN is empty")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_HTTPSettings(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_HTTP_ADDR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr got=%q want=:8080", cfg.HTTPAddr)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins got=%v want=[*]", cfg.CORSAllowedOrigins)
	}

	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.test, ,https://b.example.test ")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.test" {
		t.Fatalf("unexpected cors origins got=%v", cfg.CORSAllowedOrigins)
	}

	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS_ALLOWED_ORIGINS")
	}
}
