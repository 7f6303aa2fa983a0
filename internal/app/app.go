package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricinfo"
	"github.com/riskibarqy/cricinfo/internal/config"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricinfo/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricinfo/internal/observability"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

// Options adjust how a process is wired.
type Options struct {
	// LogWriter receives log output. Default os.Stderr.
	LogWriter io.Writer
	JSONLogs  bool
	// KeepRaw keeps fetched payloads in memory when the database archive is
	// disabled, so the CLI can list them afterwards.
	KeepRaw bool
	// Browser forces headless Chrome rendering on.
	Browser bool
}

// App owns the process-wide collaborators of one CLI run or API server.
type App struct {
	Config config.Config
	Logger *logging.Logger
	Client *cricinfo.Client
	// Raw is set when payloads are kept in memory.
	Raw *memory.RawPayloadRepository

	db              *sqlx.DB
	shutdownTracing observability.Shutdown
}

func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	out := opts.LogWriter
	if out == nil {
		out = os.Stderr
	}
	logger := logging.NewWriter(out, cfg.LogLevel, opts.JSONLogs)

	logger, shutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	a := &App{Config: cfg, Logger: logger, shutdownTracing: shutdown}

	var archive rawdata.Repository
	switch {
	case cfg.ArchiveEnabled:
		db, err := postgres.Open(ctx, postgres.Options{
			URL:                   cfg.DBURL,
			DisablePreparedBinary: cfg.DBDisablePreparedBinary,
			MaxOpenConns:          cfg.Workers + 1,
		})
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("open archive: %w", err)
		}
		a.db = db
		archive = postgres.NewRawPayloadRepository(db)
		logger.Debug("raw payload archive enabled", "backend", "postgres")
	case opts.KeepRaw:
		a.Raw = memory.NewRawPayloadRepository()
		archive = a.Raw
		logger.Debug("raw payload archive enabled", "backend", "memory")
	}

	clientOpts := []cricinfo.Option{cricinfo.WithLogger(logger.Zap())}
	if archive != nil {
		clientOpts = append(clientOpts, cricinfo.WithArchive(archive))
	}
	if opts.Browser {
		clientOpts = append(clientOpts, cricinfo.WithBrowser(true))
	}
	client, err := cricinfo.NewFromEnv(clientOpts...)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("build client: %w", err)
	}
	a.Client = client
	return a, nil
}

// Close releases the archive connection and flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close archive: %w", err))
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
		}
	}
	_ = a.Logger.Sync()
	return errors.Join(errs...)
}
