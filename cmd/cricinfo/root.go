package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricinfo"
	"github.com/riskibarqy/cricinfo/internal/app"
	"github.com/riskibarqy/cricinfo/internal/config"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

const closeTimeout = 5 * time.Second

type cli struct {
	logLevel string
	jsonLogs bool
	jsonOut  bool
	browser  bool
	showRaw  bool

	app *app.App
	out io.Writer
}

func run(ctx context.Context, args []string) error {
	c := &cli{}
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "cricinfo",
		Short:             "cricinfo fetches ESPNcricinfo data and prints it normalized.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "", "debug|info|warn|error (overrides LOG_LEVEL)")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "write logs to stderr as JSON lines")
	flags.BoolVar(&c.jsonOut, "json", false, "print records as JSON instead of tables")
	flags.BoolVar(&c.browser, "browser", false, "render match pages with headless Chrome")
	flags.BoolVar(&c.showRaw, "show-raw", false, "list the raw payloads fetched by the command")

	root.AddCommand(
		c.matchCmd(),
		c.scorecardCmd(),
		c.summaryCmd(),
		c.seriesCmd(),
		c.seasonCmd(),
		c.groundCmd(),
		c.playerCmd(),
		c.teamCmd(),
		c.liveCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		level, err := logging.ParseLevel(c.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}

	a, err := app.New(cmd.Context(), cfg, app.Options{
		LogWriter: cmd.ErrOrStderr(),
		JSONLogs:  c.jsonLogs,
		KeepRaw:   c.showRaw,
		Browser:   c.browser,
	})
	if err != nil {
		return err
	}
	c.app = a
	c.out = cmd.OutOrStdout()
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	if c.showRaw && c.app.Raw != nil {
		renderRawPayloads(c.out, c.app.Raw.List())
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return c.app.Close(ctx)
}

func (c *cli) client() *cricinfo.Client {
	return c.app.Client
}

// print writes v as JSON when --json is set and calls table otherwise.
func (c *cli) print(v any, table func(io.Writer)) error {
	if !c.jsonOut {
		table(c.out)
		return nil
	}
	body, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(body))
	return err
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q must be a positive integer", cricinfo.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func parseRefArgs(args []string) (cricinfo.MatchRef, error) {
	ref, err := cricinfo.NewMatchRef(args[0], args[1])
	if err != nil {
		return cricinfo.MatchRef{}, err
	}
	return ref, nil
}

// friendly turns the error taxonomy into short CLI messages while keeping
// the chain intact for errors.Is.
func friendly(err error) error {
	var structErr *cricinfo.StructureError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cricinfo.ErrNotFound):
		return fmt.Errorf("not found: %w", err)
	case errors.Is(err, cricinfo.ErrNoScorecard):
		return fmt.Errorf("no scorecard published yet: %w", err)
	case errors.As(err, &structErr):
		return fmt.Errorf("unexpected upstream layout at %s: %w", structErr.Path, err)
	case errors.Is(err, cricinfo.ErrDependencyUnavailable):
		return fmt.Errorf("upstream unavailable, try again later: %w", err)
	default:
		return err
	}
}
