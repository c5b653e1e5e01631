// Package main provides the isotime command, which converts date times
// between ISO 8601 text, epoch seconds, and "units since" values.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/isotime/internal/config"
	"github.com/theory/isotime/iso"
	"github.com/theory/isotime/iso/format"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	in     io.Reader
	out    io.Writer

	configPath string
	verbose    bool
	zone       string
	layout     string
	precision  string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	root := &cobra.Command{
		Use:   "isotime",
		Short: "Convert date times between ISO 8601 text, epoch seconds, and units",
		Long: `isotime parses tolerant ISO 8601 date times, formats epoch seconds in
fixed layouts, converts "units since" values, and generates axis ticks.

Date times without an offset are read in the configured zone, Zulu by
default. Use --config to load settings from a YAML or TOML file.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup() },
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML or TOML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log conversion failures at debug level")
	flags.StringVarP(&a.zone, "zone", "z", "", "zone for date times without offsets: zulu or local")
	flags.StringVarP(&a.layout, "layout", "l", "", "output layout name")
	flags.StringVarP(&a.precision, "precision", "p", "", `output precision exemplar, such as "1970-01-01T00:00Z"`)

	root.AddCommand(
		a.parseCmd(),
		a.formatCmd(),
		a.unitsCmd(),
		a.nowCmd(),
		a.ticksCmd(),
		a.searchCmd(),
		a.convertCmd(),
		a.layoutsCmd(),
		a.suggestCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides, and builds the
// logger.
func (a *app) setup() error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.zone != "" {
		cfg.Zone = a.zone
	}
	if a.layout != "" {
		cfg.Layout = a.layout
	}
	if a.precision != "" {
		cfg.Precision = a.precision
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(cfg.Level())
		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	a.logger.Debug(
		"configured",
		zap.Stringer("zone", cfg.ZoneMode()),
		zap.String("layout", cfg.Layout),
		zap.String("precision", cfg.Precision),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

// context returns ctx carrying the logger and zone.
func (a *app) context(ctx context.Context) context.Context {
	ctx = iso.ContextWithLogger(ctx, a.logger)
	return iso.ContextWithZone(ctx, a.cfg.ZoneMode())
}

// render formats sec using the configured precision, if any, or layout.
// Unconvertible values render as the configured NaN text.
func (a *app) render(ctx context.Context, sec float64) string {
	if p, ok := a.cfg.PrecisionValue(); ok {
		return iso.SafeLimited(ctx, p, sec, a.cfg.NaN)
	}
	return iso.SafeFormat(ctx, sec, a.cfg.LayoutValue(), a.cfg.NaN)
}

// parseTime parses text in the configured zone.
func (a *app) parseTime(text string) (float64, error) {
	t, err := iso.ParseIn(text, a.cfg.ZoneMode())
	if err != nil {
		return 0, err
	}
	return t.EpochSeconds(), nil
}

func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64)
}

// layoutList returns the layout names for help text.
func layoutList() string {
	return strings.Join(format.LayoutNames(), ", ")
}
