package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/isotime/iso"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchSize is the number of lines converted before output is flushed.
const batchSize = 1024

func (a *app) convertCmd() *cobra.Command {
	var epoch bool
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert ISO 8601 date times read from standard input, one per line",
		Long: `Convert ISO 8601 date times read from standard input, one per line,
writing each in the configured layout or precision. Lines that cannot be
parsed are written as the configured NaN text. Lines are converted
concurrently by the configured number of workers; output keeps input order.`,
		Example: `  printf '2024-01-01\n2024-02-30\n' | isotime convert --layout compact
  isotime convert --epoch < dates.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			render := a.render
			if epoch {
				render = a.renderSeconds
			}
			return a.convert(a.context(cmd.Context()), a.in, a.out, render)
		},
	}
	cmd.Flags().BoolVarP(&epoch, "epoch", "e", false, "write epoch seconds instead of formatted date times")
	return cmd
}

// renderSeconds writes sec as a number, or the NaN text if it is NaN.
func (a *app) renderSeconds(_ context.Context, sec float64) string {
	if math.IsNaN(sec) {
		return a.cfg.NaN
	}
	return formatSeconds(sec)
}

// convert reads lines from in, converts each with render in up to
// cfg.Workers goroutines, and writes the results to out in input order.
func (a *app) convert(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	render func(context.Context, float64) string,
) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	batch := make([]string, 0, batchSize)
	total := 0

	flush := func() error {
		results, err := a.convertBatch(ctx, batch, render)
		if err != nil {
			return err
		}
		for _, res := range results {
			if _, err := fmt.Fprintln(w, res); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
		total += len(batch)
		batch = batch[:0]
		return w.Flush()
	}

	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}

	a.logger.Debug("converted", zap.Int("lines", total), zap.Int("workers", a.cfg.Workers))
	return nil
}

// convertBatch converts lines concurrently, returning results in order.
func (a *app) convertBatch(
	ctx context.Context,
	lines []string,
	render func(context.Context, float64) string,
) ([]string, error) {
	results := make([]string, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sec := iso.SafeToEpochSeconds(gctx, strings.TrimSpace(line))
			results[i] = render(gctx, sec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return results, nil
}
