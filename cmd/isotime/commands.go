package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/isotime/iso"
	"github.com/theory/isotime/iso/format"
	"github.com/theory/isotime/iso/search"
	"github.com/theory/isotime/iso/ticks"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse DATETIME...",
		Short: "Print the epoch seconds of ISO 8601 date times",
		Example: `  isotime parse 1970-01-02 2001-01-01T12:00-05:00
  isotime --zone local parse "2024-06-01 08:00"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				sec, err := a.parseTime(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, formatSeconds(sec))
			}
			return nil
		},
	}
}

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format SECONDS...",
		Short: "Format epoch seconds in the configured layout or precision",
		Long: "Format epoch seconds in the configured layout or precision.\n\nLayouts: " +
			layoutList(),
		Example: `  isotime format --layout rfc822gmt 951782400
  isotime format --precision 1970-01-01 0 86400`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd.Context())
			for _, arg := range args {
				sec, err := parseSeconds(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, a.render(ctx, sec))
			}
			return nil
		},
	}
}

func (a *app) unitsCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "units UNITS VALUE...",
		Short: `Convert values measured in "units since" a date time`,
		Long: `Convert numeric values measured in a units string such as
"days since 1985-01-01" to formatted date times. With --reverse, convert
date times to values in the units instead.

Months and years are calendar units: the whole part of a value is added
as calendar months or years, and the fraction as days or months.`,
		Example: `  isotime units "days since 1985-01-01" 0 1.5 365
  isotime units --reverse "months since 2000-01-01" 2001-06-15`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd.Context())
			spec, err := iso.ParseUnits(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				if reverse {
					sec, err := a.parseTime(arg)
					if err != nil {
						return err
					}
					val, err := spec.FromEpochSeconds(sec)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, formatSeconds(val))
					continue
				}

				val, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				sec, err := spec.ToEpochSeconds(val)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, a.render(ctx, sec))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "convert date times to values")
	return cmd
}

func (a *app) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now [QUERY]",
		Short: "Evaluate a relative time query such as now-3days",
		Example: `  isotime now
  isotime now-2hours
  isotime --layout compact now+1month`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := "now"
			if len(args) > 0 {
				query = args[0]
			}
			sec, err := iso.Now(query)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.render(a.context(cmd.Context()), sec))
			return nil
		},
	}
}

func (a *app) ticksCmd() *cobra.Command {
	var maxCount int
	cmd := &cobra.Command{
		Use:   "ticks START STOP",
		Short: "Generate calendar-aligned axis ticks between two date times",
		Example: `  isotime ticks 2024-01-01 2024-03-01
  isotime ticks --max 6 --precision 1970 1900 2030`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd.Context())
			start, err := a.parseTime(args[0])
			if err != nil {
				return err
			}
			stop, err := a.parseTime(args[1])
			if err != nil {
				return err
			}
			if maxCount < 1 {
				maxCount = a.cfg.MaxTicks
			}
			for _, sec := range ticks.Generate(ctx, start, stop, maxCount) {
				fmt.Fprintln(a.out, a.render(ctx, sec))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxCount, "max", "m", 0, "approximate number of ticks (default from config)")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "search TARGET DATETIME...",
		Short: "Find a date time in an ascending list of ISO 8601 date times",
		Long: `Print the index of the entry in an ascending list of ISO 8601 date
times that best matches TARGET. Modes:

  closest  the entry nearest in time, ties going to the later entry
  le       the last entry at or before TARGET, or -1
  ge       the first entry at or after TARGET, or the list length`,
		Example: `  isotime search 2000-01-02 2000-01-01 2000-01-03 2000-01-05
  isotime search --mode le 2000-01-04 2000-01-01 2000-01-03 2000-01-05`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target, dates := args[0], args[1:]
			var idx int
			switch mode {
			case "closest":
				idx = search.FindClosest(dates, target)
			case "le":
				idx = search.FindLastLE(dates, target)
			case "ge":
				idx = search.FindFirstGE(dates, target)
			default:
				return fmt.Errorf("unknown search mode %q", mode)
			}
			fmt.Fprintln(a.out, idx)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "closest", "closest, le, or ge")
	return cmd
}

func (a *app) layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the output layout names",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range format.LayoutNames() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

func (a *app) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [SAMPLE...]",
		Short: "Name the layout shared by sample date times",
		Long: `Name the layout shared by every non-empty sample date time. Samples
are read from standard input, one per line, when none are given as
arguments.`,
		Example: `  isotime suggest 20240102 2024010203
  cut -d, -f1 data.csv | isotime suggest`,
		RunE: func(_ *cobra.Command, args []string) error {
			samples := args
			if len(samples) == 0 {
				scanner := bufio.NewScanner(a.in)
				for scanner.Scan() {
					samples = append(samples, strings.TrimSpace(scanner.Text()))
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read: %w", err)
				}
			}
			layout, ok := iso.SuggestLayout(samples...)
			if !ok {
				return fmt.Errorf("%w: no layout suits every sample", iso.ErrLayout)
			}
			fmt.Fprintln(a.out, layout)
			return nil
		},
	}
}

func parseSeconds(arg string) (float64, error) {
	sec, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid epoch seconds %q: %w", arg, err)
	}
	return sec, nil
}
