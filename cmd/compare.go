package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fundsight/fundsight"
	"github.com/fundsight/fundsight/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	from string
	to   string
	rows int
	png  string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare funds on a normalized base of 100" }
func (*compareCmd) Usage() string {
	return `compare [-s <date>] [-d <date>] [-rows <n>] [-png <file>] <scheme_code>...

  Fetches each fund's NAV history, rescales every series so its first value in
  the range is 100, aligns them on the union of their dates, and displays the
  latest NAVs with 1-day change plus the tail of the comparison table.

Usage Examples:
$ fsight compare 120503 118989
$ fsight compare -s 2024-1-1 -png compare.png 120503 118989 119598
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "s", "", "Start date of the comparison range (default: full history).")
	f.StringVar(&c.to, "d", "", "End date of the comparison range (default: today).")
	f.IntVar(&c.rows, "rows", 15, "Number of trailing table rows to display, 0 for all.")
	f.StringVar(&c.png, "png", "", "Also render the comparison chart to this PNG file.")
}

// rangeOf resolves the -s/-d flags into a date range, or ok=false when the
// full history is wanted.
func rangeOf(from, to string) (r fundsight.Range, ok bool, err error) {
	if from == "" && to == "" {
		return fundsight.Range{}, false, nil
	}
	end := fundsight.Today()
	if to != "" {
		if end, err = fundsight.ParseDate(to); err != nil {
			return fundsight.Range{}, false, err
		}
	}
	start := fundsight.NewDate(1900, 1, 1)
	if from != "" {
		if start, err = fundsight.ParseDate(from); err != nil {
			return fundsight.Range{}, false, err
		}
	}
	return fundsight.NewRange(start, end), true, nil
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "at least one scheme code is required")
		return subcommands.ExitUsageError
	}
	r, restrict, err := rangeOf(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := NewClient()
	funds := loadFunds(client, f.Args())

	var sums []renderer.Summary
	var normalized []*fundsight.NavSeries
	for _, s := range funds {
		if restrict {
			s = s.Between(r)
		}
		on, latest, ok := s.Latest()
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: skipping fund %s: no NAV in range\n", s.Code)
			continue
		}
		sum := renderer.Summary{
			Code:     s.Code,
			Name:     s.Name,
			Latest:   fundsight.NewMoneyFromFloat(latest, "INR"),
			LatestOn: on,
		}
		if change, err := fundsight.TrailingReturn(s, fundsight.Lookback1D); err == nil {
			sum.DayChange = &change
		}
		sums = append(sums, sum)

		n, err := fundsight.RescaleTo100(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping fund %s: %v\n", s.Code, err)
			continue
		}
		normalized = append(normalized, &n.NavSeries)
	}
	if len(normalized) == 0 {
		fmt.Fprintln(os.Stderr, "no fund with usable data")
		return subcommands.ExitFailure
	}

	table, err := fundsight.Align(fundsight.Inclusive, normalized...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning funds: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(sums))
	b.WriteString("\n")
	b.WriteString(renderer.ComparisonMarkdown(table, c.rows))
	printMarkdown(b.String())

	if c.png != "" {
		img, err := renderer.ComparisonChartPNG(table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.png, img, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.png, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "chart written to %s\n", c.png)
	}
	return subcommands.ExitSuccess
}
