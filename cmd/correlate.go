package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fundsight/fundsight"
	"github.com/fundsight/fundsight/renderer"
	"github.com/google/subcommands"
)

type correlateCmd struct {
	from string
	to   string
}

func (*correlateCmd) Name() string     { return "correlate" }
func (*correlateCmd) Synopsis() string { return "display pairwise correlation of daily returns" }
func (*correlateCmd) Usage() string {
	return `correlate [-s <date>] [-d <date>] <scheme_code> <scheme_code>...

  Aligns the funds strictly (intersection of their dates) and displays the
  Pearson correlation of their daily returns. Funds sharing too few dates are
  reported as insufficient overlap rather than a misleading coefficient.

Usage Examples:
$ fsight correlate 120503 118989 119598
`
}

func (c *correlateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "s", "", "Start date of the range (default: full history).")
	f.StringVar(&c.to, "d", "", "End date of the range (default: today).")
}

func (c *correlateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "at least two scheme codes are required")
		return subcommands.ExitUsageError
	}
	r, restrict, err := rangeOf(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := NewClient()
	funds := loadFunds(client, f.Args())
	if len(funds) < 2 {
		fmt.Fprintln(os.Stderr, "fewer than two funds with usable data")
		return subcommands.ExitFailure
	}
	if restrict {
		for i, s := range funds {
			funds[i] = s.Between(r)
		}
	}

	table, err := fundsight.Align(fundsight.Strict, funds...)
	if err != nil {
		if errors.Is(err, fundsight.ErrInsufficientOverlap) {
			fmt.Fprintf(os.Stderr, "These funds cannot be correlated: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error aligning funds: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	matrix, err := table.Correlations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing correlations: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CorrelationMarkdown(matrix, len(table.Dates())))
	return subcommands.ExitSuccess
}
