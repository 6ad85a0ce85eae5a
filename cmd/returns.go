package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundsight/fundsight"
	"github.com/fundsight/fundsight/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	asOf string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display trailing returns per fund" }
func (*returnsCmd) Usage() string {
	return `returns [-d <date>] <scheme_code>...

  Displays the 1D, 1M, 3M, 6M, YTD and 1Y trailing returns of each fund.
  Windows longer than a fund's history are shown as "-", never as zero.

Usage Examples:
$ fsight returns 120503 118989
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "Reference date for the windows (default: today).")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "at least one scheme code is required")
		return subcommands.ExitUsageError
	}
	asOf := fundsight.Today()
	if c.asOf != "" {
		var err error
		if asOf, err = fundsight.ParseDate(c.asOf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	client := NewClient()
	funds := loadFunds(client, f.Args())
	if len(funds) == 0 {
		fmt.Fprintln(os.Stderr, "no fund with usable data")
		return subcommands.ExitFailure
	}

	rows := make([]renderer.FundReturns, 0, len(funds))
	for _, s := range funds {
		rows = append(rows, renderer.FundReturns{
			Code:    s.Code,
			Name:    s.Name,
			Returns: fundsight.TrailingReturns(s, asOf),
		})
	}
	printMarkdown(renderer.ReturnsMarkdown(rows))
	return subcommands.ExitSuccess
}
