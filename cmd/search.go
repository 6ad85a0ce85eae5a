package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search mutual fund schemes by name" }
func (*searchCmd) Usage() string {
	return `search <word>...

  Searches the scheme list for funds whose name contains every given word,
  case-insensitively, and prints their scheme codes.

Usage Examples:
$ fsight search axis bluechip
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 30, "Maximum number of results to display.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one search word is required")
		return subcommands.ExitUsageError
	}

	client := NewClient()
	schemes, err := client.Search(strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching schemes: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(schemes) == 0 {
		fmt.Println("no scheme matches")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Code\tName\n")
	for i, s := range schemes {
		if c.limit > 0 && i >= c.limit {
			fmt.Printf("... and %d more (raise -n to see them)\n", len(schemes)-c.limit)
			break
		}
		fmt.Printf("%s\t%s\n", s.ID(), s.Name)
	}
	return subcommands.ExitSuccess
}
