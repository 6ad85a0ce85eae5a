package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fundsight/fundsight"
	"github.com/fundsight/fundsight/mfapi"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the fsight binary.
var Commands = []subcommands.Command{
	&searchCmd{},
	&compareCmd{},
	&returnsCmd{},
	&correlateCmd{},
	&forecastCmd{},
	&topicCmd{},
}

var baseURL = flag.String("base-url", mfapi.DefaultBaseURL, "Base URL of the NAV history service")

// NewClient is the central function to open the NAV data client.
func NewClient() *mfapi.Client {
	c := mfapi.NewClient()
	if env := os.Getenv("FUNDSIGHT_BASE_URL"); env != "" && *baseURL == mfapi.DefaultBaseURL {
		c.BaseURL = env
		return c
	}
	c.BaseURL = *baseURL
	return c
}

// loadFund fetches and normalizes one fund's full history.
func loadFund(c *mfapi.Client, code string) (*fundsight.NavSeries, error) {
	name, raw, err := c.NavHistory(code)
	if err != nil {
		return nil, err
	}
	return fundsight.Normalize(code, name, raw), nil
}

// loadFunds loads several funds. A failing fund is reported on stderr and
// skipped; it never aborts its siblings.
func loadFunds(c *mfapi.Client, codes []string) []*fundsight.NavSeries {
	out := make([]*fundsight.NavSeries, 0, len(codes))
	for _, code := range codes {
		s, err := loadFund(c, code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping fund %s: %v\n", code, err)
			continue
		}
		out = append(out, s)
	}
	return out
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Degraded but readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
