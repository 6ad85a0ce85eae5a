package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundsight/fundsight"
	"github.com/fundsight/fundsight/prophet"
	"github.com/fundsight/fundsight/renderer"
	"github.com/google/subcommands"
)

type forecastCmd struct {
	days   int
	tail   int
	png    string
	csv    string
	daily  bool
	weekly bool
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "forecast a fund's NAV with an uncertainty band" }
func (*forecastCmd) Usage() string {
	return `forecast [-days <n>] [-png <file>] [-csv <file>] <scheme_code>

  Fits a Prophet-style model on the fund's cleaned NAV history and predicts
  the given number of calendar days ahead. Forecasting is best effort: a model
  failure is reported as-is, with no retry and no fallback.

Usage Examples:
$ fsight forecast -days 90 120503
$ fsight forecast -days 30 -csv forecast.csv -png forecast.png 120503
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 90, "Number of calendar days to forecast.")
	f.IntVar(&c.tail, "tail", 10, "Number of trailing forecast rows to display, 0 for all.")
	f.StringVar(&c.png, "png", "", "Render the forecast chart to this PNG file.")
	f.StringVar(&c.csv, "csv", "", "Write the full forecast to this CSV file.")
	f.BoolVar(&c.daily, "daily", false, "Model daily seasonality.")
	f.BoolVar(&c.weekly, "weekly", true, "Model weekly seasonality.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one scheme code is required")
		return subcommands.ExitUsageError
	}
	if c.days <= 0 {
		fmt.Fprintln(os.Stderr, "-days must be positive")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)

	client := NewClient()
	history, err := loadFund(client, code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fund %s: %v\n", code, err)
		return subcommands.ExitFailure
	}

	req := fundsight.ForecastRequest{
		Code:              code,
		History:           history,
		HorizonDays:       c.days,
		DailySeasonality:  c.daily,
		WeeklySeasonality: c.weekly,
	}

	in, warning, err := fundsight.Prepare(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot forecast %s: %v\n", code, err)
		return subcommands.ExitFailure
	}
	if warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	last, _, _ := history.Latest()
	_, at := fundsight.Horizon(last, c.days)

	raw, err := prophet.New(req).Forecast(in, at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Model failed for %s: %v\n", code, err)
		return subcommands.ExitFailure
	}
	res, err := fundsight.Interpret(code, raw, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Model output rejected for %s: %v\n", code, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(history.Name, res, c.tail))

	if c.csv != "" {
		out, err := os.Create(c.csv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.csv, err)
			return subcommands.ExitFailure
		}
		err = renderer.ForecastCSV(out, res)
		out.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.csv, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "forecast written to %s\n", c.csv)
	}
	if c.png != "" {
		img, err := renderer.ForecastChartPNG(history, res, 3*c.days)
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
