// Command fsight is a mutual-fund NAV dashboard: scheme search, normalized
// comparison, trailing returns, correlation and forecasting from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundsight/fundsight/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// Optional .env for FUNDSIGHT_BASE_URL and friends.
	godotenv.Load()

	// Shell completion of subcommand names; returns immediately when not in
	// completion mode.
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("fsight")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
