package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Game       GameCmd          `cmd:"" help:"Play a single game between named strategies"`
	League     LeagueCmd        `cmd:"" help:"Run a league over the strategy catalog"`
	Strategies StrategiesCmd    `cmd:"" help:"List the strategy catalog"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flip7sim"),
		kong.Description("Flip 7 strategy simulator and tournament runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
