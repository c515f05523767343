package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	JSONLog bool             `name:"json-log" help:"Log structured JSON instead of console output"`

	Replay   ReplayCmd   `cmd:"" help:"Replay recorded hands through the engine"`
	Simulate SimulateCmd `cmd:"" help:"Simulate hands between built-in strategies"`
	Validate ValidateCmd `cmd:"" help:"Validate hand record files without replaying"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handsim"),
		kong.Description("No-limit hold'em hand engine with historical replay"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	logger := setupLogger(cli.Debug, cli.JSONLog)
	err := ctx.Run(&RunContext{Logger: logger})
	ctx.FatalIfErrorf(err)
}
