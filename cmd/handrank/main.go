package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Winners  WinnersCmd       `cmd:"" help:"Print the hands that tie for the best rank"`
	Classify ClassifyCmd      `cmd:"" help:"Show the category and tie-break key of a hand"`
	Serve    ServeCmd         `cmd:"" help:"Run the WebSocket showdown service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Rank five-card poker hands and pick the winners"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
