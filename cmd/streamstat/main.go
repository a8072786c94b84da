package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// initStreamStatApp initializes the streamstat demo app.
func initStreamStatApp() *cli.App {
	return &cli.App{
		Name:     "streamstat",
		HelpName: "streamstat",
		Usage:    "incremental statistics over a stream of scalar values",
		Commands: []*cli.Command{
			&WatchCommand,
			&BenchCommand,
		},
	}
}

func main() {
	app := initStreamStatApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
