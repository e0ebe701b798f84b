package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/api"
	"github.com/travigo/ctsearch/pkg/dataimporter"
	"github.com/travigo/ctsearch/pkg/events"
	"github.com/travigo/ctsearch/pkg/search"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "ctsearch",
		Description: "Train search across the configured provider",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "optional YAML config file, TRAVIGO_* environment variables take precedence",
				EnvVars: []string{"TRAVIGO_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			search.RegisterCLI(),
			dataimporter.RegisterCLI(),
			events.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
