package dataimporter

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/config"
	"github.com/travigo/ctsearch/pkg/database"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import station data into MongoDB",
		Subcommands: []*cli.Command{
			{
				Name:  "stations",
				Usage: "Import the station hierarchy and provider correlations from CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tree",
						Usage: "CSV of destination_code,destination_tree,arrival_code,arrival_tree",
					},
					&cli.StringFlag{
						Name:  "correlations",
						Usage: "CSV of code,provider,provider_code",
					},
				},
				Action: func(c *cli.Context) error {
					treePath := c.String("tree")
					correlationsPath := c.String("correlations")

					if treePath == "" && correlationsPath == "" {
						return errors.New("at least one of --tree or --correlations is required")
					}

					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					mongoInstance, err := database.Connect(c.Context, cfg.Mongo)
					if err != nil {
						return err
					}
					defer mongoInstance.Disconnect(c.Context)

					if treePath != "" {
						file, err := os.Open(treePath)
						if err != nil {
							return err
						}
						defer file.Close()

						records, err := ParseDestinationTree(file)
						if err != nil {
							return err
						}

						log.Info().Int("length", len(records)).Msg("Importing destination tree")
						if err := ImportDestinationTree(c.Context, mongoInstance.DestinationTree(), records); err != nil {
							return err
						}
					}

					if correlationsPath != "" {
						file, err := os.Open(correlationsPath)
						if err != nil {
							return err
						}
						defer file.Close()

						correlations, err := ParseCorrelations(file)
						if err != nil {
							return err
						}

						log.Info().Int("length", len(correlations)).Msg("Importing station correlations")
						if err := ImportCorrelations(c.Context, mongoInstance.StationCorrelations(), correlations); err != nil {
							return err
						}
					}

					return nil
				},
			},
		},
	}
}
