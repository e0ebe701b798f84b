package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/config"
	"github.com/travigo/ctsearch/pkg/search"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the train search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides the configured one",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					listen := cfg.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
					}

					services, err := search.Setup(c.Context, cfg)
					if err != nil {
						return err
					}
					defer services.Close(c.Context)

					log.Info().Str("listen", listen).Msg("Starting web API")

					return SetupServer(listen, services.Pipeline)
				},
			},
		},
	}
}
