package search

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/travigo/ctsearch/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Runs train searches outside the web API",
		Subcommands: []*cli.Command{
			{
				Name:  "query",
				Usage: "run a search from a JSON parameters file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "search parameters in the POST /search body format",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					body, err := os.ReadFile(c.String("file"))
					if err != nil {
						return err
					}

					params, err := ParseSearchParameters(body)
					if err != nil {
						return err
					}

					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					services, err := Setup(c.Context, cfg)
					if err != nil {
						return err
					}
					defer services.Close(c.Context)

					results, err := services.Pipeline.Search(c.Context, params)
					if err != nil {
						return err
					}

					reduced, err := sheriff.Marshal(&sheriff.Options{
						Groups: []string{"basic"},
					}, results)
					if err != nil {
						return err
					}

					pretty.Println(reduced)
					fmt.Printf("%d results\n", len(results))

					return nil
				},
			},
		},
	}
}
