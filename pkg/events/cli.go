package events

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travigo/ctsearch/pkg/config"
	"github.com/travigo/ctsearch/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Provides the events runner",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "consume and log search events",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					connection, err := redis_client.Connect(c.Context, cfg.Redis, true)
					if err != nil {
						return err
					}
					defer connection.Close()

					consumer := &Consumer{
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Handler:         LogEvent,
					}
					if err := consumer.Start(connection.QueueConnection); err != nil {
						return err
					}

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					return nil
				},
			},
		},
	}
}
