package api

import (
	"github.com/nihn/eurostartrainfinder/pkg/config"
	"github.com/nihn/eurostartrainfinder/pkg/search"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					service, closeService, err := search.NewService(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeService()

					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"), service)
				},
			},
		},
	}
}
