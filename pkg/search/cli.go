package search

import (
	"errors"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/nihn/eurostartrainfinder/pkg/config"
	"github.com/nihn/eurostartrainfinder/pkg/output"
	"github.com/nihn/eurostartrainfinder/pkg/stations"
	"github.com/nihn/eurostartrainfinder/pkg/traveldates"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// isUserError reports whether a search failed because of what was asked for
func isUserError(err error) bool {
	return errors.Is(err, ErrNoDatePairs) ||
		errors.Is(err, traveldates.ErrNoFeasibleWindow) ||
		errors.Is(err, stations.ErrUnknownStation) ||
		errors.Is(err, stations.ErrSameStation)
}

func apiKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "api-key",
		Aliases:  []string{"a"},
		Usage:    "Eurostar API key",
		EnvVars:  []string{config.Prefix + "API_KEY"},
		Required: true,
	}
}

func RegisterCLI(cfg *config.Config) *cli.Command {
	defaults := DefaultOptions()

	return &cli.Command{
		Name:      "search",
		Usage:     "Search for round trips matching the given criteria",
		ArgsUsage: "[FROM] [TO]",
		Flags: []cli.Flag{
			apiKeyFlag(),
			&cli.StringFlag{
				Name:    "since",
				Aliases: []string{"s"},
				Value:   defaults.Since,
				Usage:   "Since what date we should look (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:    "until",
				Aliases: []string{"u"},
				Value:   defaults.Until,
				Usage:   "To what date we should look (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:     "days",
				Aliases:  []string{"d"},
				Usage:    "Number of days to stay (e.g. Friday - Sunday would be 3 days)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "weekday",
				Aliases: []string{"w"},
				Usage:   "Which day of the week should be considered as a start of a journey",
			},
			&cli.StringFlag{
				Name:  "out-departure-after",
				Usage: "Only consider outbound trains departing after this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "out-departure-before",
				Usage: "Only consider outbound trains departing before this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "in-departure-after",
				Usage: "Only consider inbound trains departing after this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "in-departure-before",
				Usage: "Only consider inbound trains departing before this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:    "max-price",
				Aliases: []string{"m"},
				Usage:   "Max price per journey",
			},
			&cli.StringFlag{
				Name:  "where",
				Usage: `Extra journey filter expression, e.g. 'price < 150 && outbound.Weekday().String() == "Friday"'`,
			},
			&cli.StringFlag{
				Name:  "sort-by",
				Value: defaults.SortBy,
				Usage: "How results should be sorted (price, date)",
			},
			&cli.StringFlag{
				Name:  "adults",
				Value: defaults.Adults,
				Usage: "How many adults",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: string(output.FormatTable),
				Usage: "Output format (table, csv, json)",
			},
		},
		Action: func(c *cli.Context) error {
			options := Options{
				From:               defaults.From,
				To:                 defaults.To,
				Since:              c.String("since"),
				Until:              c.String("until"),
				Days:               c.String("days"),
				Weekday:            c.String("weekday"),
				OutDepartureAfter:  c.String("out-departure-after"),
				OutDepartureBefore: c.String("out-departure-before"),
				InDepartureAfter:   c.String("in-departure-after"),
				InDepartureBefore:  c.String("in-departure-before"),
				MaxPrice:           c.String("max-price"),
				Where:              c.String("where"),
				Adults:             c.String("adults"),
				SortBy:             c.String("sort-by"),
			}
			if c.Args().Len() > 2 {
				return cli.Exit("expected at most two stations, FROM and TO", 2)
			}
			if c.Args().Present() {
				options.From = c.Args().Get(0)
			}
			if c.Args().Len() > 1 {
				options.To = c.Args().Get(1)
			}

			log.Debug().Msgf("Parsed opts: %s", pretty.Sprint(options))

			format, err := output.ParseFormat(c.String("format"))
			if err != nil {
				return cli.Exit(err, 2)
			}

			request, err := options.Parse()
			if err != nil {
				return cli.Exit(err, 2)
			}

			cfg.Eurostar.APIKey = c.String("api-key")

			service, closeService, err := NewService(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeService()

			found, err := service.Search(c.Context, request)
			if isUserError(err) {
				return cli.Exit(err, 2)
			} else if err != nil {
				return err
			}

			if len(found) == 0 {
				fmt.Fprintln(os.Stdout, "There was no journey matching supplied criteria :(")
				return nil
			}

			return output.Write(os.Stdout, format, found)
		},
	}
}

func RegisterStationsCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "List the station names that can be searched",
		Flags: []cli.Flag{
			apiKeyFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg.Eurostar.APIKey = c.String("api-key")

			service, closeService, err := NewService(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeService()

			names, err := service.Stations.Names(c.Context)
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(os.Stdout, name)
			}

			return nil
		},
	}
}
