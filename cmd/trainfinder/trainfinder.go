package main

import (
	"io"
	"os"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/api"
	"github.com/nihn/eurostartrainfinder/pkg/config"
	"github.com/nihn/eurostartrainfinder/pkg/search"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	_ "time/tzdata"
)

func setupLogging(logging config.LoggingConfig, verbosity int) {
	var writer io.Writer = os.Stderr
	if logging.Format != "JSON" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if logging.FilePath != "" {
		writer = io.MultiWriter(writer, &lumberjack.Logger{
			Filename:   logging.FilePath,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	log.Logger = log.Output(writer)

	switch {
	case verbosity >= 2:
		log.Logger = log.Logger.Level(zerolog.TraceLevel)
	case verbosity == 1 || logging.Debug:
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	default:
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

func newApp(cfg *config.Config, verbosity *int) *cli.App {
	return &cli.App{
		Name:        "trainfinder",
		Usage:       "Find Eurostar round trips matching your dates, times and budget",
		Description: "Queries the Eurostar train search API for every date pair in a window and lists the priced round trips",
		Version:     config.Version,

		UseShortOptionHandling: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Verbose mode (-v, -vv)",
				Count:   verbosity,
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(cfg.Logging, *verbosity)
			return nil
		},

		Commands: []*cli.Command{
			search.RegisterCLI(cfg),
			search.RegisterStationsCLI(cfg),
			api.RegisterCLI(cfg),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.Logging, 0)

	var verbosity int

	err = newApp(cfg, &verbosity).Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
