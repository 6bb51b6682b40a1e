package search

import (
	"context"

	"github.com/nihn/eurostartrainfinder/pkg/config"
	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
	"github.com/nihn/eurostartrainfinder/pkg/journeys"
	"github.com/nihn/eurostartrainfinder/pkg/redis_client"
	"github.com/nihn/eurostartrainfinder/pkg/stations"
	"github.com/rs/zerolog/log"
)

// NewService wires the API client, station directory and assembler from config.
// The returned close function releases the Redis connection when one was opened.
func NewService(ctx context.Context, cfg *config.Config) (*Service, func(), error) {
	client := eurostar.NewClient(cfg.Eurostar)

	directory := &stations.Directory{Source: client}
	closeFunc := func() {}

	if cfg.RedisEnabled() {
		redisClient, err := redis_client.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}

		directory.Cache = stations.NewCache(redisClient, cfg.StationsCacheTTL)
		closeFunc = func() { redisClient.Close() }

		log.Info().Str("address", cfg.Redis.Address).Msg("Caching station directory in Redis")
	} else {
		log.Debug().Msg("Skipping Redis setup")
	}

	return &Service{
		Stations: directory,
		Assembler: &journeys.Assembler{
			Fetcher:        client,
			MaxConcurrency: cfg.MaxConcurrency,
		},
	}, closeFunc, nil
}
