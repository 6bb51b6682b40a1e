// Package stations resolves human readable station names into the numeric
// identifiers the train search API expects.
package stations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/nihn/eurostartrainfinder/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownStation = errors.New("invalid city name")
	ErrSameStation    = errors.New("start and finish stations need to be different")
)

type Source interface {
	GetStations(ctx context.Context) (map[string]int, error)
}

type Directory struct {
	Source Source

	// Cache is optional
	Cache *cache.Cache[string]
}

// Stations returns the station name to id mapping, from the cache when it holds one
func (d *Directory) Stations(ctx context.Context) (map[string]int, error) {
	if d.Cache != nil {
		if cached, err := d.Cache.Get(ctx, cacheKey); err == nil {
			var stations map[string]int
			if err := json.Unmarshal([]byte(cached), &stations); err == nil && len(stations) > 0 {
				log.Debug().Int("stations", len(stations)).Msg("Using cached station directory")
				return stations, nil
			}
		}
	}

	stations, err := d.Source.GetStations(ctx)
	if err != nil {
		return nil, err
	}

	if d.Cache != nil {
		encoded, _ := json.Marshal(stations)
		if err := d.Cache.Set(ctx, cacheKey, string(encoded)); err != nil {
			log.Warn().Err(err).Msg("Failed to cache station directory")
		}
	}

	return stations, nil
}

// Names lists the known station names alphabetically
func (d *Directory) Names(ctx context.Context) ([]string, error) {
	stations, err := d.Stations(ctx)
	if err != nil {
		return nil, err
	}

	return sortedNames(stations), nil
}

// ResolvePair looks up the origin and destination ids, names match case-insensitively
func (d *Directory) ResolvePair(ctx context.Context, from string, to string) (int, int, error) {
	stations, err := d.Stations(ctx)
	if err != nil {
		return 0, 0, err
	}

	fromID, err := resolve(stations, from)
	if err != nil {
		return 0, 0, err
	}

	toID, err := resolve(stations, to)
	if err != nil {
		return 0, 0, err
	}

	if fromID == toID {
		return 0, 0, ErrSameStation
	}

	return fromID, toID, nil
}

func resolve(stations map[string]int, name string) (int, error) {
	names := sortedNames(stations)

	match, ok := util.ContainsStringFold(names, strings.TrimSpace(name))
	if !ok {
		return 0, fmt.Errorf("%w %q, choose from: %s", ErrUnknownStation, name, strings.Join(names, ", "))
	}

	return stations[match], nil
}

func sortedNames(stations map[string]int) []string {
	names := make([]string, 0, len(stations))
	for name := range stations {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
