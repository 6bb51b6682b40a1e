package journeys

import (
	"context"

	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
	"github.com/nihn/eurostartrainfinder/pkg/traveldates"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
)

type TrainFetcher interface {
	FetchTrains(ctx context.Context, query eurostar.TrainQuery) (*eurostar.Trains, error)
}

// Search is what stays the same for every date pair of a query
type Search struct {
	Origin      int
	Destination int
	Adults      int
}

type Assembler struct {
	Fetcher TrainFetcher

	// MaxConcurrency caps the number of in-flight requests, zero runs one per date pair
	MaxConcurrency int
}

type fetchResult struct {
	trains *eurostar.Trains
	err    error
}

// Assemble fetches trains for every date pair concurrently and turns them into journeys.
//
// Results are read in the order of pairs once every request has finished. The
// first failed pair in that order fails the whole assembly, even if later pairs
// succeeded.
func (a *Assembler) Assemble(ctx context.Context, pairs []traveldates.DatePair, search Search, filter Filter) ([]*TrainJourney, error) {
	maxGoroutines := a.MaxConcurrency
	if maxGoroutines <= 0 || maxGoroutines > len(pairs) {
		maxGoroutines = len(pairs)
	}

	mapper := iter.Mapper[traveldates.DatePair, fetchResult]{
		MaxGoroutines: maxGoroutines,
	}

	results := mapper.Map(pairs, func(pair *traveldates.DatePair) fetchResult {
		trains, err := a.Fetcher.FetchTrains(ctx, eurostar.TrainQuery{
			Origin:       search.Origin,
			Destination:  search.Destination,
			OutboundDate: pair.Outbound,
			InboundDate:  pair.Inbound,
			Adults:       search.Adults,
		})

		return fetchResult{trains: trains, err: err}
	})

	journeys := []*TrainJourney{}

	for i, result := range results {
		if result.err != nil {
			log.Debug().Err(result.err).Str("pair", pairs[i].String()).Msg("Date pair query failed")
			return nil, result.err
		}

		pairJourneys := CrossJoin(result.trains, filter)

		log.Debug().
			Str("pair", pairs[i].String()).
			Int("outbound", len(result.trains.Outbound)).
			Int("inbound", len(result.trains.Inbound)).
			Int("journeys", len(pairJourneys)).
			Msg("Assembled journeys for date pair")

		journeys = append(journeys, pairJourneys...)
	}

	return journeys, nil
}
