// Package search runs a complete round trip search: station lookup, date pair
// generation, querying and sorting.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/nihn/eurostartrainfinder/pkg/journeys"
	"github.com/nihn/eurostartrainfinder/pkg/stations"
	"github.com/nihn/eurostartrainfinder/pkg/traveldates"
	"github.com/rs/zerolog/log"
)

var ErrNoDatePairs = errors.New("there are no date pairs matching your criteria")

type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Request is a validated search
type Request struct {
	From string
	To   string

	Since   time.Time
	Until   time.Time
	Stay    int
	Weekday *time.Weekday

	Adults int
	Filter journeys.Filter
	SortBy journeys.SortBy
}

type Service struct {
	Stations  *stations.Directory
	Assembler *journeys.Assembler
}

// Search returns the matching journeys sorted as requested. An empty result is not an error.
func (s *Service) Search(ctx context.Context, request *Request) ([]*journeys.TrainJourney, error) {
	pairs, err := traveldates.Enumerate(request.Since, request.Until, request.Stay, request.Weekday)
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, ErrNoDatePairs
	}

	from, to, err := s.Stations.ResolvePair(ctx, request.From, request.To)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Possible travel dates: %s", pretty.Sprint(pairs))

	found, err := s.Assembler.Assemble(ctx, pairs, journeys.Search{
		Origin:      from,
		Destination: to,
		Adults:      request.Adults,
	}, request.Filter)
	if err != nil {
		return nil, err
	}

	journeys.Sort(found, request.SortBy)

	log.Info().
		Str("from", request.From).
		Str("to", request.To).
		Int("pairs", len(pairs)).
		Int("journeys", len(found)).
		Msg("Found journeys matching criteria")

	return found, nil
}
