package journeys

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type SortBy string

const (
	SortByPrice SortBy = "price"
	SortByDate  SortBy = "date"
)

func ParseSortBy(text string) (SortBy, error) {
	switch SortBy(strings.ToLower(text)) {
	case SortByPrice:
		return SortByPrice, nil
	case SortByDate:
		return SortByDate, nil
	}

	return "", fmt.Errorf("invalid sort order %q, choose from: %s, %s", text, SortByPrice, SortByDate)
}

// Sort orders journeys in place, keeping the assembled order between equal keys
func Sort(journeys []*TrainJourney, sortBy SortBy) {
	switch sortBy {
	case SortByDate:
		slices.SortStableFunc(journeys, func(a, b *TrainJourney) int {
			return a.Outbound.Compare(b.Outbound)
		})
	default:
		slices.SortStableFunc(journeys, func(a, b *TrainJourney) int {
			return cmp.Compare(a.Price, b.Price)
		})
	}
}
