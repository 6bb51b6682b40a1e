package journeys

import (
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
)

// TrainJourney is a priced round trip made of one outbound and one inbound train
type TrainJourney struct {
	Outbound         time.Time
	Inbound          time.Time
	OutboundDuration time.Duration
	InboundDuration  time.Duration
	Price            float64
}

// Filter holds the optional constraints a journey has to meet.
// Time bounds are exclusive, the price ceiling is inclusive.
type Filter struct {
	MaxPrice *float64

	OutboundDepartureAfter  *date.TimeOfDay
	OutboundDepartureBefore *date.TimeOfDay
	InboundDepartureAfter   *date.TimeOfDay
	InboundDepartureBefore  *date.TimeOfDay

	Expression *Expression
}

func (f Filter) Matches(journey *TrainJourney) bool {
	if f.MaxPrice != nil && journey.Price > *f.MaxPrice {
		return false
	}

	if !withinWindow(journey.Outbound, f.OutboundDepartureAfter, f.OutboundDepartureBefore) {
		return false
	}

	if !withinWindow(journey.Inbound, f.InboundDepartureAfter, f.InboundDepartureBefore) {
		return false
	}

	if f.Expression != nil && !f.Expression.Matches(journey) {
		return false
	}

	return true
}

func withinWindow(departure time.Time, after *date.TimeOfDay, before *date.TimeOfDay) bool {
	departureTime := date.TimeOfDayOf(departure)

	if after != nil && departureTime <= *after {
		return false
	}
	if before != nil && departureTime >= *before {
		return false
	}

	return true
}

// CrossJoin pairs every outbound train with every inbound train, outbound major,
// keeping the journeys that pass the filter
func CrossJoin(trains *eurostar.Trains, filter Filter) []*TrainJourney {
	var journeys []*TrainJourney

	for _, outbound := range trains.Outbound {
		for _, inbound := range trains.Inbound {
			journey := &TrainJourney{
				Outbound:         outbound.Departure,
				Inbound:          inbound.Departure,
				OutboundDuration: outbound.Duration,
				InboundDuration:  inbound.Duration,
				Price:            outbound.Price + inbound.Price,
			}

			if filter.Matches(journey) {
				journeys = append(journeys, journey)
			}
		}
	}

	return journeys
}
