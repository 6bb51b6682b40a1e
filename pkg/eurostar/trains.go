package eurostar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	"github.com/nihn/eurostartrainfinder/pkg/util"
	"github.com/rs/zerolog/log"
)

// TrainQuery is a single search for one outbound and one inbound date
type TrainQuery struct {
	Origin       int
	Destination  int
	OutboundDate time.Time
	InboundDate  time.Time
	Adults       int
}

// Train is one priced departure in a single direction
type Train struct {
	Departure time.Time
	Duration  time.Duration
	Price     float64
}

type Trains struct {
	Outbound []Train
	Inbound  []Train
}

// FetchTrains queries the train search API for a single date pair
func (c *Client) FetchTrains(ctx context.Context, query TrainQuery) (*Trains, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%d/%d", SearchLocation, query.Origin, query.Destination), url.Values{
		"outbound-date": {query.OutboundDate.Format(date.UserFormat)},
		"inbound-date":  {query.InboundDate.Format(date.UserFormat)},
		"adult":         {strconv.Itoa(query.Adults)},
	})
	if err != nil {
		return nil, err
	}

	return ParseTrains(body, query.OutboundDate, query.InboundDate)
}

// ParseTrains decodes a train search response. Departure times are placed onto
// the dates the search was made for as the API only returns a time of day.
func ParseTrains(body []byte, outboundDate time.Time, inboundDate time.Time) (*Trains, error) {
	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		log.Debug().Str("body", util.TrimString(string(body), 512)).Msg("Invalid JSON")
		return nil, &MalformedResponseError{Err: err, Body: string(body)}
	}

	if response.Outbound == nil || response.Inbound == nil {
		log.Warn().
			Str("outbound", outboundDate.Format(date.UserFormat)).
			Str("inbound", inboundDate.Format(date.UserFormat)).
			Msg("No trains found for date pair")
	}

	outbound, err := trainsFromDirection(response.Outbound, outboundDate)
	if err != nil {
		return nil, &MalformedResponseError{Err: err, Body: string(body)}
	}

	inbound, err := trainsFromDirection(response.Inbound, inboundDate)
	if err != nil {
		return nil, &MalformedResponseError{Err: err, Body: string(body)}
	}

	return &Trains{
		Outbound: outbound,
		Inbound:  inbound,
	}, nil
}

func trainsFromDirection(dir *direction, day time.Time) ([]Train, error) {
	trains := []Train{}
	if dir == nil {
		return trains, nil
	}

	for i, journey := range dir.Journey {
		if journey.DepartureTime == nil {
			return nil, fmt.Errorf("journey %d: missing departureTime", i)
		}
		if journey.Duration == nil {
			return nil, fmt.Errorf("journey %d: missing duration", i)
		}

		price, ok := journey.adultPrice()
		if !ok {
			log.Trace().
				Str("departure", date.TimeOfDay(*journey.DepartureTime).String()).
				Msg("No adult price found for train, skipping")
			continue
		}

		trains = append(trains, Train{
			Departure: util.AddTimeToDate(day, date.TimeOfDay(*journey.DepartureTime).Duration()),
			Duration:  time.Duration(*journey.Duration),
			Price:     price,
		})
	}

	return trains, nil
}
