package search

import (
	"strconv"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	"github.com/nihn/eurostartrainfinder/pkg/journeys"
)

// Options is a search as typed by a user, every field still a string
type Options struct {
	From  string
	To    string
	Since string
	Until string
	Days  string

	Weekday string

	OutDepartureAfter  string
	OutDepartureBefore string
	InDepartureAfter   string
	InDepartureBefore  string

	MaxPrice string
	Where    string

	Adults string
	SortBy string
}

// DefaultOptions matches a London to Paris trip in the next two weeks
func DefaultOptions() Options {
	return Options{
		From:   "London",
		To:     "Paris",
		Since:  date.Now,
		Until:  date.PlusTwoWeeks,
		Adults: "1",
		SortBy: string(journeys.SortByPrice),
	}
}

// Parse validates the options against today's date
func (o Options) Parse() (*Request, error) {
	return o.ParseAt(date.Today())
}

func (o Options) ParseAt(today time.Time) (*Request, error) {
	var err error
	request := &Request{
		From: o.From,
		To:   o.To,
	}

	if request.Since, err = date.ParseDateAt(o.Since, today); err != nil {
		return nil, err
	}
	if request.Until, err = date.ParseDateAt(o.Until, today); err != nil {
		return nil, err
	}
	if request.Stay, err = date.ParseDuration(o.Days); err != nil {
		return nil, err
	}

	if o.Weekday != "" {
		weekday, err := date.ParseWeekday(o.Weekday)
		if err != nil {
			return nil, err
		}
		request.Weekday = &weekday
	}

	if request.Adults, err = parseAdults(o.Adults); err != nil {
		return nil, err
	}
	if request.SortBy, err = journeys.ParseSortBy(o.SortBy); err != nil {
		return nil, err
	}

	if o.MaxPrice != "" {
		maxPrice, err := strconv.ParseFloat(o.MaxPrice, 64)
		if err != nil {
			return nil, &ValidationError{Field: "max-price", Value: o.MaxPrice, Err: date.ErrInvalidNumber}
		}
		request.Filter.MaxPrice = &maxPrice
	}

	for _, bound := range []struct {
		value  string
		target **date.TimeOfDay
	}{
		{o.OutDepartureAfter, &request.Filter.OutboundDepartureAfter},
		{o.OutDepartureBefore, &request.Filter.OutboundDepartureBefore},
		{o.InDepartureAfter, &request.Filter.InboundDepartureAfter},
		{o.InDepartureBefore, &request.Filter.InboundDepartureBefore},
	} {
		if bound.value == "" {
			continue
		}

		timeOfDay, err := date.ParseTimeOfDay(bound.value)
		if err != nil {
			return nil, err
		}
		*bound.target = &timeOfDay
	}

	if o.Where != "" {
		if request.Filter.Expression, err = journeys.CompileExpression(o.Where); err != nil {
			return nil, err
		}
	}

	return request, nil
}

func parseAdults(text string) (int, error) {
	if text == "" {
		return 1, nil
	}

	adults, err := strconv.Atoi(text)
	if err != nil || adults < 1 {
		return 0, &ValidationError{Field: "adults", Value: text, Err: date.ErrInvalidNumber}
	}

	return adults, nil
}
