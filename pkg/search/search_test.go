package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
	"github.com/nihn/eurostartrainfinder/pkg/journeys"
	"github.com/nihn/eurostartrainfinder/pkg/stations"
	"github.com/nihn/eurostartrainfinder/pkg/traveldates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)

func TestOptionsParseAt(t *testing.T) {
	options := DefaultOptions()
	options.Days = "3"
	options.Weekday = "friday"
	options.MaxPrice = "150.5"
	options.OutDepartureAfter = "07:00"
	options.InDepartureBefore = "20:30"
	options.Adults = "2"
	options.SortBy = "date"
	options.Where = "price > 10"

	request, err := options.ParseAt(today)
	require.NoError(t, err)

	assert.Equal(t, "London", request.From)
	assert.Equal(t, "Paris", request.To)
	assert.Equal(t, today, request.Since)
	assert.Equal(t, today.AddDate(0, 0, 14), request.Until)
	assert.Equal(t, 2, request.Stay)
	require.NotNil(t, request.Weekday)
	assert.Equal(t, time.Friday, *request.Weekday)
	assert.Equal(t, 2, request.Adults)
	assert.Equal(t, journeys.SortByDate, request.SortBy)

	require.NotNil(t, request.Filter.MaxPrice)
	assert.Equal(t, 150.5, *request.Filter.MaxPrice)
	assert.Equal(t, date.NewTimeOfDay(7, 0), *request.Filter.OutboundDepartureAfter)
	assert.Equal(t, date.NewTimeOfDay(20, 30), *request.Filter.InboundDepartureBefore)
	assert.Nil(t, request.Filter.OutboundDepartureBefore)
	assert.Nil(t, request.Filter.InboundDepartureAfter)
	assert.NotNil(t, request.Filter.Expression)
}

func TestOptionsParseAtErrors(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Options)
		err    error
	}{
		{"missing days", func(o *Options) { o.Days = "" }, date.ErrInvalidNumber},
		{"zero days", func(o *Options) { o.Days = "0" }, date.ErrNonPositiveDuration},
		{"past date", func(o *Options) { o.Since = "2020-03-01" }, date.ErrDateInPast},
		{"bad date", func(o *Options) { o.Until = "01/05/2020" }, date.ErrDateSyntax},
		{"weekday", func(o *Options) { o.Weekday = "someday" }, date.ErrInvalidWeekday},
		{"time", func(o *Options) { o.InDepartureAfter = "noon" }, date.ErrTimeSyntax},
		{"price", func(o *Options) { o.MaxPrice = "cheap" }, date.ErrInvalidNumber},
		{"adults", func(o *Options) { o.Adults = "0" }, date.ErrInvalidNumber},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			options := DefaultOptions()
			options.Days = "2"
			c.modify(&options)

			_, err := options.ParseAt(today)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

type fakeStations map[string]int

func (f fakeStations) GetStations(ctx context.Context) (map[string]int, error) {
	return f, nil
}

func newService(t *testing.T, requests *atomic.Int32) *Service {
	t.Helper()

	body, err := os.ReadFile("../eurostar/testdata/response.json")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/train-search/uk-en/7015400/8727100", r.URL.Path)
		w.Write(body)
	}))
	t.Cleanup(server.Close)

	return &Service{
		Stations: &stations.Directory{Source: fakeStations{"London": 7015400, "Paris": 8727100}},
		Assembler: &journeys.Assembler{
			Fetcher: eurostar.NewClient(eurostar.Config{BaseURL: server.URL, APIKey: "key"}),
		},
	}
}

func TestSearch(t *testing.T) {
	var requests atomic.Int32
	service := newService(t, &requests)

	maxPrice := 130.0
	found, err := service.Search(context.Background(), &Request{
		From:   "london",
		To:     "Paris",
		Since:  today,
		Until:  today.AddDate(0, 0, 3),
		Stay:   2,
		Adults: 1,
		Filter: journeys.Filter{MaxPrice: &maxPrice},
		SortBy: journeys.SortByPrice,
	})
	require.NoError(t, err)

	// Two date pairs, each with the same five journeys up to 130
	assert.Equal(t, int32(2), requests.Load())
	require.Len(t, found, 10)

	assert.Equal(t, 78.5, found[0].Price)
	assert.Equal(t, 78.5, found[1].Price)
	assert.True(t, found[0].Outbound.Before(found[1].Outbound))
	assert.Equal(t, 108.5, found[2].Price)
	assert.Equal(t, 128.5, found[9].Price)
}

func TestSearchNoFeasibleWindow(t *testing.T) {
	var requests atomic.Int32
	service := newService(t, &requests)

	_, err := service.Search(context.Background(), &Request{
		From:  "London",
		To:    "Paris",
		Since: today,
		Until: today.AddDate(0, 0, 1),
		Stay:  2,
	})

	assert.ErrorIs(t, err, traveldates.ErrNoFeasibleWindow)
	assert.Equal(t, int32(0), requests.Load())
}

func TestSearchUnknownStation(t *testing.T) {
	var requests atomic.Int32
	service := newService(t, &requests)

	_, err := service.Search(context.Background(), &Request{From: "London", To: "Rome", Since: today, Until: today})

	assert.ErrorIs(t, err, stations.ErrUnknownStation)
}

type unreachableStations struct {
	calls atomic.Int32
}

func (u *unreachableStations) GetStations(ctx context.Context) (map[string]int, error) {
	u.calls.Add(1)
	return nil, &eurostar.TransportError{Err: errors.New("connection refused")}
}

func TestSearchChecksDatesBeforeStations(t *testing.T) {
	directory := &unreachableStations{}
	service := &Service{
		Stations:  &stations.Directory{Source: directory},
		Assembler: &journeys.Assembler{},
	}

	_, err := service.Search(context.Background(), &Request{
		From:  "London",
		To:    "Paris",
		Since: today,
		Until: today.AddDate(0, 0, 1),
		Stay:  2,
	})

	assert.ErrorIs(t, err, traveldates.ErrNoFeasibleWindow)
	assert.Equal(t, int32(0), directory.calls.Load())
}
