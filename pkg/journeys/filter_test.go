package journeys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileExpression(t *testing.T) {
	_, err := CompileExpression("price +")
	assert.Error(t, err)

	// Expressions must produce a boolean
	_, err = CompileExpression("price * 2")
	assert.Error(t, err)

	_, err = CompileExpression("unknown_field > 2")
	assert.Error(t, err)
}

func TestExpressionMatches(t *testing.T) {
	j := journey(5, 40, 6, 33, 78.5, 157)

	cases := map[string]bool{
		"price < 80":   true,
		"price < 78.5": false,
		`outbound.Weekday().String() == "Sunday"`:       true,
		"outbound.Hour() >= 6":                          false,
		"nights == 2":                                   true,
		`outbound_duration > duration("2h30m")`:         true,
		`inbound_duration < duration("2h")`:             false,
		"inbound.Hour() < 7 && outbound.Minute() == 40": true,
	}

	for source, expected := range cases {
		expression, err := CompileExpression(source)
		require.NoError(t, err, source)

		assert.Equal(t, expected, expression.Matches(j), source)
		assert.Equal(t, source, expression.String())
	}
}

func TestFilterWithExpression(t *testing.T) {
	expression, err := CompileExpression(`inbound.Hour() == 8`)
	require.NoError(t, err)

	filter := Filter{MaxPrice: ptr(130.0), Expression: expression}

	assert.False(t, filter.Matches(journey(5, 40, 6, 33, 78.5, 157)))
	assert.True(t, filter.Matches(journey(5, 40, 8, 33, 128.5, 157)))
	assert.False(t, filter.Matches(journey(6, 40, 8, 33, 158.5, 133)))
}

func TestSort(t *testing.T) {
	a := &TrainJourney{Outbound: at(outboundDate, 9, 0), Price: 100}
	b := &TrainJourney{Outbound: at(outboundDate, 7, 0), Price: 120}
	c := &TrainJourney{Outbound: at(outboundDate.AddDate(0, 0, 1), 6, 0), Price: 80}
	d := &TrainJourney{Outbound: at(outboundDate, 8, 0), Price: 100}

	journeys := []*TrainJourney{a, b, c, d}
	Sort(journeys, SortByPrice)
	assert.Equal(t, []*TrainJourney{c, a, d, b}, journeys)

	Sort(journeys, SortByDate)
	assert.Equal(t, []*TrainJourney{b, d, a, c}, journeys)
}

func TestParseSortBy(t *testing.T) {
	sortBy, err := ParseSortBy("Price")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, sortBy)

	sortBy, err = ParseSortBy("date")
	require.NoError(t, err)
	assert.Equal(t, SortByDate, sortBy)

	_, err = ParseSortBy("duration")
	assert.Error(t, err)
}

func TestWithinWindowUsesTimeOfDayOnly(t *testing.T) {
	lateNight := time.Date(2020, 4, 5, 23, 59, 0, 0, time.UTC)

	assert.True(t, withinWindow(lateNight, tod(23, 0), nil))
	assert.False(t, withinWindow(lateNight, nil, tod(23, 0)))
	assert.True(t, withinWindow(lateNight, nil, nil))
}
