package traveldates

import (
	"errors"
	"fmt"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	iso8601 "github.com/senseyeio/duration"
)

var ErrNoFeasibleWindow = errors.New("no travel dates fit between the since and until dates")

// DatePair is one candidate round trip
type DatePair struct {
	Outbound time.Time
	Inbound  time.Time
}

func (p DatePair) String() string {
	return fmt.Sprintf("%s -> %s", p.Outbound.Format(date.UserFormat), p.Inbound.Format(date.UserFormat))
}

// Enumerate lists every outbound/inbound pair that starts on or after from
// and returns on or before until, with stay days between the two.
// When weekday is set only outbound dates falling on it are used.
// ErrNoFeasibleWindow is returned when not even the first candidate fits;
// callers still treat an empty result as "no matching dates".
func Enumerate(from time.Time, until time.Time, stay int, weekday *time.Weekday) ([]DatePair, error) {
	from = date.Truncate(from)
	until = date.Truncate(until)

	stayDuration := iso8601.Duration{D: stay}
	step := iso8601.Duration{D: 1}

	outbound := from
	if weekday != nil {
		for outbound.Weekday() != *weekday {
			outbound = step.Shift(outbound)
		}

		step = iso8601.Duration{W: 1}
	}

	inbound := stayDuration.Shift(outbound)
	if inbound.After(until) {
		return nil, fmt.Errorf("%w: first return date %s is after %s",
			ErrNoFeasibleWindow, inbound.Format(date.UserFormat), until.Format(date.UserFormat))
	}

	var pairs []DatePair

	for !inbound.After(until) {
		pairs = append(pairs, DatePair{
			Outbound: outbound,
			Inbound:  inbound,
		})

		outbound = step.Shift(outbound)
		inbound = stayDuration.Shift(outbound)
	}

	return pairs, nil
}
