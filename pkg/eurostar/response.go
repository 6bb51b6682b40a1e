package eurostar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nihn/eurostartrainfinder/pkg/date"
	iso8601 "github.com/senseyeio/duration"
)

type searchResponse struct {
	Outbound *direction `json:"outbound"`
	Inbound  *direction `json:"inbound"`
}

type direction struct {
	Journey []leg `json:"journey"`
}

type leg struct {
	DepartureTime *clockTime   `json:"departureTime"`
	Duration      *legDuration `json:"duration"`
	Class         []fareClass  `json:"class"`
}

type fareClass struct {
	Price *farePrice `json:"price"`
}

type farePrice struct {
	Adult *float64 `json:"adult"`
}

// adultPrice is the adult fare of the first class, if it was published
func (l *leg) adultPrice() (float64, bool) {
	if len(l.Class) == 0 || l.Class[0].Price == nil || l.Class[0].Price.Adult == nil {
		return 0, false
	}

	return *l.Class[0].Price.Adult, true
}

// clockTime is a HH:MM departure time
type clockTime date.TimeOfDay

func (c *clockTime) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("departureTime must be a HH:MM string, got %s", data)
	}

	timeOfDay, err := date.ParseTimeOfDay(text)
	if err != nil {
		return err
	}

	*c = clockTime(timeOfDay)
	return nil
}

var durationReference = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// legDuration accepts either a number of seconds or an ISO8601 duration such as PT2H37M
type legDuration time.Duration

func (d *legDuration) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		return d.setSeconds(seconds)
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("duration must be seconds or an ISO8601 string, got %s", data)
	}

	if seconds, err := strconv.ParseFloat(text, 64); err == nil {
		return d.setSeconds(seconds)
	}

	parsed, err := iso8601.ParseISO8601(text)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}

	*d = legDuration(parsed.Shift(durationReference).Sub(durationReference))
	return nil
}

func (d *legDuration) setSeconds(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("duration must not be negative, got %v seconds", seconds)
	}

	*d = legDuration(time.Duration(seconds * float64(time.Second)))
	return nil
}
