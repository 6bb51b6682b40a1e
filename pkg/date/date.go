// Package date holds the date, weekday, stay length and time-of-day parsing
// used to turn user input into search constraints.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const (
	UserFormat   = "2006-01-02"
	TimeFormat   = "15:04"
	Now          = "now"
	PlusTwoWeeks = "+2 weeks"
)

var (
	ErrDateSyntax          = errors.New("invalid date")
	ErrDateInPast          = errors.New("date is in the past")
	ErrInvalidWeekday      = errors.New("invalid weekday name")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrNonPositiveDuration = errors.New("duration must be at least 1 day")
	ErrTimeSyntax          = errors.New("invalid time")
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Today is the current UTC calendar date
func Today() time.Time {
	return Truncate(time.Now().UTC())
}

// Truncate drops the time-of-day and zone so that dates compare as calendar days
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate resolves a user supplied date against today's date.
func ParseDate(text string) (time.Time, error) {
	return ParseDateAt(text, Today())
}

// ParseDateAt is ParseDate with an explicit "today".
// "now" and "+2 weeks" are accepted as well as YYYY-MM-DD literals, which must not be in the past.
func ParseDateAt(text string, today time.Time) (time.Time, error) {
	today = Truncate(today)

	switch text {
	case Now:
		return today, nil
	case PlusTwoWeeks:
		twoWeeks := iso8601.Duration{W: 2}
		return twoWeeks.Shift(today), nil
	}

	parsed, err := time.Parse(UserFormat, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrDateSyntax, text)
	}

	if parsed.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateInPast, parsed.Format(UserFormat))
	}

	return parsed, nil
}

// ParseWeekday accepts a full English weekday name in any case
func ParseWeekday(text string) (time.Weekday, error) {
	weekday, ok := weekdays[strings.ToLower(text)]
	if !ok {
		return time.Sunday, fmt.Errorf("%w: %s", ErrInvalidWeekday, text)
	}

	return weekday, nil
}

// ParseDuration converts a number of travel days into the number of days
// between outbound and inbound, so Friday to Sunday ("3") becomes 2.
func ParseDuration(text string) (int, error) {
	days, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	if days < 1 {
		return 0, fmt.Errorf("%w, got %d", ErrNonPositiveDuration, days)
	}

	return int(days - 1), nil
}
