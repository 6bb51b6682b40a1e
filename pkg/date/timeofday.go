package date

import (
	"fmt"
	"time"
)

// TimeOfDay is the offset of a moment from midnight
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayOf returns the wall-clock part of t
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute()) +
		TimeOfDay(time.Duration(t.Second())*time.Second+time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay parses a HH:MM string
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	parsed, err := time.Parse(TimeFormat, text)
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected HH:MM", ErrTimeSyntax, text)
	}

	return NewTimeOfDay(parsed.Hour(), parsed.Minute()), nil
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
