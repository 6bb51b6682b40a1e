package util

import (
	"time"
)

// AddTimeToDate places a time-of-day offset (time since midnight) onto the calendar day of date
func AddTimeToDate(date time.Time, sinceMidnight time.Duration) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return midnight.Add(sinceMidnight)
}
