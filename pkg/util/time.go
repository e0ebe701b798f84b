package util

import (
	"fmt"
	"time"
)

const (
	DisplayDateFormat = "02/01/2006"
	ClockTimeFormat   = "15:04"
)

func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}

// ParseClockOnDate parses a DD/MM/YYYY date and a HH:mm clock time into a single UTC instant
func ParseClockOnDate(date string, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(DisplayDateFormat, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	clockTime, err := time.ParseInLocation(ClockTimeFormat, clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", clock, err)
	}

	return AddTimeToDate(day, clockTime), nil
}
