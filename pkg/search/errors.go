package search

import (
	"errors"
	"fmt"
)

var ErrNoStations = errors.New("no stations found")

// NoStationsError aborts a search when a journey leg has no departure or no arrival stations
type NoStationsError struct {
	From string
	To   string
}

func (e *NoStationsError) Error() string {
	return fmt.Sprintf("No stations found for %q to %q", e.From, e.To)
}

func (e *NoStationsError) Is(target error) bool {
	return target == ErrNoStations
}
