package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockOnDate(t *testing.T) {
	instant, err := ParseClockOnDate("01/02/2022", "09:45")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2022, time.February, 1, 9, 45, 0, 0, time.UTC), instant)
}

func TestParseClockOnDateInvalid(t *testing.T) {
	_, err := ParseClockOnDate("2022-02-01", "09:45")
	assert.Error(t, err)

	_, err = ParseClockOnDate("01/02/2022", "9h45")
	assert.Error(t, err)
}

func TestRemoveDuplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"MAD", "BCN"}, RemoveDuplicateStrings([]string{"MAD", "", "BCN", "MAD"}, nil))
	assert.Equal(t, []string{"BCN"}, RemoveDuplicateStrings([]string{"MAD", "BCN"}, []string{"MAD"}))
}

func TestInPlaceFilter(t *testing.T) {
	codes := []string{"A", "", "B", ""}
	InPlaceFilter(&codes, func(code string) bool { return code != "" })

	assert.Equal(t, []string{"A", "B"}, codes)
}
