package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

func TestParseSearchParameters(t *testing.T) {
	body := `{
		"journeys": [
			{"from": "MAD", "to": "BCN", "date": "2026-10-15"},
			{"from": "BCN", "to": "MAD", "date": "2026-10-18"}
		],
		"passenger": {"adults": 2, "children": 1, "total": 3},
		"bonus": ["resident"]
	}`

	params, err := ParseSearchParameters([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, &ctdf.SearchParameters{
		Journeys: []ctdf.Journey{
			{From: "MAD", To: "BCN", Date: "15/10/2026"},
			{From: "BCN", To: "MAD", Date: "18/10/2026"},
		},
		Passenger: ctdf.Passenger{Adults: 2, Children: 1, Total: 3},
		Bonus:     []ctdf.BonusType{ctdf.BonusTypeResident},
	}, params)
}

func TestParseSearchParametersDefaults(t *testing.T) {
	body := `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "total": 1}}`

	params, err := ParseSearchParameters([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, 0, params.Passenger.Children)
	assert.Equal(t, []ctdf.BonusType{}, params.Bonus)
}

func TestParseSearchParametersInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		problem string
	}{
		{"NoJourneys", `{"journeys": [], "passenger": {"adults": 1, "total": 1}}`, "journeys: at least one journey required"},
		{"BadDate", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "15/10/2026"}], "passenger": {"adults": 1, "total": 1}}`, "journeys[0].date: Date must be YYYY-MM-DD"},
		{"MissingFrom", `{"journeys": [{"to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "total": 1}}`, "journeys[0].from: required"},
		{"NoAdults", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 0, "total": 1}}`, "passenger.adults: At least one adult required"},
		{"NegativeChildren", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "children": -1, "total": 1}}`, "passenger.children: must not be negative"},
		{"MissingPassenger", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}]}`, "passenger: required"},
		{"TwoBonuses", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "total": 1}, "bonus": ["retired", "resident"]}`, "bonus: at most one bonus allowed"},
		{"UnknownBonus", `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "total": 1}, "bonus": ["student"]}`, `bonus: unknown bonus type "student"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := ParseSearchParameters([]byte(test.body))
			assert.Nil(t, params)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Problems, test.problem)
		})
	}
}

func TestParseSearchParametersRejectsUnknownFields(t *testing.T) {
	body := `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1, "total": 1}, "class": "first"}`

	_, err := ParseSearchParameters([]byte(body))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "Invalid search parameters - malformed request body")
}

func TestParseSearchParametersRejectsFractionalCounts(t *testing.T) {
	body := `{"journeys": [{"from": "MAD", "to": "BCN", "date": "2026-10-15"}], "passenger": {"adults": 1.5, "total": 1}}`

	_, err := ParseSearchParameters([]byte(body))
	assert.Error(t, err)
}
