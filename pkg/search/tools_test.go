package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		expected  ctdf.Duration
	}{
		{"SameDay", "08:00", "10:30", ctdf.Duration{Hours: 2, Minutes: 30}},
		{"Overnight", "23:30", "01:15", ctdf.Duration{Hours: 1, Minutes: 45}},
		{"Zero", "12:00", "12:00", ctdf.Duration{Hours: 0, Minutes: 0}},
		{"Minutes", "09:10", "09:55", ctdf.Duration{Hours: 0, Minutes: 45}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			duration, err := CalculateDuration("15/10/2026", test.departure, test.arrival)
			require.NoError(t, err)
			assert.Equal(t, test.expected, duration)
		})
	}
}

func TestCalculateDurationInvalidTime(t *testing.T) {
	_, err := CalculateDuration("15/10/2026", "8am", "10:30")
	assert.Error(t, err)
}

func TestCalculateTotalPrice(t *testing.T) {
	assert.Equal(t, float64(125), CalculateTotalPrice(50, 25, 2, 1))
	assert.Equal(t, float64(50), CalculateTotalPrice(50, 0, 1, 0))
}

func TestDetectTripType(t *testing.T) {
	outbound := ctdf.Journey{From: "MAD", To: "BCN", Date: "15/10/2026"}
	inbound := ctdf.Journey{From: "BCN", To: "MAD", Date: "18/10/2026"}
	onward := ctdf.Journey{From: "BCN", To: "VLC", Date: "18/10/2026"}

	assert.Equal(t, ctdf.TripTypeOneway, DetectTripType([]ctdf.Journey{outbound}))
	assert.Equal(t, ctdf.TripTypeRoundtrip, DetectTripType([]ctdf.Journey{outbound, inbound}))
	assert.Equal(t, ctdf.TripTypeMultidestination, DetectTripType([]ctdf.Journey{outbound, onward}))
	assert.Equal(t, ctdf.TripTypeMultidestination, DetectTripType([]ctdf.Journey{outbound, inbound, onward}))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 42.5, ParsePrice("42.5"))
	assert.Equal(t, float64(30), ParsePrice(" 30 "))
	assert.Equal(t, float64(0), ParsePrice(""))
	assert.Equal(t, float64(0), ParsePrice("free"))
	assert.Equal(t, float64(0), ParsePrice("NaN"))
}

func TestBuildCombinations(t *testing.T) {
	journey := ctdf.Journey{From: "MAD", To: "BCN", Date: "15/10/2026"}
	first := ctdf.Timetable{VehicleID: "AVE01", DepartureTime: "08:00", ArrivalTime: "10:30"}
	second := ctdf.Timetable{VehicleID: "AVE02", DepartureTime: "09:00", ArrivalTime: "11:30"}

	items := []ctdf.PriceItem{
		{Journey: journey, InternalDepartureCode: "MAD", InternalArrivalCode: "BCN", Timetable: first, AccommodationType: "Turista", AdultPrice: 50, ChildPrice: 20},
		{Journey: journey, InternalDepartureCode: "MAD", InternalArrivalCode: "BCN", Timetable: second, AccommodationType: "Turista", AdultPrice: 40, ChildPrice: 10},
		{Journey: journey, InternalDepartureCode: "MAD", InternalArrivalCode: "BCN", Timetable: first, AccommodationType: "Preferente", AdultPrice: 90, ChildPrice: 30},
	}

	combinations := BuildCombinations(items, ctdf.Passenger{Adults: 1, Children: 2, Total: 3})
	require.Len(t, combinations, 2)

	assert.Equal(t, "AVE01", combinations[0].Key.VehicleID)
	assert.Equal(t, "MAD", combinations[0].From)
	assert.Equal(t, "BCN", combinations[0].To)
	assert.Equal(t, "15/10/2026", combinations[0].Date)
	require.Len(t, combinations[0].Options, 2)
	assert.Equal(t, "Turista", combinations[0].Options[0].AccommodationType)
	assert.Equal(t, float64(90), combinations[0].Options[0].Total)
	assert.Equal(t, "Preferente", combinations[0].Options[1].AccommodationType)
	assert.Equal(t, float64(150), combinations[0].Options[1].Total)

	assert.Equal(t, "AVE02", combinations[1].Key.VehicleID)
	require.Len(t, combinations[1].Options, 1)
	assert.Equal(t, float64(60), combinations[1].Options[0].Total)
}

func TestFormatResultDoesNotShareParameters(t *testing.T) {
	params := &ctdf.SearchParameters{
		Journeys:  []ctdf.Journey{{From: "MAD", To: "BCN", Date: "15/10/2026"}},
		Passenger: ctdf.Passenger{Adults: 1, Total: 1},
		Bonus:     []ctdf.BonusType{ctdf.BonusTypeResident},
	}
	combination := &ctdf.SearchCombination{
		Key:  ctdf.CombinationKey{VehicleID: "AVE01", DepartureTime: "08:00", ArrivalTime: "10:30"},
		From: "MAD",
		To:   "BCN",
		Date: "15/10/2026",
	}

	result, err := FormatResult(combination, params)
	require.NoError(t, err)

	result.Parameters.Journeys[0].From = "XXX"
	result.Parameters.Bonus[0] = ctdf.BonusTypeLargeFamily

	assert.Equal(t, "MAD", params.Journeys[0].From)
	assert.Equal(t, ctdf.BonusTypeResident, params.Bonus[0])
	assert.Empty(t, result.Train.Options)
}
