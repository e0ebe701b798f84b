package search

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/util"
)

// CalculateDuration measures departure to arrival on the same date, rolling the arrival to the next day when it is earlier
func CalculateDuration(date string, departureTime string, arrivalTime string) (ctdf.Duration, error) {
	departure, err := util.ParseClockOnDate(date, departureTime)
	if err != nil {
		return ctdf.Duration{}, err
	}

	arrival, err := util.ParseClockOnDate(date, arrivalTime)
	if err != nil {
		return ctdf.Duration{}, err
	}

	if arrival.Before(departure) {
		arrival = arrival.AddDate(0, 0, 1)
	}

	totalMinutes := int(arrival.Sub(departure).Minutes())

	return ctdf.Duration{
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}, nil
}

func CalculateTotalPrice(adultPrice float64, childPrice float64, adults int, children int) float64 {
	return adultPrice*float64(adults) + childPrice*float64(children)
}

func DetectTripType(journeys []ctdf.Journey) ctdf.TripType {
	if len(journeys) == 1 {
		return ctdf.TripTypeOneway
	}

	if len(journeys) == 2 && journeys[0].From == journeys[1].To && journeys[0].To == journeys[1].From {
		return ctdf.TripTypeRoundtrip
	}

	return ctdf.TripTypeMultidestination
}

// ParsePrice reads a provider price. Anything that isn't a finite number counts as 0.
func ParsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		log.Warn().Str("price", raw).Msg("Unreadable provider price, using 0")
		return 0
	}

	return price
}
