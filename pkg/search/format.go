package search

import (
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

// FormatResult turns one combination into the CTSearch returned to clients and persisted
func FormatResult(combination *ctdf.SearchCombination, params *ctdf.SearchParameters) (*ctdf.CTSearch, error) {
	duration, err := CalculateDuration(combination.Date, combination.Key.DepartureTime, combination.Key.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("duration of %s: %w", combination.Key.VehicleID, err)
	}

	var parameters ctdf.SearchParameters
	if err := copier.CopyWithOption(&parameters, params, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy search parameters: %w", err)
	}

	passengers := ctdf.CTSearchPassengers{
		Adults:   strconv.Itoa(params.Passenger.Adults),
		Children: strconv.Itoa(params.Passenger.Children),
	}

	options := make([]ctdf.CTSearchOption, 0, len(combination.Options))
	for _, option := range combination.Options {
		options = append(options, ctdf.CTSearchOption{
			Accommodation: ctdf.CTSearchAccommodation{
				Type:       option.AccommodationType,
				Passengers: passengers,
			},
			Price: ctdf.CTSearchPrice{
				Total: option.Total,
				Breakdown: ctdf.CTSearchPriceBreakdown{
					Adult:    option.AdultPrice,
					Children: option.ChildPrice,
				},
			},
		})
	}

	return &ctdf.CTSearch{
		Parameters: parameters,
		Train: ctdf.CTSearchTrain{
			Type: DetectTripType(params.Journeys),
			Journeys: []ctdf.CTSearchJourney{
				{
					Departure: ctdf.CTSearchStopTime{
						Date:    combination.Date,
						Time:    combination.Key.DepartureTime,
						Station: combination.From,
					},
					Arrival: ctdf.CTSearchStopTime{
						Date:    combination.Date,
						Time:    combination.Key.ArrivalTime,
						Station: combination.To,
					},
					Duration: duration,
				},
			},
			Options: options,
		},
	}, nil
}
