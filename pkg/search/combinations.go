package search

import (
	"github.com/travigo/ctsearch/pkg/ctdf"
)

// BuildCombinations groups price items by vehicle run, in the order runs are first seen
func BuildCombinations(items []ctdf.PriceItem, passenger ctdf.Passenger) []*ctdf.SearchCombination {
	combinations := map[ctdf.CombinationKey]*ctdf.SearchCombination{}
	var ordered []*ctdf.SearchCombination

	for _, item := range items {
		key := item.CombinationKey()

		combination, exists := combinations[key]
		if !exists {
			combination = &ctdf.SearchCombination{
				Key:  key,
				From: item.InternalDepartureCode,
				To:   item.InternalArrivalCode,
				Date: item.Journey.Date,
			}
			combinations[key] = combination
			ordered = append(ordered, combination)
		}

		combination.Options = append(combination.Options, ctdf.SearchOption{
			AccommodationType: item.AccommodationType,
			AdultPrice:        item.AdultPrice,
			ChildPrice:        item.ChildPrice,
			Total:             CalculateTotalPrice(item.AdultPrice, item.ChildPrice, passenger.Adults, passenger.Children),
		})
	}

	return ordered
}
