package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStationCorrelationProviderCode(t *testing.T) {
	correlation := StationCorrelation{
		Code:      "MAD01",
		Suppliers: []string{"RENFE#60000", "SERVIVUELO#MAD#1"},
	}

	code, found := correlation.ProviderCode(ProviderServivuelo)
	assert.True(t, found)
	assert.Equal(t, "MAD#1", code)

	_, found = (&StationCorrelation{Code: "X"}).ProviderCode(ProviderServivuelo)
	assert.False(t, found)
}

func TestQueryProviderStationCorrelation(t *testing.T) {
	query := QueryProviderStationCorrelation{Provider: ProviderServivuelo, ProviderCode: "BCN"}

	assert.Equal(t, bson.M{"suppliers": "SERVIVUELO#BCN"}, query.ToBson())
}

func TestPriceItemCombinationKey(t *testing.T) {
	item := PriceItem{Timetable: Timetable{VehicleID: "S1", DepartureTime: "09:00", ArrivalTime: "11:00"}}

	assert.Equal(t, CombinationKey{VehicleID: "S1", DepartureTime: "09:00", ArrivalTime: "11:00"}, item.CombinationKey())
}
