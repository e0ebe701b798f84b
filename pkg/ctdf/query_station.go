package ctdf

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// QueryDepartureStations matches destination tree records by station code or by grouping code
type QueryDepartureStations struct {
	Code string
}

func (s *QueryDepartureStations) ToBson() bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"destinationTree": s.Code},
			bson.M{"destinationCode": s.Code},
		},
	}
}

type QueryArrivalStations struct {
	Code string
}

func (s *QueryArrivalStations) ToBson() bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"arrivalTree": s.Code},
			bson.M{"arrivalCode": s.Code},
		},
	}
}

type QueryStationCorrelation struct {
	Code string
}

func (s *QueryStationCorrelation) ToBson() bson.M {
	return bson.M{"code": s.Code}
}

type QueryProviderStationCorrelation struct {
	Provider     Provider
	ProviderCode string
}

func (s *QueryProviderStationCorrelation) ToBson() bson.M {
	return bson.M{"suppliers": ProviderStationReference(s.Provider, s.ProviderCode)}
}

// ProviderStationReference builds the provider#code form stored in the correlation table
func ProviderStationReference(provider Provider, code string) string {
	return fmt.Sprintf("%s#%s", provider, code)
}
