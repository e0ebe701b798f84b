package ctdf

import "strings"

// DestinationTreeRecord is one row of the station hierarchy index
type DestinationTreeRecord struct {
	DestinationCode string `bson:"destinationCode" csv:"destination_code"`
	DestinationTree string `bson:"destinationTree" csv:"destination_tree"`
	ArrivalCode     string `bson:"arrivalCode" csv:"arrival_code"`
	ArrivalTree     string `bson:"arrivalTree" csv:"arrival_tree"`
}

// StationCorrelation maps an internal station code to its provider#code references
type StationCorrelation struct {
	Code      string   `bson:"code"`
	Suppliers []string `bson:"suppliers"`
}

// ProviderCode returns the code the given provider uses for this station
func (s *StationCorrelation) ProviderCode(provider Provider) (string, bool) {
	prefix := string(provider) + "#"

	for _, supplier := range s.Suppliers {
		if strings.HasPrefix(supplier, prefix) {
			return strings.TrimPrefix(supplier, prefix), true
		}
	}

	return "", false
}
