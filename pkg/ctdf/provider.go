package ctdf

type Provider string

const (
	ProviderServivuelo Provider = "SERVIVUELO"
	// ProviderRenfe exists in the correlation data but has no gateway
	ProviderRenfe Provider = "RENFE"
)

type PaxType string

const (
	PaxTypeAdult    PaxType = "adult"
	PaxTypeChildren PaxType = "children"
	PaxTypeInfant   PaxType = "infant"
)

// Timetable is one scheduled run between two provider stations on a date
type Timetable struct {
	VehicleID     string `json:"shipId"`
	DepartureTime string `json:"departureDate"`
	ArrivalTime   string `json:"arrivalDate"`
}

// Accommodation is one fare class offered on a vehicle run
type Accommodation struct {
	Type         string `json:"type"`
	Availability string `json:"available"`
}
