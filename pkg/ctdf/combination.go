package ctdf

// PriceItem is the fully joined record for one accommodation on one vehicle run
type PriceItem struct {
	Journey Journey

	DepartureCode string
	ArrivalCode   string

	InternalDepartureCode string
	InternalArrivalCode   string

	Timetable         Timetable
	AccommodationType string

	AdultPrice float64
	ChildPrice float64
}

// CombinationKey identifies a vehicle run
type CombinationKey struct {
	VehicleID     string
	DepartureTime string
	ArrivalTime   string
}

func (p *PriceItem) CombinationKey() CombinationKey {
	return CombinationKey{
		VehicleID:     p.Timetable.VehicleID,
		DepartureTime: p.Timetable.DepartureTime,
		ArrivalTime:   p.Timetable.ArrivalTime,
	}
}

type SearchCombination struct {
	Key CombinationKey

	From string
	To   string
	Date string

	Options []SearchOption
}

type SearchOption struct {
	AccommodationType string

	AdultPrice float64
	ChildPrice float64
	Total      float64
}
