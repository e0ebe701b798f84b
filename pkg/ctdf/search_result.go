package ctdf

import "time"

type TripType string

const (
	TripTypeOneway           TripType = "oneway"
	TripTypeRoundtrip        TripType = "roundtrip"
	TripTypeMultidestination TripType = "multidestination"
)

// CTSearch is the externally visible result for one vehicle run
type CTSearch struct {
	CreationDateTime time.Time `json:"-" bson:"creationdatetime" groups:"internal"`

	Parameters SearchParameters `json:"parameters" bson:"parameters" groups:"basic"`
	Train      CTSearchTrain    `json:"train" bson:"train" groups:"basic"`
}

type CTSearchTrain struct {
	Type     TripType          `json:"type" bson:"type" groups:"basic"`
	Journeys []CTSearchJourney `json:"journeys" bson:"journeys" groups:"basic"`
	Options  []CTSearchOption  `json:"options" bson:"options" groups:"basic"`
}

type CTSearchJourney struct {
	Departure CTSearchStopTime `json:"departure" bson:"departure" groups:"basic"`
	Arrival   CTSearchStopTime `json:"arrival" bson:"arrival" groups:"basic"`
	Duration  Duration         `json:"duration" bson:"duration" groups:"basic"`
}

type CTSearchStopTime struct {
	Date    string `json:"date" bson:"date" groups:"basic"`
	Time    string `json:"time" bson:"time" groups:"basic"`
	Station string `json:"station" bson:"station" groups:"basic"`
}

type Duration struct {
	Hours   int `json:"hours" bson:"hours" groups:"basic"`
	Minutes int `json:"minutes" bson:"minutes" groups:"basic"`
}

type CTSearchOption struct {
	Accommodation CTSearchAccommodation `json:"accommodation" bson:"accommodation" groups:"basic"`
	Price         CTSearchPrice         `json:"price" bson:"price" groups:"basic"`
}

type CTSearchAccommodation struct {
	Type       string             `json:"type" bson:"type" groups:"basic"`
	Passengers CTSearchPassengers `json:"passengers" bson:"passengers" groups:"basic"`
}

type CTSearchPassengers struct {
	Adults   string `json:"adults" bson:"adults" groups:"basic"`
	Children string `json:"children" bson:"children" groups:"basic"`
}

type CTSearchPrice struct {
	Total     float64                `json:"total" bson:"total" groups:"basic"`
	Breakdown CTSearchPriceBreakdown `json:"breakdown" bson:"breakdown" groups:"basic"`
}

type CTSearchPriceBreakdown struct {
	Adult    float64 `json:"adult" bson:"adult" groups:"basic"`
	Children float64 `json:"children" bson:"children" groups:"basic"`
}
