package ctdf

type Journey struct {
	From string `json:"from" bson:"from" groups:"basic"`
	To   string `json:"to" bson:"to" groups:"basic"`
	// Date is in DD/MM/YYYY once validated
	Date string `json:"date" bson:"date" groups:"basic"`
}

type Passenger struct {
	Adults   int `json:"adults" bson:"adults" groups:"basic"`
	Children int `json:"children" bson:"children" groups:"basic"`
	Total    int `json:"total" bson:"total" groups:"basic"`
}

type BonusType string

const (
	BonusTypeRetired     BonusType = "retired"
	BonusTypeResident    BonusType = "resident"
	BonusTypeLargeFamily BonusType = "largefamily"
)

var BonusTypes = []BonusType{BonusTypeRetired, BonusTypeResident, BonusTypeLargeFamily}

// SearchParameters is the validated search request. It is not modified once built.
type SearchParameters struct {
	Journeys  []Journey   `json:"journeys" bson:"journeys" groups:"basic"`
	Passenger Passenger   `json:"passenger" bson:"passenger" groups:"basic"`
	Bonus     []BonusType `json:"bonus" bson:"bonus" groups:"basic"`
}
