package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/util"
	"golang.org/x/exp/slices"
)

const requestDateFormat = "2006-01-02"

// ValidationError lists every problem found in a search request
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid search parameters - %s", strings.Join(e.Problems, " | "))
}

type searchRequest struct {
	Journeys  []journeyRequest  `json:"journeys"`
	Passenger *passengerRequest `json:"passenger"`
	Bonus     []ctdf.BonusType  `json:"bonus"`
}

type journeyRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

type passengerRequest struct {
	Adults   *int `json:"adults"`
	Children *int `json:"children"`
	Total    *int `json:"total"`
}

// ParseSearchParameters decodes and validates a raw search request.
// Unknown fields are rejected and journey dates are converted from YYYY-MM-DD to DD/MM/YYYY.
func ParseSearchParameters(body []byte) (*ctdf.SearchParameters, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	var request searchRequest
	if err := decoder.Decode(&request); err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("malformed request body: %s", err)}}
	}
	if decoder.More() {
		return nil, &ValidationError{Problems: []string{"malformed request body: unexpected data after object"}}
	}

	var problems []string
	params := &ctdf.SearchParameters{
		Journeys: []ctdf.Journey{},
		Bonus:    []ctdf.BonusType{},
	}

	if len(request.Journeys) == 0 {
		problems = append(problems, "journeys: at least one journey required")
	}

	for i, journey := range request.Journeys {
		if journey.From == "" {
			problems = append(problems, fmt.Sprintf("journeys[%d].from: required", i))
		}
		if journey.To == "" {
			problems = append(problems, fmt.Sprintf("journeys[%d].to: required", i))
		}

		date, err := time.Parse(requestDateFormat, journey.Date)
		if err != nil {
			problems = append(problems, fmt.Sprintf("journeys[%d].date: Date must be YYYY-MM-DD", i))
		}

		params.Journeys = append(params.Journeys, ctdf.Journey{
			From: journey.From,
			To:   journey.To,
			Date: date.Format(util.DisplayDateFormat),
		})
	}

	if request.Passenger == nil {
		problems = append(problems, "passenger: required")
	} else {
		passenger := request.Passenger

		if passenger.Adults == nil || *passenger.Adults < 1 {
			problems = append(problems, "passenger.adults: At least one adult required")
		} else {
			params.Passenger.Adults = *passenger.Adults
		}

		if passenger.Children != nil {
			if *passenger.Children < 0 {
				problems = append(problems, "passenger.children: must not be negative")
			} else {
				params.Passenger.Children = *passenger.Children
			}
		}

		if passenger.Total == nil || *passenger.Total < 1 {
			problems = append(problems, "passenger.total: must be at least 1")
		} else {
			params.Passenger.Total = *passenger.Total
		}
	}

	if len(request.Bonus) > 1 {
		problems = append(problems, "bonus: at most one bonus allowed")
	}
	for _, bonus := range request.Bonus {
		if !slices.Contains(ctdf.BonusTypes, bonus) {
			problems = append(problems, fmt.Sprintf("bonus: unknown bonus type %q", bonus))
		}
	}
	params.Bonus = append(params.Bonus, request.Bonus...)

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return params, nil
}
