package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/util"
)

type StationResolver interface {
	ResolveDeparture(ctx context.Context, code string) ([]string, error)
	ResolveArrival(ctx context.Context, code string) ([]string, error)
}

type CodeMapper interface {
	ToProviderCode(ctx context.Context, provider ctdf.Provider, internalCode string) (string, bool, error)
	ToInternalCode(ctx context.Context, provider ctdf.Provider, providerCode string) (string, bool, error)
}

type Provider interface {
	GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error)
	GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error)
	GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error)
}

type ResultSink interface {
	SaveResults(ctx context.Context, results []*ctdf.CTSearch) error
}

type EventPublisher interface {
	PublishSearchResults(results []*ctdf.CTSearch) error
}

// Pipeline runs a train search against a single provider
type Pipeline struct {
	ProviderName ctdf.Provider

	Stations StationResolver
	Mapper   CodeMapper
	Provider Provider
	Results  ResultSink
	Events   EventPublisher
}

type stationPair struct {
	departure string
	arrival   string
}

type timetableRecord struct {
	departureCode string
	arrivalCode   string

	internalDepartureCode string
	internalArrivalCode   string

	timetable ctdf.Timetable
}

type accommodationRecord struct {
	timetableRecord
	accommodationType string
}

// Search resolves every journey leg, prices every reachable accommodation and persists one result per vehicle run.
// Any failure aborts the whole search and nothing is persisted.
func (p *Pipeline) Search(ctx context.Context, params *ctdf.SearchParameters) ([]*ctdf.CTSearch, error) {
	var priceItems []ctdf.PriceItem

	for _, journey := range params.Journeys {
		items, err := p.searchJourney(ctx, params, journey)
		if err != nil {
			return nil, err
		}

		priceItems = append(priceItems, items...)
	}

	combinations := BuildCombinations(priceItems, params.Passenger)

	results := make([]*ctdf.CTSearch, 0, len(combinations))
	for _, combination := range combinations {
		result, err := FormatResult(combination, params)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	if len(results) > 0 {
		if err := p.Results.SaveResults(ctx, results); err != nil {
			return nil, fmt.Errorf("save search results: %w", err)
		}

		if p.Events != nil {
			if err := p.Events.PublishSearchResults(results); err != nil {
				log.Error().Err(err).Msg("Failed to publish search result events")
			}
		}
	}

	log.Debug().
		Int("journeys", len(params.Journeys)).
		Int("items", len(priceItems)).
		Int("results", len(results)).
		Msg("Search complete")

	return results, nil
}

func (p *Pipeline) searchJourney(ctx context.Context, params *ctdf.SearchParameters, journey ctdf.Journey) ([]ctdf.PriceItem, error) {
	departures, err := p.Stations.ResolveDeparture(ctx, journey.From)
	if err != nil {
		return nil, err
	}

	arrivals, err := p.Stations.ResolveArrival(ctx, journey.To)
	if err != nil {
		return nil, err
	}

	if len(departures) == 0 || len(arrivals) == 0 {
		return nil, &NoStationsError{From: journey.From, To: journey.To}
	}

	providerDepartures, err := p.providerCodes(ctx, departures)
	if err != nil {
		return nil, err
	}

	providerArrivals, err := p.providerCodes(ctx, arrivals)
	if err != nil {
		return nil, err
	}

	var pairs []stationPair
	for _, departure := range providerDepartures {
		for _, arrival := range providerArrivals {
			pairs = append(pairs, stationPair{departure: departure, arrival: arrival})
		}
	}

	timetables, err := p.fetchTimetables(ctx, params, journey, pairs)
	if err != nil {
		return nil, err
	}

	accommodations, err := p.fetchAccommodations(ctx, timetables)
	if err != nil {
		return nil, err
	}

	return p.fetchPrices(ctx, params, journey, accommodations)
}

// providerCodes maps internal station codes to the provider, dropping the ones it doesn't serve
func (p *Pipeline) providerCodes(ctx context.Context, internalCodes []string) ([]string, error) {
	type mapping struct {
		code  string
		found bool
	}

	mappings, err := fanOut(ctx, internalCodes, func(ctx context.Context, internalCode string) (mapping, error) {
		code, found, err := p.Mapper.ToProviderCode(ctx, p.ProviderName, internalCode)
		return mapping{code: code, found: found}, err
	})
	if err != nil {
		return nil, err
	}

	util.InPlaceFilter(&mappings, func(m mapping) bool {
		return m.found
	})

	codes := make([]string, 0, len(mappings))
	for _, m := range mappings {
		codes = append(codes, m.code)
	}

	return codes, nil
}

func (p *Pipeline) fetchTimetables(ctx context.Context, params *ctdf.SearchParameters, journey ctdf.Journey, pairs []stationPair) ([]timetableRecord, error) {
	groups, err := fanOut(ctx, pairs, func(ctx context.Context, pair stationPair) ([]timetableRecord, error) {
		timetables, err := p.Provider.GetTimetables(ctx, pair.departure, pair.arrival, journey.Date, params.Passenger.Adults, params.Passenger.Children)
		if err != nil {
			return nil, err
		}

		internalCodes, err := fanOut(ctx, []string{pair.departure, pair.arrival}, func(ctx context.Context, providerCode string) (string, error) {
			code, found, err := p.Mapper.ToInternalCode(ctx, p.ProviderName, providerCode)
			if !found {
				code = ""
			}
			return code, err
		})
		if err != nil {
			return nil, err
		}

		if internalCodes[0] == "" || internalCodes[1] == "" {
			log.Debug().
				Str("departure", pair.departure).
				Str("arrival", pair.arrival).
				Msg("Skipping station pair without internal codes")
			return nil, nil
		}

		records := make([]timetableRecord, 0, len(timetables))
		for _, timetable := range timetables {
			records = append(records, timetableRecord{
				departureCode:         pair.departure,
				arrivalCode:           pair.arrival,
				internalDepartureCode: internalCodes[0],
				internalArrivalCode:   internalCodes[1],
				timetable:             timetable,
			})
		}

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return flatten(groups), nil
}

func (p *Pipeline) fetchAccommodations(ctx context.Context, timetables []timetableRecord) ([]accommodationRecord, error) {
	groups, err := fanOut(ctx, timetables, func(ctx context.Context, record timetableRecord) ([]accommodationRecord, error) {
		accommodations, err := p.Provider.GetAccommodations(ctx, record.timetable.VehicleID, record.timetable.DepartureTime)
		if err != nil {
			return nil, err
		}

		records := make([]accommodationRecord, 0, len(accommodations))
		for _, accommodation := range accommodations {
			records = append(records, accommodationRecord{
				timetableRecord:   record,
				accommodationType: accommodation.Type,
			})
		}

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return flatten(groups), nil
}

func (p *Pipeline) fetchPrices(ctx context.Context, params *ctdf.SearchParameters, journey ctdf.Journey, accommodations []accommodationRecord) ([]ctdf.PriceItem, error) {
	return fanOut(ctx, accommodations, func(ctx context.Context, record accommodationRecord) (ctdf.PriceItem, error) {
		timetable := record.timetable

		adultPrice, err := p.Provider.GetPrice(ctx, timetable.VehicleID, timetable.DepartureTime, record.accommodationType, ctdf.PaxTypeAdult, params.Bonus)
		if err != nil {
			return ctdf.PriceItem{}, err
		}

		var childPrice float64
		if params.Passenger.Children > 0 {
			rawChildPrice, err := p.Provider.GetPrice(ctx, timetable.VehicleID, timetable.DepartureTime, record.accommodationType, ctdf.PaxTypeChildren, nil)
			if err != nil {
				return ctdf.PriceItem{}, err
			}

			childPrice = ParsePrice(rawChildPrice)
		}

		return ctdf.PriceItem{
			Journey:               journey,
			DepartureCode:         record.departureCode,
			ArrivalCode:           record.arrivalCode,
			InternalDepartureCode: record.internalDepartureCode,
			InternalArrivalCode:   record.internalArrivalCode,
			Timetable:             timetable,
			AccommodationType:     record.accommodationType,
			AdultPrice:            ParsePrice(adultPrice),
			ChildPrice:            childPrice,
		}, nil
	})
}
