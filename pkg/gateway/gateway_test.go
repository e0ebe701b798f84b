package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

type mockTransport struct {
	timetablesFn     func(from, to, date string, adults, children int) ([]ctdf.Timetable, error)
	accommodationsFn func(vehicleID, departureTime string) ([]ctdf.Accommodation, error)
	priceFn          func(vehicleID, departureTime, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error)
}

func (m *mockTransport) GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error) {
	return m.timetablesFn(from, to, date, adults, children)
}

func (m *mockTransport) GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error) {
	return m.accommodationsFn(vehicleID, departureTime)
}

func (m *mockTransport) GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
	return m.priceFn(vehicleID, departureTime, accommodation, pax, bonus)
}

func TestGetTimetables(t *testing.T) {
	expected := []ctdf.Timetable{{VehicleID: "S1", DepartureTime: "09:00", ArrivalTime: "11:00"}}
	transport := &mockTransport{
		timetablesFn: func(from, to, date string, adults, children int) ([]ctdf.Timetable, error) {
			assert.Equal(t, "A", from)
			assert.Equal(t, "B", to)
			assert.Equal(t, "01/01/2022", date)
			assert.Equal(t, 1, adults)
			assert.Equal(t, 0, children)
			return expected, nil
		},
	}

	timetables, err := New(ctdf.ProviderServivuelo, transport).GetTimetables(context.Background(), "A", "B", "01/01/2022", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, timetables)
}

func TestGetTimetablesError(t *testing.T) {
	transport := &mockTransport{
		timetablesFn: func(from, to, date string, adults, children int) ([]ctdf.Timetable, error) {
			return nil, errors.New("timeout")
		},
	}

	_, err := New(ctdf.ProviderServivuelo, transport).GetTimetables(context.Background(), "X", "Y", "02/02/2022", 2, 1)
	require.Error(t, err)
	assert.Equal(t, "Servivuelo Timetables API error: Unable to fetch timetables for X to Y on 02/02/2022. Details: timeout", err.Error())

	var fetchError *FetchError
	require.True(t, errors.As(err, &fetchError))
	assert.Equal(t, OperationTimetables, fetchError.Operation)
}

func TestGetAccommodationsError(t *testing.T) {
	transport := &mockTransport{
		accommodationsFn: func(vehicleID, departureTime string) ([]ctdf.Accommodation, error) {
			return nil, errors.New("service down")
		},
	}

	_, err := New(ctdf.ProviderServivuelo, transport).GetAccommodations(context.Background(), "S", "10:00")
	require.Error(t, err)
	assert.Equal(t, "Servivuelo Accommodations API error: Unable to fetch accommodations for ship S on 10:00. Details: service down", err.Error())
}

func TestGetPrice(t *testing.T) {
	transport := &mockTransport{
		priceFn: func(vehicleID, departureTime, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
			assert.Equal(t, []ctdf.BonusType{ctdf.BonusTypeResident}, bonus)
			return "42", nil
		},
	}

	price, err := New(ctdf.ProviderServivuelo, transport).GetPrice(context.Background(), "123", "09:00", "Std", ctdf.PaxTypeAdult, []ctdf.BonusType{ctdf.BonusTypeResident})
	require.NoError(t, err)
	assert.Equal(t, "42", price)
}

func TestGetPriceError(t *testing.T) {
	transport := &mockTransport{
		priceFn: func(vehicleID, departureTime, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
			return "", errors.New("err")
		},
	}

	_, err := New(ctdf.ProviderServivuelo, transport).GetPrice(context.Background(), "321", "08:00", "Prem", ctdf.PaxTypeAdult, []ctdf.BonusType{ctdf.BonusTypeRetired})
	require.Error(t, err)
	assert.Equal(t, "Servivuelo Prices API error: Unable to fetch prices for ship 321 on 08:00 (accommodation Prem, pax adult). Details: err", err.Error())
}
