package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/travigo/ctsearch/pkg/ctdf"
)

// Transport is the raw provider client
type Transport interface {
	GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error)
	GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error)
	GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error)
}

const (
	OperationTimetables     = "Timetables"
	OperationAccommodations = "Accommodations"
	OperationPrices         = "Prices"
)

// FetchError carries the failed operation and request context. The transport error itself is not kept.
type FetchError struct {
	Provider  ctdf.Provider
	Operation string
	Request   string
	Detail    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf(
		"%s %s API error: Unable to fetch %s for %s. Details: %s",
		providerName(e.Provider), e.Operation, strings.ToLower(e.Operation), e.Request, e.Detail,
	)
}

func providerName(provider ctdf.Provider) string {
	name := strings.ToLower(string(provider))
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Gateway wraps a provider Transport with contextual errors. There are no retries.
type Gateway struct {
	Provider  ctdf.Provider
	Transport Transport
}

func New(provider ctdf.Provider, transport Transport) *Gateway {
	return &Gateway{Provider: provider, Transport: transport}
}

func (g *Gateway) GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error) {
	timetables, err := g.Transport.GetTimetables(ctx, from, to, date, adults, children)
	if err != nil {
		return nil, &FetchError{
			Provider:  g.Provider,
			Operation: OperationTimetables,
			Request:   fmt.Sprintf("%s to %s on %s", from, to, date),
			Detail:    err.Error(),
		}
	}

	return timetables, nil
}

func (g *Gateway) GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error) {
	accommodations, err := g.Transport.GetAccommodations(ctx, vehicleID, departureTime)
	if err != nil {
		return nil, &FetchError{
			Provider:  g.Provider,
			Operation: OperationAccommodations,
			Request:   fmt.Sprintf("ship %s on %s", vehicleID, departureTime),
			Detail:    err.Error(),
		}
	}

	return accommodations, nil
}

func (g *Gateway) GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
	price, err := g.Transport.GetPrice(ctx, vehicleID, departureTime, accommodation, pax, bonus)
	if err != nil {
		return "", &FetchError{
			Provider:  g.Provider,
			Operation: OperationPrices,
			Request:   fmt.Sprintf("ship %s on %s (accommodation %s, pax %s)", vehicleID, departureTime, accommodation, pax),
			Detail:    err.Error(),
		}
	}

	return price, nil
}
