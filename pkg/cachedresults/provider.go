package cachedresults

import (
	"context"

	"github.com/travigo/ctsearch/pkg/ctdf"
)

// ProviderSource is the provider gateway being cached
type ProviderSource interface {
	GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error)
	GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error)
	GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error)
}

// CachedProvider puts the cache in front of every provider fetch
type CachedProvider struct {
	Cache  *Cache
	Source ProviderSource
}

func NewCachedProvider(cache *Cache, source ProviderSource) *CachedProvider {
	return &CachedProvider{Cache: cache, Source: source}
}

func (p *CachedProvider) GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error) {
	return Fetch(ctx, p.Cache, TimetablesKey(from, to, date, adults, children), TimetablesTTL, func(ctx context.Context) ([]ctdf.Timetable, error) {
		return p.Source.GetTimetables(ctx, from, to, date, adults, children)
	})
}

func (p *CachedProvider) GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error) {
	return Fetch(ctx, p.Cache, AccommodationsKey(vehicleID, departureTime), AccommodationsTTL, func(ctx context.Context) ([]ctdf.Accommodation, error) {
		return p.Source.GetAccommodations(ctx, vehicleID, departureTime)
	})
}

func (p *CachedProvider) GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
	return Fetch(ctx, p.Cache, PricesKey(vehicleID, departureTime, accommodation, pax, bonus), PricesTTL, func(ctx context.Context) (string, error) {
		return p.Source.GetPrice(ctx, vehicleID, departureTime, accommodation, pax, bonus)
	})
}
