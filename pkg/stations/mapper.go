package stations

import (
	"context"
	"errors"
	"fmt"

	"github.com/travigo/ctsearch/pkg/ctdf"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mapper translates internal station codes to and from provider station codes
type Mapper struct {
	Collection *mongo.Collection
}

func NewMapper(collection *mongo.Collection) *Mapper {
	return &Mapper{Collection: collection}
}

// ToProviderCode returns false when the station has no code for provider
func (m *Mapper) ToProviderCode(ctx context.Context, provider ctdf.Provider, internalCode string) (string, bool, error) {
	query := ctdf.QueryStationCorrelation{Code: internalCode}

	var correlation *ctdf.StationCorrelation
	err := m.Collection.FindOne(ctx, query.ToBson()).Decode(&correlation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("find correlation for %s: %w", internalCode, err)
	}

	code, found := correlation.ProviderCode(provider)
	return code, found, nil
}

// ToInternalCode returns false when no internal station references the provider code
func (m *Mapper) ToInternalCode(ctx context.Context, provider ctdf.Provider, providerCode string) (string, bool, error) {
	query := ctdf.QueryProviderStationCorrelation{Provider: provider, ProviderCode: providerCode}

	var correlation *ctdf.StationCorrelation
	err := m.Collection.FindOne(ctx, query.ToBson()).Decode(&correlation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("find correlation for %s: %w", ctdf.ProviderStationReference(provider, providerCode), err)
	}

	if correlation.Code == "" {
		return "", false, nil
	}

	return correlation.Code, true, nil
}
