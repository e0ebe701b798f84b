package stations

import (
	"context"
	"fmt"

	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resolver turns a user entered station or city code into internal station codes
type Resolver struct {
	Collection *mongo.Collection
}

func NewResolver(collection *mongo.Collection) *Resolver {
	return &Resolver{Collection: collection}
}

// ResolveDeparture returns the distinct departure station codes matching code. No match is not an error.
func (r *Resolver) ResolveDeparture(ctx context.Context, code string) ([]string, error) {
	query := ctdf.QueryDepartureStations{Code: code}

	records, err := r.find(ctx, query.ToBson())
	if err != nil {
		return nil, fmt.Errorf("find departure stations for %s: %w", code, err)
	}

	codes := make([]string, 0, len(records))
	for _, record := range records {
		codes = append(codes, record.DestinationCode)
	}

	return util.RemoveDuplicateStrings(codes, nil), nil
}

// ResolveArrival returns the distinct arrival station codes matching code. No match is not an error.
func (r *Resolver) ResolveArrival(ctx context.Context, code string) ([]string, error) {
	query := ctdf.QueryArrivalStations{Code: code}

	records, err := r.find(ctx, query.ToBson())
	if err != nil {
		return nil, fmt.Errorf("find arrival stations for %s: %w", code, err)
	}

	codes := make([]string, 0, len(records))
	for _, record := range records {
		codes = append(codes, record.ArrivalCode)
	}

	return util.RemoveDuplicateStrings(codes, nil), nil
}

func (r *Resolver) find(ctx context.Context, filter bson.M) ([]ctdf.DestinationTreeRecord, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var records []ctdf.DestinationTreeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
