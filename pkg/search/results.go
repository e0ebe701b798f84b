package search

import (
	"context"
	"time"

	"github.com/travigo/ctsearch/pkg/ctdf"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResultStore persists search results to the results collection
type ResultStore struct {
	Collection *mongo.Collection
}

func NewResultStore(collection *mongo.Collection) *ResultStore {
	return &ResultStore{Collection: collection}
}

func (s *ResultStore) SaveResults(ctx context.Context, results []*ctdf.CTSearch) error {
	if len(results) == 0 {
		return nil
	}

	now := time.Now()

	documents := make([]interface{}, 0, len(results))
	for _, result := range results {
		result.CreationDateTime = now
		documents = append(documents, result)
	}

	_, err := s.Collection.InsertMany(ctx, documents)

	return err
}
