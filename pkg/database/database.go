package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DestinationTreeCollection    = "journey_destination_tree"
	StationCorrelationCollection = "supplier_station_correlation"
	TrainResultsCollection       = "train_results"
)

// MongoInstance is the single connection shared by every store component
type MongoInstance struct {
	Client *mongo.Client

	// TrainDatabase holds the station data, SearchDatabase the persisted results
	TrainDatabase  *mongo.Database
	SearchDatabase *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*MongoInstance, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	return newInstance(connectCtx, client, cfg)
}

// newInstance waits for the server to answer and disconnects the client when it never does
func newInstance(ctx context.Context, client *mongo.Client, cfg config.MongoConfig) (*MongoInstance, error) {
	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err := backoff.RetryNotify(func() error {
		return client.Ping(ctx, nil)
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("wait", wait.String()).Msg("MongoDB not reachable yet")
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	instance := &MongoInstance{
		Client:         client,
		TrainDatabase:  client.Database(cfg.TrainDatabase),
		SearchDatabase: client.Database(cfg.SearchDatabase),
	}

	instance.createIndexes(ctx)

	return instance, nil
}

func (m *MongoInstance) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *MongoInstance) DestinationTree() *mongo.Collection {
	return m.TrainDatabase.Collection(DestinationTreeCollection)
}

func (m *MongoInstance) StationCorrelations() *mongo.Collection {
	return m.TrainDatabase.Collection(StationCorrelationCollection)
}

func (m *MongoInstance) TrainResults() *mongo.Collection {
	return m.SearchDatabase.Collection(TrainResultsCollection)
}
