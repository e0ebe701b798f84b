package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoInstance) createIndexes(ctx context.Context) {
	m.createStationIndexes(ctx)
	m.createResultIndexes(ctx)
}

func (m *MongoInstance) createStationIndexes(ctx context.Context) {
	// Destination tree
	_, err := m.DestinationTree().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "destinationCode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "destinationTree", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "arrivalCode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "arrivalTree", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Supplier station correlation
	_, err = m.StationCorrelations().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "suppliers", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func (m *MongoInstance) createResultIndexes(ctx context.Context) {
	_, err := m.TrainResults().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "creationdatetime", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "parameters.journeys.from", Value: 1},
				{Key: "parameters.journeys.to", Value: 1},
				{Key: "parameters.journeys.date", Value: 1},
			},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
