package search

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/cachedresults"
	"github.com/travigo/ctsearch/pkg/config"
	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/database"
	"github.com/travigo/ctsearch/pkg/events"
	"github.com/travigo/ctsearch/pkg/gateway"
	"github.com/travigo/ctsearch/pkg/redis_client"
	"github.com/travigo/ctsearch/pkg/servivuelo"
	"github.com/travigo/ctsearch/pkg/stations"
)

// Services owns the connections behind a running Pipeline
type Services struct {
	Mongo *database.MongoInstance
	Redis *redis_client.Connection

	Pipeline *Pipeline
}

func Setup(ctx context.Context, cfg *config.Config) (*Services, error) {
	mongoInstance, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	redisConnection, err := redis_client.Connect(ctx, cfg.Redis, cfg.Events.Enabled)
	if err != nil {
		mongoInstance.Disconnect(ctx)
		return nil, err
	}

	provider := gateway.New(ctdf.ProviderServivuelo, servivuelo.NewClient(cfg.Servivuelo.URL, cfg.Servivuelo.Timeout))

	pipeline := &Pipeline{
		ProviderName: ctdf.ProviderServivuelo,
		Stations:     stations.NewResolver(mongoInstance.DestinationTree()),
		Mapper:       stations.NewMapper(mongoInstance.StationCorrelations()),
		Provider:     cachedresults.NewCachedProvider(cachedresults.New(redisConnection.Client), provider),
		Results:      NewResultStore(mongoInstance.TrainResults()),
	}

	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(redisConnection.QueueConnection)
		if err != nil {
			redisConnection.Close()
			mongoInstance.Disconnect(ctx)
			return nil, err
		}

		pipeline.Events = publisher
	}

	log.Info().
		Str("provider", string(ctdf.ProviderServivuelo)).
		Bool("events", cfg.Events.Enabled).
		Msg("Search pipeline ready")

	return &Services{
		Mongo:    mongoInstance,
		Redis:    redisConnection,
		Pipeline: pipeline,
	}, nil
}

func (s *Services) Close(ctx context.Context) {
	if err := s.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close redis connection")
	}
	if err := s.Mongo.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
