package redis_client

import (
	"context"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/config"
)

const queueConnectionTag = "ctsearch"

// Connection holds the redis client used for caching and, when enabled, the rmq queue connection
type Connection struct {
	Client          *redis.Client
	QueueConnection rmq.Connection
}

func Connect(ctx context.Context, cfg config.RedisConfig, withQueue bool) (*Connection, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	return newConnection(ctx, client, withQueue)
}

// newConnection waits for redis to answer and closes the client on any failure
func newConnection(ctx context.Context, client *redis.Client, withQueue bool) (*Connection, error) {
	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err := backoff.RetryNotify(func() error {
		return client.Ping(ctx).Err()
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("wait", wait.String()).Msg("Redis not reachable yet")
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	connection := &Connection{
		Client: client,
	}

	if withQueue {
		connection.QueueConnection, err = rmq.OpenConnectionWithRedisClient(queueConnectionTag, client, nil)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("open queue connection: %w", err)
		}
	}

	return connection, nil
}

func (c *Connection) Close() error {
	if c.QueueConnection != nil {
		<-c.QueueConnection.StopAllConsuming()
	}

	return c.Client.Close()
}
