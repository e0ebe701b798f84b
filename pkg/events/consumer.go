package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

type Handler func(event *ctdf.Event)

// Consumer drains the events queue with a fixed number of batch consumers
type Consumer struct {
	NumberConsumers int
	BatchSize       int
	Timeout         time.Duration

	Handler Handler
}

func (c *Consumer) Start(connection rmq.Connection) error {
	log.Info().Str("queue", QueueName).Msg("Starting consumers")

	queue, err := connection.OpenQueue(QueueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(int64(c.NumberConsumers*c.BatchSize), 1*time.Second); err != nil {
		return err
	}

	for i := 0; i < c.NumberConsumers; i++ {
		if _, err := queue.AddBatchConsumer(fmt.Sprintf("event-queue-%d", i), int64(c.BatchSize), c.Timeout, c); err != nil {
			return err
		}
	}

	return nil
}

func (c *Consumer) Consume(batch rmq.Deliveries) {
	for _, payload := range batch.Payloads() {
		var event ctdf.Event
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Failed to decode event")
			continue
		}

		c.Handler(&event)
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to ack event")
		}
	}
}

// LogEvent is the default handler, it records every event it sees
func LogEvent(event *ctdf.Event) {
	log.Info().
		Str("type", string(event.Type)).
		Time("timestamp", event.Timestamp).
		Msg("Received event")
}
