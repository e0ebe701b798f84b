package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/travigo/ctsearch/pkg/ctdf"
)

const QueueName = "events-queue"

// Publisher pushes search events onto the shared events queue
type Publisher struct {
	Queue rmq.Queue
}

func NewPublisher(connection rmq.Connection) (*Publisher, error) {
	queue, err := connection.OpenQueue(QueueName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", QueueName, err)
	}

	return &Publisher{Queue: queue}, nil
}

func (p *Publisher) PublishSearchResults(results []*ctdf.CTSearch) error {
	payloads := make([][]byte, 0, len(results))
	timestamp := time.Now()

	for _, result := range results {
		eventBytes, err := json.Marshal(ctdf.Event{
			Type:      ctdf.EventTypeSearchResultCreated,
			Timestamp: timestamp,
			Body:      result,
		})
		if err != nil {
			return err
		}

		payloads = append(payloads, eventBytes)
	}

	if len(payloads) == 0 {
		return nil
	}

	return p.Queue.PublishBytes(payloads...)
}
