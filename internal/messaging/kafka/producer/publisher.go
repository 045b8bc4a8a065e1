package producer

import (
	"context"
	"encoding/json"

	"holerite/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher queues statement-computed events and writes them to Kafka from a
// background worker, so a slow broker never delays a computation.
type Publisher struct {
	writer *kafkago.Writer
	queue  chan events.StatementComputedEvent
	logger *zap.Logger
}

func NewPublisher(writer *kafkago.Writer, logger *zap.Logger, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		writer: writer,
		queue:  make(chan events.StatementComputedEvent, buffer),
		logger: logger.Named("kafka.producer"),
	}
}

// Publish enqueues the event without blocking. Events are dropped with a
// warning when the queue is full; the statement itself is the source of truth.
func (p *Publisher) Publish(event events.StatementComputedEvent) {
	select {
	case p.queue <- event:
	default:
		p.logger.Warn("publish queue full, dropping event",
			zap.String("event_type", event.EventType),
		)
	}
}

func publishEvent(ctx context.Context, writer *kafkago.Writer, event events.StatementComputedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: events.StatementComputedTopic,
		Key:   []byte(event.RequestID),
		Value: payload,
	}

	return writer.WriteMessages(ctx, msg)
}
