// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/nsridhar76/go-cancelsvc/internal/messaging"
)

// writer is the subset of kafka.Writer the publisher needs, narrowed so
// tests can substitute a fake.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher sends cancellation events to Kafka, keyed by order id so all
// events for one order land on the same partition.
type Publisher struct {
	w writer
}

// New wraps an existing kafka.Writer. The caller owns the writer's
// lifecycle.
func New(w *kafka.Writer) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) PublishOrderCanceled(ctx context.Context, event messaging.CancellationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cancellation event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for order %d: %w", event.EventType, event.OrderID, err)
	}

	return nil
}
