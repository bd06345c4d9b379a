package noop

import (
	"context"

	"github.com/nsridhar76/go-cancelsvc/internal/messaging"
)

// Publisher is a no-op EventPublisher used when Kafka is not configured.
type Publisher struct{}

func (Publisher) PublishOrderCanceled(_ context.Context, _ messaging.CancellationEvent) error {
	return nil
}
