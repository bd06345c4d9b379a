// Package messaging defines event types for order domain events.
package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
)

// Event type constants for order domain events.
const (
	EventOrderCanceled = "order.canceled"
)

// CancellationEvent is the Kafka message envelope published after an order
// has been canceled and persisted. It is built once per cancellation and
// not mutated afterwards.
type CancellationEvent struct {
	EventType  string    `json:"event_type"`
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	SessionID  int64     `json:"session_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCancellationEvent builds the envelope for a canceled order. Amount
// carries the order's total.
func NewCancellationEvent(o *domain.Order, sessionID int64, occurredAt time.Time) CancellationEvent {
	return CancellationEvent{
		EventType:  EventOrderCanceled,
		EventID:    uuid.NewString(),
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Amount:     o.Total,
		Currency:   o.Currency,
		SessionID:  sessionID,
		OccurredAt: occurredAt,
	}
}
