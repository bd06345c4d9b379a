// Package service implements the order cancellation workflow: look the
// order up, mark it canceled, persist it, publish a cancellation event.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
	"github.com/nsridhar76/go-cancelsvc/internal/messaging"
	"github.com/nsridhar76/go-cancelsvc/internal/store"
)

// OrderStore is the persistence contract the service depends on. Lookup
// reports a missing order with store.ErrNotFound.
type OrderStore interface {
	Lookup(ctx context.Context, id int64) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
}

// EventPublisher emits a cancellation event after the order has been
// persisted.
type EventPublisher interface {
	PublishOrderCanceled(ctx context.Context, event messaging.CancellationEvent) error
}

// SessionSource reports the id of the currently active session.
type SessionSource interface {
	CurrentSessionID(ctx context.Context) (int64, error)
}

type Service struct {
	orders    OrderStore
	publisher EventPublisher
	sessions  SessionSource
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures optional Service behavior.
type Option func(*Service)

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New wires the service. All three collaborators are required; a nil one is
// rejected here rather than surfacing as a panic on first use.
func New(orders OrderStore, publisher EventPublisher, sessions SessionSource, opts ...Option) (*Service, error) {
	if orders == nil {
		return nil, errors.New("service: order store is required")
	}
	if publisher == nil {
		return nil, errors.New("service: event publisher is required")
	}
	if sessions == nil {
		return nil, errors.New("service: session source is required")
	}

	s := &Service{
		orders:    orders,
		publisher: publisher,
		sessions:  sessions,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Cancel marks the order canceled, persists it and publishes a
// cancellation event carrying the current session id and wall-clock time.
// A missing order is not an error: the call returns nil without saving or
// publishing anything.
func (s *Service) Cancel(ctx context.Context, orderID int64) error {
	order, err := s.orders.Lookup(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.InfoContext(ctx, "order not found, nothing to cancel", "order_id", orderID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup order %d: %w", orderID, err)
	}

	order.Cancel()

	if err := s.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save canceled order %d: %w", orderID, err)
	}

	sessionID, err := s.sessions.CurrentSessionID(ctx)
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	event := messaging.NewCancellationEvent(order, sessionID, s.now())
	if err := s.publisher.PublishOrderCanceled(ctx, event); err != nil {
		return fmt.Errorf("publish cancellation for order %d: %w", orderID, err)
	}

	s.logger.InfoContext(ctx, "order canceled",
		"order_id", orderID,
		"customer_id", order.CustomerID,
		"session_id", sessionID,
	)

	return nil
}
