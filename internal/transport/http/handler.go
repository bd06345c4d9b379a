// Package http exposes the cancellation service over a small JSON API.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nsridhar76/go-cancelsvc/internal/service"
	"github.com/nsridhar76/go-cancelsvc/internal/store"
)

// OrderCanceler is the part of the service the API needs.
type OrderCanceler interface {
	Cancel(ctx context.Context, orderID int64) error
}

type Handler struct {
	svc    OrderCanceler
	orders service.OrderStore
	logger *slog.Logger
}

func NewHandler(svc OrderCanceler, orders service.OrderStore, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, orders: orders, logger: logger}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", h.healthcheck)
		r.Get("/orders/{id}", h.getOrder)
		r.Post("/orders/{id}/cancel", h.cancelOrder)
	})

	return r
}

func (h *Handler) healthcheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// cancelOrder accepts the cancellation even when the order does not exist;
// the service treats a missing order as a no-op, not a failure.
func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		h.logger.Error("cancel order", "order_id", id, "error", err)
		internalError(w, "could not cancel order")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}

	order, err := h.orders.Lookup(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	if err != nil {
		h.logger.Error("lookup order", "order_id", id, "error", err)
		internalError(w, "could not load order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}
