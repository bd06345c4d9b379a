package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
	"github.com/nsridhar76/go-cancelsvc/internal/messaging/noop"
	"github.com/nsridhar76/go-cancelsvc/internal/service"
	"github.com/nsridhar76/go-cancelsvc/internal/session/static"
	"github.com/nsridhar76/go-cancelsvc/internal/store/memory"
	transport "github.com/nsridhar76/go-cancelsvc/internal/transport/http"
)

func newTestServer(t *testing.T) (*memory.Store, *httptest.Server) {
	t.Helper()

	orders := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := service.New(orders, noop.Publisher{}, static.New(1), service.WithLogger(logger))
	require.NoError(t, err)

	srv := httptest.NewServer(transport.NewHandler(svc, orders, logger).Routes())
	t.Cleanup(srv.Close)

	return orders, srv
}

func TestCancelOrderEndpoint(t *testing.T) {
	orders, srv := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, orders.Save(ctx, &domain.Order{ID: 100, CustomerID: 5, Total: 1200}))

	resp, err := http.Post(srv.URL+"/v1/orders/100/cancel", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	got, err := orders.Lookup(ctx, 100)
	require.NoError(t, err)
	assert.True(t, got.Canceled)
}

func TestCancelOrderEndpoint_MissingOrder(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/orders/999/cancel", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode, "missing order cancels as a no-op")
}

func TestCancelOrderEndpoint_InvalidID(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/orders/abc/cancel", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetOrderEndpoint(t *testing.T) {
	orders, srv := newTestServer(t)

	require.NoError(t, orders.Save(context.Background(), &domain.Order{ID: 100, CustomerID: 5, Total: 1200, Currency: "EUR"}))

	resp, err := http.Get(srv.URL + "/v1/orders/100")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, "EUR", got.Currency)
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/orders/999")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthcheck(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/healthcheck")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
