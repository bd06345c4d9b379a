package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
	"github.com/nsridhar76/go-cancelsvc/internal/store"
)

func TestLookup_MissingOrder(t *testing.T) {
	s := New()

	_, err := s.Lookup(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveThenLookup(t *testing.T) {
	s := New()
	ctx := context.Background()

	order := &domain.Order{
		ID:         100,
		CustomerID: 5,
		Total:      1200,
		Quantity:   500,
		Currency:   "EUR",
	}
	require.NoError(t, s.Save(ctx, order))

	got, err := s.Lookup(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, *order, *got)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Order{ID: 100, Currency: "EUR"}))

	first, err := s.Lookup(ctx, 100)
	require.NoError(t, err)
	first.Canceled = true

	second, err := s.Lookup(ctx, 100)
	require.NoError(t, err)
	assert.False(t, second.Canceled, "mutating a looked-up order must not change the stored one")
}

func TestSave_Overwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Order{ID: 100, Total: 1200}))
	require.NoError(t, s.Save(ctx, &domain.Order{ID: 100, Total: 1200, Canceled: true}))

	got, err := s.Lookup(ctx, 100)
	require.NoError(t, err)
	assert.True(t, got.Canceled)
}
