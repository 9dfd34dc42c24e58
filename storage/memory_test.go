package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

func TestMemoryItemStoreNextID(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	id, err := s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty store starts at 1")

	require.NoError(t, s.Insert(ctx, models.Item{ID: 1}))
	require.NoError(t, s.Insert(ctx, models.Item{ID: 7}))

	id, err = s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, id, "next id is max in use plus one")
}

func TestMemoryItemStoreAdjustStock(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, models.Item{ID: 1, Quantity: 2, Available: true}))

	require.NoError(t, s.AdjustStock(ctx, 1, -2))

	item, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.False(t, item.Available)

	require.NoError(t, s.AdjustStock(ctx, 1, 5))
	item, err = s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.True(t, item.Available)
}

func TestMemoryItemStoreGetMissing(t *testing.T) {
	s := NewMemoryItemStore()

	item, err := s.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestMemoryItemStoreGetMany(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, models.Item{ID: 1, Name: "A"}))
	require.NoError(t, s.Insert(ctx, models.Item{ID: 2, Name: "B"}))

	got, err := s.GetMany(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[1].Name)
	_, ok := got[3]
	assert.False(t, ok)
}

func TestMemoryOrderStoreAppendStatus(t *testing.T) {
	s := NewMemoryOrderStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Insert(ctx, models.Order{
		ID:            1,
		Status:        models.StatusPending,
		StatusHistory: []models.StatusEntry{{Status: models.StatusPending, At: now}},
	}))

	later := now.Add(10 * time.Minute)
	order, err := s.AppendStatus(ctx, 1, models.StatusEntry{Status: models.StatusCompleted, At: later}, &later)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.StatusCompleted, order.Status)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, later, order.StatusHistory[1].At)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, later, *order.CompletedAt)

	missing, err := s.AppendStatus(ctx, 2, models.StatusEntry{Status: models.StatusReady, At: later}, nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
