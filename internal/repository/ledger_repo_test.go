package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrive/internal/domain"
)

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func sampleBooking(id string) domain.Booking {
	return domain.Booking{
		ID:            id,
		CarID:         "1",
		CarName:       "Tesla Model S",
		CarImage:      "https://example.com/model-s.jpg",
		StartDate:     "2024-01-01",
		StartTime:     "09:00",
		EndDate:       "2024-01-04",
		EndTime:       "17:00",
		TotalPrice:    496,
		Status:        domain.BookingConfirmed,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CreatedAt:     time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()

	ledger := NewLedgerRepository(ctx, kv)
	require.NoError(t, ledger.Append(ctx, sampleBooking("a")))
	require.NoError(t, ledger.Append(ctx, sampleBooking("b")))

	// A fresh repository over the same store must rehydrate the identical
	// sequence, newest first.
	reloaded := NewLedgerRepository(ctx, kv)
	got, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	orig, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestLedgerStartsEmptyWithoutSnapshot(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerRepository(ctx, newMemoryKV())
	got, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLedgerStartsEmptyOnMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	require.NoError(t, kv.Set(ctx, "bookings_ledger", "{not json"))

	ledger := NewLedgerRepository(ctx, kv)
	got, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSessionFlag(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepository(newMemoryKV())

	assert.False(t, sessions.IsActive(ctx))

	require.NoError(t, sessions.Activate(ctx))
	assert.True(t, sessions.IsActive(ctx))

	require.NoError(t, sessions.Clear(ctx))
	assert.False(t, sessions.IsActive(ctx))
}
