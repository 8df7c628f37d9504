package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"parksmart/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndReadAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type doc struct {
		Name string `json:"name"`
	}
	require.NoError(t, store.Append(ctx, "ns-1", "things", doc{Name: "first"}))
	require.NoError(t, store.Append(ctx, "ns-1", "things", doc{Name: "second"}))
	require.NoError(t, store.Append(ctx, "ns-2", "things", doc{Name: "other session"}))

	raws, err := store.ReadAll(ctx, "ns-1", "things")
	require.NoError(t, err)
	require.Len(t, raws, 2, "namespaces are isolated")

	var first doc
	require.NoError(t, json.Unmarshal(raws[0], &first))
	assert.Equal(t, "first", first.Name, "insertion order preserved")
}

func TestReadAllEmptyCollection(t *testing.T) {
	store := newTestStore(t)
	raws, err := store.ReadAll(context.Background(), "ns-1", "missing")
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestPurgeOlderThan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "ns-1", "notifications", map[string]string{"k": "v"}))

	n, err := store.PurgeOlderThan(ctx, "notifications", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n, "recent records survive")

	n, err = store.PurgeOlderThan(ctx, "notifications", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	raws, err := store.ReadAll(ctx, "ns-1", "notifications")
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestBookingRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepository(store)
	ctx := context.Background()

	booking := db.Booking{
		Code:       "PS1700000000000",
		LotID:      1,
		LotName:    "Eastgate Shopping Centre",
		StartTime:  time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
		Status:     db.StatusConfirmed,
		Hours:      8,
		TotalPrice: 120,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, "ns-1", &booking))

	second := booking
	second.Code = "PS1700000000001"
	require.NoError(t, repo.Create(ctx, "ns-1", &second))

	bookings, err := repo.ListByNamespace(ctx, "ns-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2, "append never overwrites prior bookings")
	assert.Equal(t, "PS1700000000000", bookings[0].Code)
	assert.Equal(t, 120, bookings[0].TotalPrice)
}

func TestFinishEndedBookings(t *testing.T) {
	store := newTestStore(t)
	repo := NewBookingRepository(store)
	ctx := context.Background()

	ended := db.Booking{
		Code:      "PS1",
		StartTime: time.Now().UTC().Add(-3 * time.Hour),
		EndTime:   time.Now().UTC().Add(-time.Hour),
		Status:    db.StatusConfirmed,
	}
	ongoing := db.Booking{
		Code:      "PS2",
		StartTime: time.Now().UTC().Add(-time.Hour),
		EndTime:   time.Now().UTC().Add(time.Hour),
		Status:    db.StatusConfirmed,
	}
	require.NoError(t, repo.Create(ctx, "ns-1", &ended))
	require.NoError(t, repo.Create(ctx, "ns-1", &ongoing))

	n, err := repo.FinishEndedBookings(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	bookings, err := repo.ListByNamespace(ctx, "ns-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, db.StatusFinished, bookings[0].Status)
	assert.Equal(t, db.StatusConfirmed, bookings[1].Status)
}
