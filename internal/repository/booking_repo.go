package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parksmart/internal/db"
)

const bookingsCollection = "bookings"

// BookingRepository persists booking records through the document store.
type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create appends the booking to the session's collection. The record is
// written by value; prior bookings are never touched.
func (r *BookingRepository) Create(ctx context.Context, namespace string, b *db.Booking) error {
	return r.store.Append(ctx, namespace, bookingsCollection, b)
}

// ListByNamespace returns the session's bookings in creation order.
func (r *BookingRepository) ListByNamespace(ctx context.Context, namespace string) ([]db.Booking, error) {
	raws, err := r.store.ReadAll(ctx, namespace, bookingsCollection)
	if err != nil {
		return nil, err
	}
	bookings := make([]db.Booking, 0, len(raws))
	for _, raw := range raws {
		var b db.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode booking record: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// FinishEndedBookings marks confirmed bookings whose end time has passed as
// finished. The status only ever moves forward; confirmed bookings are
// never reverted.
func (r *BookingRepository) FinishEndedBookings(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE records
		 SET payload = json_set(payload, '$.status', ?)
		 WHERE collection = ?
		   AND json_extract(payload, '$.status') = ?
		   AND json_extract(payload, '$.end_time') <= ?`,
		db.StatusFinished, bookingsCollection, db.StatusConfirmed,
		now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("finish ended bookings: %w", err)
	}
	return res.RowsAffected()
}
