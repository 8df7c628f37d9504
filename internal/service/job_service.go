package service

import (
	"context"
	"fmt"
	"time"

	"parksmart/internal/repository"

	"github.com/rs/zerolog"
)

// JobService runs the scheduled maintenance sweeps: rolling confirmed
// bookings forward to finished once their end time has passed, and pruning
// stored confirmation documents past the retention window.
type JobService struct {
	bookings  *repository.BookingRepository
	store     *repository.Store
	retention time.Duration
	logger    *zerolog.Logger
}

func NewJobService(bookings *repository.BookingRepository, store *repository.Store, retention time.Duration, logger *zerolog.Logger) *JobService {
	return &JobService{
		bookings:  bookings,
		store:     store,
		retention: retention,
		logger:    logger,
	}
}

// FinishEndedBookings marks confirmed bookings past their end time as
// finished.
func (s *JobService) FinishEndedBookings(ctx context.Context) error {
	n, err := s.bookings.FinishEndedBookings(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if n > 0 {
		s.logger.Info().Int64("count", n).Msg("marked ended bookings as finished")
	}
	return nil
}

// PurgeOldNotifications deletes stored confirmation documents older than
// the retention window. Notification records are not authoritative, so the
// purge never touches booking state.
func (s *JobService) PurgeOldNotifications(ctx context.Context) error {
	cutoff := time.Now().Add(-s.retention)
	n, err := s.store.PurgeOlderThan(ctx, notificationsCollection, cutoff)
	if err != nil {
		return fmt.Errorf("purge notifications: %w", err)
	}
	if n > 0 {
		s.logger.Info().Int64("count", n).Msg("purged old notification records")
	}
	return nil
}

// Run executes both sweeps; it is the cron entrypoint.
func (s *JobService) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := s.FinishEndedBookings(ctx); err != nil {
		s.logger.Error().Err(err).Msg("finish-ended-bookings sweep failed")
	}
	if err := s.PurgeOldNotifications(ctx); err != nil {
		s.logger.Error().Err(err).Msg("notification purge failed")
	}
}
