package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"parksmart/internal/catalog"
	"parksmart/internal/db"
	"parksmart/internal/entities"
	apperrors "parksmart/internal/errors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) Create(ctx context.Context, ns string, b *db.Booking) error {
	return m.Called(ctx, ns, b).Error(0)
}

func (m *mockBookingStore) ListByNamespace(ctx context.Context, ns string) ([]db.Booking, error) {
	args := m.Called(ctx, ns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Booking), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, ns string, b db.Booking) Outcome {
	args := m.Called(ctx, ns, b)
	return args.Get(0).(Outcome)
}

func validRequest() entities.BookingRequest {
	return entities.BookingRequest{
		LotID:         1,
		UserName:      "Thandi Nkosi",
		UserEmail:     "thandi@example.com",
		LicensePlate:  "ca 123-456",
		PaymentMethod: "snapscan",
		StartTime:     time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
	}
}

func newTestService(t *testing.T, repo BookingStore, notifier Dispatcher, resetAfter time.Duration) *BookingService {
	t.Helper()
	logger := zerolog.New(io.Discard)
	return NewBookingService(catalog.DefaultStore(), repo, notifier, resetAfter, &logger)
}

func TestSubmitMissingFieldStaysDraft(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.BookingRequest)
		field  string
	}{
		{"no name", func(r *entities.BookingRequest) { r.UserName = "" }, "user_name"},
		{"no email", func(r *entities.BookingRequest) { r.UserEmail = "" }, "user_email"},
		{"bad email", func(r *entities.BookingRequest) { r.UserEmail = "not-an-email" }, "user_email"},
		{"no plate", func(r *entities.BookingRequest) { r.LicensePlate = "  " }, "license_plate"},
		{"no payment method", func(r *entities.BookingRequest) { r.PaymentMethod = "" }, "payment_method"},
		{"unknown payment method", func(r *entities.BookingRequest) { r.PaymentMethod = "cheque" }, "payment_method"},
		{"no start", func(r *entities.BookingRequest) { r.StartTime = time.Time{} }, "start_time"},
		{"no end", func(r *entities.BookingRequest) { r.EndTime = time.Time{} }, "end_time"},
		{"end before start", func(r *entities.BookingRequest) { r.EndTime = r.StartTime.Add(-time.Hour) }, "end_time"},
		{"end equals start", func(r *entities.BookingRequest) { r.EndTime = r.StartTime }, "end_time"},
		{"unknown lot", func(r *entities.BookingRequest) { r.LotID = 999 }, "lot_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockBookingStore)
			notifier := new(mockDispatcher)
			svc := newTestService(t, repo, notifier, time.Minute)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), "session-1", req)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, StateDraft, svc.State("session-1"))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitConfirmsBooking(t *testing.T) {
	repo := new(mockBookingStore)
	notifier := new(mockDispatcher)
	svc := newTestService(t, repo, notifier, time.Minute)

	repo.On("Create", mock.Anything, "session-1", mock.Anything).Return(nil)
	notifier.On("Dispatch", mock.Anything, "session-1", mock.Anything).Return(OutcomeDelivered)

	booking, err := svc.Submit(context.Background(), "session-1", validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(booking.Code, "PS"))
	assert.Equal(t, db.StatusConfirmed, booking.Status)
	assert.Equal(t, "CA 123-456", booking.LicensePlate, "plate normalized to uppercase")
	assert.Equal(t, "SnapScan", booking.PaymentMethodLabel)
	// Lot 1 at 25/hour for 8 hours hits the extended tier floor.
	assert.Equal(t, 8, booking.Hours)
	assert.Equal(t, 120, booking.TotalPrice)
	assert.Equal(t, StateConfirmed, svc.State("session-1"))

	assert.Eventually(t, func() bool {
		outcome, ok := svc.NotificationOutcome(booking.Code)
		return ok && outcome == OutcomeDelivered
	}, time.Second, 10*time.Millisecond)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	repo := new(mockBookingStore)
	notifier := new(mockDispatcher)
	svc := newTestService(t, repo, notifier, time.Minute)

	repo.On("Create", mock.Anything, "session-1", mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Submit(context.Background(), "session-1", validRequest())

	var perr *apperrors.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, StateFailed, svc.State("session-1"))
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitDispatchFailureKeepsBookingConfirmed(t *testing.T) {
	repo := new(mockBookingStore)
	notifier := new(mockDispatcher)
	svc := newTestService(t, repo, notifier, time.Minute)

	repo.On("Create", mock.Anything, "session-1", mock.Anything).Return(nil)
	notifier.On("Dispatch", mock.Anything, "session-1", mock.Anything).Return(OutcomeFailed)

	booking, err := svc.Submit(context.Background(), "session-1", validRequest())
	require.NoError(t, err)

	assert.Equal(t, db.StatusConfirmed, booking.Status)
	assert.Equal(t, StateConfirmed, svc.State("session-1"))
	assert.Eventually(t, func() bool {
		outcome, ok := svc.NotificationOutcome(booking.Code)
		return ok && outcome == OutcomeFailed
	}, time.Second, 10*time.Millisecond, "failed dispatch is recorded without reverting the booking")
}

func TestConcurrentSubmitRejected(t *testing.T) {
	repo := new(mockBookingStore)
	notifier := new(mockDispatcher)
	svc := newTestService(t, repo, notifier, time.Minute)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.On("Create", mock.Anything, "session-1", mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).Return(nil)
	notifier.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(OutcomeSimulated).Maybe()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "session-1", validRequest())
		done <- err
	}()

	<-entered
	_, err := svc.Submit(context.Background(), "session-1", validRequest())
	assert.ErrorIs(t, err, ErrSubmitInFlight, "second submission is rejected, not queued")

	close(release)
	require.NoError(t, <-done)
}

func TestWorkflowResetsAfterObservationWindow(t *testing.T) {
	repo := new(mockBookingStore)
	notifier := new(mockDispatcher)
	svc := newTestService(t, repo, notifier, 30*time.Millisecond)

	repo.On("Create", mock.Anything, "session-1", mock.Anything).Return(nil)
	notifier.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(OutcomeSimulated)

	_, err := svc.Submit(context.Background(), "session-1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, svc.State("session-1"))

	assert.Eventually(t, func() bool {
		return svc.State("session-1") == StateDraft
	}, time.Second, 10*time.Millisecond)
}

func TestUniqueBookingCodes(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := newBookingCode()
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestListBookings(t *testing.T) {
	repo := new(mockBookingStore)
	svc := newTestService(t, repo, new(mockDispatcher), time.Minute)

	want := []db.Booking{{Code: "PS1"}, {Code: "PS2"}}
	repo.On("ListByNamespace", mock.Anything, "session-1").Return(want, nil)

	got, err := svc.ListBookings(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
