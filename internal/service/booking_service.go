package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"parksmart/internal/catalog"
	"parksmart/internal/db"
	"parksmart/internal/entities"
	apperrors "parksmart/internal/errors"
	"parksmart/internal/metrics"
	"parksmart/internal/pricing"

	"github.com/rs/zerolog"
)

// State is the booking workflow state for one session. Confirmed and failed
// are terminal for an attempt; a reset starts a fresh draft.
type State string

const (
	StateDraft      State = "draft"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// ErrSubmitInFlight rejects a submission while another one is in progress.
// Concurrent submissions are rejected, never queued.
var ErrSubmitInFlight = errors.New("a booking submission is already in progress")

const dispatchTimeout = 30 * time.Second

// BookingStore persists booking records.
type BookingStore interface {
	Create(ctx context.Context, namespace string, b *db.Booking) error
	ListByNamespace(ctx context.Context, namespace string) ([]db.Booking, error)
}

// Dispatcher delivers the confirmation for a completed booking.
type Dispatcher interface {
	Dispatch(ctx context.Context, namespace string, b db.Booking) Outcome
}

// workflow is the per-session state machine.
type workflow struct {
	mu         sync.Mutex
	state      State
	attempt    int
	lastCode   string
	resetTimer *time.Timer
}

// BookingService orchestrates form validation, pricing, persistence and the
// confirmation dispatch. It is the only component with mutable state.
type BookingService struct {
	lots       *catalog.Store
	repo       BookingStore
	notifier   Dispatcher
	resetAfter time.Duration
	logger     *zerolog.Logger

	mu        sync.Mutex
	workflows map[string]*workflow
	outcomes  map[string]Outcome // booking code -> dispatch outcome
}

func NewBookingService(lots *catalog.Store, repo BookingStore, notifier Dispatcher, resetAfter time.Duration, logger *zerolog.Logger) *BookingService {
	if resetAfter <= 0 {
		resetAfter = 5 * time.Second
	}
	return &BookingService{
		lots:       lots,
		repo:       repo,
		notifier:   notifier,
		resetAfter: resetAfter,
		logger:     logger,
		workflows:  make(map[string]*workflow),
		outcomes:   make(map[string]Outcome),
	}
}

// Submit runs one booking attempt for the session. Validation failures
// leave the workflow in draft without touching persistence or dispatch. A
// persistence failure ends the attempt in the failed state. On success the
// booking is confirmed before the confirmation dispatch outcome is known;
// the dispatch never reverts it.
func (s *BookingService) Submit(ctx context.Context, namespace string, req entities.BookingRequest) (*db.Booking, error) {
	wf := s.workflowFor(namespace)

	wf.mu.Lock()
	if wf.state == StateSubmitting {
		wf.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	lot, verr := s.validate(&req)
	if verr != nil {
		wf.state = StateDraft
		wf.mu.Unlock()
		return nil, verr
	}
	wf.state = StateSubmitting
	attempt := wf.attempt
	wf.mu.Unlock()

	est := pricing.Quote(lot.PricePerHour, req.StartTime, req.EndTime)
	if est.Total == 0 {
		s.transition(wf, attempt, StateDraft, "")
		return nil, apperrors.NewValidationError("end_time", "selected time range yields no billable hours")
	}

	booking := db.Booking{
		Code:               newBookingCode(),
		LotID:              lot.ID,
		LotName:            lot.Name,
		LotAddress:         lot.Address,
		StartTime:          req.StartTime.UTC(),
		EndTime:            req.EndTime.UTC(),
		LicensePlate:       req.LicensePlate,
		PaymentMethod:      req.PaymentMethod,
		PaymentMethodLabel: db.PaymentMethods[req.PaymentMethod],
		UserName:           req.UserName,
		UserEmail:          req.UserEmail,
		UserPhone:          req.UserPhone,
		Hours:              est.Hours,
		TotalPrice:         est.Total,
		Status:             db.StatusConfirmed,
		CreatedAt:          time.Now().UTC(),
	}

	// The append is the confirming act: the record is handed over by value
	// and the workflow keeps no live reference to it.
	if err := s.repo.Create(ctx, namespace, &booking); err != nil {
		s.transition(wf, attempt, StateFailed, "")
		metrics.IncBooking(db.StatusFailed)
		s.logger.Error().Err(err).Str("booking", booking.Code).Msg("booking persistence failed")
		return nil, apperrors.NewPersistenceError("create booking", err)
	}

	s.transition(wf, attempt, StateConfirmed, booking.Code)
	metrics.IncBooking(db.StatusConfirmed)
	s.setOutcome(booking.Code, OutcomePending)
	s.logger.Info().Str("booking", booking.Code).Str("lot", lot.Name).
		Int("total", booking.TotalPrice).Msg("booking confirmed")

	// Fire-and-forget confirmation. The booking is already confirmed; the
	// outcome is observed through a later, secondary read.
	go func(b db.Booking) {
		dctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		s.setOutcome(b.Code, s.notifier.Dispatch(dctx, namespace, b))
	}(booking)

	s.scheduleReset(wf, attempt)
	return &booking, nil
}

// State reports the session's current workflow state.
func (s *BookingService) State(namespace string) State {
	wf := s.workflowFor(namespace)
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.state
}

// Reset returns the session's workflow to a fresh draft.
func (s *BookingService) Reset(namespace string) {
	wf := s.workflowFor(namespace)
	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.reset()
}

// NotificationOutcome reports the dispatch outcome recorded for a booking,
// or pending while none has arrived yet.
func (s *BookingService) NotificationOutcome(code string) (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome, ok := s.outcomes[code]
	return outcome, ok
}

// ListBookings reads back the session's persisted bookings.
func (s *BookingService) ListBookings(ctx context.Context, namespace string) ([]db.Booking, error) {
	return s.repo.ListByNamespace(ctx, namespace)
}

func (s *BookingService) workflowFor(namespace string) *workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	wf, ok := s.workflows[namespace]
	if !ok {
		wf = &workflow{state: StateDraft}
		s.workflows[namespace] = wf
	}
	return wf
}

// transition moves the workflow only when it still belongs to the same
// attempt; a workflow reset in the meantime wins.
func (s *BookingService) transition(wf *workflow, attempt int, to State, code string) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.attempt != attempt {
		return
	}
	wf.state = to
	if code != "" {
		wf.lastCode = code
	}
}

func (s *BookingService) scheduleReset(wf *workflow, attempt int) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.resetTimer != nil {
		wf.resetTimer.Stop()
	}
	wf.resetTimer = time.AfterFunc(s.resetAfter, func() {
		wf.mu.Lock()
		defer wf.mu.Unlock()
		if wf.attempt == attempt && wf.state == StateConfirmed {
			wf.reset()
		}
	})
}

func (s *BookingService) setOutcome(code string, outcome Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[code] = outcome
}

// reset requires wf.mu held.
func (wf *workflow) reset() {
	if wf.resetTimer != nil {
		wf.resetTimer.Stop()
		wf.resetTimer = nil
	}
	wf.state = StateDraft
	wf.attempt++
	wf.lastCode = ""
}

func (s *BookingService) validate(req *entities.BookingRequest) (catalog.Lot, *apperrors.ValidationError) {
	var none catalog.Lot

	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.LicensePlate = strings.ToUpper(strings.TrimSpace(req.LicensePlate))

	if req.UserName == "" {
		return none, apperrors.NewValidationError("user_name", "name is required")
	}
	if req.UserEmail == "" {
		return none, apperrors.NewValidationError("user_email", "email is required")
	}
	if !strings.Contains(req.UserEmail, "@") {
		return none, apperrors.NewValidationError("user_email", "email is invalid")
	}
	if req.LicensePlate == "" {
		return none, apperrors.NewValidationError("license_plate", "license plate is required")
	}
	if req.PaymentMethod == "" {
		return none, apperrors.NewValidationError("payment_method", "payment method is required")
	}
	if _, ok := db.PaymentMethods[req.PaymentMethod]; !ok {
		return none, apperrors.NewValidationError("payment_method", "unknown payment method")
	}
	if req.StartTime.IsZero() {
		return none, apperrors.NewValidationError("start_time", "start time is required")
	}
	if req.EndTime.IsZero() {
		return none, apperrors.NewValidationError("end_time", "end time is required")
	}
	if !req.EndTime.After(req.StartTime) {
		return none, apperrors.NewValidationError("end_time", "end time must be after start time")
	}

	lot, ok := s.lots.Get(req.LotID)
	if !ok {
		return none, apperrors.NewValidationError("lot_id", "unknown parking lot")
	}
	return lot, nil
}

var lastBookingCode int64

// newBookingCode derives a unique, time-based booking code. A monotonic
// guard keeps codes unique when two attempts land on the same millisecond.
func newBookingCode() string {
	ms := time.Now().UnixMilli()
	for {
		last := atomic.LoadInt64(&lastBookingCode)
		if ms <= last {
			ms = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastBookingCode, last, ms) {
			return fmt.Sprintf("PS%d", ms)
		}
	}
}
