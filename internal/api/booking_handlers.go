package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"parksmart/internal/auth"
	"parksmart/internal/entities"
	apperrors "parksmart/internal/errors"
	"parksmart/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// SessionHeader carries the session-scoped store namespace. A missing
// header gets a fresh namespace assigned and echoed back.
const SessionHeader = "X-Session-ID"

type BookingHandler struct {
	Service *service.BookingService
	Notify  *service.NotifyService
}

func NewBookingHandler(svc *service.BookingService, notify *service.NotifyService) *BookingHandler {
	return &BookingHandler{Service: svc, Notify: notify}
}

func sessionNamespace(w http.ResponseWriter, r *http.Request) string {
	ns := r.Header.Get(SessionHeader)
	if ns == "" {
		ns = uuid.NewString()
	}
	w.Header().Set(SessionHeader, ns)
	return ns
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ns := sessionNamespace(w, r)

	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return
	}

	// Pre-fill requester fields from the identity provider when present.
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		if req.UserName == "" {
			req.UserName = identity.Name
		}
		if req.UserEmail == "" {
			req.UserEmail = identity.Email
		}
	}

	booking, err := h.Service.Submit(r.Context(), ns, req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateBookingResponse{
		Booking:      *booking,
		Notification: string(service.OutcomePending),
		SessionID:    ns,
	})
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ns := sessionNamespace(w, r)
	bookings, err := h.Service.ListBookings(r.Context(), ns)
	if err != nil {
		writeError(w, apperrors.ErrInternal("Could not read bookings"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"bookings": bookings,
	})
}

// GetNotificationOutcome is the secondary read through which the UI
// observes the fire-and-forget dispatch result.
func (h *BookingHandler) GetNotificationOutcome(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	outcome, ok := h.Service.NotificationOutcome(code)
	if !ok {
		writeError(w, apperrors.ErrNotFound("Booking not found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NotificationOutcomeResponse{
		BookingCode: code,
		Outcome:     string(outcome),
	})
}

func (h *BookingHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ns := sessionNamespace(w, r)
	records, err := h.Notify.StoredNotifications(r.Context(), ns)
	if err != nil {
		writeError(w, apperrors.ErrInternal("Could not read notifications"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications": records,
	})
}

func writeBookingError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: verr.Message, Field: verr.Field})
		return
	}
	if errors.Is(err, service.ErrSubmitInFlight) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	var perr *apperrors.PersistenceError
	if errors.As(err, &perr) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Could not save booking, please retry"})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal error"})
}
