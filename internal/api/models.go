package api

import (
	"encoding/json"
	"net/http"

	"parksmart/internal/db"
	apperrors "parksmart/internal/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateBookingResponse struct {
	Booking      db.Booking `json:"booking"`
	Notification string     `json:"notification"`
	SessionID    string     `json:"session_id"`
}

type NotificationOutcomeResponse struct {
	BookingCode string `json:"booking_id"`
	Outcome     string `json:"outcome"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, err *apperrors.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Message})
}
