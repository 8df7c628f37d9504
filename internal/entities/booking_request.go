package entities

import "time"

// BookingRequest is one reservation attempt as submitted by the form. Name
// and email may be pre-filled from the identity provider; manual entry
// works the same.
type BookingRequest struct {
	LotID         int       `json:"lot_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserPhone     string    `json:"user_phone,omitempty"`
	LicensePlate  string    `json:"license_plate"`
	PaymentMethod string    `json:"payment_method"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}
