package entities

import "time"

// NotificationRecord is the rendered confirmation document plus its
// delivery outcome. It is derived from a confirmed booking and is not
// authoritative: losing it never corrupts booking state.
type NotificationRecord struct {
	BookingCode string    `json:"booking_id"`
	Recipient   string    `json:"to"`
	Sender      string    `json:"from"`
	Subject     string    `json:"subject"`
	HTML        string    `json:"content"`
	Outcome     string    `json:"outcome"`
	CreatedAt   time.Time `json:"timestamp"`
}
