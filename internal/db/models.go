package db

import "time"

// Booking statuses. Confirmed and failed are terminal for an attempt;
// finished is set later by the sweep job once the end time has passed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
	StatusFinished  = "finished"
)

// Booking is the persisted reservation record. It is handed to the store by
// value; the workflow keeps no live reference after the append.
type Booking struct {
	Code               string    `json:"id"`
	LotID              int       `json:"lot_id"`
	LotName            string    `json:"parking_lot"`
	LotAddress         string    `json:"address"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	LicensePlate       string    `json:"license_plate"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	UserName           string    `json:"user_name"`
	UserEmail          string    `json:"user_email"`
	UserPhone          string    `json:"user_phone,omitempty"`
	Hours              int       `json:"total_hours"`
	TotalPrice         int       `json:"total_price"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// PaymentMethods maps method tags to display labels.
var PaymentMethods = map[string]string{
	"snapscan": "SnapScan",
	"capitec":  "Capitec Pay",
	"zapper":   "Zapper",
	"eft":      "EFT",
	"card":     "Credit/Debit Card",
}
