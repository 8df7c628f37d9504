package entities

// BookingEmailData feeds the confirmation template. All fields are
// pre-formatted so the render is deterministic for a given booking.
type BookingEmailData struct {
	UserName           string
	BookingCode        string
	LotName            string
	LotAddress         string
	DateFormatted      string
	StartTimeFormatted string
	EndTimeFormatted   string
	Hours              int
	LicensePlate       string
	PaymentMethod      string
	TotalPrice         int
}

// EmailMessage is a rendered confirmation ready for a delivery channel.
type EmailMessage struct {
	Recipient     string `json:"to"`
	RecipientName string `json:"to_name"`
	Subject       string `json:"subject"`
	HTML          string `json:"html"`
	Plain         string `json:"plain"`
	Sender        string `json:"from"`
	SenderName    string `json:"from_name"`
}
