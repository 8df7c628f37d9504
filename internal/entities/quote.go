package entities

import "time"

type QuoteRequest struct {
	LotID     int       `json:"lot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type QuoteResponse struct {
	LotID         int    `json:"lot_id"`
	Hours         int    `json:"total_hours"`
	EffectiveRate int    `json:"effective_rate"`
	TotalPrice    int    `json:"total_price"`
	Tier          string `json:"tier"`
	TierLabel     string `json:"tier_label"`
}
