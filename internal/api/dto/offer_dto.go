package dto

import "time"

// CreateOfferRequest payload for new offers.
type CreateOfferRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Company     string   `json:"company"`
	Salary      *float64 `json:"salary,omitempty"`
}

// OfferResponse describes a job offer in API responses.
type OfferResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Salary      *float64  `json:"salary,omitempty"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}
