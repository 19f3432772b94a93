package domain

import "time"

// JobOffer is the resource guarded by the ownership rule: only the recorded
// owner or an admin may delete it.
type JobOffer struct {
	ID            int64
	Title         string
	Description   string
	Company       string
	Salary        *float64
	OwnerID       string
	OwnerUsername string
	CreatedAt     time.Time
}
