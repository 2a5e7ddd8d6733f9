// Package model defines shared data structures for the listing service.
package model

import "time"

// Posting status values as written by the marketplace backend. The column is
// an open string enumeration — unknown values pass through untouched and are
// treated as not filled.
const (
	StatusActive  = "active"
	StatusFilled  = "filled"
	StatusClosed  = "closed"
	StatusExpired = "expired"
)

// JobPosting mirrors a job_postings row. Nullable timestamp columns map to
// pointers; coercion from the raw row happens in the listing store, before
// the value reaches any policy function.
type JobPosting struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Location       string     `json:"location"` // free-form "City, State[, Country]"
	Description    string     `json:"description"` // raw, may contain HTML
	Status         string     `json:"status"`
	EmploymentType string     `json:"employmentType"`
	SalonName      string     `json:"salonName"`
	CreatedAt      *time.Time `json:"createdAt"` // set once at creation, never mutated
	ExpiresAt      *time.Time `json:"expiresAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}
