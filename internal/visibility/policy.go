// Package visibility implements the SEO lifecycle state machine for job
// postings.
//
// State graph:
//
//	Active ──(past validThrough OR marked filled/closed)──► NoIndexed ──(30 days elapse)──► Gone
//
// Transitions are one-directional and purely time-driven. There is no way
// back to Active: re-activating a listing means creating a new posting with
// a fresh created_at, never mutating an old one.
//
// Every function here is a pure function of the posting and the supplied
// clock. Nothing is persisted — no-index and 410 decisions are recomputed on
// every read so they can never drift from the source timestamps.
package visibility

import (
	"strings"
	"time"

	"glowboard/listing-service/internal/model"
)

const (
	// DefaultValidDays is the validity window applied when a posting has no
	// explicit expires_at.
	DefaultValidDays = 45

	// GoneGraceDays is how long a filled or expired posting stays reachable
	// (200, no-index) before the server must answer 410 Gone.
	GoneGraceDays = 30
)

// State is the derived lifecycle position of a posting at a given instant.
type State string

const (
	StateActive    State = "ACTIVE"
	StateNoIndexed State = "NO_INDEXED"
	StateGone      State = "GONE"
)

// ValidThrough returns the posting's effective validity deadline: expires_at
// when set, otherwise created_at plus the default window. A posting with no
// created_at is malformed; it degrades to now rather than failing the render.
func ValidThrough(p model.JobPosting, now time.Time) time.Time {
	if p.ExpiresAt != nil {
		return *p.ExpiresAt
	}
	if p.CreatedAt != nil {
		return p.CreatedAt.AddDate(0, 0, DefaultValidDays)
	}
	return now
}

// IsFilled reports whether the posting's status means the position is taken.
// Both "filled" and "closed" count; matching is case-insensitive and unknown
// statuses are treated as not filled.
func IsFilled(p model.JobPosting) bool {
	switch strings.ToLower(strings.TrimSpace(p.Status)) {
	case model.StatusFilled, model.StatusClosed:
		return true
	}
	return false
}

// ShouldNoIndex is the search-engine visibility gate: filled or expired
// postings must never be indexed, so crawlers are not served dead listings.
func ShouldNoIndex(p model.JobPosting, now time.Time) bool {
	return IsFilled(p) || now.After(ValidThrough(p, now))
}

// ShouldReturn410 reports whether the posting is past its grace period and
// the server must answer 410 Gone instead of rendering the page.
//
// The cutoff basis is updated_at for filled postings (the fill transition
// must set updated_at — see Store.MarkFilled) and validThrough otherwise.
// A filled posting with no updated_at degrades to now, which means its 410
// cutoff resets on every evaluation and it never reaches Gone; the store
// writes updated_at transactionally on every fill precisely to keep that
// from happening.
func ShouldReturn410(p model.JobPosting, now time.Time) bool {
	basis := ValidThrough(p, now)
	if IsFilled(p) {
		if p.UpdatedAt != nil {
			basis = *p.UpdatedAt
		} else {
			basis = now
		}
	}
	return now.After(basis.AddDate(0, 0, GoneGraceDays))
}

// StateOf collapses the two policy gates into the lifecycle state.
func StateOf(p model.JobPosting, now time.Time) State {
	switch {
	case ShouldReturn410(p, now):
		return StateGone
	case ShouldNoIndex(p, now):
		return StateNoIndexed
	}
	return StateActive
}
