// Package listing contains the job-posting storage layer and the HTTP
// surface of the listing service. It is the boundary where loosely-typed
// database rows are coerced into model.JobPosting before any policy
// function sees them.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"glowboard/listing-service/internal/model"
)

const postingColumns = `id, title, category, location, description, status,
	       COALESCE(employment_type, ''), COALESCE(salon_name, ''),
	       created_at, expires_at, updated_at`

// Store encapsulates all job_postings access.
// It has no dependency on net/http — it can be used by any transport layer.
type Store struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{pool: pool, rdb: rdb}
}

// GetPosting returns a single posting by ID.
func (s *Store) GetPosting(ctx context.Context, id string) (*model.JobPosting, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListPostings returns every posting, newest first. Visibility is derived at
// read time by the callers — it is never persisted, so there is no WHERE
// clause on lifecycle state here.
func (s *Store) ListPostings(ctx context.Context) ([]model.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+postingColumns+` FROM job_postings ORDER BY created_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("listPostings query: %w", err)
	}
	defer rows.Close()

	postings := make([]model.JobPosting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("listPostings scan: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, rows.Err()
}

// CreatePosting inserts a new active posting and returns the stored row.
// created_at is set exactly once here and never mutated afterwards.
func (s *Store) CreatePosting(ctx context.Context, p model.JobPosting) (*model.JobPosting, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}
	if strings.TrimSpace(p.Location) == "" {
		return nil, &ValidationError{Msg: "location is required"}
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO job_postings
		   (id, title, category, location, description, status,
		    employment_type, salon_name, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9)
		 RETURNING `+postingColumns,
		uuid.New().String(), p.Title, p.Category, p.Location, p.Description,
		model.StatusActive, p.EmploymentType, p.SalonName, p.ExpiresAt,
	)
	stored, err := scanPosting(row)
	if err != nil {
		return nil, fmt.Errorf("createPosting: %w", err)
	}
	return stored, nil
}

// MarkFilled transitions a posting to filled status. updated_at is written in
// the same statement — the 410 grace period for filled postings is measured
// from it, so the two must never be updated separately.
func (s *Store) MarkFilled(ctx context.Context, id string) (*model.JobPosting, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE job_postings
		 SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+postingColumns,
		model.StatusFilled, id,
	)
	p, err := scanPosting(row)
	if err != nil {
		return nil, ErrNotFound
	}

	// Notify downstream consumers (sitemap refresh, cache purge) — non-fatal.
	event, _ := json.Marshal(map[string]string{
		"type":      "EVENT_LISTING_FILLED",
		"listingId": id,
	})
	if err := s.rdb.Publish(ctx, "EVENT_LISTING_FILLED", event).Err(); err != nil {
		slog.Warn("publish EVENT_LISTING_FILLED failed", "err", err)
	}

	return p, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPosting coerces one row into a JobPosting. Nullable timestamps scan
// into pointers; missing created_at stays nil and is degraded to "now" by
// the visibility policy, never here.
func scanPosting(row rowScanner) (*model.JobPosting, error) {
	var p model.JobPosting
	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Location, &p.Description, &p.Status,
		&p.EmploymentType, &p.SalonName,
		&p.CreatedAt, &p.ExpiresAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = fmt.Errorf("posting not found")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
