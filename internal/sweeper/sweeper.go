// Package sweeper wires up the cron job that periodically re-derives every
// posting's lifecycle state, announces newly-Gone postings, and refreshes
// the cached sitemap.
//
// The sweep never writes lifecycle state to the database — visibility stays
// a derived property. Its only outputs are Redis events and the sitemap
// cache.
package sweeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"glowboard/listing-service/internal/listing"
	"glowboard/listing-service/internal/seo"
	"glowboard/listing-service/internal/visibility"
)

const (
	sitemapCacheKey = "sitemap:xml"
	goneKeyPrefix   = "listing:gone:"
)

// Sweeper wraps robfig/cron and manages the sweep loop.
type Sweeper struct {
	cron  *cron.Cron
	store *listing.Store
	rdb   *redis.Client
	site  seo.Site
	spec  string // cron spec, e.g. "@every 6h"
}

// New creates a Sweeper that fires every intervalHours hours.
func New(store *listing.Store, rdb *redis.Client, site seo.Site, intervalHours int) *Sweeper {
	return &Sweeper{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		store: store,
		rdb:   rdb,
		site:  site,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one sweep
// immediately so the sitemap cache is warm without waiting for the first
// tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[sweeper] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	log.Println("[sweeper] Cron stopped")
}

// runSweep loads all postings, buckets them by lifecycle state, publishes
// EVENT_LISTING_GONE once per posting that crossed into Gone, and refreshes
// the sitemap cache.
func (s *Sweeper) runSweep(ctx context.Context) {
	sweepID := uuid.New().String()
	now := time.Now()

	postings, err := s.store.ListPostings(ctx)
	if err != nil {
		log.Printf("[sweeper] ListPostings error: %v", err)
		return
	}

	var active, noIndexed, gone int
	for _, p := range postings {
		switch visibility.StateOf(p, now) {
		case visibility.StateGone:
			gone++
			s.announceGone(ctx, sweepID, p.ID)
		case visibility.StateNoIndexed:
			noIndexed++
		default:
			active++
		}
	}

	// Refresh the sitemap cache served by GET /sitemap.xml.
	xml := seo.Sitemap(s.site.Host, listing.IndexablePaths(postings, now))
	if err := s.rdb.Set(ctx, sitemapCacheKey, xml, 0).Err(); err != nil {
		log.Printf("[sweeper] sitemap cache set error: %v", err)
	}

	log.Printf("[sweeper] Sweep %s done — active=%d noIndexed=%d gone=%d",
		sweepID, active, noIndexed, gone)
}

// announceGone publishes EVENT_LISTING_GONE exactly once per posting, using
// a Redis SETNX marker to dedupe across sweeps.
func (s *Sweeper) announceGone(ctx context.Context, sweepID, postingID string) {
	set, err := s.rdb.SetNX(ctx, goneKeyPrefix+postingID, sweepID, 0).Result()
	if err != nil {
		log.Printf("[sweeper] SetNX error for posting %s: %v", postingID, err)
		return
	}
	if !set {
		return // already announced by an earlier sweep
	}

	event, _ := json.Marshal(map[string]string{
		"type":      "EVENT_LISTING_GONE",
		"listingId": postingID,
		"sweepId":   sweepID,
	})
	if err := s.rdb.Publish(ctx, "EVENT_LISTING_GONE", event).Err(); err != nil {
		log.Printf("[sweeper] publish EVENT_LISTING_GONE failed: %v", err)
	}
}
