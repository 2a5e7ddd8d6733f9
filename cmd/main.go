// glowboard-listing-service
//
// Job/listing lifecycle and SEO visibility for the marketplace. Exposes the
// HTTP API used by the page renderer and the edge layer to implement:
//   - listing head metadata (robots, canonical, JSON-LD) with 200/410 selection
//   - 301 canonicalization of alias city slugs across the jobs/artists pages
//   - sitemap.xml / robots.txt on the canonical www host
//   - the deploy-time redirect rules file
//
// A cron sweeper re-derives visibility periodically, publishes
// EVENT_LISTING_GONE to Redis, and keeps the sitemap cache warm.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"glowboard/listing-service/internal/config"
	"glowboard/listing-service/internal/db"
	"glowboard/listing-service/internal/listing"
	"glowboard/listing-service/internal/routes"
	"glowboard/listing-service/internal/seo"
	"glowboard/listing-service/internal/sweeper"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[listing-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[listing-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[listing-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[listing-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[listing-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[listing-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[listing-service] Redis connected ✓")

	site := seo.Site{Host: cfg.SiteHost, Name: cfg.SiteName}
	store := listing.NewStore(pool, rdb)

	// ── Deploy artifacts ─────────────────────────────────────────────────────
	if cfg.RedirectsFile != "" {
		if err := routes.WriteRules(cfg.RedirectsFile, cfg.SiteHost); err != nil {
			log.Fatalf("[listing-service] Redirect rules: %v", err)
		}
		log.Printf("[listing-service] Redirect rules written to %s", cfg.RedirectsFile)
	}

	// ── Visibility sweeper ───────────────────────────────────────────────────
	sw := sweeper.New(store, rdb, site, cfg.SweepIntervalHours)
	if err := sw.Start(ctx); err != nil {
		log.Fatalf("[listing-service] Sweeper: %v", err)
	}
	defer sw.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	r := mux.NewRouter()
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	h := listing.NewHandler(store, site)
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[listing-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[listing-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[listing-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[listing-service] Shutdown error: %v", err)
	}
	log.Println("[listing-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "listing-service",
		"version": version,
	})
}
