package listing_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"glowboard/listing-service/internal/listing"
	"glowboard/listing-service/internal/model"
	"glowboard/listing-service/internal/seo"
)

var now = time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)

func ts(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// ── IndexablePaths ─────────────────────────────────────────────────────────

func TestIndexablePaths_FiltersNoIndexed(t *testing.T) {
	postings := []model.JobPosting{
		{ID: "fresh", Status: model.StatusActive, CreatedAt: ts(2025, 8, 1)},
		{ID: "filled", Status: model.StatusFilled, CreatedAt: ts(2025, 8, 1)},
		{ID: "expired", Status: model.StatusActive, CreatedAt: ts(2025, 6, 1)},
	}

	paths := listing.IndexablePaths(postings, now)
	if len(paths) != 1 || paths[0] != "/jobs/fresh" {
		t.Errorf("IndexablePaths = %v, want [/jobs/fresh]", paths)
	}
}

func TestIndexablePaths_Empty(t *testing.T) {
	if paths := listing.IndexablePaths(nil, now); len(paths) != 0 {
		t.Errorf("IndexablePaths(nil) = %v, want empty", paths)
	}
}

// ── Alias slug canonicalization at request time ────────────────────────────

// Alias city slugs must 301 to the canonical path before any data access —
// the handler never reaches the store for these requests.
func TestPageFamilies_AliasSlugRedirects(t *testing.T) {
	h := listing.NewHandler(listing.NewStore(nil, nil), seo.Site{Host: "glowboard.com", Name: "Glowboard"})
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	cases := []struct {
		path string
		want string
	}{
		{"/jobs/in/saint-louis-mo", "/jobs/in/st-louis-mo"},
		{"/jobs/nails/fort-worth-tx", "/jobs/nails/ft-worth-tx"},
		{"/artists/hair/saint-paul-mn", "/artists/hair/st-paul-mn"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusMovedPermanently {
			t.Errorf("GET %s status = %d, want 301", c.path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != c.want {
			t.Errorf("GET %s redirects to %q, want %q", c.path, loc, c.want)
		}
	}
}

// robots.txt is static and must always point crawlers at the canonical
// www sitemap.
func TestRobotsTXTEndpoint(t *testing.T) {
	h := listing.NewHandler(listing.NewStore(nil, nil), seo.Site{Host: "glowboard.com", Name: "Glowboard"})
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /robots.txt status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sitemap: https://www.glowboard.com/sitemap.xml") {
		t.Errorf("robots.txt body missing canonical Sitemap line:\n%s", body)
	}
}

// redirect rules served over HTTP must match the deploy-time table.
func TestRedirectRulesEndpoint(t *testing.T) {
	h := listing.NewHandler(listing.NewStore(nil, nil), seo.Site{Host: "glowboard.com", Name: "Glowboard"})
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/redirects.json", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /redirects.json status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `https://www.glowboard.com/$1`) {
		t.Error("redirect rules response missing the apex→www destination")
	}
}
