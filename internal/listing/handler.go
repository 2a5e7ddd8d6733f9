// HTTP handlers for the listing service.
//
// Routes:
//
//	GET  /jobs/{id}/head                → head metadata payload (200 or 410 Gone)
//	POST /jobs                          → create posting
//	POST /jobs/{id}/fill                → mark posting filled
//	GET  /jobs/in/{city}                → city jobs page (301s alias slugs)
//	GET  /jobs/{role}/{city}            → role city jobs page (301s alias slugs)
//	GET  /artists/{specialty}/{city}    → artists city page (301s alias slugs)
//	GET  /sitemap.xml                   → canonical-host sitemap
//	GET  /robots.txt                    → robots.txt with canonical Sitemap lines
//	GET  /redirects.json                → deploy-time redirect rules
package listing

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"glowboard/listing-service/internal/model"
	"glowboard/listing-service/internal/routes"
	"glowboard/listing-service/internal/seo"
	"glowboard/listing-service/internal/slug"
	"glowboard/listing-service/internal/visibility"
)

// sitemapCacheKey is where the sweeper stores the rendered sitemap.
const sitemapCacheKey = "sitemap:xml"

// Handler holds shared dependencies. The clock is injectable so visibility
// decisions are testable at fixed instants.
type Handler struct {
	store *Store
	site  seo.Site
	clock func() time.Time
}

// NewHandler returns a configured Handler using the wall clock.
func NewHandler(store *Store, site seo.Site) *Handler {
	return &Handler{store: store, site: site, clock: time.Now}
}

// RegisterRoutes mounts all listing-service routes on r. The {id}/head route
// is registered before the {role}/{city} family so it wins dispatch.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/jobs/{id}/head", h.jobHead).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{id}/fill", h.fillJob).Methods(http.MethodPost)
	r.HandleFunc("/jobs", h.createJob).Methods(http.MethodPost)
	r.HandleFunc("/jobs/in/{city}", h.cityJobs).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{role}/{city}", h.roleCityJobs).Methods(http.MethodGet)
	r.HandleFunc("/artists/{specialty}/{city}", h.artistsCity).Methods(http.MethodGet)
	r.HandleFunc("/sitemap.xml", h.sitemap).Methods(http.MethodGet)
	r.HandleFunc("/robots.txt", h.robotsTXT).Methods(http.MethodGet)
	r.HandleFunc("/redirects.json", h.redirectRules).Methods(http.MethodGet)
}

// ─── Listing head metadata ───────────────────────────────────────────────────

// headResponse is what the page renderer consumes to build the document head.
type headResponse struct {
	State   visibility.State `json:"state"`
	Head    seo.Head         `json:"head"`
	Posting model.JobPosting `json:"posting"`
}

func (h *Handler) jobHead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	now := h.clock()

	p, err := h.store.GetPosting(r.Context(), id)
	if err != nil {
		jsonError(w, "posting not found", http.StatusNotFound)
		return
	}

	// Past the grace period the page is permanently removed: 410, not 404,
	// so crawlers de-list immediately instead of retrying.
	if visibility.ShouldReturn410(*p, now) {
		jsonError(w, "posting gone", http.StatusGone)
		return
	}

	jsonOK(w, headResponse{
		State:   visibility.StateOf(*p, now),
		Head:    seo.HeadFor(*p, h.site, now),
		Posting: *p,
	})
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title          string     `json:"title"`
		Category       string     `json:"category"`
		Location       string     `json:"location"`
		Description    string     `json:"description"`
		EmploymentType string     `json:"employmentType"`
		SalonName      string     `json:"salonName"`
		ExpiresAt      *time.Time `json:"expiresAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := h.store.CreatePosting(r.Context(), model.JobPosting{
		Title:          body.Title,
		Category:       body.Category,
		Location:       body.Location,
		Description:    body.Description,
		EmploymentType: body.EmploymentType,
		SalonName:      body.SalonName,
		ExpiresAt:      body.ExpiresAt,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			jsonError(w, verr.Msg, http.StatusBadRequest)
			return
		}
		log.Printf("[listing] createJob error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	jsonOK(w, p)
}

func (h *Handler) fillJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.store.MarkFilled(r.Context(), id)
	if err != nil {
		jsonError(w, "posting not found", http.StatusNotFound)
		return
	}

	jsonOK(w, p)
}

// ─── Page families with alias canonicalization ───────────────────────────────

// canonicalize 301s alias slugs ("saint-louis-mo") to the canonical path and
// reports whether the response has been written.
func canonicalize(w http.ResponseWriter, r *http.Request) bool {
	canonical, moved := routes.CanonicalFor(r.URL.Path)
	if moved {
		http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	}
	return moved
}

func (h *Handler) cityJobs(w http.ResponseWriter, r *http.Request) {
	if canonicalize(w, r) {
		return
	}
	h.listForCity(w, r, mux.Vars(r)["city"], "")
}

func (h *Handler) roleCityJobs(w http.ResponseWriter, r *http.Request) {
	if canonicalize(w, r) {
		return
	}
	vars := mux.Vars(r)
	h.listForCity(w, r, vars["city"], vars["role"])
}

func (h *Handler) artistsCity(w http.ResponseWriter, r *http.Request) {
	if canonicalize(w, r) {
		return
	}
	// Artists pages reuse the job listings for the specialty in that city.
	vars := mux.Vars(r)
	h.listForCity(w, r, vars["city"], vars["specialty"])
}

// listForCity returns indexable postings whose location slug matches the
// requested city, optionally narrowed by category.
func (h *Handler) listForCity(w http.ResponseWriter, r *http.Request, city, category string) {
	now := h.clock()

	postings, err := h.store.ListPostings(r.Context())
	if err != nil {
		log.Printf("[listing] listForCity error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	matches := make([]model.JobPosting, 0)
	for _, p := range postings {
		if visibility.ShouldNoIndex(p, now) {
			continue
		}
		if slug.Normalize(p.Location) != city {
			continue
		}
		if category != "" && slug.Normalize(p.Category) != category {
			continue
		}
		matches = append(matches, p)
	}

	jsonOK(w, matches)
}

// ─── SEO artifacts ───────────────────────────────────────────────────────────

func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	// Serve the sweeper-cached copy when present; fall back to a live scan.
	if cached, err := h.store.rdb.Get(r.Context(), sitemapCacheKey).Result(); err == nil && cached != "" {
		writeXML(w, cached)
		return
	}

	now := h.clock()
	postings, err := h.store.ListPostings(r.Context())
	if err != nil {
		log.Printf("[listing] sitemap error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	writeXML(w, seo.Sitemap(h.site.Host, IndexablePaths(postings, now)))
}

func (h *Handler) robotsTXT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(seo.RobotsTXT(h.site.Host)))
}

func (h *Handler) redirectRules(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, routes.Rules(h.site.Host))
}

// IndexablePaths returns the canonical detail paths of every posting a
// crawler is allowed to index at the given instant.
func IndexablePaths(postings []model.JobPosting, now time.Time) []string {
	paths := make([]string, 0, len(postings))
	for _, p := range postings {
		if visibility.ShouldNoIndex(p, now) {
			continue
		}
		paths = append(paths, "/jobs/"+p.ID)
	}
	return paths
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeXML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
