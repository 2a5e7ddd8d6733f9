package seo

import (
	"encoding/json"
	"html"
	"strings"
	"time"

	"glowboard/listing-service/internal/model"
	"glowboard/listing-service/internal/visibility"
)

// Robots directives. Account-only pages (sign-in/sign-up) always carry
// nofollow regardless of any listing state.
const (
	RobotsIndexable   = "index, follow"
	RobotsNoIndex     = "noindex, follow"
	RobotsAccountPage = "noindex, nofollow"
)

// Robots returns the robots meta directive for a listing page.
func Robots(p model.JobPosting, now time.Time) string {
	if visibility.ShouldNoIndex(p, now) {
		return RobotsNoIndex
	}
	return RobotsIndexable
}

// CanonicalLink returns the absolute canonical URL for a site-relative path.
// The host is always the https://www. form — never the bare apex — and any
// query string is dropped, so a canonical can never carry a redirect= loop
// back at an auth path.
func CanonicalLink(host, path string) string {
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "https://www." + host + path
}

// Head is the complete document-head payload for one listing render. The
// whole value is rebuilt on every call, so repeated renders of the same
// posting are idempotent — there is nothing to accumulate.
type Head struct {
	Title     string   `json:"title"`
	Robots    string   `json:"robots"`
	Canonical string   `json:"canonical"`
	JSONLD    Document `json:"jsonLd"`
}

// HeadFor assembles the head payload for a posting.
func HeadFor(p model.JobPosting, site Site, now time.Time) Head {
	return Head{
		Title:     p.Title + " — " + site.Name,
		Robots:    Robots(p, now),
		Canonical: CanonicalLink(site.Host, "/jobs/"+p.ID),
		JSONLD:    JobPostingLD(p, site, now),
	}
}

// HTML renders the head as markup: title, robots meta, canonical link and
// exactly one JSON-LD script block.
func (h Head) HTML() string {
	ld, _ := json.Marshal(h.JSONLD)

	var b strings.Builder
	b.WriteString("<title>" + html.EscapeString(h.Title) + "</title>\n")
	b.WriteString(`<meta name="robots" content="` + h.Robots + "\">\n")
	b.WriteString(`<link rel="canonical" href="` + h.Canonical + "\">\n")
	b.WriteString(`<script type="application/ld+json">` + string(ld) + "</script>\n")
	return b.String()
}
