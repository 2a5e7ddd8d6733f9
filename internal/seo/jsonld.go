package seo

import (
	"time"

	"glowboard/listing-service/internal/model"
	"glowboard/listing-service/internal/visibility"
)

// Site identifies the marketplace for canonical links and structured data.
// Host is the apex form ("glowboard.com"); canonical output always carries
// the www form.
type Site struct {
	Host string
	Name string
}

// Document is the schema.org JobPosting structured-data block embedded in a
// listing page head.
type Document struct {
	Context            string        `json:"@context"`
	Type               string        `json:"@type"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	DatePosted         string        `json:"datePosted"`
	ValidThrough       string        `json:"validThrough"`
	EmploymentType     string        `json:"employmentType"`
	HiringOrganization Organization  `json:"hiringOrganization"`
	JobLocation        Place         `json:"jobLocation"`
	Identifier         PropertyValue `json:"identifier"`
	URL                string        `json:"url"`
}

// Organization is the hiring salon or business.
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Place wraps the posting's free-form location string.
type Place struct {
	Type    string `json:"@type"`
	Address string `json:"address"`
}

// PropertyValue is the posting identifier: site name plus opaque job id.
type PropertyValue struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// JobPostingLD builds the structured-data document for a posting. Malformed
// postings degrade rather than fail: a missing created_at falls back to now
// for datePosted, mirroring the visibility policy.
func JobPostingLD(p model.JobPosting, site Site, now time.Time) Document {
	posted := now
	if p.CreatedAt != nil {
		posted = *p.CreatedAt
	}

	employment := p.EmploymentType
	if employment == "" {
		employment = "FULL_TIME"
	}

	org := p.SalonName
	if org == "" {
		org = site.Name
	}

	return Document{
		Context:        "https://schema.org",
		Type:           "JobPosting",
		Title:          p.Title,
		Description:    StripHTML(p.Description),
		DatePosted:     posted.UTC().Format(time.RFC3339),
		ValidThrough:   visibility.ValidThrough(p, now).UTC().Format(time.RFC3339),
		EmploymentType: employment,
		HiringOrganization: Organization{
			Type: "Organization",
			Name: org,
		},
		JobLocation: Place{
			Type:    "Place",
			Address: p.Location,
		},
		Identifier: PropertyValue{
			Type:  "PropertyValue",
			Name:  site.Name,
			Value: p.ID,
		},
		URL: CanonicalLink(site.Host, "/jobs/"+p.ID),
	}
}
