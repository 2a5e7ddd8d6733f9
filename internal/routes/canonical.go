// Package routes derives canonical URLs for the public jobs/artists page
// families and owns the static redirect table that 301s every alias variant
// to its canonical form.
package routes

import (
	"strings"

	"glowboard/listing-service/internal/slug"
)

// Route is a canonical destination. Permanent is always true: any
// non-canonical variant must 301 here, never 302 — these are durable
// canonicalization decisions, not transient routing.
type Route struct {
	Path      string `json:"path"`
	Permanent bool   `json:"permanent"`
}

// CityJobs returns the canonical city jobs page for a free-form city/state
// string, e.g. "Saint Louis, MO" → /jobs/in/st-louis-mo.
func CityJobs(cityState string) Route {
	return Route{Path: "/jobs/in/" + slug.Normalize(cityState), Permanent: true}
}

// RoleCityJobs returns the canonical role-scoped city jobs page,
// e.g. ("nails", "Fort Worth TX") → /jobs/nails/ft-worth-tx. The role comes
// from a closed enumeration and is lowercased only, not slugified.
func RoleCityJobs(role, cityState string) Route {
	return Route{
		Path:      "/jobs/" + strings.ToLower(role) + "/" + slug.Normalize(cityState),
		Permanent: true,
	}
}

// ArtistsCity returns the canonical artists-by-specialty city page,
// e.g. ("nails", "saint-paul-mn") → /artists/nails/st-paul-mn.
func ArtistsCity(specialty, cityState string) Route {
	return Route{
		Path:      "/artists/" + strings.ToLower(specialty) + "/" + slug.Normalize(cityState),
		Permanent: true,
	}
}

// CanonicalFor re-derives the canonical form of a request path in the
// /jobs/in/, /jobs/{role}/ and /artists/{specialty}/ families by normalizing
// the trailing city segment. It returns the canonical path and true when the
// request path was an alias form and must be redirected.
func CanonicalFor(path string) (string, bool) {
	if !strings.HasPrefix(path, "/jobs/") && !strings.HasPrefix(path, "/artists/") {
		return path, false
	}
	i := strings.LastIndex(path, "/")
	if i < 0 || i == len(path)-1 {
		return path, false
	}
	city := path[i+1:]
	normalized := slug.Normalize(city)
	if normalized == city {
		return path, false
	}
	return path[:i+1] + normalized, true
}
