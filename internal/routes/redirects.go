package routes

import (
	"encoding/json"
	"os"
	"sort"

	"glowboard/listing-service/internal/slug"
)

// Rule is one declarative redirect in the deploy-time rules file consumed by
// the hosting platform's edge layer. The JSON shape is the platform's:
// {source, destination, permanent, has?}.
type Rule struct {
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	Permanent   bool       `json:"permanent"`
	Has         []HasMatch `json:"has,omitempty"`
}

// HasMatch is a request-matching condition attached to a rule, used for the
// apex host match.
type HasMatch struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// aliasFamilies are the path families whose trailing city slug carries
// alias contractions. :role and :specialty are edge-layer path parameters.
var aliasFamilies = []string{
	"/jobs/in/",
	"/jobs/:role/",
	"/artists/:specialty/",
}

// Rules builds the full canonicalization table for the apex host
// (e.g. "glowboard.com"). Ordering is load-bearing for the edge layer:
//
//  1. apex → www host canonicalization (always first),
//  2. legacy auth paths → canonical auth paths,
//  3. alias city slugs → canonical slugs across every path family.
//
// Every rule is permanent (301).
func Rules(host string) []Rule {
	rules := []Rule{{
		Source:      "/(.*)",
		Destination: "https://www." + host + "/$1",
		Permanent:   true,
		Has:         []HasMatch{{Type: "host", Value: host}},
	}}

	// Legacy auth paths. /auth/sign-in is the only canonical entry point.
	rules = append(rules,
		Rule{Source: "/sign-in", Destination: "/auth/sign-in", Permanent: true},
		Rule{Source: "/sign-in/:path*", Destination: "/auth/sign-in", Permanent: true},
		Rule{Source: "/login", Destination: "/auth/sign-in", Permanent: true},
	)

	// Alias slug families, generated from the slug alias table so the
	// redirect rules can never drift from Normalize.
	aliases := aliasPairs()
	for _, family := range aliasFamilies {
		for _, a := range aliases {
			rules = append(rules, Rule{
				Source:      family + a.alias + "-:city*",
				Destination: family + a.canonical + "-:city*",
				Permanent:   true,
			})
		}
	}

	return rules
}

// WriteRules writes the rules file for host to path, for the hosting
// platform to pick up at deploy time.
func WriteRules(path, host string) error {
	data, err := json.MarshalIndent(Rules(host), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

type aliasPair struct {
	alias     string
	canonical string
}

// aliasPairs returns the slug alias table in deterministic order.
func aliasPairs() []aliasPair {
	m := slug.Aliases()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]aliasPair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, aliasPair{alias: k, canonical: m[k]})
	}
	return pairs
}
