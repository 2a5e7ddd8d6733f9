// Package seo emits the document-head metadata for listing pages: robots
// directives, canonical links, the schema.org JobPosting structured-data
// block, and the sitemap/robots.txt artifacts.
package seo

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripHTML renders possibly HTML-bearing text to plain text: every <...>
// tag is removed and whitespace runs collapse to single spaces. Structured
// data must never carry markup, so descriptions pass through here before
// embedding.
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
