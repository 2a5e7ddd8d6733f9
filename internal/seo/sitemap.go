package seo

import "strings"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Sitemap renders a sitemap XML document whose <loc> entries use the
// canonical https://www. host unconditionally, regardless of which host the
// request arrived on.
func Sitemap(host string, paths []string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range paths {
		b.WriteString("  <url><loc>" + CanonicalLink(host, p) + "</loc></url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// RobotsTXT renders robots.txt with literal Sitemap: lines pointing at the
// canonical www sitemap URL.
func RobotsTXT(host string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /auth/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + CanonicalLink(host, "/sitemap.xml") + "\n")
	return b.String()
}
