// Package slug converts free-form city/state text into canonical,
// alias-resolved URL slugs.
//
// Two inputs that alias-normalize to the same slug refer to the same
// canonical resource: "Saint Louis, MO", "St. Louis MO" and "saint-louis-mo"
// all become "st-louis-mo".
package slug

import "strings"

// aliases maps whole place-name tokens to their canonical contraction.
// Matching is token-wise, so "saintly" is never rewritten. The substitution
// is unconditional — a town literally named "Saint" would be rewritten too.
var aliases = map[string]string{
	"saint": "st",
	"fort":  "ft",
}

// Aliases returns a copy of the alias table. The redirect table is generated
// from it so the two can never drift apart.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Normalize converts s into a lowercase dash-separated slug: whitespace and
// dash runs become a single dash, punctuation is dropped, and alias tokens
// are contracted. Pure, total and idempotent — any input (including empty)
// yields a string, and Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := cur.String()
		if canonical, ok := aliases[tok]; ok {
			tok = canonical
		}
		tokens = append(tokens, tok)
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			cur.WriteRune(r)
		case r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			// punctuation ("St." commas) is dropped, not a separator
		}
	}
	flush()

	return strings.Join(tokens, "-")
}
