package slug_test

import (
	"testing"

	"glowboard/listing-service/internal/slug"
)

// ── Normalize — canonical vectors ──────────────────────────────────────────

func TestNormalize_AliasContraction(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"saint louis mo", "st-louis-mo"},
		{"fort worth tx", "ft-worth-tx"},
		{"saint-louis-mo", "st-louis-mo"},
		{"fort-worth-tx", "ft-worth-tx"},
		{"Saint Paul, MN", "st-paul-mn"},
		{"Fort Worth, TX", "ft-worth-tx"},
	}
	for _, c := range cases {
		if got := slug.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_WhitespaceAndCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Los  Angeles  CA", "los-angeles-ca"},
		{"  New York NY  ", "new-york-ny"},
		{"MIAMI FL", "miami-fl"},
		{"austin\ttx", "austin-tx"},
	}
	for _, c := range cases {
		if got := slug.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_PunctuationDropped(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"St. Louis, MO", "st-louis-mo"},
		{"Winston-Salem, NC", "winston-salem-nc"},
		{"Coeur d'Alene ID", "coeur-dalene-id"},
	}
	for _, c := range cases {
		if got := slug.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Aliases are whole-token matched — words merely containing "saint" or
// "fort" must pass through untouched.
func TestNormalize_AliasIsWholeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"saintly heights ca", "saintly-heights-ca"},
		{"frankfort ky", "frankfort-ky"},
		{"fortuna ca", "fortuna-ca"},
	}
	for _, c := range cases {
		if got := slug.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_EmptyAndDegenerate(t *testing.T) {
	for _, in := range []string{"", "   ", "---", " - - "} {
		if got := slug.Normalize(in); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty string", in, got)
		}
	}
}

// ── Normalize — idempotence ────────────────────────────────────────────────

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"saint louis mo",
		"fort worth tx",
		"Saint Paul, MN",
		"Los  Angeles  CA",
		"st-louis-mo",
		"saintly heights ca",
		"",
		"  ",
		"Coeur d'Alene ID",
		"FORT-WORTH-TX",
	}
	for _, in := range inputs {
		once := slug.Normalize(in)
		twice := slug.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

// ── Aliases ────────────────────────────────────────────────────────────────

func TestAliases_ReturnsCopy(t *testing.T) {
	a := slug.Aliases()
	if a["saint"] != "st" || a["fort"] != "ft" {
		t.Fatalf("Aliases() = %v, want saint→st and fort→ft", a)
	}

	// Mutating the returned map must not affect Normalize.
	a["saint"] = "corrupted"
	if got := slug.Normalize("saint louis mo"); got != "st-louis-mo" {
		t.Errorf("Normalize affected by mutation of Aliases() copy: got %q", got)
	}
}
