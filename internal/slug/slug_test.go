// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"testing"

	"annecy/internal/models"
)

// TestGenerate exercises the slug generator with typical titles, special
// characters and accented input.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Hello World", want: "hello-world"},
		{name: "title with year", input: "Hello World 2026", want: "hello-world-2026"},
		{name: "punctuation marks", input: "Hello, World! How's it going?", want: "hello-world-hows-it-going"},
		{name: "ampersand and at sign", input: "Rock & Roll @ the Arena", want: "rock-roll-the-arena"},
		{name: "french accents folded", input: "Hébergements à Annecy", want: "hebergements-a-annecy"},
		{name: "spanish accents folded", input: "Alojamientos en España", want: "alojamientos-en-espana"},
		{name: "apostrophe in french", input: "Chambres d'hôtes", want: "chambres-dhotes"},
		{name: "leading and trailing spaces", input: "   padded   ", want: "padded"},
		{name: "existing hyphens collapse", input: "bon---plans", want: "bon-plans"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that slugifying a slug is a no-op.
func TestGenerate_Idempotent(t *testing.T) {
	inputs := []string{"Hello World", "Le Lac d'Annecy en été", "bon-plans"}
	for _, in := range inputs {
		once := Generate(in)
		if twice := Generate(once); twice != once {
			t.Errorf("Generate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Lake "); got != "lake" {
		t.Errorf("Normalize = %q, want %q", got, "lake")
	}
}

// TestMatches covers precedence between locale SEO slugs and the canonical slug.
func TestMatches(t *testing.T) {
	ts := []models.CategoryTranslation{
		{LangCode: "en", SEOSlug: "lake"},
		{LangCode: "fr", SEOSlug: "lac"},
	}

	tests := []struct {
		name      string
		lang      string
		candidate string
		want      bool
	}{
		{name: "locale seo slug", lang: "en", candidate: "lake", want: true},
		{name: "canonical slug in any locale", lang: "en", candidate: "lac", want: true},
		{name: "other locale seo slug rejected", lang: "fr", candidate: "lake", want: false},
		{name: "case and space folded", lang: "en", candidate: "  LAKE ", want: true},
		{name: "empty candidate", lang: "en", candidate: "", want: false},
		{name: "unknown slug", lang: "en", candidate: "mountain", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(ts, "lac", tt.lang, tt.candidate); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.lang, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchesEmptyCanonical(t *testing.T) {
	if Matches([]models.CategoryTranslation(nil), "", "en", "  ") {
		t.Error("blank candidate must not match a blank canonical slug")
	}
}

func TestMatchTranslation(t *testing.T) {
	ts := []models.PlaceTranslation{
		{LangCode: "fr", SEOSlug: "hotel-du-lac", Name: "Hôtel du Lac"},
		{LangCode: "en", SEOSlug: "lake-hotel", Name: "Lake Hotel"},
	}

	got, ok := MatchTranslation(ts, "en", "Lake-Hotel", false)
	if !ok || got.Name != "Lake Hotel" {
		t.Errorf("MatchTranslation(en) = %+v, %v", got, ok)
	}

	if _, ok := MatchTranslation(ts, "en", "hotel-du-lac", false); ok {
		t.Error("fr slug must not match when restricted to en")
	}

	got, ok = MatchTranslation(ts, "en", "hotel-du-lac", true)
	if !ok || got.LangCode != "fr" {
		t.Errorf("MatchTranslation(any) = %+v, %v", got, ok)
	}
}
