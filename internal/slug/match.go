// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

// Localized is a translation record carrying a locale-specific SEO slug.
type Localized interface {
	Lang() string
	LocalSlug() string
}

// Matches reports whether candidate designates an entity whose canonical
// slug is canonical and whose translations are ts. The translation of
// lang is checked first; the canonical slug is accepted for any locale.
// An empty candidate never matches.
func Matches[T Localized](ts []T, canonical, lang, candidate string) bool {
	want := Normalize(candidate)
	if want == "" {
		return false
	}
	for _, t := range ts {
		if t.Lang() == lang && Normalize(t.LocalSlug()) == want {
			return true
		}
	}
	return Normalize(canonical) == want
}

// MatchTranslation returns the translation whose SEO slug equals candidate.
// Only translations of lang are considered unless anyLocale is set.
func MatchTranslation[T Localized](ts []T, lang, candidate string, anyLocale bool) (T, bool) {
	want := Normalize(candidate)
	if want != "" {
		for _, t := range ts {
			if (anyLocale || t.Lang() == lang) && Normalize(t.LocalSlug()) == want {
				return t, true
			}
		}
	}
	var zero T
	return zero, false
}
