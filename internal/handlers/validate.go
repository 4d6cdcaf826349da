// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"unicode/utf8"
)

// Limits on raw path input. Anything beyond them cannot match stored data.
const (
	maxLangLen    = 10
	maxSegmentLen = 500
)

// validLang reports whether lang looks like a locale code: ASCII letters
// with an optional region part.
func validLang(lang string) bool {
	if lang == "" || len(lang) > maxLangLen {
		return false
	}
	for i := 0; i < len(lang); i++ {
		c := lang[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case (c == '-' || c == '_') && i > 0:
		default:
			return false
		}
	}
	return true
}

// validSegments checks every slug segment is valid UTF-8 and not longer
// than the widest slug column.
func validSegments(segments []string) bool {
	for _, s := range segments {
		if !utf8.ValidString(s) || utf8.RuneCountInString(s) > maxSegmentLen {
			return false
		}
	}
	return true
}
