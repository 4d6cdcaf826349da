// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package locale holds the site's locale configuration and the translation
// selector used by every localized read model. The default locale is always
// passed explicitly; nothing in this package assumes a particular language.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locales is the fixed set of supported locale codes plus the default one.
// The zero value is not usable; build it with New.
type Locales struct {
	def       string
	supported []string
	index     map[string]struct{}
}

// New returns a locale set. The default locale must be part of supported.
// Codes are stored lowercased in the order given.
func New(def string, supported ...string) (Locales, error) {
	def = strings.ToLower(strings.TrimSpace(def))
	if def == "" {
		return Locales{}, fmt.Errorf("locale: default locale is empty")
	}

	l := Locales{def: def, index: make(map[string]struct{}, len(supported))}
	for _, code := range supported {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := l.index[code]; dup {
			continue
		}
		l.index[code] = struct{}{}
		l.supported = append(l.supported, code)
	}

	if _, ok := l.index[def]; !ok {
		return Locales{}, fmt.Errorf("locale: default %q is not in supported set %v", def, l.supported)
	}
	return l, nil
}

// MustNew is like New but panics on an invalid configuration. Intended for
// package-level fixtures and tests.
func MustNew(def string, supported ...string) Locales {
	l, err := New(def, supported...)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the fallback locale code.
func (l Locales) Default() string {
	return l.def
}

// Supported returns a copy of the supported locale codes.
func (l Locales) Supported() []string {
	out := make([]string, len(l.supported))
	copy(out, l.supported)
	return out
}

// IsSupported reports whether code is exactly one of the supported codes.
func (l Locales) IsSupported(code string) bool {
	_, ok := l.index[code]
	return ok
}

// Normalize maps a requested locale onto a supported code. Region and
// script subtags are dropped ("en-GB" becomes "en"); anything that does
// not reduce to a supported base language becomes the default.
func (l Locales) Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if l.IsSupported(code) {
		return code
	}
	if code == "" {
		return l.def
	}

	tag, err := language.Parse(code)
	if err != nil {
		return l.def
	}
	base, _ := tag.Base()
	if b := base.String(); l.IsSupported(b) {
		return b
	}
	return l.def
}
