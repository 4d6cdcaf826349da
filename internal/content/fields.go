// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"time"

	"github.com/shopspring/decimal"
)

// field is one accessor in a fallback chain. It reports whether it holds
// a usable value.
type field[T any] func() (T, bool)

// resolve evaluates chain in order and returns the first usable value, or
// fallback when none is.
func resolve[T any](fallback T, chain ...field[T]) T {
	for _, f := range chain {
		if v, ok := f(); ok {
			return v
		}
	}
	return fallback
}

// text accepts a non-empty string.
func text(s string) field[string] {
	return func() (string, bool) { return s, s != "" }
}

// textPtr accepts a non-nil, non-empty string.
func textPtr(p *string) field[string] {
	return func() (string, bool) {
		if p == nil || *p == "" {
			return "", false
		}
		return *p, true
	}
}

// intPtr accepts a non-nil int.
func intPtr(p *int) field[int] {
	return func() (int, bool) {
		if p == nil {
			return 0, false
		}
		return *p, true
	}
}

// timePtr accepts a non-nil, non-zero time.
func timePtr(p *time.Time) field[*time.Time] {
	return func() (*time.Time, bool) {
		if p == nil || p.IsZero() {
			return nil, false
		}
		return p, true
	}
}

// price accepts a valid decimal.
func price(d decimal.NullDecimal) field[decimal.NullDecimal] {
	return func() (decimal.NullDecimal, bool) { return d, d.Valid }
}
