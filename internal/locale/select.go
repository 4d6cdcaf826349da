// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

// Translation is a per-locale record attached to an entity.
type Translation interface {
	Lang() string
}

// Select picks the translation for requested from ts. The request is first
// normalized against l. When no translation carries that locale the first
// one in stored order is returned; an empty set yields the zero value and
// false. Select never fails, so callers must tolerate empty fields.
func Select[T Translation](l Locales, ts []T, requested string) (T, bool) {
	lang := l.Normalize(requested)
	for _, t := range ts {
		if t.Lang() == lang {
			return t, true
		}
	}
	if len(ts) > 0 {
		return ts[0], true
	}
	var zero T
	return zero, false
}
