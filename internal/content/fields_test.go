// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"testing"
	"time"
)

func TestResolveText(t *testing.T) {
	empty := ""
	legacy := "Legacy title"

	tests := []struct {
		name  string
		chain []field[string]
		want  string
	}{
		{name: "first wins", chain: []field[string]{text("Translated"), textPtr(&legacy)}, want: "Translated"},
		{name: "empty skipped", chain: []field[string]{text(""), textPtr(&legacy)}, want: "Legacy title"},
		{name: "nil and empty pointers skipped", chain: []field[string]{textPtr(nil), textPtr(&empty)}, want: "fallback"},
		{name: "no chain", chain: nil, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve("fallback", tt.chain...); got != tt.want {
				t.Errorf("resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveIntAndTime(t *testing.T) {
	n := 7
	if got := resolve(0, intPtr(nil), intPtr(&n)); got != 7 {
		t.Errorf("intPtr chain = %d, want 7", got)
	}

	var zero time.Time
	now := time.Now()
	got := resolve(nil, timePtr(&zero), timePtr(&now))
	if got == nil || !got.Equal(now) {
		t.Errorf("timePtr chain = %v, want %v", got, now)
	}
}
