// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

import (
	"testing"

	"annecy/internal/models"
)

func TestNew(t *testing.T) {
	l, err := New("FR", "fr", "en", " es ", "en", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Default() != "fr" {
		t.Errorf("Default() = %q, want %q", l.Default(), "fr")
	}
	got := l.Supported()
	want := []string{"fr", "en", "es"}
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New("", "fr"); err == nil {
		t.Error("expected error for empty default")
	}
	if _, err := New("de", "fr", "en"); err == nil {
		t.Error("expected error for default outside supported set")
	}
}

func TestNormalize(t *testing.T) {
	l := MustNew("fr", "fr", "en", "es")

	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{" es ", "es"},
		{"en-GB", "en"},
		{"es-419", "es"},
		{"de", "fr"},
		{"", "fr"},
		{"not a locale!", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := l.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	l := MustNew("fr", "fr", "en", "es")
	ts := []models.CategoryTranslation{
		{LangCode: "en", Name: "News"},
		{LangCode: "fr", Name: "Actualités"},
	}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{name: "exact match", requested: "fr", want: "Actualités"},
		{name: "exact match en", requested: "en", want: "News"},
		{name: "missing locale falls back to first stored", requested: "es", want: "News"},
		{name: "unsupported normalizes to default", requested: "de", want: "Actualités"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Select(l, ts, tt.requested)
			if !ok {
				t.Fatal("expected a translation")
			}
			if got.Name != tt.want {
				t.Errorf("Select(%q).Name = %q, want %q", tt.requested, got.Name, tt.want)
			}
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	l := MustNew("fr", "fr", "en")

	got, ok := Select(l, []models.PlaceTranslation(nil), "en")
	if ok {
		t.Error("expected ok=false for empty set")
	}
	if got.Name != "" || got.LangCode != "" {
		t.Errorf("expected zero translation, got %+v", got)
	}
}
