// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Place is an accommodation listing of the directory entity.
type Place struct {
	ID           uuid.UUID             `json:"id"`
	CategoryID   *uuid.UUID            `json:"category_id"`
	MainImageURL *string               `json:"main_image_url,omitempty"`
	IsFeatured   bool                  `json:"is_featured"`
	Status       ContentStatus         `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Legacy       PlaceLegacy           `json:"legacy"`
	Translations []PlaceTranslation    `json:"translations"`
	Details      *DetailsAccommodation `json:"details,omitempty"`
}

// PlaceLegacy groups the nullable flat columns of a place.
type PlaceLegacy struct {
	Name    *string `json:"name,omitempty"`
	Summary *string `json:"summary,omitempty"`
	SEOSlug *string `json:"seo_slug,omitempty"`
	Slug    *string `json:"slug,omitempty"`
}

// PlaceTranslation is the per-locale content of a place.
type PlaceTranslation struct {
	ID          uuid.UUID `json:"id"`
	PlaceID     uuid.UUID `json:"place_id"`
	LangCode    string    `json:"lang_code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SEOSlug     string    `json:"seo_slug"`
}

func (t PlaceTranslation) Lang() string      { return t.LangCode }
func (t PlaceTranslation) LocalSlug() string { return t.SEOSlug }

// DetailsAccommodation carries the booking facts of a place. Amenities is
// kept raw: editors have stored it as a list, a list of labelled objects,
// a comma separated string and a key/value map over time.
type DetailsAccommodation struct {
	PlaceID       uuid.UUID           `json:"place_id"`
	PricePerNight decimal.NullDecimal `json:"price_per_night"`
	Capacity      *int                `json:"capacity,omitempty"`
	Amenities     json.RawMessage     `json:"amenities,omitempty"`
	CheckInTime   *string             `json:"check_in_time,omitempty"`
	CheckOutTime  *string             `json:"check_out_time,omitempty"`
}
