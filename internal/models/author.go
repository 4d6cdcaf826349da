// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink is one entry of an author's social profile list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Author writes magazine articles.
type Author struct {
	ID              uuid.UUID           `json:"id"`
	Slug            string              `json:"slug"`
	Name            string              `json:"name"`
	ProfileImageURL *string             `json:"profile_image_url,omitempty"`
	SocialLinks     []SocialLink        `json:"social_links"`
	CreatedAt       time.Time           `json:"created_at"`
	Translations    []AuthorTranslation `json:"translations"`
}

// AuthorTranslation holds the localized biography of an author.
type AuthorTranslation struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	LangCode string    `json:"lang_code"`
	Bio      *string   `json:"bio,omitempty"`
	SEOSlug  string    `json:"seo_slug"`
}

func (t AuthorTranslation) Lang() string      { return t.LangCode }
func (t AuthorTranslation) LocalSlug() string { return t.SEOSlug }
