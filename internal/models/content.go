// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentStatus represents the publishing state of an article or place.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Article is a magazine entry. Its translations are stored in their own
// table and referenced by id, so they are resolved in a separate batch.
type Article struct {
	ID               uuid.UUID     `json:"id"`
	CategoryID       *uuid.UUID    `json:"category_id"`
	AuthorID         *uuid.UUID    `json:"author_id"`
	FeaturedImageURL *string       `json:"featured_image_url,omitempty"`
	PublicationDate  *time.Time    `json:"publication_date,omitempty"`
	ReadTimeMinutes  *int          `json:"read_time_minutes,omitempty"`
	ViewCount        *int          `json:"view_count,omitempty"`
	IsFeatured       bool          `json:"is_featured"`
	Status           ContentStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Legacy holds the pre-translation flat columns, still populated on
	// older rows.
	Legacy ArticleLegacy `json:"legacy"`

	TranslationIDs []uuid.UUID `json:"translation_ids"`
	RelatedIDs     []uuid.UUID `json:"related_ids"`
	RelatedToIDs   []uuid.UUID `json:"related_to_ids"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ContentStatusPublished
}

// ArticleLegacy groups the nullable flat columns of an article.
type ArticleLegacy struct {
	Title            *string `json:"title,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	Body             *string `json:"body,omitempty"`
	SEOSlug          *string `json:"seo_slug,omitempty"`
	FeaturedImageAlt *string `json:"featured_image_alt,omitempty"`
}

// ArticleTranslation is the per-locale content of an article.
type ArticleTranslation struct {
	ID               uuid.UUID `json:"id"`
	ArticleID        uuid.UUID `json:"article_id"`
	LangCode         string    `json:"lang_code"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	Content          *string   `json:"content,omitempty"`
	FeaturedImageAlt *string   `json:"featured_image_alt,omitempty"`
	SEOSlug          string    `json:"seo_slug"`
	CreatedAt        time.Time `json:"created_at"`
}

func (t ArticleTranslation) Lang() string      { return t.LangCode }
func (t ArticleTranslation) LocalSlug() string { return t.SEOSlug }
