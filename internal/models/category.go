// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a node in the category hierarchy. A category without
// a parent is a root category and stands for a whole entity (magazine,
// accommodation directory).
type Category struct {
	ID           uuid.UUID             `json:"id"`
	Slug         string                `json:"slug"`
	ParentID     *uuid.UUID            `json:"parent_id"`
	DisplayOrder int                   `json:"display_order"`
	IsActive     bool                  `json:"is_active"`
	IconName     *string               `json:"icon_name,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Translations []CategoryTranslation `json:"translations"`
}

// IsRoot reports whether the category sits at the top of the hierarchy.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Icon returns the icon name or an empty string.
func (c *Category) Icon() string {
	if c.IconName == nil {
		return ""
	}
	return *c.IconName
}

// CategoryTranslation holds the per-locale name and SEO slug of a category.
type CategoryTranslation struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	LangCode    string    `json:"lang_code"`
	Name        string    `json:"name"`
	SEOSlug     string    `json:"seo_slug"`
	Description *string   `json:"description,omitempty"`
}

func (t CategoryTranslation) Lang() string      { return t.LangCode }
func (t CategoryTranslation) LocalSlug() string { return t.SEOSlug }
