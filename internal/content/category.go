// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"github.com/google/uuid"

	"annecy/internal/locale"
	"annecy/internal/models"
)

// LocalizedCategory is a category projected onto one locale.
type LocalizedCategory struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Slug            string    `json:"slug"`
	IconName        string    `json:"icon_name,omitempty"`
	TranslationLang string    `json:"translation_lang"`
}

// CategorySummary is one row of a category sidebar.
type CategorySummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Count int       `json:"count"`
}

// LocalizeCategory projects c onto lang. The name falls back to the
// canonical slug when no translation provides one.
func (s *Service) LocalizeCategory(c *models.Category, lang string) LocalizedCategory {
	tr, ok := locale.Select(s.locales, c.Translations, lang)
	translationLang := s.locales.Default()
	if ok {
		translationLang = tr.LangCode
	}

	return LocalizedCategory{
		ID:              c.ID,
		Name:            resolve(c.Slug, text(tr.Name)),
		Description:     resolve("", textPtr(tr.Description)),
		Slug:            s.CategoryDefaultSlug(c, lang),
		IconName:        c.Icon(),
		TranslationLang: translationLang,
	}
}

// categoryIndex is a localized view of a category list that keeps the
// source order next to the id lookup.
type categoryIndex struct {
	order []LocalizedCategory
	byID  map[uuid.UUID]LocalizedCategory
}

func (s *Service) buildCategoryIndex(cats []models.Category, lang string) categoryIndex {
	idx := categoryIndex{
		order: make([]LocalizedCategory, 0, len(cats)),
		byID:  make(map[uuid.UUID]LocalizedCategory, len(cats)),
	}
	for i := range cats {
		lc := s.LocalizeCategory(&cats[i], lang)
		idx.order = append(idx.order, lc)
		idx.byID[lc.ID] = lc
	}
	return idx
}

func (idx categoryIndex) ids() []uuid.UUID {
	out := make([]uuid.UUID, len(idx.order))
	for i, c := range idx.order {
		out[i] = c.ID
	}
	return out
}

func (idx categoryIndex) get(id *uuid.UUID) (LocalizedCategory, bool) {
	if id == nil {
		return LocalizedCategory{}, false
	}
	c, ok := idx.byID[*id]
	return c, ok
}

// entityTree loads the root category and its direct children.
func (s *Service) entityTree(ctx context.Context, rootID uuid.UUID) (*models.Category, []models.Category, error) {
	cats, err := s.src.Categories(ctx)
	if err != nil {
		return nil, nil, err
	}
	var root *models.Category
	var children []models.Category
	for i := range cats {
		c := cats[i]
		if c.ID == rootID {
			root = &c
		}
		if c.ParentID != nil && *c.ParentID == rootID {
			children = append(children, c)
		}
	}
	return root, children, nil
}

// summaries pairs each indexed category with its item count.
func (idx categoryIndex) summaries(counts map[uuid.UUID]int) []CategorySummary {
	out := make([]CategorySummary, 0, len(idx.order))
	for _, c := range idx.order {
		out = append(out, CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug, Count: counts[c.ID]})
	}
	return out
}
