// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"annecy/internal/locale"
	"annecy/internal/models"
	"annecy/internal/slug"
)

// ArticleMatch is an article found by URL slug. Translation is nil when
// the article matched through its legacy flat slug.
type ArticleMatch struct {
	Article     *models.Article
	Translation *models.ArticleTranslation
}

// PlaceMatch is a place found by URL slug. Translation is nil when the
// place matched through its flat slug.
type PlaceMatch struct {
	Place       *models.Place
	Translation *models.PlaceTranslation
}

// MatchesCategorySlug reports whether candidate designates c under lang:
// the SEO slug of the lang translation first, then the canonical slug.
func (s *Service) MatchesCategorySlug(c *models.Category, lang, candidate string) bool {
	return slug.Matches(c.Translations, c.Slug, lang, candidate)
}

// FindRootCategoryBySlug returns the root category matching candidate, or
// nil when none does.
func (s *Service) FindRootCategoryBySlug(ctx context.Context, lang, candidate string) (*models.Category, error) {
	return s.findCategory(ctx, lang, candidate, func(c *models.Category) bool {
		return c.IsRoot()
	})
}

// FindChildCategoryBySlug returns the direct child of parentID matching
// candidate, or nil when none does.
func (s *Service) FindChildCategoryBySlug(ctx context.Context, parentID uuid.UUID, lang, candidate string) (*models.Category, error) {
	if parentID == uuid.Nil {
		return nil, nil
	}
	return s.findCategory(ctx, lang, candidate, func(c *models.Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	})
}

func (s *Service) findCategory(ctx context.Context, lang, candidate string, keep func(*models.Category) bool) (*models.Category, error) {
	lang = s.locales.Normalize(lang)
	cats, err := s.src.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	for i := range cats {
		c := &cats[i]
		if keep(c) && s.MatchesCategorySlug(c, lang, candidate) {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

// CategoryByID returns the category with id, or nil.
func (s *Service) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.src.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category by id: %w", err)
	}
	return c, nil
}

// FindArticleBySlug looks for a published article of categoryID whose
// translation in lang carries candidate as SEO slug, or whose legacy flat
// slug equals candidate. An unsupported lang matches translations of any
// locale.
func (s *Service) FindArticleBySlug(ctx context.Context, categoryID uuid.UUID, lang, candidate string) (*ArticleMatch, error) {
	if categoryID == uuid.Nil || slug.Normalize(candidate) == "" {
		return nil, nil
	}
	anyLocale := !s.locales.IsSupported(strings.ToLower(strings.TrimSpace(lang)))
	lang = s.locales.Normalize(lang)

	articles, err := s.src.Articles(ctx, ArticleFilter{
		CategoryIDs: []uuid.UUID{categoryID},
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	translations, err := s.resolveArticleTranslations(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}

	want := slug.Normalize(candidate)
	for i := range articles {
		a := articles[i]
		if tr, ok := slug.MatchTranslation(translations[a.ID], lang, candidate, anyLocale); ok {
			return &ArticleMatch{Article: &a, Translation: &tr}, nil
		}
		if legacy := slug.Normalize(resolve("", textPtr(a.Legacy.SEOSlug))); legacy != "" && legacy == want {
			return &ArticleMatch{Article: &a}, nil
		}
	}
	return nil, nil
}

// FindPlaceBySlug is the place counterpart of FindArticleBySlug. The flat
// fallback is the place's SEO slug, then its slug.
func (s *Service) FindPlaceBySlug(ctx context.Context, categoryID uuid.UUID, lang, candidate string) (*PlaceMatch, error) {
	if categoryID == uuid.Nil || slug.Normalize(candidate) == "" {
		return nil, nil
	}
	anyLocale := !s.locales.IsSupported(strings.ToLower(strings.TrimSpace(lang)))
	lang = s.locales.Normalize(lang)

	places, err := s.src.Places(ctx, PlaceFilter{
		CategoryIDs: []uuid.UUID{categoryID},
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("find place by slug: %w", err)
	}

	want := slug.Normalize(candidate)
	for i := range places {
		p := places[i]
		if tr, ok := slug.MatchTranslation(p.Translations, lang, candidate, anyLocale); ok {
			return &PlaceMatch{Place: &p, Translation: &tr}, nil
		}
		flat := resolve("", textPtr(p.Legacy.SEOSlug), textPtr(p.Legacy.Slug))
		if flat = slug.Normalize(flat); flat != "" && flat == want {
			return &PlaceMatch{Place: &p}, nil
		}
	}
	return nil, nil
}

// CategoryDefaultSlug returns the slug links to c should use under lang:
// the SEO slug of the selected translation, else the canonical slug.
func (s *Service) CategoryDefaultSlug(c *models.Category, lang string) string {
	tr, _ := locale.Select(s.locales, c.Translations, lang)
	return resolve(c.Slug, text(tr.SEOSlug))
}
