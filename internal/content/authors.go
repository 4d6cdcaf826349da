// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"annecy/internal/locale"
	"annecy/internal/models"
)

// AuthorSummary is an author projected onto one locale.
type AuthorSummary struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Slug            string              `json:"slug"`
	Bio             string              `json:"bio,omitempty"`
	ProfileImageURL string              `json:"profile_image_url,omitempty"`
	SocialLinks     []models.SocialLink `json:"social_links,omitempty"`
}

// passCache memoizes lookups made while building one aggregation. It is
// created at the start of a Load call and dropped when the call returns,
// so nothing it holds outlives the request.
type passCache struct {
	authors map[uuid.UUID]*AuthorSummary
}

func newPassCache() *passCache {
	return &passCache{authors: make(map[uuid.UUID]*AuthorSummary)}
}

// author returns the localized author with id, loading it at most once per
// pass. Unknown authors are cached as nil.
func (s *Service) author(ctx context.Context, pc *passCache, id *uuid.UUID, lang string) (*AuthorSummary, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}
	if a, ok := pc.authors[*id]; ok {
		return a, nil
	}

	a, err := s.src.AuthorByID(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("load author %s: %w", id, err)
	}
	var summary *AuthorSummary
	if a != nil {
		summary = s.localizeAuthor(a, lang)
	}
	pc.authors[*id] = summary
	return summary, nil
}

func (s *Service) localizeAuthor(a *models.Author, lang string) *AuthorSummary {
	tr, _ := locale.Select(s.locales, a.Translations, lang)
	return &AuthorSummary{
		ID:              a.ID,
		Name:            a.Name,
		Slug:            resolve(a.Slug, text(tr.SEOSlug)),
		Bio:             resolve("", textPtr(tr.Bio)),
		ProfileImageURL: resolve("", textPtr(a.ProfileImageURL)),
		SocialLinks:     a.SocialLinks,
	}
}
