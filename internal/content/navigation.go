// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"annecy/internal/models"
)

// NavItem is one entry of the site header: an active root category and
// its active children.
type NavItem struct {
	LocalizedCategory
	Entity   string              `json:"entity,omitempty"`
	Children []LocalizedCategory `json:"children"`
}

// LoadNavigation builds the header navigation under lang. Categories keep
// the display order of the source.
func (s *Service) LoadNavigation(ctx context.Context, lang string) ([]NavItem, error) {
	lang = s.locales.Normalize(lang)

	cats, err := s.src.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}

	children := make(map[uuid.UUID][]models.Category)
	for i := range cats {
		c := cats[i]
		if c.IsActive && c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	nav := []NavItem{}
	for i := range cats {
		c := &cats[i]
		if !c.IsActive || !c.IsRoot() {
			continue
		}
		item := NavItem{
			LocalizedCategory: s.LocalizeCategory(c, lang),
			Children:          s.buildCategoryIndex(children[c.ID], lang).order,
		}
		if ent := s.registry.ByRootCategoryID(c.ID); ent != nil {
			item.Entity = string(ent.Key)
		}
		nav = append(nav, item)
	}
	return nav, nil
}
