// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolver turns a localized URL path into a PageContext: the
// entity, child category and item it designates. Failing to match is not
// an error; resolution stops at the first segment that does not match.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"annecy/internal/content"
	"annecy/internal/models"
	"annecy/internal/registry"
)

// PageType tells which level of the URL a context resolved to.
type PageType string

const (
	PageEntity   PageType = "entity"
	PageCategory PageType = "category"
	PageItem     PageType = "item"
)

// maxSegments is the deepest path: entity, category, item.
const maxSegments = 3

// PageContext is the resolved form of a request path.
type PageContext struct {
	Type   PageType        `json:"type"`
	Lang   string          `json:"lang"`
	Entity registry.Entity `json:"entity"`

	// EntityID is the root category id. EntitySlug is its slug in Lang.
	EntityID   uuid.UUID `json:"entity_id"`
	EntitySlug string    `json:"entity_slug"`

	// CategoryID is the child category, or the root when the path stops
	// at the entity.
	CategoryID   uuid.UUID `json:"category_id"`
	CategorySlug string    `json:"category_slug"`

	ItemSlug           string                     `json:"item_slug,omitempty"`
	Article            *models.Article            `json:"-"`
	ArticleTranslation *models.ArticleTranslation `json:"-"`
	Place              *models.Place              `json:"-"`
	PlaceTranslation   *models.PlaceTranslation   `json:"-"`

	// Partial is set when a requested category or item segment did not
	// resolve. The context then describes the deepest level that did.
	Partial bool `json:"partial"`

	Root     *models.Category `json:"-"`
	Category *models.Category `json:"-"`
}

// ItemID returns the id of the resolved article or place, or uuid.Nil.
func (p *PageContext) ItemID() uuid.UUID {
	switch {
	case p.Article != nil:
		return p.Article.ID
	case p.Place != nil:
		return p.Place.ID
	}
	return uuid.Nil
}

// Resolver resolves paths against the content layer.
type Resolver struct {
	svc *content.Service
}

// New returns a Resolver backed by svc.
func New(svc *content.Service) *Resolver {
	return &Resolver{svc: svc}
}

// ParsePath splits "/{lang}/{entity}/{category}/{item}" into its locale and
// the remaining segments. ok is false when the path has no entity segment
// or more segments than the deepest page.
func ParsePath(path string) (lang string, segments []string, ok bool) {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 || len(parts) > maxSegments+1 {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// ResolvePath parses path and resolves it. A nil context means not found.
func (r *Resolver) ResolvePath(ctx context.Context, path string) (*PageContext, error) {
	lang, segments, ok := ParsePath(path)
	if !ok {
		return nil, nil
	}
	return r.Resolve(ctx, lang, segments)
}

// Resolve matches segments ([entity, category?, item?]) under lang. It
// returns nil when the entity does not resolve; errors are data access
// failures only.
func (r *Resolver) Resolve(ctx context.Context, lang string, segments []string) (*PageContext, error) {
	if len(segments) == 0 || len(segments) > maxSegments || strings.TrimSpace(segments[0]) == "" {
		return nil, nil
	}
	locales := r.svc.Locales()
	lang = locales.Normalize(lang)

	root, ent, err := r.resolveEntity(ctx, lang, segments[0])
	if err != nil || root == nil {
		return nil, err
	}

	pc := &PageContext{
		Type:       PageEntity,
		Lang:       lang,
		Entity:     *ent,
		EntityID:   root.ID,
		EntitySlug: r.svc.CategoryDefaultSlug(root, lang),
		CategoryID: root.ID,
		Root:       root,
		Category:   root,
	}
	pc.CategorySlug = pc.EntitySlug

	if len(segments) < 2 {
		return pc, nil
	}

	child, err := r.firstCategory(ctx, root.ID, segments[1], lang, locales.Default())
	if err != nil {
		return nil, err
	}
	if child == nil {
		pc.Partial = true
		return pc, nil
	}
	pc.Type = PageCategory
	pc.Category = child
	pc.CategoryID = child.ID
	pc.CategorySlug = r.svc.CategoryDefaultSlug(child, lang)

	if len(segments) < 3 {
		return pc, nil
	}

	found, err := r.resolveItem(ctx, pc, segments[2], lang, locales.Default())
	if err != nil {
		return nil, err
	}
	if !found {
		pc.Partial = true
		return pc, nil
	}
	pc.Type = PageItem
	return pc, nil
}

// resolveEntity finds the root category designated by slug and its
// registry entry, recovering legacy aliases.
func (r *Resolver) resolveEntity(ctx context.Context, lang, slug string) (*models.Category, *registry.Entity, error) {
	reg := r.svc.Registry()

	root, err := r.svc.FindRootCategoryBySlug(ctx, lang, slug)
	if err != nil {
		return nil, nil, err
	}
	if root != nil {
		if ent := reg.ByRootCategoryID(root.ID); ent != nil {
			return root, ent, nil
		}
	}

	ent := reg.ByLegacySlug(slug)
	if ent == nil {
		return nil, nil, nil
	}

	root = nil
	for _, l := range uniq(lang, r.svc.Locales().Default()) {
		c, err := r.svc.FindRootCategoryBySlug(ctx, l, ent.DefaultSlug)
		if err != nil {
			return nil, nil, err
		}
		if c != nil && c.ID == ent.RootCategoryID {
			root = c
			break
		}
	}
	if root == nil {
		if root, err = r.svc.CategoryByID(ctx, ent.RootCategoryID); err != nil {
			return nil, nil, err
		}
	}
	if root == nil {
		slog.Warn("legacy entity has no root category", "slug", slug, "entity", ent.Key, "root", ent.RootCategoryID)
		return nil, nil, nil
	}

	slog.Debug("legacy entity slug recovered", "slug", slug, "entity", ent.Key)
	return root, ent, nil
}

// firstCategory matches a child of rootID under each locale in turn.
func (r *Resolver) firstCategory(ctx context.Context, rootID uuid.UUID, slug string, langs ...string) (*models.Category, error) {
	for _, l := range uniq(langs...) {
		c, err := r.svc.FindChildCategoryBySlug(ctx, rootID, l, slug)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}

// resolveItem looks the item up in the entity's collection, under each
// locale in turn, and records the match and its translation on pc.
func (r *Resolver) resolveItem(ctx context.Context, pc *PageContext, slug string, langs ...string) (bool, error) {
	for _, l := range uniq(langs...) {
		switch pc.Entity.Collection {
		case registry.CollectionArticles:
			m, err := r.svc.FindArticleBySlug(ctx, pc.CategoryID, l, slug)
			if err != nil {
				return false, err
			}
			if m != nil {
				pc.Article = m.Article
				pc.ArticleTranslation = m.Translation
				pc.ItemSlug = itemSlug(m.Translation, m.Article.Legacy.SEOSlug, slug)
				return true, nil
			}
		case registry.CollectionPlaces:
			m, err := r.svc.FindPlaceBySlug(ctx, pc.CategoryID, l, slug)
			if err != nil {
				return false, err
			}
			if m != nil {
				pc.Place = m.Place
				pc.PlaceTranslation = m.Translation
				flat := m.Place.Legacy.SEOSlug
				if flat == nil || *flat == "" {
					flat = m.Place.Legacy.Slug
				}
				pc.ItemSlug = itemSlug(m.Translation, flat, slug)
				return true, nil
			}
		default:
			return false, fmt.Errorf("entity %s: unknown collection %q", pc.Entity.Key, pc.Entity.Collection)
		}
	}
	return false, nil
}

// itemSlug returns the slug of the matched translation, else the flat
// slug, else the requested one.
func itemSlug[T interface{ LocalSlug() string }](tr *T, flat *string, requested string) string {
	if tr != nil {
		if s := (*tr).LocalSlug(); s != "" {
			return s
		}
	}
	if flat != nil && *flat != "" {
		return *flat
	}
	return requested
}

func uniq(langs ...string) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		if !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}
