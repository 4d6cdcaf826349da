// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package registry maps the site's top-level entities to their root
// category, default slug, backing collection and legacy URL aliases.
// A Registry is built once at startup and never mutated afterwards.
package registry

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Key identifies a top-level entity.
type Key string

const (
	KeyMagazine     Key = "magazine"
	KeyHebergements Key = "hebergements"
)

// Collection names the kind of leaf item an entity lists.
type Collection string

const (
	CollectionArticles Collection = "articles"
	CollectionPlaces   Collection = "places"
)

// Entity is one row of the registry.
type Entity struct {
	Key            Key        `json:"key"`
	RootCategoryID uuid.UUID  `json:"root_category_id"`
	DefaultSlug    string     `json:"default_slug"`
	Collection     Collection `json:"collection"`
	LegacySlugs    []string   `json:"legacy_slugs,omitempty"`
}

// Root category ids seeded for the two production entities.
var (
	MagazineRootID     = uuid.MustParse("d20b7566-105a-47f3-947f-dab773bef43e")
	HebergementsRootID = uuid.MustParse("ad66f5d9-5f9f-4e2d-8d1f-6d2e5d5f6f5f")
)

// Registry is an immutable lookup table of entities.
type Registry struct {
	entries []Entity
	byKey   map[Key]*Entity
	byRoot  map[uuid.UUID]*Entity
}

// New builds a registry. Keys and root category ids must be unique.
func New(entries ...Entity) (*Registry, error) {
	r := &Registry{
		entries: make([]Entity, len(entries)),
		byKey:   make(map[Key]*Entity, len(entries)),
		byRoot:  make(map[uuid.UUID]*Entity, len(entries)),
	}
	copy(r.entries, entries)

	for i := range r.entries {
		e := &r.entries[i]
		if e.Key == "" {
			return nil, fmt.Errorf("registry: entry %d has no key", i)
		}
		if _, dup := r.byKey[e.Key]; dup {
			return nil, fmt.Errorf("registry: duplicate key %q", e.Key)
		}
		if _, dup := r.byRoot[e.RootCategoryID]; dup {
			return nil, fmt.Errorf("registry: duplicate root category %s", e.RootCategoryID)
		}
		r.byKey[e.Key] = e
		r.byRoot[e.RootCategoryID] = e
	}
	return r, nil
}

// Default returns the registry of the production site.
func Default() *Registry {
	r, err := New(
		Entity{
			Key:            KeyMagazine,
			RootCategoryID: MagazineRootID,
			DefaultSlug:    "magazine",
			Collection:     CollectionArticles,
			LegacySlugs:    []string{"magazine", "revista", "magazin"},
		},
		Entity{
			Key:            KeyHebergements,
			RootCategoryID: HebergementsRootID,
			DefaultSlug:    "hebergements",
			Collection:     CollectionPlaces,
			LegacySlugs:    []string{"hebergements", "lodging", "accommodations", "alojamientos"},
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the entities in registration order.
func (r *Registry) All() []Entity {
	out := make([]Entity, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByKey returns the entity registered under key, or nil.
func (r *Registry) ByKey(key Key) *Entity {
	return r.byKey[key]
}

// ByRootCategoryID returns the entity rooted at id, or nil.
func (r *Registry) ByRootCategoryID(id uuid.UUID) *Entity {
	return r.byRoot[id]
}

// ByLegacySlug returns the first entity listing slug among its legacy
// aliases, compared case-insensitively. Returns nil when none does.
func (r *Registry) ByLegacySlug(slug string) *Entity {
	want := strings.ToLower(strings.TrimSpace(slug))
	if want == "" {
		return nil
	}
	for i := range r.entries {
		for _, candidate := range r.entries[i].LegacySlugs {
			if strings.ToLower(candidate) == want {
				return &r.entries[i]
			}
		}
	}
	return nil
}
