// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"annecy/internal/locale"
	"annecy/internal/models"
	"annecy/internal/registry"
)

// PlaceSummary is the list view of an accommodation.
type PlaceSummary struct {
	ID            uuid.UUID           `json:"id"`
	CategoryID    uuid.UUID           `json:"category_id"`
	Name          string              `json:"name"`
	Summary       string              `json:"summary"`
	Slug          string              `json:"slug"`
	MainImageURL  string              `json:"main_image_url,omitempty"`
	PricePerNight decimal.NullDecimal `json:"price_per_night"`
	Capacity      *int                `json:"capacity,omitempty"`
	CategoryName  string              `json:"category_name"`
	CategorySlug  string              `json:"category_slug"`
	IsFeatured    bool                `json:"is_featured"`
	CreatedAt     time.Time           `json:"created_at"`
}

// PlaceCollections is the landing page model of a place entity.
type PlaceCollections struct {
	Root       *LocalizedCategory           `json:"root_category"`
	Children   []LocalizedCategory          `json:"child_categories"`
	Counts     map[uuid.UUID]int            `json:"category_counts"`
	ByCategory map[uuid.UUID][]PlaceSummary `json:"places_by_category"`
	Featured   []PlaceSummary               `json:"featured"`
	Recent     []PlaceSummary               `json:"recent"`
	// Popular ranks by nightly price, highest first.
	Popular []PlaceSummary `json:"popular"`

	categories categoryIndex
	order      []uuid.UUID
}

func (c *PlaceCollections) flatten() []PlaceSummary {
	var out []PlaceSummary
	for _, id := range c.order {
		out = append(out, c.ByCategory[id]...)
	}
	return out
}

// PlaceCategoryPage is the page model of one child category.
type PlaceCategoryPage struct {
	*PlaceCollections
	Current *LocalizedCategory `json:"current_category"`
	Places  []PlaceSummary     `json:"places"`
	Popular []PlaceSummary     `json:"popular"`
}

// PlaceDetail is the full view of one accommodation.
type PlaceDetail struct {
	ID              uuid.UUID           `json:"id"`
	TranslationLang string              `json:"translation_lang,omitempty"`
	Category        *LocalizedCategory  `json:"category,omitempty"`
	Name            string              `json:"name"`
	Summary         string              `json:"summary"`
	Slug            string              `json:"slug"`
	MainImageURL    string              `json:"main_image_url,omitempty"`
	PricePerNight   decimal.NullDecimal `json:"price_per_night"`
	Capacity        *int                `json:"capacity,omitempty"`
	Amenities       []string            `json:"amenities"`
	CheckInTime     string              `json:"check_in_time,omitempty"`
	CheckOutTime    string              `json:"check_out_time,omitempty"`
}

// PlaceDetailResult is a place detail with its surrounding lists.
type PlaceDetailResult struct {
	Detail   PlaceDetail         `json:"detail"`
	Root     *LocalizedCategory  `json:"root_category"`
	Children []LocalizedCategory `json:"child_categories"`
	Siblings []PlaceSummary      `json:"siblings"`
	Popular  []PlaceSummary      `json:"popular"`
	Related  []PlaceSummary      `json:"related"`
}

// LoadPlaceCollections aggregates the published places of the direct
// children of the entity root under lang.
func (s *Service) LoadPlaceCollections(ctx context.Context, ent registry.Entity, lang string) (*PlaceCollections, error) {
	lang = s.locales.Normalize(lang)

	root, children, err := s.entityTree(ctx, ent.RootCategoryID)
	if err != nil {
		return nil, fmt.Errorf("load place collections: %w", err)
	}

	col := &PlaceCollections{
		Children:   make([]LocalizedCategory, 0, len(children)),
		Counts:     make(map[uuid.UUID]int),
		ByCategory: make(map[uuid.UUID][]PlaceSummary),
		Featured:   []PlaceSummary{},
		Recent:     []PlaceSummary{},
		Popular:    []PlaceSummary{},
		categories: s.buildCategoryIndex(children, lang),
	}
	if root != nil {
		lc := s.LocalizeCategory(root, lang)
		col.Root = &lc
	}
	col.Children = append(col.Children, col.categories.order...)
	if len(children) == 0 {
		return col, nil
	}

	places, err := s.src.Places(ctx, PlaceFilter{
		CategoryIDs: col.categories.ids(),
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("load place collections: %w", err)
	}

	var featured []PlaceSummary
	for i := range places {
		sum := s.summarizePlace(&places[i], col.categories, lang)
		id := sum.CategoryID
		if _, ok := col.categories.byID[id]; !ok {
			continue
		}
		if _, seen := col.ByCategory[id]; !seen {
			col.order = append(col.order, id)
		}
		col.ByCategory[id] = append(col.ByCategory[id], sum)
		col.Counts[id]++
		if sum.IsFeatured {
			featured = append(featured, sum)
		}
	}

	flat := col.flatten()
	col.Featured = capped(sortedPlaces(featured, byCreatedDesc), featuredLimit)
	col.Recent = capped(sortedPlaces(flat, byCreatedDesc), recentLimit)
	col.Popular = capped(sortedPlaces(flat, byPriceDesc), popularLimit)
	return col, nil
}

// LoadPlacesForCategory returns the page model of the child category
// categoryID.
func (s *Service) LoadPlacesForCategory(ctx context.Context, ent registry.Entity, categoryID uuid.UUID, lang string) (*PlaceCategoryPage, error) {
	col, err := s.LoadPlaceCollections(ctx, ent, lang)
	if err != nil {
		return nil, err
	}

	page := &PlaceCategoryPage{
		PlaceCollections: col,
		Places:           col.ByCategory[categoryID],
	}
	if c, ok := col.categories.get(&categoryID); ok {
		page.Current = &c
	}
	if page.Places == nil {
		page.Places = []PlaceSummary{}
	}
	page.Popular = capped(sortedPlaces(page.Places, byPriceDesc), popularLimit)
	return page, nil
}

// LoadPlaceCategorySummaries counts the published places of every direct
// child of parentID.
func (s *Service) LoadPlaceCategorySummaries(ctx context.Context, parentID uuid.UUID, lang string) ([]CategorySummary, error) {
	lang = s.locales.Normalize(lang)

	_, children, err := s.entityTree(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("load place category summaries: %w", err)
	}
	idx := s.buildCategoryIndex(children, lang)
	if len(children) == 0 {
		return []CategorySummary{}, nil
	}

	places, err := s.src.Places(ctx, PlaceFilter{
		CategoryIDs: idx.ids(),
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("load place category summaries: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(children))
	for i := range places {
		if id := places[i].CategoryID; id != nil {
			counts[*id]++
		}
	}
	return idx.summaries(counts), nil
}

// LoadPlaceDetail builds the detail page of p. When override is non-nil it
// is used as the place translation instead of selecting one again.
func (s *Service) LoadPlaceDetail(ctx context.Context, ent registry.Entity, p *models.Place, lang string, override *models.PlaceTranslation) (*PlaceDetailResult, error) {
	lang = s.locales.Normalize(lang)

	col, err := s.LoadPlaceCollections(ctx, ent, lang)
	if err != nil {
		return nil, err
	}

	var t models.PlaceTranslation
	if override != nil {
		t = *override
	} else {
		t, _ = locale.Select(s.locales, p.Translations, lang)
	}

	details := p.Details
	if details == nil {
		details = &models.DetailsAccommodation{}
	}

	res := &PlaceDetailResult{
		Detail: PlaceDetail{
			ID:              p.ID,
			TranslationLang: t.LangCode,
			Name:            resolve(p.ID.String(), text(t.Name), textPtr(p.Legacy.Name)),
			Summary:         resolve("", textPtr(t.Description), textPtr(p.Legacy.Summary)),
			Slug:            resolve(p.ID.String(), text(t.SEOSlug), textPtr(p.Legacy.SEOSlug), textPtr(p.Legacy.Slug)),
			MainImageURL:    resolve("", textPtr(p.MainImageURL)),
			PricePerNight:   resolve(decimal.NullDecimal{}, price(details.PricePerNight)),
			Capacity:        details.Capacity,
			Amenities:       NormalizeAmenities(details.Amenities),
			CheckInTime:     formatTimeValue(details.CheckInTime),
			CheckOutTime:    formatTimeValue(details.CheckOutTime),
		},
		Root:     col.Root,
		Children: col.Children,
		Siblings: []PlaceSummary{},
		Popular:  []PlaceSummary{},
	}

	if c, ok := col.categories.get(p.CategoryID); ok {
		res.Detail.Category = &c
	}
	if p.CategoryID != nil {
		same := col.ByCategory[*p.CategoryID]
		res.Siblings = capped(withoutPlace(same, p.ID), siblingLimit)
		res.Popular = capped(withoutPlace(sortedPlaces(same, byPriceDesc), p.ID), popularLimit)
	}
	// Places have no relation graph; the newest listings stand in for it.
	res.Related = capped(withoutPlace(col.Recent, p.ID), relatedLimit)
	return res, nil
}

func (s *Service) summarizePlace(p *models.Place, idx categoryIndex, lang string) PlaceSummary {
	tr, _ := locale.Select(s.locales, p.Translations, lang)
	cat, _ := idx.get(p.CategoryID)

	sum := PlaceSummary{
		ID:           p.ID,
		Name:         resolve(p.ID.String(), text(tr.Name), textPtr(p.Legacy.Name)),
		Summary:      resolve("", textPtr(tr.Description), textPtr(p.Legacy.Summary)),
		Slug:         resolve(p.ID.String(), text(tr.SEOSlug), textPtr(p.Legacy.SEOSlug), textPtr(p.Legacy.Slug)),
		MainImageURL: resolve("", textPtr(p.MainImageURL)),
		CategoryName: cat.Name,
		CategorySlug: cat.Slug,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
	}
	if p.CategoryID != nil {
		sum.CategoryID = *p.CategoryID
	}
	if d := p.Details; d != nil {
		sum.PricePerNight = resolve(decimal.NullDecimal{}, price(d.PricePerNight))
		sum.Capacity = d.Capacity
	}
	return sum
}

func byCreatedDesc(a, b PlaceSummary) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

// byPriceDesc orders by nightly price, highest first; unknown prices rank
// as zero.
func byPriceDesc(a, b PlaceSummary) int {
	return priceOrZero(b.PricePerNight).Cmp(priceOrZero(a.PricePerNight))
}

func priceOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func sortedPlaces(in []PlaceSummary, by func(a, b PlaceSummary) int) []PlaceSummary {
	out := slices.Clone(in)
	slices.SortStableFunc(out, by)
	return out
}

func withoutPlace(in []PlaceSummary, id uuid.UUID) []PlaceSummary {
	out := make([]PlaceSummary, 0, len(in))
	for _, s := range in {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
