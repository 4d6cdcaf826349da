// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"annecy/internal/models"
)

// PlaceFilter narrows PlaceStore.List. Empty fields do not filter.
type PlaceFilter struct {
	CategoryIDs []uuid.UUID
	Status      models.ContentStatus
}

// PlaceStore reads places with their translations and accommodation
// details.
type PlaceStore struct {
	base
}

// NewPlaceStore returns a new PlaceStore.
func NewPlaceStore(db *sql.DB) *PlaceStore {
	return &PlaceStore{newBase(db)}
}

// List returns matching places, newest first.
func (s *PlaceStore) List(ctx context.Context, f PlaceFilter) ([]models.Place, error) {
	q := s.sq.Select(
		"p.id", "p.category_id", "p.main_image_url", "p.is_featured", "p.status",
		"p.name", "p.summary", "p.seo_slug", "p.slug", "p.created_at", "p.updated_at",
		"d.place_id", "d.price_per_night", "d.capacity", "d.amenities",
		"d.check_in_time", "d.check_out_time",
	).
		From("places p").
		LeftJoin("details_accommodation d ON d.place_id = p.id").
		OrderBy("p.created_at DESC", "p.id")
	if len(f.CategoryIDs) > 0 {
		q = q.Where(sq.Eq{"p.category_id": f.CategoryIDs})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"p.status": string(f.Status)})
	}

	rows, err := s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var items []models.Place
	for rows.Next() {
		var (
			p         models.Place
			d         models.DetailsAccommodation
			detailID  uuid.NullUUID
			amenities []byte
		)
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.MainImageURL, &p.IsFeatured, &p.Status,
			&p.Legacy.Name, &p.Legacy.Summary, &p.Legacy.SEOSlug, &p.Legacy.Slug,
			&p.CreatedAt, &p.UpdatedAt,
			&detailID, &d.PricePerNight, &d.Capacity, &amenities,
			&d.CheckInTime, &d.CheckOutTime,
		); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		if detailID.Valid {
			d.PlaceID = detailID.UUID
			if amenities != nil {
				d.Amenities = json.RawMessage(amenities)
			}
			p.Details = &d
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	trs, err := s.translations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = trs[items[i].ID]
	}
	return items, nil
}

func (s *PlaceStore) translations(ctx context.Context, ids []uuid.UUID) (byParent[models.PlaceTranslation], error) {
	rows, err := s.query(ctx, s.sq.
		Select("id", "place_id", "lang_code", "name", "description", "seo_slug").
		From("place_translations").
		Where(sq.Eq{"place_id": ids}).
		OrderBy("seq"))
	if err != nil {
		return nil, fmt.Errorf("list place translations: %w", err)
	}
	defer rows.Close()

	out := byParent[models.PlaceTranslation]{}
	for rows.Next() {
		var t models.PlaceTranslation
		if err := rows.Scan(&t.ID, &t.PlaceID, &t.LangCode, &t.Name, &t.Description, &t.SEOSlug); err != nil {
			return nil, fmt.Errorf("scan place translation: %w", err)
		}
		out.add(t.PlaceID, t)
	}
	return out, rows.Err()
}
