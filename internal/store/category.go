// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"annecy/internal/models"
)

// CategoryStore reads categories and their translations.
type CategoryStore struct {
	base
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{newBase(db)}
}

var categoryColumns = []string{
	"id", "slug", "parent_id", "display_order", "is_active", "icon_name", "created_at", "updated_at",
}

func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID, &c.Slug, &c.ParentID, &c.DisplayOrder, &c.IsActive,
		&c.IconName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every category with its translations, ordered by
// display_order.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.query(ctx, s.sq.Select(categoryColumns...).
		From("categories").
		OrderBy("display_order", "slug"))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
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

// FindByID retrieves a category with its translations. Returns nil if not
// found.
func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	sqlStr, args, err := s.sq.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	c, err := scanCategory(s.db.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}

	trs, err := s.translations(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	c.Translations = trs[id]
	return c, nil
}

// translations loads the translations of the given categories in stored
// order.
func (s *CategoryStore) translations(ctx context.Context, ids []uuid.UUID) (byParent[models.CategoryTranslation], error) {
	out := byParent[models.CategoryTranslation]{}
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.query(ctx, s.sq.
		Select("id", "category_id", "lang_code", "name", "seo_slug", "description").
		From("category_translations").
		Where(sq.Eq{"category_id": ids}).
		OrderBy("seq"))
	if err != nil {
		return nil, fmt.Errorf("list category translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.CategoryTranslation
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.LangCode, &t.Name, &t.SEOSlug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan category translation: %w", err)
		}
		out.add(t.CategoryID, t)
	}
	return out, rows.Err()
}
