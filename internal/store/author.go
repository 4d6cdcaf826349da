// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"annecy/internal/models"
)

// AuthorStore reads authors and their translated bios.
type AuthorStore struct {
	base
}

// NewAuthorStore returns a new AuthorStore.
func NewAuthorStore(db *sql.DB) *AuthorStore {
	return &AuthorStore{newBase(db)}
}

// FindByID retrieves an author with translations. Returns nil if not found.
func (s *AuthorStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	sqlStr, args, err := s.sq.
		Select("id", "slug", "name", "profile_image_url", "social_links", "created_at").
		From("authors").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var (
		a      models.Author
		social []byte
	)
	err = s.db.QueryRowContext(ctx, sqlStr, args...).Scan(
		&a.ID, &a.Slug, &a.Name, &a.ProfileImageURL, &social, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by id: %w", err)
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &a.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}

	rows, err := s.query(ctx, s.sq.
		Select("id", "author_id", "lang_code", "bio", "seo_slug").
		From("author_translations").
		Where(sq.Eq{"author_id": id}).
		OrderBy("seq"))
	if err != nil {
		return nil, fmt.Errorf("list author translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.AuthorTranslation
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.LangCode, &t.Bio, &t.SEOSlug); err != nil {
			return nil, fmt.Errorf("scan author translation: %w", err)
		}
		a.Translations = append(a.Translations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &a, nil
}
