// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"annecy/internal/models"
)

// ArticleFilter narrows ArticleStore.List. Empty fields do not filter.
type ArticleFilter struct {
	CategoryIDs []uuid.UUID
	Status      models.ContentStatus
}

// ArticleStore reads articles, their translations and related links.
type ArticleStore struct {
	base
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{newBase(db)}
}

var articleColumns = []string{
	"id", "category_id", "author_id", "featured_image_url", "publication_date",
	"read_time_minutes", "view_count", "is_featured", "status",
	"article_title", "article_summary", "article_body", "article_seo_slug",
	"article_featured_image_alt", "created_at", "updated_at",
}

func scanArticle(row scanner) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.CategoryID, &a.AuthorID, &a.FeaturedImageURL, &a.PublicationDate,
		&a.ReadTimeMinutes, &a.ViewCount, &a.IsFeatured, &a.Status,
		&a.Legacy.Title, &a.Legacy.Summary, &a.Legacy.Body, &a.Legacy.SEOSlug,
		&a.Legacy.FeaturedImageAlt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns matching articles, most recent publication first. Articles
// without a publication date sort last.
func (s *ArticleStore) List(ctx context.Context, f ArticleFilter) ([]models.Article, error) {
	q := s.sq.Select(articleColumns...).
		From("articles").
		OrderBy("publication_date DESC NULLS LAST", "created_at DESC", "id")
	if len(f.CategoryIDs) > 0 {
		q = q.Where(sq.Eq{"category_id": f.CategoryIDs})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	return s.list(ctx, q)
}

// ByIDs returns the articles with the given ids in input order. Unknown
// ids are skipped.
func (s *ArticleStore) ByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.list(ctx, s.sq.Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Article, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	items := make([]models.Article, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			items = append(items, a)
			delete(byID, id)
		}
	}
	return items, nil
}

func (s *ArticleStore) list(ctx context.Context, q sq.SelectBuilder) ([]models.Article, error) {
	rows, err := s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.attachRefs(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachRefs fills the translation and related-article references.
func (s *ArticleStore) attachRefs(ctx context.Context, items []models.Article) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	translations, err := s.pairs(ctx, s.sq.Select("article_id", "id").
		From("article_translations").
		Where(sq.Eq{"article_id": ids}).
		OrderBy("seq"))
	if err != nil {
		return fmt.Errorf("list article translation ids: %w", err)
	}
	related, err := s.pairs(ctx, s.sq.Select("article_id", "related_article_id").
		From("article_related_articles").
		Where(sq.Eq{"article_id": ids}).
		OrderBy("seq"))
	if err != nil {
		return fmt.Errorf("list related articles: %w", err)
	}
	relatedTo, err := s.pairs(ctx, s.sq.Select("related_article_id", "article_id").
		From("article_related_articles").
		Where(sq.Eq{"related_article_id": ids}).
		OrderBy("seq"))
	if err != nil {
		return fmt.Errorf("list related-to articles: %w", err)
	}

	for i := range items {
		id := items[i].ID
		items[i].TranslationIDs = translations[id]
		items[i].RelatedIDs = related[id]
		items[i].RelatedToIDs = relatedTo[id]
	}
	return nil
}

// pairs runs a two-column id query and groups the second column by the
// first.
func (s *ArticleStore) pairs(ctx context.Context, q sq.SelectBuilder) (byParent[uuid.UUID], error) {
	rows, err := s.query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := byParent[uuid.UUID]{}
	for rows.Next() {
		var parent, id uuid.UUID
		if err := rows.Scan(&parent, &id); err != nil {
			return nil, err
		}
		out.add(parent, id)
	}
	return out, rows.Err()
}

// TranslationsByIDs returns the article translations with the given ids.
// Order is unspecified.
func (s *ArticleStore) TranslationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTranslation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.query(ctx, s.sq.
		Select("id", "article_id", "lang_code", "name", "description", "content",
			"featured_image_alt", "seo_slug", "created_at").
		From("article_translations").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("list article translations: %w", err)
	}
	defer rows.Close()

	var items []models.ArticleTranslation
	for rows.Next() {
		var t models.ArticleTranslation
		if err := rows.Scan(
			&t.ID, &t.ArticleID, &t.LangCode, &t.Name, &t.Description, &t.Content,
			&t.FeaturedImageAlt, &t.SEOSlug, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article translation: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
