// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"annecy/internal/content"
	"annecy/internal/models"
)

// Catalog adapts the individual stores to content.Source.
type Catalog struct {
	categories *CategoryStore
	articles   *ArticleStore
	authors    *AuthorStore
	places     *PlaceStore
	comments   *CommentStore
}

var _ content.Source = (*Catalog)(nil)

// NewCatalog returns a Catalog backed by db.
func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{
		categories: NewCategoryStore(db),
		articles:   NewArticleStore(db),
		authors:    NewAuthorStore(db),
		places:     NewPlaceStore(db),
		comments:   NewCommentStore(db),
	}
}

func (c *Catalog) Categories(ctx context.Context) ([]models.Category, error) {
	return c.categories.List(ctx)
}

func (c *Catalog) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return c.categories.FindByID(ctx, id)
}

func (c *Catalog) Articles(ctx context.Context, f content.ArticleFilter) ([]models.Article, error) {
	return c.articles.List(ctx, ArticleFilter{CategoryIDs: f.CategoryIDs, Status: f.Status})
}

func (c *Catalog) ArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error) {
	return c.articles.ByIDs(ctx, ids)
}

func (c *Catalog) ArticleTranslationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTranslation, error) {
	return c.articles.TranslationsByIDs(ctx, ids)
}

func (c *Catalog) AuthorByID(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	return c.authors.FindByID(ctx, id)
}

func (c *Catalog) Places(ctx context.Context, f content.PlaceFilter) ([]models.Place, error) {
	return c.places.List(ctx, PlaceFilter{CategoryIDs: f.CategoryIDs, Status: f.Status})
}

func (c *Catalog) Comments(ctx context.Context, f content.CommentFilter) ([]models.Comment, error) {
	return c.comments.List(ctx, CommentFilter{
		ArticleID:      f.ArticleID,
		Status:         f.Status,
		IncludeDeleted: f.IncludeDeleted,
	})
}
