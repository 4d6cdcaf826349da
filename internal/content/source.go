// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content resolves URL segments to categories, articles and places
// and projects the relational data into localized read models: summaries,
// category listings, detail pages and comment threads. It never writes.
package content

import (
	"context"

	"github.com/google/uuid"

	"annecy/internal/models"
)

// ArticleFilter narrows Source.Articles. Empty fields do not filter.
type ArticleFilter struct {
	CategoryIDs []uuid.UUID
	Status      models.ContentStatus
}

// PlaceFilter narrows Source.Places. Empty fields do not filter.
type PlaceFilter struct {
	CategoryIDs []uuid.UUID
	Status      models.ContentStatus
}

// CommentFilter narrows Source.Comments. Soft-deleted comments are
// excluded unless IncludeDeleted is set.
type CommentFilter struct {
	ArticleID      uuid.UUID
	Status         string
	IncludeDeleted bool
}

// Source is the data-access collaborator. Lookups by id return (nil, nil)
// when nothing matches; any error is a data access failure and is passed
// through to the caller untouched.
type Source interface {
	// Categories returns every category with its translations, ordered by
	// display order.
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// Articles returns matching articles, newest publication first. Each
	// article carries its translation and related-article references.
	Articles(ctx context.Context, f ArticleFilter) ([]models.Article, error)
	ArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error)
	ArticleTranslationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTranslation, error)

	AuthorByID(ctx context.Context, id uuid.UUID) (*models.Author, error)

	// Places returns matching places with translations and details.
	Places(ctx context.Context, f PlaceFilter) ([]models.Place, error)

	// Comments returns matching comments ordered by creation time, oldest first.
	Comments(ctx context.Context, f CommentFilter) ([]models.Comment, error)
}
