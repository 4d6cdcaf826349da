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

// CommentFilter narrows CommentStore.List. Empty fields do not filter.
type CommentFilter struct {
	ArticleID      uuid.UUID
	Status         string
	IncludeDeleted bool
}

// CommentStore reads article comments.
type CommentStore struct {
	base
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{newBase(db)}
}

// List returns matching comments, oldest first.
func (s *CommentStore) List(ctx context.Context, f CommentFilter) ([]models.Comment, error) {
	q := s.sq.Select(
		"id", "article_id", "parent_comment_id", "author_name", "author_email",
		"content", "status", "created_at", "deleted_at",
	).
		From("comments").
		OrderBy("created_at", "id")
	if f.ArticleID != uuid.Nil {
		q = q.Where(sq.Eq{"article_id": f.ArticleID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	if !f.IncludeDeleted {
		q = q.Where(sq.Eq{"deleted_at": nil})
	}

	rows, err := s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.ArticleID, &c.ParentCommentID, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.Status, &c.CreatedAt, &c.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
