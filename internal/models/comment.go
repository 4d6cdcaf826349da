// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatusApproved is the only status shown on public pages.
const CommentStatusApproved = "approved"

// Comment is a reader comment on an article. ParentCommentID makes
// comments a forest.
type Comment struct {
	ID              uuid.UUID  `json:"id"`
	ArticleID       uuid.UUID  `json:"article_id"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id"`
	AuthorName      *string    `json:"author_name,omitempty"`
	AuthorEmail     *string    `json:"author_email,omitempty"`
	Content         *string    `json:"content,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}
