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

	"annecy/internal/models"
)

// anonymousAuthor names comments posted without an author name.
const anonymousAuthor = "Anonyme"

// CommentView is one approved comment as shown to readers.
type CommentView struct {
	ID              uuid.UUID  `json:"id"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id"`
	AuthorName      string     `json:"author_name"`
	AuthorEmail     string     `json:"-"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CommentNode is a comment and its replies.
type CommentNode struct {
	CommentView
	Replies []*CommentNode `json:"replies"`
}

// CommentThread holds the comments of an article twice: in creation order
// and as a reply tree. Every comment appears exactly once in each.
type CommentThread struct {
	Flat   []CommentView  `json:"flat"`
	Nested []*CommentNode `json:"nested"`
}

// LoadComments returns the approved, non-deleted comments of articleID.
func (s *Service) LoadComments(ctx context.Context, articleID uuid.UUID) (*CommentThread, error) {
	if articleID == uuid.Nil {
		return &CommentThread{Flat: []CommentView{}, Nested: []*CommentNode{}}, nil
	}

	comments, err := s.src.Comments(ctx, CommentFilter{
		ArticleID: articleID,
		Status:    models.CommentStatusApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("load comments for %s: %w", articleID, err)
	}
	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return buildThread(comments), nil
}

// buildThread links comments into a tree. Nodes live in one arena; a
// comment becomes a reply only when its parent was placed before it, so
// the parent relation cannot loop whatever the stored ids say. Comments
// whose parent is unknown are promoted to roots.
func buildThread(comments []models.Comment) *CommentThread {
	arena := make([]CommentNode, len(comments))
	index := make(map[uuid.UUID]int, len(comments))
	t := &CommentThread{
		Flat:   make([]CommentView, 0, len(comments)),
		Nested: []*CommentNode{},
	}

	for i := range comments {
		c := &comments[i]
		arena[i] = CommentNode{
			CommentView: CommentView{
				ID:              c.ID,
				ParentCommentID: c.ParentCommentID,
				AuthorName:      resolve(anonymousAuthor, textPtr(c.AuthorName)),
				AuthorEmail:     resolve("", textPtr(c.AuthorEmail)),
				Content:         resolve("", textPtr(c.Content)),
				CreatedAt:       c.CreatedAt,
			},
			Replies: []*CommentNode{},
		}
		t.Flat = append(t.Flat, arena[i].CommentView)

		node := &arena[i]
		if c.ParentCommentID == nil {
			t.Nested = append(t.Nested, node)
		} else if p, ok := index[*c.ParentCommentID]; ok {
			arena[p].Replies = append(arena[p].Replies, node)
		} else {
			t.Nested = append(t.Nested, node)
		}
		if _, dup := index[c.ID]; !dup {
			index[c.ID] = i
		}
	}
	return t
}
