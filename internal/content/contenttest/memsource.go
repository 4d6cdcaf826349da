// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contenttest provides an in-memory content.Source for tests.
package contenttest

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"annecy/internal/content"
	"annecy/internal/models"
)

// MemSource is a content.Source backed by slices. Records are returned in
// insertion order. Setting Err makes every call fail with it.
type MemSource struct {
	CategoryList    []models.Category
	ArticleList     []models.Article
	TranslationList []models.ArticleTranslation
	AuthorList      []models.Author
	PlaceList       []models.Place
	CommentList     []models.Comment

	Err error

	mu    sync.Mutex
	calls map[string]int
}

var _ content.Source = (*MemSource)(nil)

// Calls returns how many times method was invoked.
func (m *MemSource) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MemSource) record(method string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
	return m.Err
}

func (m *MemSource) Categories(ctx context.Context) ([]models.Category, error) {
	if err := m.record("Categories"); err != nil {
		return nil, err
	}
	return slices.Clone(m.CategoryList), nil
}

func (m *MemSource) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if err := m.record("CategoryByID"); err != nil {
		return nil, err
	}
	for _, c := range m.CategoryList {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MemSource) Articles(ctx context.Context, f content.ArticleFilter) ([]models.Article, error) {
	if err := m.record("Articles"); err != nil {
		return nil, err
	}
	var out []models.Article
	for _, a := range m.ArticleList {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if len(f.CategoryIDs) > 0 && (a.CategoryID == nil || !slices.Contains(f.CategoryIDs, *a.CategoryID)) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *MemSource) ArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error) {
	if err := m.record("ArticlesByIDs"); err != nil {
		return nil, err
	}
	var out []models.Article
	for _, a := range m.ArticleList {
		if slices.Contains(ids, a.ID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemSource) ArticleTranslationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTranslation, error) {
	if err := m.record("ArticleTranslationsByIDs"); err != nil {
		return nil, err
	}
	var out []models.ArticleTranslation
	for _, t := range m.TranslationList {
		if slices.Contains(ids, t.ID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemSource) AuthorByID(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	if err := m.record("AuthorByID"); err != nil {
		return nil, err
	}
	for _, a := range m.AuthorList {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *MemSource) Places(ctx context.Context, f content.PlaceFilter) ([]models.Place, error) {
	if err := m.record("Places"); err != nil {
		return nil, err
	}
	var out []models.Place
	for _, p := range m.PlaceList {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if len(f.CategoryIDs) > 0 && (p.CategoryID == nil || !slices.Contains(f.CategoryIDs, *p.CategoryID)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemSource) Comments(ctx context.Context, f content.CommentFilter) ([]models.Comment, error) {
	if err := m.record("Comments"); err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, c := range m.CommentList {
		if c.ArticleID != f.ArticleID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if !f.IncludeDeleted && c.DeletedAt != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
