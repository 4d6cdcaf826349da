// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public site as read-only JSON page contexts.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"annecy/internal/cache"
	"annecy/internal/content"
	"annecy/internal/registry"
	"annecy/internal/resolver"
)

// Public groups handlers for the public-facing site. It checks the L2
// Valkey page cache before resolving a path, and stores the encoded page
// context on miss.
type Public struct {
	svc       *content.Service
	resolver  *resolver.Resolver
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(svc *content.Service, pageCache *cache.PageCache) *Public {
	return &Public{
		svc:       svc,
		resolver:  resolver.New(svc),
		pageCache: pageCache,
	}
}

// PageResponse is the body of every resolved page. Exactly one of
// Collections, Category or Detail is set, matching Context.Type.
type PageResponse struct {
	Context     *resolver.PageContext     `json:"context"`
	Summaries   []content.CategorySummary `json:"category_summaries,omitempty"`
	Collections any                       `json:"collections,omitempty"`
	Category    any                       `json:"category,omitempty"`
	Detail      any                       `json:"detail,omitempty"`
	Comments    *content.CommentThread    `json:"comments,omitempty"`
}

// Navigation returns the header navigation for the {lang} URL parameter.
func (p *Public) Navigation(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !validLang(lang) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	items, err := p.svc.LoadNavigation(r.Context(), lang)
	if err != nil {
		slog.Error("load navigation failed", "error", err, "lang", lang)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":  p.svc.Locales().Normalize(lang),
		"items": items,
	})
}

// Page resolves /{lang}/{entity}[/{category}[/{item}]] and returns the
// matching page context with its aggregated content.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)

	if cached, ok := p.pageCache.Get(ctx, key); ok {
		w.Header().Set("X-Cache", "HIT")
		writeRaw(w, http.StatusOK, cached)
		return
	}

	lang, segments, ok := resolver.ParsePath(r.URL.Path)
	if !ok || !validLang(lang) || !validSegments(segments) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	pc, err := p.resolver.Resolve(ctx, lang, segments)
	if err != nil {
		slog.Error("resolve path failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	// Unresolved trailing segments still serve the deepest resolved page,
	// flagged partial.
	if pc == nil {
		slog.Debug("page not found", "path", r.URL.Path)
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	resp, err := p.build(ctx, pc)
	if err != nil {
		slog.Error("load page failed", "error", err, "path", r.URL.Path, "type", pc.Type)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	body, err := encode(resp)
	if err != nil {
		slog.Error("encode page failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	p.pageCache.Set(ctx, key, body)

	w.Header().Set("X-Cache", "MISS")
	writeRaw(w, http.StatusOK, body)
}

// build loads the content for a resolved context.
func (p *Public) build(ctx context.Context, pc *resolver.PageContext) (*PageResponse, error) {
	resp := &PageResponse{Context: pc}
	ent := pc.Entity
	articles := ent.Collection == registry.CollectionArticles

	var err error
	switch pc.Type {
	case resolver.PageEntity:
		if articles {
			resp.Collections, err = p.svc.LoadArticleCollections(ctx, ent, pc.Lang)
			if err == nil {
				resp.Summaries, err = p.svc.LoadArticleCategorySummaries(ctx, pc.EntityID, pc.Lang)
			}
		} else {
			resp.Collections, err = p.svc.LoadPlaceCollections(ctx, ent, pc.Lang)
			if err == nil {
				resp.Summaries, err = p.svc.LoadPlaceCategorySummaries(ctx, pc.EntityID, pc.Lang)
			}
		}

	case resolver.PageCategory:
		if articles {
			resp.Category, err = p.svc.LoadArticlesForCategory(ctx, ent, pc.CategoryID, pc.Lang)
		} else {
			resp.Category, err = p.svc.LoadPlacesForCategory(ctx, ent, pc.CategoryID, pc.Lang)
		}

	case resolver.PageItem:
		if pc.Article != nil {
			resp.Detail, err = p.svc.LoadArticleDetail(ctx, ent, pc.Article, pc.Lang, pc.ArticleTranslation)
			if err == nil {
				resp.Comments, err = p.svc.LoadComments(ctx, pc.Article.ID)
			}
		} else if pc.Place != nil {
			resp.Detail, err = p.svc.LoadPlaceDetail(ctx, ent, pc.Place, pc.Lang, pc.PlaceTranslation)
		}
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := encode(v)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeRaw(w, status, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := encode(map[string]string{"error": msg})
	writeRaw(w, status, body)
}
