// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"annecy/internal/locale"
	"annecy/internal/markdown"
	"annecy/internal/models"
	"annecy/internal/registry"
)

// ArticleSummary is the list view of an article.
type ArticleSummary struct {
	ID               uuid.UUID      `json:"id"`
	CategoryID       uuid.UUID      `json:"category_id"`
	Author           *AuthorSummary `json:"author,omitempty"`
	Title            string         `json:"title"`
	Summary          string         `json:"summary"`
	Slug             string         `json:"slug"`
	FeaturedImageURL string         `json:"featured_image_url,omitempty"`
	FeaturedImageAlt string         `json:"featured_image_alt,omitempty"`
	CategoryName     string         `json:"category_name"`
	CategorySlug     string         `json:"category_slug"`
	CategoryIconName string         `json:"category_icon_name,omitempty"`
	PublicationDate  *time.Time     `json:"publication_date,omitempty"`
	ReadTimeMinutes  int            `json:"read_time_minutes"`
	ViewCount        int            `json:"view_count"`
	IsFeatured       bool           `json:"is_featured"`
}

// ArticleCollections is the landing page model of an article entity.
// Articles attached directly to the root category are not part of it.
type ArticleCollections struct {
	Root       *LocalizedCategory             `json:"root_category"`
	Children   []LocalizedCategory            `json:"child_categories"`
	Counts     map[uuid.UUID]int              `json:"category_counts"`
	ByCategory map[uuid.UUID][]ArticleSummary `json:"articles_by_category"`
	Featured   []ArticleSummary               `json:"featured"`
	Recent     []ArticleSummary               `json:"recent"`
	Popular    []ArticleSummary               `json:"popular"`

	categories categoryIndex
	// bucket order, by first appearance in the source
	order []uuid.UUID
}

// flatten returns every summary, bucket by bucket.
func (c *ArticleCollections) flatten() []ArticleSummary {
	var out []ArticleSummary
	for _, id := range c.order {
		out = append(out, c.ByCategory[id]...)
	}
	return out
}

// ArticleCategoryPage is the page model of one child category.
type ArticleCategoryPage struct {
	*ArticleCollections
	Current  *LocalizedCategory `json:"current_category"`
	Articles []ArticleSummary   `json:"articles"`
	// Popular shadows the entity-wide list with the category's own.
	Popular []ArticleSummary `json:"popular"`
}

// ArticleDetail is the full view of one article.
type ArticleDetail struct {
	ID               uuid.UUID          `json:"id"`
	TranslationLang  string             `json:"translation_lang,omitempty"`
	Author           *AuthorSummary     `json:"author,omitempty"`
	Category         *LocalizedCategory `json:"category,omitempty"`
	Title            string             `json:"title"`
	Summary          string             `json:"summary"`
	Content          string             `json:"content"`
	ContentHTML      string             `json:"content_html"`
	Slug             string             `json:"slug"`
	FeaturedImageURL string             `json:"featured_image_url,omitempty"`
	FeaturedImageAlt string             `json:"featured_image_alt,omitempty"`
	PublicationDate  *time.Time         `json:"publication_date,omitempty"`
	ReadTimeMinutes  int                `json:"read_time_minutes"`
	ViewCount        int                `json:"view_count"`
}

// ArticleDetailResult is an article detail with its surrounding lists.
type ArticleDetailResult struct {
	Detail   ArticleDetail       `json:"detail"`
	Root     *LocalizedCategory  `json:"root_category"`
	Children []LocalizedCategory `json:"child_categories"`
	Siblings []ArticleSummary    `json:"siblings"`
	Popular  []ArticleSummary    `json:"popular"`
	Related  []ArticleSummary    `json:"related"`
}

// LoadArticleCollections aggregates the published articles of the direct
// children of the entity root under lang.
func (s *Service) LoadArticleCollections(ctx context.Context, ent registry.Entity, lang string) (*ArticleCollections, error) {
	lang = s.locales.Normalize(lang)

	root, children, err := s.entityTree(ctx, ent.RootCategoryID)
	if err != nil {
		return nil, fmt.Errorf("load article collections: %w", err)
	}

	col := &ArticleCollections{
		Children:   make([]LocalizedCategory, 0, len(children)),
		Counts:     make(map[uuid.UUID]int),
		ByCategory: make(map[uuid.UUID][]ArticleSummary),
		Featured:   []ArticleSummary{},
		Recent:     []ArticleSummary{},
		Popular:    []ArticleSummary{},
		categories: s.buildCategoryIndex(children, lang),
	}
	if root != nil {
		lc := s.LocalizeCategory(root, lang)
		col.Root = &lc
	}
	col.Children = append(col.Children, col.categories.order...)
	if len(children) == 0 {
		return col, nil
	}

	articles, err := s.src.Articles(ctx, ArticleFilter{
		CategoryIDs: col.categories.ids(),
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("load article collections: %w", err)
	}

	summaries, err := s.summarizeArticles(ctx, newPassCache(), articles, col.categories, lang)
	if err != nil {
		return nil, fmt.Errorf("load article collections: %w", err)
	}

	var featured []ArticleSummary
	for _, sum := range summaries {
		id := sum.CategoryID
		if _, ok := col.categories.byID[id]; !ok {
			continue
		}
		if _, seen := col.ByCategory[id]; !seen {
			col.order = append(col.order, id)
		}
		col.ByCategory[id] = append(col.ByCategory[id], sum)
		col.Counts[id]++
		if sum.IsFeatured {
			featured = append(featured, sum)
		}
	}

	flat := col.flatten()
	col.Featured = capped(sortedArticles(featured, byPublicationDesc), featuredLimit)
	col.Recent = capped(sortedArticles(flat, byPublicationDesc), recentLimit)
	col.Popular = capped(sortedArticles(flat, byViewsDesc), popularLimit)
	return col, nil
}

// LoadArticlesForCategory returns the page model of the child category
// categoryID: its articles in source order and its five most viewed.
func (s *Service) LoadArticlesForCategory(ctx context.Context, ent registry.Entity, categoryID uuid.UUID, lang string) (*ArticleCategoryPage, error) {
	col, err := s.LoadArticleCollections(ctx, ent, lang)
	if err != nil {
		return nil, err
	}

	page := &ArticleCategoryPage{
		ArticleCollections: col,
		Articles:           col.ByCategory[categoryID],
	}
	if c, ok := col.categories.get(&categoryID); ok {
		page.Current = &c
	}
	if page.Articles == nil {
		page.Articles = []ArticleSummary{}
	}
	page.Popular = capped(sortedArticles(page.Articles, byViewsDesc), popularLimit)
	return page, nil
}

// LoadArticleCategorySummaries counts the published articles of every
// direct child of parentID.
func (s *Service) LoadArticleCategorySummaries(ctx context.Context, parentID uuid.UUID, lang string) ([]CategorySummary, error) {
	lang = s.locales.Normalize(lang)

	_, children, err := s.entityTree(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("load article category summaries: %w", err)
	}
	idx := s.buildCategoryIndex(children, lang)
	if len(children) == 0 {
		return []CategorySummary{}, nil
	}

	articles, err := s.src.Articles(ctx, ArticleFilter{
		CategoryIDs: idx.ids(),
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("load article category summaries: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(children))
	for i := range articles {
		if id := articles[i].CategoryID; id != nil {
			counts[*id]++
		}
	}
	return idx.summaries(counts), nil
}

// LoadArticleDetail builds the detail page of a. When override is non-nil
// it is used as the article translation instead of selecting one again.
func (s *Service) LoadArticleDetail(ctx context.Context, ent registry.Entity, a *models.Article, lang string, override *models.ArticleTranslation) (*ArticleDetailResult, error) {
	lang = s.locales.Normalize(lang)

	col, err := s.LoadArticleCollections(ctx, ent, lang)
	if err != nil {
		return nil, err
	}
	pc := newPassCache()

	tr := override
	if tr == nil {
		translations, err := s.resolveArticleTranslations(ctx, []models.Article{*a})
		if err != nil {
			return nil, fmt.Errorf("load article detail: %w", err)
		}
		if sel, ok := locale.Select(s.locales, translations[a.ID], lang); ok {
			tr = &sel
		}
	}
	var t models.ArticleTranslation
	if tr != nil {
		t = *tr
	}

	author, err := s.author(ctx, pc, a.AuthorID, lang)
	if err != nil {
		return nil, fmt.Errorf("load article detail: %w", err)
	}

	content := resolve("", textPtr(t.Content), textPtr(a.Legacy.Body))
	html, err := markdown.ToHTML(content)
	if err != nil {
		return nil, fmt.Errorf("render article %s: %w", a.ID, err)
	}

	res := &ArticleDetailResult{
		Detail: ArticleDetail{
			ID:               a.ID,
			TranslationLang:  t.LangCode,
			Author:           author,
			Title:            resolve(a.ID.String(), text(t.Name), textPtr(a.Legacy.Title)),
			Summary:          resolve("", textPtr(t.Description), textPtr(a.Legacy.Summary)),
			Content:          content,
			ContentHTML:      html,
			Slug:             resolve(a.ID.String(), text(t.SEOSlug), textPtr(a.Legacy.SEOSlug)),
			FeaturedImageURL: resolve("", textPtr(a.FeaturedImageURL)),
			FeaturedImageAlt: resolve("", textPtr(t.FeaturedImageAlt), textPtr(a.Legacy.FeaturedImageAlt)),
			PublicationDate:  resolve(nil, timePtr(a.PublicationDate)),
			ReadTimeMinutes:  resolve(0, intPtr(a.ReadTimeMinutes)),
			ViewCount:        resolve(0, intPtr(a.ViewCount)),
		},
		Root:     col.Root,
		Children: col.Children,
		Siblings: []ArticleSummary{},
		Popular:  []ArticleSummary{},
		Related:  []ArticleSummary{},
	}

	if a.CategoryID != nil {
		c, err := s.src.CategoryByID(ctx, *a.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("load article detail: %w", err)
		}
		if c != nil {
			lc := s.LocalizeCategory(c, lang)
			res.Detail.Category = &lc
		}

		same := col.ByCategory[*a.CategoryID]
		res.Siblings = capped(withoutArticle(same, a.ID), siblingLimit)
		res.Popular = capped(withoutArticle(sortedArticles(same, byViewsDesc), a.ID), popularLimit)
	}

	// Articles without outgoing links fall back to the ones linking to them.
	relatedIDs := a.RelatedIDs
	if len(relatedIDs) == 0 {
		relatedIDs = a.RelatedToIDs
	}
	if len(relatedIDs) > 0 {
		related, err := s.src.ArticlesByIDs(ctx, relatedIDs)
		if err != nil {
			return nil, fmt.Errorf("load related articles: %w", err)
		}
		related = slices.DeleteFunc(related, func(r models.Article) bool {
			return r.ID == a.ID || !r.IsPublished()
		})
		summaries, err := s.summarizeArticles(ctx, pc, related, col.categories, lang)
		if err != nil {
			return nil, fmt.Errorf("load related articles: %w", err)
		}
		res.Related = append(res.Related, summaries...)
	}

	return res, nil
}

// summarizeArticles builds the summaries of articles in input order.
func (s *Service) summarizeArticles(ctx context.Context, pc *passCache, articles []models.Article, idx categoryIndex, lang string) ([]ArticleSummary, error) {
	translations, err := s.resolveArticleTranslations(ctx, articles)
	if err != nil {
		return nil, err
	}

	out := make([]ArticleSummary, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		tr, _ := locale.Select(s.locales, translations[a.ID], lang)
		author, err := s.author(ctx, pc, a.AuthorID, lang)
		if err != nil {
			return nil, err
		}
		cat, _ := idx.get(a.CategoryID)

		sum := ArticleSummary{
			ID:               a.ID,
			Author:           author,
			Title:            resolve(a.ID.String(), text(tr.Name), textPtr(a.Legacy.Title)),
			Summary:          resolve("", textPtr(tr.Description), textPtr(a.Legacy.Summary)),
			Slug:             resolve(a.ID.String(), text(tr.SEOSlug), textPtr(a.Legacy.SEOSlug)),
			FeaturedImageURL: resolve("", textPtr(a.FeaturedImageURL)),
			FeaturedImageAlt: resolve("", textPtr(tr.FeaturedImageAlt), textPtr(a.Legacy.FeaturedImageAlt)),
			CategoryName:     cat.Name,
			CategorySlug:     cat.Slug,
			CategoryIconName: cat.IconName,
			PublicationDate:  resolve(nil, timePtr(a.PublicationDate)),
			ReadTimeMinutes:  resolve(0, intPtr(a.ReadTimeMinutes)),
			ViewCount:        resolve(0, intPtr(a.ViewCount)),
			IsFeatured:       a.IsFeatured,
		}
		if a.CategoryID != nil {
			sum.CategoryID = *a.CategoryID
		}
		out = append(out, sum)
	}
	return out, nil
}

func byPublicationDesc(a, b ArticleSummary) int {
	return cmp.Compare(unixOrZero(b.PublicationDate), unixOrZero(a.PublicationDate))
}

func byViewsDesc(a, b ArticleSummary) int {
	return cmp.Compare(b.ViewCount, a.ViewCount)
}

func unixOrZero(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}

// sortedArticles returns a stably sorted copy of in.
func sortedArticles(in []ArticleSummary, by func(a, b ArticleSummary) int) []ArticleSummary {
	out := slices.Clone(in)
	slices.SortStableFunc(out, by)
	return out
}

func withoutArticle(in []ArticleSummary, id uuid.UUID) []ArticleSummary {
	out := make([]ArticleSummary, 0, len(in))
	for _, s := range in {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// capped truncates s to at most n elements and never returns nil.
func capped[T any](s []T, n int) []T {
	if s == nil {
		return []T{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
