// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"annecy/internal/models"
)

func TestCategoryStore(t *testing.T) {
	db := testDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	root := f.category(nil, 900)
	child := f.category(&root, 901)
	f.categoryTranslation(root, "fr", "Racine", "racine")
	f.categoryTranslation(root, "en", "Root", "root")
	f.categoryTranslation(root, "es", "Raíz", "raiz")

	s := NewCategoryStore(db)

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var got *models.Category
	rootIdx, childIdx := -1, -1
	for i := range items {
		switch items[i].ID {
		case root:
			got, rootIdx = &items[i], i
		case child:
			childIdx = i
		}
	}
	if got == nil || childIdx < 0 {
		t.Fatal("fixture categories missing from List")
	}
	if rootIdx > childIdx {
		t.Error("categories not ordered by display_order")
	}
	var langs []string
	for _, tr := range got.Translations {
		langs = append(langs, tr.LangCode)
	}
	if want := []string{"fr", "en", "es"}; !slices.Equal(langs, want) {
		t.Errorf("translation order = %v, want %v", langs, want)
	}

	c, err := s.FindByID(ctx, child)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if c == nil || c.ParentID == nil || *c.ParentID != root {
		t.Fatalf("FindByID(child) = %+v", c)
	}
	if len(c.Translations) != 0 {
		t.Errorf("child translations = %d, want 0", len(c.Translations))
	}

	missing, err := s.FindByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("FindByID(missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown category")
	}
}

func TestArticleStore(t *testing.T) {
	db := testDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	cat := f.category(nil, 910)
	older := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 1, 0)

	a := f.article(cat, "published", &older)
	b := f.article(cat, "published", &newer)
	undated := f.article(cat, "published", nil)
	draft := f.article(cat, "draft", &newer)

	aFr := f.articleTranslation(a, "fr", "Titre", "titre")
	aEn := f.articleTranslation(a, "en", "Title", "title")
	f.related(a, b)
	f.related(a, undated)
	f.related(draft, a)

	s := NewArticleStore(db)

	t.Run("List", func(t *testing.T) {
		items, err := s.List(ctx, ArticleFilter{
			CategoryIDs: []uuid.UUID{cat},
			Status:      models.ContentStatusPublished,
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		var ids []uuid.UUID
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		if want := []uuid.UUID{b, a, undated}; !slices.Equal(ids, want) {
			t.Fatalf("order = %v, want %v", ids, want)
		}

		got := items[1]
		if !slices.Equal(got.TranslationIDs, []uuid.UUID{aFr, aEn}) {
			t.Errorf("TranslationIDs = %v", got.TranslationIDs)
		}
		if !slices.Equal(got.RelatedIDs, []uuid.UUID{b, undated}) {
			t.Errorf("RelatedIDs = %v", got.RelatedIDs)
		}
		if !slices.Equal(got.RelatedToIDs, []uuid.UUID{draft}) {
			t.Errorf("RelatedToIDs = %v", got.RelatedToIDs)
		}
		if got.Legacy.SEOSlug == nil || *got.Legacy.SEOSlug != "legacy-"+a.String() {
			t.Errorf("legacy slug = %v", got.Legacy.SEOSlug)
		}
	})

	t.Run("List without status", func(t *testing.T) {
		items, err := s.List(ctx, ArticleFilter{CategoryIDs: []uuid.UUID{cat}})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != 4 {
			t.Errorf("got %d articles, want 4", len(items))
		}
	})

	t.Run("ByIDs", func(t *testing.T) {
		items, err := s.ByIDs(ctx, []uuid.UUID{undated, uuid.New(), a, undated})
		if err != nil {
			t.Fatalf("ByIDs: %v", err)
		}
		if len(items) != 2 || items[0].ID != undated || items[1].ID != a {
			t.Errorf("ByIDs returned %d items in wrong order", len(items))
		}

		none, err := s.ByIDs(ctx, nil)
		if err != nil || len(none) != 0 {
			t.Errorf("ByIDs(nil) = %v, %v", none, err)
		}
	})

	t.Run("TranslationsByIDs", func(t *testing.T) {
		items, err := s.TranslationsByIDs(ctx, []uuid.UUID{aEn, uuid.New()})
		if err != nil {
			t.Fatalf("TranslationsByIDs: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("got %d translations, want 1", len(items))
		}
		tr := items[0]
		if tr.ArticleID != a || tr.LangCode != "en" || tr.SEOSlug != "title" {
			t.Errorf("translation = %+v", tr)
		}
		if tr.Content == nil || *tr.Content != "# Title" {
			t.Errorf("content = %v", tr.Content)
		}
	})
}

func TestAuthorStore(t *testing.T) {
	db := testDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	id := f.author(`[{"platform":"twitter","url":"https://x.com/test"}]`)
	f.exec(`INSERT INTO author_translations (author_id, lang_code, bio, seo_slug) VALUES ($1, 'fr', 'Bio', 'bio')`, id)

	s := NewAuthorStore(db)
	a, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if a == nil {
		t.Fatal("expected author")
	}
	if len(a.SocialLinks) != 1 || a.SocialLinks[0].Platform != "twitter" {
		t.Errorf("social links = %+v", a.SocialLinks)
	}
	if len(a.Translations) != 1 || a.Translations[0].Bio == nil || *a.Translations[0].Bio != "Bio" {
		t.Errorf("translations = %+v", a.Translations)
	}

	missing, err := s.FindByID(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Errorf("FindByID(missing) = %v, %v", missing, err)
	}
}

func TestPlaceStore(t *testing.T) {
	db := testDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	cat := f.category(nil, 920)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bare := f.place(cat, base)
	detailed := f.place(cat, base.Add(time.Hour))
	f.exec(`INSERT INTO place_translations (place_id, lang_code, name, seo_slug) VALUES ($1, 'fr', 'Hôtel', 'hotel')`, detailed)
	f.exec(`INSERT INTO details_accommodation (place_id, price_per_night, capacity, amenities, check_in_time)
		VALUES ($1, 129.50, 4, '["wifi","parking"]', '15:00')`, detailed)

	s := NewPlaceStore(db)
	items, err := s.List(ctx, PlaceFilter{CategoryIDs: []uuid.UUID{cat}, Status: models.ContentStatusPublished})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != detailed || items[1].ID != bare {
		t.Fatalf("List returned %d items in wrong order", len(items))
	}

	p := items[0]
	if p.Details == nil {
		t.Fatal("expected details")
	}
	if !p.Details.PricePerNight.Valid || p.Details.PricePerNight.Decimal.String() != "129.5" {
		t.Errorf("price = %v", p.Details.PricePerNight)
	}
	if p.Details.Capacity == nil || *p.Details.Capacity != 4 {
		t.Errorf("capacity = %v", p.Details.Capacity)
	}
	if string(p.Details.Amenities) == "" {
		t.Error("amenities empty")
	}
	if len(p.Translations) != 1 || p.Translations[0].SEOSlug != "hotel" {
		t.Errorf("translations = %+v", p.Translations)
	}
	if items[1].Details != nil {
		t.Error("place without details row should have nil Details")
	}
	if items[1].Legacy.Slug == nil || *items[1].Legacy.Slug != "place-"+bare.String() {
		t.Errorf("legacy slug = %v", items[1].Legacy.Slug)
	}
}

func TestCommentStore(t *testing.T) {
	db := testDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	cat := f.category(nil, 930)
	article := f.article(cat, "published", nil)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	second := f.comment(article, nil, models.CommentStatusApproved, at.Add(time.Minute), false)
	first := f.comment(article, nil, models.CommentStatusApproved, at, false)
	f.comment(article, &first, "pending", at.Add(2*time.Minute), false)
	deleted := f.comment(article, nil, models.CommentStatusApproved, at.Add(3*time.Minute), true)

	s := NewCommentStore(db)

	items, err := s.List(ctx, CommentFilter{ArticleID: article, Status: models.CommentStatusApproved})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != first || items[1].ID != second {
		t.Fatalf("List returned %d comments in wrong order", len(items))
	}

	all, err := s.List(ctx, CommentFilter{ArticleID: article, IncludeDeleted: true})
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) != 4 || all[3].ID != deleted || all[3].DeletedAt == nil {
		t.Errorf("List(all) returned %d comments", len(all))
	}
}
