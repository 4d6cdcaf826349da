// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"annecy/internal/content/contenttest"
	"annecy/internal/registry"
)

func TestFindRootCategoryBySlug(t *testing.T) {
	svc := newService(t, contenttest.Site())
	ctx := context.Background()

	tests := []struct {
		lang, slug string
		want       uuid.UUID
	}{
		{"fr", "magazine", registry.MagazineRootID},
		{"es", "revista", registry.MagazineRootID},
		{"es", "Magazine", registry.MagazineRootID},
		{"en", "accommodation", registry.HebergementsRootID},
		{"en", "hebergements", registry.HebergementsRootID},
		{"fr", "actualites", uuid.Nil},
		{"fr", "revista", uuid.Nil},
		{"fr", "", uuid.Nil},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.slug, func(t *testing.T) {
			got, err := svc.FindRootCategoryBySlug(ctx, tt.lang, tt.slug)
			if err != nil {
				t.Fatalf("FindRootCategoryBySlug: %v", err)
			}
			if tt.want == uuid.Nil {
				if got != nil {
					t.Errorf("got %s, want no match", got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestFindChildCategoryBySlug(t *testing.T) {
	svc := newService(t, contenttest.Site())
	ctx := context.Background()

	got, err := svc.FindChildCategoryBySlug(ctx, registry.MagazineRootID, "en", "news")
	if err != nil || got == nil || got.ID != contenttest.ActualitesID {
		t.Errorf("en/news = %v, %v; want actualites", got, err)
	}
	got, _ = svc.FindChildCategoryBySlug(ctx, registry.MagazineRootID, "en", "actualites")
	if got == nil || got.ID != contenttest.ActualitesID {
		t.Errorf("canonical slug must match in any locale, got %v", got)
	}
	got, _ = svc.FindChildCategoryBySlug(ctx, registry.MagazineRootID, "fr", "news")
	if got != nil {
		t.Errorf("fr/news = %v, want no match", got.ID)
	}
	got, _ = svc.FindChildCategoryBySlug(ctx, registry.HebergementsRootID, "fr", "actualites")
	if got != nil {
		t.Errorf("child of another root matched: %v", got.ID)
	}
}

func TestFindArticleBySlug(t *testing.T) {
	svc := newService(t, contenttest.Site())
	ctx := context.Background()

	m, err := svc.FindArticleBySlug(ctx, contenttest.ActualitesID, "en", contenttest.LakeSlugEn)
	if err != nil {
		t.Fatalf("FindArticleBySlug: %v", err)
	}
	if m == nil || m.Article.ID != contenttest.LakeArticleID || m.Translation == nil || m.Translation.LangCode != "en" {
		t.Fatalf("en match = %+v", m)
	}

	if m, _ := svc.FindArticleBySlug(ctx, contenttest.ActualitesID, "fr", contenttest.LakeSlugEn); m != nil {
		t.Errorf("fr request matched the en slug: %+v", m)
	}

	m, _ = svc.FindArticleBySlug(ctx, contenttest.ActualitesID, "de", contenttest.LakeSlugEn)
	if m == nil || m.Translation.LangCode != "en" {
		t.Errorf("unsupported locale should match any translation, got %+v", m)
	}

	m, _ = svc.FindArticleBySlug(ctx, contenttest.ActualitesID, "fr", contenttest.LegacySlug)
	if m == nil || m.Article.ID != contenttest.LegacyArticleID || m.Translation != nil {
		t.Errorf("legacy slug match = %+v", m)
	}

	if m, _ := svc.FindArticleBySlug(ctx, contenttest.ActualitesID, "fr", "brouillon"); m != nil {
		t.Errorf("draft article matched: %+v", m)
	}
	if m, _ := svc.FindArticleBySlug(ctx, contenttest.CultureID, "en", contenttest.LakeSlugEn); m != nil {
		t.Errorf("article matched outside its category: %+v", m)
	}
}

func TestFindPlaceBySlug(t *testing.T) {
	svc := newService(t, contenttest.Site())
	ctx := context.Background()

	m, err := svc.FindPlaceBySlug(ctx, contenttest.HotelsID, "en", contenttest.LakeHotelEn)
	if err != nil {
		t.Fatalf("FindPlaceBySlug: %v", err)
	}
	if m == nil || m.Place.ID != contenttest.LakeHotelID || m.Translation.LangCode != "en" {
		t.Fatalf("en match = %+v", m)
	}

	m, _ = svc.FindPlaceBySlug(ctx, contenttest.CampingsID, "en", contenttest.CampsiteSlug)
	if m == nil || m.Place.ID != contenttest.CampsiteID || m.Translation != nil {
		t.Errorf("flat slug match = %+v", m)
	}

	if m, _ := svc.FindPlaceBySlug(ctx, contenttest.HotelsID, "en", contenttest.LakeHotelFr); m != nil {
		t.Errorf("en request matched the fr slug: %+v", m)
	}
}

func TestCategoryDefaultSlug(t *testing.T) {
	src := contenttest.Site()
	svc := newService(t, src)

	c, err := svc.CategoryByID(context.Background(), contenttest.ActualitesID)
	if err != nil || c == nil {
		t.Fatalf("CategoryByID: %v, %v", c, err)
	}
	for lang, want := range map[string]string{"en": "news", "fr": "actualites", "es": "actualites", "": "actualites"} {
		if got := svc.CategoryDefaultSlug(c, lang); got != want {
			t.Errorf("CategoryDefaultSlug(%q) = %q, want %q", lang, got, want)
		}
	}

	archive, _ := svc.CategoryByID(context.Background(), contenttest.ArchiveID)
	if got := svc.CategoryDefaultSlug(archive, "en"); got != "archives" {
		t.Errorf("untranslated category slug = %q, want archives", got)
	}
}
