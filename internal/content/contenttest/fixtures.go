// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contenttest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"annecy/internal/models"
	"annecy/internal/registry"
)

// Ids of the records built by Site.
var (
	ActualitesID = uuid.MustParse("0b8f4c1e-7a52-4d7e-9d61-2f1b5a6e0c01")
	CultureID    = uuid.MustParse("0b8f4c1e-7a52-4d7e-9d61-2f1b5a6e0c02")
	HotelsID     = uuid.MustParse("0b8f4c1e-7a52-4d7e-9d61-2f1b5a6e0c03")
	CampingsID   = uuid.MustParse("0b8f4c1e-7a52-4d7e-9d61-2f1b5a6e0c04")
	ArchiveID    = uuid.MustParse("0b8f4c1e-7a52-4d7e-9d61-2f1b5a6e0c05")

	AuthorID = uuid.MustParse("1c2d3e4f-0000-4000-8000-000000000001")

	// LakeArticleID has fr and en translations, is featured and links
	// FestivalArticleID as related.
	LakeArticleID = uuid.MustParse("2a000000-0000-4000-8000-000000000001")
	// FestivalArticleID only has a fr translation.
	FestivalArticleID = uuid.MustParse("2a000000-0000-4000-8000-000000000002")
	// DraftArticleID is unpublished.
	DraftArticleID = uuid.MustParse("2a000000-0000-4000-8000-000000000003")
	// LegacyArticleID has no translations, only flat columns.
	LegacyArticleID = uuid.MustParse("2a000000-0000-4000-8000-000000000004")
	// RootArticleID is attached to the magazine root itself.
	RootArticleID = uuid.MustParse("2a000000-0000-4000-8000-000000000005")

	LakeFrID     = uuid.MustParse("3b000000-0000-4000-8000-000000000001")
	LakeEnID     = uuid.MustParse("3b000000-0000-4000-8000-000000000002")
	FestivalFrID = uuid.MustParse("3b000000-0000-4000-8000-000000000003")
	DraftFrID    = uuid.MustParse("3b000000-0000-4000-8000-000000000004")
	RootFrID     = uuid.MustParse("3b000000-0000-4000-8000-000000000005")

	// LakeHotelID has fr and en translations and list amenities.
	LakeHotelID = uuid.MustParse("4c000000-0000-4000-8000-000000000001")
	// InnID is featured, fr only, with string amenities.
	InnID = uuid.MustParse("4c000000-0000-4000-8000-000000000002")
	// CampsiteID has no translations and no price.
	CampsiteID = uuid.MustParse("4c000000-0000-4000-8000-000000000003")

	CommentRootID    = uuid.MustParse("5d000000-0000-4000-8000-000000000001")
	CommentReplyID   = uuid.MustParse("5d000000-0000-4000-8000-000000000002")
	CommentOrphanID  = uuid.MustParse("5d000000-0000-4000-8000-000000000003")
	CommentPendingID = uuid.MustParse("5d000000-0000-4000-8000-000000000004")
	CommentDeletedID = uuid.MustParse("5d000000-0000-4000-8000-000000000005")
	CommentNestedID  = uuid.MustParse("5d000000-0000-4000-8000-000000000006")
)

// Slugs used by Site.
const (
	LakeSlugFr     = "ouverture-du-lac"
	LakeSlugEn     = "lake-opening"
	FestivalSlugFr = "festival-annecy"
	LegacySlug     = "ancien-article"
	LakeHotelFr    = "hotel-du-lac"
	LakeHotelEn    = "lake-hotel"
	InnSlugFr      = "auberge-du-vieux-annecy"
	CampsiteSlug   = "camping-municipal"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func catTr(cat uuid.UUID, lang, name, seo string) models.CategoryTranslation {
	return models.CategoryTranslation{ID: uuid.New(), CategoryID: cat, LangCode: lang, Name: name, SEOSlug: seo}
}

// Site returns a MemSource holding a small two-entity site: the magazine
// with three child categories and the accommodation directory with two.
func Site() *MemSource {
	mag := registry.MagazineRootID
	heb := registry.HebergementsRootID

	m := &MemSource{}

	m.CategoryList = []models.Category{
		{ID: mag, Slug: "magazine", DisplayOrder: 1, IsActive: true, IconName: ptr("newspaper"),
			Translations: []models.CategoryTranslation{
				catTr(mag, "fr", "Magazine", "magazine"),
				catTr(mag, "en", "Magazine", "magazine"),
				catTr(mag, "es", "Revista", "revista"),
			}},
		{ID: heb, Slug: "hebergements", DisplayOrder: 2, IsActive: true, IconName: ptr("bed"),
			Translations: []models.CategoryTranslation{
				catTr(heb, "fr", "Hébergements", "hebergements"),
				catTr(heb, "en", "Accommodation", "accommodation"),
				catTr(heb, "es", "Alojamiento", "alojamiento"),
			}},
		{ID: ActualitesID, Slug: "actualites", ParentID: &mag, DisplayOrder: 1, IsActive: true, IconName: ptr("megaphone"),
			Translations: []models.CategoryTranslation{
				catTr(ActualitesID, "fr", "Actualités", "actualites"),
				catTr(ActualitesID, "en", "News", "news"),
			}},
		{ID: CultureID, Slug: "culture", ParentID: &mag, DisplayOrder: 2, IsActive: true,
			Translations: []models.CategoryTranslation{
				catTr(CultureID, "fr", "Culture", "culture"),
			}},
		{ID: ArchiveID, Slug: "archives", ParentID: &mag, DisplayOrder: 3, IsActive: false},
		{ID: HotelsID, Slug: "hotels", ParentID: &heb, DisplayOrder: 1, IsActive: true,
			Translations: []models.CategoryTranslation{
				catTr(HotelsID, "fr", "Hôtels", "hotels"),
				catTr(HotelsID, "en", "Hotels", "hotels"),
			}},
		{ID: CampingsID, Slug: "campings", ParentID: &heb, DisplayOrder: 2, IsActive: true,
			Translations: []models.CategoryTranslation{
				catTr(CampingsID, "fr", "Campings", "campings"),
				catTr(CampingsID, "en", "Campsites", "campsites"),
			}},
	}

	m.AuthorList = []models.Author{{
		ID: AuthorID, Slug: "claire-martin", Name: "Claire Martin",
		SocialLinks: []models.SocialLink{{Platform: "instagram", URL: "https://instagram.com/clairemartin"}},
		Translations: []models.AuthorTranslation{
			{ID: uuid.New(), AuthorID: AuthorID, LangCode: "fr", Bio: ptr("Journaliste à Annecy."), SEOSlug: "claire-martin"},
			{ID: uuid.New(), AuthorID: AuthorID, LangCode: "en", Bio: ptr("Journalist in Annecy."), SEOSlug: "claire-martin-en"},
		},
	}}

	m.TranslationList = []models.ArticleTranslation{
		{ID: LakeFrID, ArticleID: LakeArticleID, LangCode: "fr", Name: "Ouverture du lac", SEOSlug: LakeSlugFr,
			Description: ptr("La saison commence."), Content: ptr("# Le lac\n\nLa baignade est ouverte.")},
		{ID: LakeEnID, ArticleID: LakeArticleID, LangCode: "en", Name: "Lake opening", SEOSlug: LakeSlugEn,
			Description: ptr("The season starts."), Content: ptr("# The lake\n\nSwimming is open."), FeaturedImageAlt: ptr("The lake at dawn")},
		{ID: FestivalFrID, ArticleID: FestivalArticleID, LangCode: "fr", Name: "Festival d'Annecy", SEOSlug: FestivalSlugFr},
		{ID: DraftFrID, ArticleID: DraftArticleID, LangCode: "fr", Name: "Brouillon", SEOSlug: "brouillon"},
		{ID: RootFrID, ArticleID: RootArticleID, LangCode: "fr", Name: "Édito", SEOSlug: "edito"},
	}

	m.ArticleList = []models.Article{
		{ID: LakeArticleID, CategoryID: &ActualitesID, AuthorID: &AuthorID, Status: models.ContentStatusPublished,
			IsFeatured: true, PublicationDate: ptr(day("2026-05-01")), ViewCount: ptr(120), ReadTimeMinutes: ptr(4),
			FeaturedImageURL: ptr("https://cdn.example.com/lake.jpg"),
			TranslationIDs:   []uuid.UUID{LakeFrID, LakeEnID},
			RelatedIDs:       []uuid.UUID{FestivalArticleID, LakeArticleID, DraftArticleID}},
		{ID: FestivalArticleID, CategoryID: &CultureID, AuthorID: &AuthorID, Status: models.ContentStatusPublished,
			PublicationDate: ptr(day("2026-04-01")), ViewCount: ptr(300),
			TranslationIDs: []uuid.UUID{FestivalFrID},
			RelatedToIDs:   []uuid.UUID{LakeArticleID, DraftArticleID}},
		{ID: DraftArticleID, CategoryID: &ActualitesID, Status: models.ContentStatusDraft,
			PublicationDate: ptr(day("2026-06-01")), ViewCount: ptr(999),
			TranslationIDs: []uuid.UUID{DraftFrID}},
		{ID: LegacyArticleID, CategoryID: &ActualitesID, Status: models.ContentStatusPublished,
			Legacy: models.ArticleLegacy{Title: ptr("Ancien article"), Summary: ptr("Texte d'origine."), SEOSlug: ptr(LegacySlug), Body: ptr("Corps *historique*.")}},
		{ID: RootArticleID, CategoryID: &mag, Status: models.ContentStatusPublished,
			PublicationDate: ptr(day("2026-07-01")), TranslationIDs: []uuid.UUID{RootFrID}},
	}

	m.PlaceList = []models.Place{
		{ID: LakeHotelID, CategoryID: &HotelsID, Status: models.ContentStatusPublished, CreatedAt: day("2026-01-10"),
			MainImageURL: ptr("https://cdn.example.com/hotel.jpg"),
			Translations: []models.PlaceTranslation{
				{ID: uuid.New(), PlaceID: LakeHotelID, LangCode: "fr", Name: "Hôtel du Lac", SEOSlug: LakeHotelFr},
				{ID: uuid.New(), PlaceID: LakeHotelID, LangCode: "en", Name: "Lake Hotel", SEOSlug: LakeHotelEn},
			},
			Details: &models.DetailsAccommodation{PlaceID: LakeHotelID,
				PricePerNight: decimal.NewNullDecimal(decimal.RequireFromString("180.50")),
				Capacity:      ptr(2), Amenities: json.RawMessage(`["wifi","parking"]`),
				CheckInTime: ptr("15:00"), CheckOutTime: ptr("2026-01-10T11:00:00+01:00")}},
		{ID: InnID, CategoryID: &HotelsID, Status: models.ContentStatusPublished, CreatedAt: day("2026-02-10"), IsFeatured: true,
			Translations: []models.PlaceTranslation{
				{ID: uuid.New(), PlaceID: InnID, LangCode: "fr", Name: "Auberge du Vieil Annecy", SEOSlug: InnSlugFr},
			},
			Details: &models.DetailsAccommodation{PlaceID: InnID,
				PricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(90)),
				Amenities:     json.RawMessage(`"wifi, petit-dejeuner"`)}},
		{ID: CampsiteID, CategoryID: &CampingsID, Status: models.ContentStatusPublished, CreatedAt: day("2026-03-10"),
			Legacy: models.PlaceLegacy{Name: ptr("Camping municipal"), Slug: ptr(CampsiteSlug)}},
	}

	approved := models.CommentStatusApproved
	base := day("2026-05-02")
	m.CommentList = []models.Comment{
		{ID: CommentRootID, ArticleID: LakeArticleID, AuthorName: ptr("Julie"), Content: ptr("Super nouvelle !"),
			Status: approved, CreatedAt: base},
		{ID: CommentReplyID, ArticleID: LakeArticleID, ParentCommentID: &CommentRootID, AuthorName: ptr("Marc"),
			Content: ptr("Enfin !"), Status: approved, CreatedAt: base.Add(time.Hour)},
		{ID: CommentOrphanID, ArticleID: LakeArticleID, ParentCommentID: ptr(uuid.MustParse("5d000000-0000-4000-8000-0000000000ff")),
			AuthorName: ptr("Paul"), Content: ptr("Réponse perdue"), Status: approved, CreatedAt: base.Add(2 * time.Hour)},
		{ID: CommentPendingID, ArticleID: LakeArticleID, AuthorName: ptr("Spam"), Content: ptr("pending"),
			Status: "pending", CreatedAt: base.Add(3 * time.Hour)},
		{ID: CommentDeletedID, ArticleID: LakeArticleID, AuthorName: ptr("Old"), Content: ptr("deleted"),
			Status: approved, CreatedAt: base.Add(4 * time.Hour), DeletedAt: ptr(base.Add(5 * time.Hour))},
		{ID: CommentNestedID, ArticleID: LakeArticleID, ParentCommentID: &CommentReplyID,
			Content: ptr("Sans nom"), Status: approved, CreatedAt: base.Add(6 * time.Hour)},
	}

	return m
}
