// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"annecy/internal/content"
	"annecy/internal/content/contenttest"
	"annecy/internal/models"
)

func placeIDs(s []content.PlaceSummary) []uuid.UUID {
	out := make([]uuid.UUID, len(s))
	for i, p := range s {
		out[i] = p.ID
	}
	return out
}

func findPlace(t *testing.T, src *contenttest.MemSource, id uuid.UUID) *models.Place {
	t.Helper()
	for i := range src.PlaceList {
		if src.PlaceList[i].ID == id {
			return &src.PlaceList[i]
		}
	}
	t.Fatalf("place %s missing from fixture", id)
	return nil
}

func TestLoadPlaceCollections(t *testing.T) {
	col, err := newService(t, contenttest.Site()).LoadPlaceCollections(context.Background(), hebergements(), "en")
	if err != nil {
		t.Fatalf("LoadPlaceCollections: %v", err)
	}

	if col.Root == nil || col.Root.Name != "Accommodation" || col.Root.Slug != "accommodation" {
		t.Fatalf("Root = %+v", col.Root)
	}
	if col.Counts[contenttest.HotelsID] != 2 || col.Counts[contenttest.CampingsID] != 1 {
		t.Errorf("Counts = %v", col.Counts)
	}
	if want := []uuid.UUID{contenttest.InnID}; !equalIDs(placeIDs(col.Featured), want) {
		t.Errorf("Featured = %v, want %v", placeIDs(col.Featured), want)
	}
	wantRecent := []uuid.UUID{contenttest.CampsiteID, contenttest.InnID, contenttest.LakeHotelID}
	if !equalIDs(placeIDs(col.Recent), wantRecent) {
		t.Errorf("Recent = %v, want %v", placeIDs(col.Recent), wantRecent)
	}
	wantPopular := []uuid.UUID{contenttest.LakeHotelID, contenttest.InnID, contenttest.CampsiteID}
	if !equalIDs(placeIDs(col.Popular), wantPopular) {
		t.Errorf("Popular = %v, want %v (price descending)", placeIDs(col.Popular), wantPopular)
	}

	hotel := col.Popular[0]
	if hotel.Name != "Lake Hotel" || hotel.Slug != contenttest.LakeHotelEn || hotel.CategoryName != "Hotels" {
		t.Errorf("hotel summary = %+v", hotel)
	}
	camp := col.Popular[2]
	if camp.Name != "Camping municipal" || camp.Slug != contenttest.CampsiteSlug || camp.PricePerNight.Valid {
		t.Errorf("campsite summary = %+v", camp)
	}
	if camp.CategorySlug != "campsites" {
		t.Errorf("campsite category slug = %q, want campsites", camp.CategorySlug)
	}
}

func TestLoadPlaceCollectionsCaps(t *testing.T) {
	src := contenttest.Site()
	for i := range 9 {
		src.PlaceList = append(src.PlaceList, models.Place{
			ID:         uuid.New(),
			CategoryID: &contenttest.CampingsID,
			Status:     models.ContentStatusPublished,
			IsFeatured: true,
			Details: &models.DetailsAccommodation{
				PricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(int64(10 * i))),
			},
		})
	}

	col, err := newService(t, src).LoadPlaceCollections(context.Background(), hebergements(), "fr")
	if err != nil {
		t.Fatalf("LoadPlaceCollections: %v", err)
	}
	if len(col.Featured) != 4 || len(col.Recent) != 6 || len(col.Popular) != 5 {
		t.Errorf("caps = %d/%d/%d, want 4/6/5", len(col.Featured), len(col.Recent), len(col.Popular))
	}
}

func TestLoadPlacesForCategory(t *testing.T) {
	page, err := newService(t, contenttest.Site()).LoadPlacesForCategory(context.Background(), hebergements(), contenttest.HotelsID, "fr")
	if err != nil {
		t.Fatalf("LoadPlacesForCategory: %v", err)
	}
	if page.Current == nil || page.Current.Name != "Hôtels" {
		t.Fatalf("Current = %+v", page.Current)
	}
	want := []uuid.UUID{contenttest.LakeHotelID, contenttest.InnID}
	if !equalIDs(placeIDs(page.Places), want) {
		t.Errorf("Places = %v, want %v", placeIDs(page.Places), want)
	}
	if !equalIDs(placeIDs(page.Popular), want) {
		t.Errorf("Popular = %v, want %v", placeIDs(page.Popular), want)
	}
}

func TestLoadPlaceCategorySummaries(t *testing.T) {
	got, err := newService(t, contenttest.Site()).LoadPlaceCategorySummaries(context.Background(), hebergements().RootCategoryID, "en")
	if err != nil {
		t.Fatalf("LoadPlaceCategorySummaries: %v", err)
	}
	want := []content.CategorySummary{
		{ID: contenttest.HotelsID, Name: "Hotels", Slug: "hotels", Count: 2},
		{ID: contenttest.CampingsID, Name: "Campsites", Slug: "campsites", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("summaries = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadPlaceDetail(t *testing.T) {
	src := contenttest.Site()
	res, err := newService(t, src).LoadPlaceDetail(context.Background(), hebergements(), findPlace(t, src, contenttest.LakeHotelID), "en", nil)
	if err != nil {
		t.Fatalf("LoadPlaceDetail: %v", err)
	}

	d := res.Detail
	if d.Name != "Lake Hotel" || d.TranslationLang != "en" {
		t.Errorf("detail = %q/%q", d.Name, d.TranslationLang)
	}
	if !d.PricePerNight.Valid || !d.PricePerNight.Decimal.Equal(decimal.RequireFromString("180.5")) {
		t.Errorf("PricePerNight = %v", d.PricePerNight)
	}
	if len(d.Amenities) != 2 || d.Amenities[0] != "wifi" || d.Amenities[1] != "parking" {
		t.Errorf("Amenities = %v", d.Amenities)
	}
	if d.CheckInTime != "15:00" {
		t.Errorf("CheckInTime = %q, want passthrough", d.CheckInTime)
	}
	if d.CheckOutTime != "2026-01-10T10:00:00Z" {
		t.Errorf("CheckOutTime = %q, want RFC 3339 UTC", d.CheckOutTime)
	}
	if d.Category == nil || d.Category.Name != "Hotels" {
		t.Errorf("Category = %+v", d.Category)
	}

	if want := []uuid.UUID{contenttest.InnID}; !equalIDs(placeIDs(res.Siblings), want) {
		t.Errorf("Siblings = %v, want %v", placeIDs(res.Siblings), want)
	}
	if want := []uuid.UUID{contenttest.InnID}; !equalIDs(placeIDs(res.Popular), want) {
		t.Errorf("Popular = %v, want %v", placeIDs(res.Popular), want)
	}
	if want := []uuid.UUID{contenttest.CampsiteID, contenttest.InnID}; !equalIDs(placeIDs(res.Related), want) {
		t.Errorf("Related = %v, want %v", placeIDs(res.Related), want)
	}
}

func TestLoadPlaceDetailFallbacks(t *testing.T) {
	src := contenttest.Site()
	svc := newService(t, src)

	inn, err := svc.LoadPlaceDetail(context.Background(), hebergements(), findPlace(t, src, contenttest.InnID), "es", nil)
	if err != nil {
		t.Fatalf("LoadPlaceDetail: %v", err)
	}
	if inn.Detail.TranslationLang != "fr" || inn.Detail.Slug != contenttest.InnSlugFr {
		t.Errorf("inn detail = %q/%q, want fr fallback", inn.Detail.TranslationLang, inn.Detail.Slug)
	}
	if len(inn.Detail.Amenities) != 2 || inn.Detail.Amenities[1] != "petit-dejeuner" {
		t.Errorf("Amenities = %v", inn.Detail.Amenities)
	}

	camp, err := svc.LoadPlaceDetail(context.Background(), hebergements(), findPlace(t, src, contenttest.CampsiteID), "fr", nil)
	if err != nil {
		t.Fatalf("LoadPlaceDetail: %v", err)
	}
	if camp.Detail.Amenities == nil || len(camp.Detail.Amenities) != 0 {
		t.Errorf("Amenities = %#v, want empty list", camp.Detail.Amenities)
	}
	for _, p := range append(append(camp.Siblings, camp.Popular...), camp.Related...) {
		if p.ID == contenttest.CampsiteID {
			t.Error("detail lists contain the place itself")
		}
	}
}
