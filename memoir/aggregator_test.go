package memoir

import (
	"reflect"
	"testing"
	"tripbook/models"
)

func item(id uint64, title, imageURL string) models.ItineraryItem {
	return models.ItineraryItem{ID: id, Title: title, Type: models.ItemTypeActivity, ImageURL: imageURL}
}

func TestCollectPhotos(t *testing.T) {
	items := []models.ItineraryItem{
		item(1, "Fushimi Inari", "https://img/a.jpg"),
		item(2, "Ramen Shop", ""),
		item(3, "Kinkaku-ji", "https://img/c.jpg"),
	}
	gallery := []models.ItemPhoto{
		{ID: 10, ItemID: 2, URL: "https://img/g1.jpg"},
		{ID: 11, ItemID: 2, URL: "https://img/g2.jpg"},
	}
	store := &fakeItemStore{gallery: gallery}
	photos := CollectPhotos(items, store)

	// 2 covers + 2 gallery photos, covers first
	if len(photos) != 4 {
		t.Fatalf("got %d photos, want 4", len(photos))
	}
	wantSources := []string{
		models.PhotoSourceCover, models.PhotoSourceCover,
		models.PhotoSourceGallery, models.PhotoSourceGallery,
	}
	for i, photo := range photos {
		if photo.Source != wantSources[i] {
			t.Errorf("photos[%d].Source = %q, want %q", i, photo.Source, wantSources[i])
		}
		if photo.Order != i {
			t.Errorf("photos[%d].Order = %d, want %d", i, photo.Order, i)
		}
	}
	if photos[0].Caption != "Fushimi Inari" || photos[1].Caption != "Kinkaku-ji" {
		t.Errorf("cover captions = %q, %q, want item titles", photos[0].Caption, photos[1].Caption)
	}
	if photos[2].Caption != "" || photos[3].Caption != "" {
		t.Errorf("gallery captions should be empty, got %q, %q", photos[2].Caption, photos[3].Caption)
	}
	// One bulk gallery lookup for the whole item set, not one per item
	if len(store.galleryCalls) != 1 {
		t.Fatalf("gallery lookups = %d, want 1", len(store.galleryCalls))
	}
	if got, want := store.galleryCalls[0], []uint64{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("gallery lookup ids = %v, want %v", got, want)
	}
}

func TestCollectPhotosDeterministic(t *testing.T) {
	items := []models.ItineraryItem{
		item(1, "One", "https://img/1.jpg"),
		item(2, "Two", "https://img/2.jpg"),
	}
	store := &fakeItemStore{gallery: []models.ItemPhoto{{ID: 5, ItemID: 1, URL: "https://img/g.jpg"}}}
	first := CollectPhotos(items, store)
	second := CollectPhotos(items, store)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ:\n%+v\n%+v", first, second)
	}
}

func TestCollectPhotosGalleryFailure(t *testing.T) {
	items := []models.ItineraryItem{
		item(1, "One", "https://img/1.jpg"),
		item(2, "Two", ""),
	}
	store := &fakeItemStore{galleryErr: errGalleryDown}
	photos := CollectPhotos(items, store)
	// Degrades to cover-only instead of failing
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1 cover", len(photos))
	}
	if photos[0].Source != models.PhotoSourceCover || photos[0].Order != 0 {
		t.Errorf("unexpected degraded entry: %+v", photos[0])
	}
}

func TestCollectPhotosNoItems(t *testing.T) {
	store := &fakeItemStore{}
	photos := CollectPhotos(nil, store)
	if len(photos) != 0 {
		t.Errorf("got %d photos, want 0", len(photos))
	}
	if len(store.galleryCalls) != 0 {
		t.Errorf("gallery lookups = %d, want 0 for empty item set", len(store.galleryCalls))
	}
}
