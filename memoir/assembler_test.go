package memoir

import (
	"reflect"
	"testing"
	"tripbook/models"
)

func kyotoStores() (*models.Trip, *fakeItemStore) {
	trip := &models.Trip{
		ID:        7,
		Title:     "Kyoto Trip",
		StartDate: day("2024-04-01"),
		EndDate:   day("2024-04-03"),
	}
	items := &fakeItemStore{
		items: []models.ItineraryItem{
			{ID: 1, TripID: 7, DayIndex: 0, Type: models.ItemTypeActivity, Title: "Fushimi Inari", ImageURL: "https://img/a.jpg"},
			{ID: 2, TripID: 7, DayIndex: 1, Type: models.ItemTypeFood, Title: "Ramen Shop"},
		},
		gallery: []models.ItemPhoto{
			{ID: 10, ItemID: 2, URL: "https://img/g1.jpg"},
			{ID: 11, ItemID: 2, URL: "https://img/g2.jpg"},
		},
	}
	return trip, items
}

func TestLoadCreatesMissingMemoir(t *testing.T) {
	trip, items := kyotoStores()
	memoirs := &fakeMemoirStore{}
	assembler := &Assembler{Items: items, Memoirs: memoirs}

	view, err := assembler.Load(trip)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if memoirs.creates != 1 {
		t.Fatalf("creates = %d, want 1", memoirs.creates)
	}
	if view.Memoir.Title != "Kyoto Trip - Travel Memoir" {
		t.Errorf("title = %q", view.Memoir.Title)
	}
	if len(view.Photos) != 3 {
		t.Errorf("got %d photos, want 3", len(view.Photos))
	}
	if len(view.Journals) != 3 {
		t.Errorf("got %d journals, want 3", len(view.Journals))
	}
	if view.Repaired {
		t.Error("fresh memoir must not be flagged as repaired")
	}
	// The created record carries the aggregated photos
	if !reflect.DeepEqual(memoirs.record.Photos, view.Photos) {
		t.Errorf("persisted photos differ from view photos")
	}
}

func TestLoadUsesExistingPhotos(t *testing.T) {
	trip, items := kyotoStores()
	saved := models.PhotoList{
		{URL: "https://img/custom.jpg", Caption: "hand-picked", Order: 0, Source: models.PhotoSourceUpload},
	}
	memoirs := &fakeMemoirStore{record: &models.Memoir{ID: 3, TripID: 7, Title: "My Title", Photos: saved}}
	assembler := &Assembler{Items: items, Memoirs: memoirs}

	view, err := assembler.Load(trip)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if memoirs.creates != 0 {
		t.Errorf("creates = %d, want 0", memoirs.creates)
	}
	if !reflect.DeepEqual(view.Photos, saved) {
		t.Errorf("photos = %+v, want the saved list untouched", view.Photos)
	}
	// Journals are recomputed regardless of memoir existence
	if len(view.Journals) != 3 {
		t.Errorf("got %d journals, want 3", len(view.Journals))
	}
}

func TestLoadAutoRepairDoesNotPersist(t *testing.T) {
	trip, items := kyotoStores()
	memoirs := &fakeMemoirStore{record: &models.Memoir{ID: 3, TripID: 7, Title: "Kyoto Trip - Travel Memoir"}}
	assembler := &Assembler{Items: items, Memoirs: memoirs}

	view, err := assembler.Load(trip)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !view.Repaired {
		t.Error("empty photo list should be repaired in memory")
	}
	if len(view.Photos) != 3 {
		t.Errorf("got %d repaired photos, want 3", len(view.Photos))
	}
	// The persisted record stays empty until an explicit save
	if memoirs.replaces != 0 || memoirs.creates != 0 {
		t.Errorf("repair must not persist: creates=%d replaces=%d", memoirs.creates, memoirs.replaces)
	}
	record, _ := memoirs.ForTrip(7)
	if len(record.Photos) != 0 {
		t.Errorf("persisted photos = %d, want 0 after repair without save", len(record.Photos))
	}
}

func TestSaveReplacesTitleAndPhotosAtomically(t *testing.T) {
	_, items := kyotoStores()
	memoirs := &fakeMemoirStore{record: &models.Memoir{ID: 3, TripID: 7, Title: "Old", Photos: models.PhotoList{{URL: "https://img/old.jpg"}}}}
	assembler := &Assembler{Items: items, Memoirs: memoirs}

	// Simulate in-memory edits: delete index 0 of a 3 photo list, edit a caption
	photos := models.PhotoList{
		{URL: "https://img/a.jpg", Order: 0},
		{URL: "https://img/b.jpg", Order: 1},
		{URL: "https://img/c.jpg", Order: 2},
	}
	photos = photos.RemoveAt(0)
	photos.SetCaption(1, "sunset")

	if err := assembler.Save(3, "New Title", photos); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	record, _ := memoirs.ForTrip(7)
	if record.Title != "New Title" {
		t.Errorf("title = %q, want %q", record.Title, "New Title")
	}
	if len(record.Photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(record.Photos))
	}
	// Order gaps left by the deletion are healed on save
	for i, photo := range record.Photos {
		if photo.Order != i {
			t.Errorf("photos[%d].Order = %d, want %d", i, photo.Order, i)
		}
	}
	if record.Photos[1].Caption != "sunset" {
		t.Errorf("caption edit lost: %+v", record.Photos[1])
	}
}

func TestSaveFailureLeavesRecordUntouched(t *testing.T) {
	memoirs := &fakeMemoirStore{
		record:     &models.Memoir{ID: 3, TripID: 7, Title: "Old", Photos: models.PhotoList{{URL: "https://img/old.jpg"}}},
		replaceErr: errGalleryDown,
	}
	assembler := &Assembler{Items: &fakeItemStore{}, Memoirs: memoirs}
	err := assembler.Save(3, "New", models.PhotoList{})
	if err == nil {
		t.Fatal("Save() should surface the store error")
	}
	record, _ := memoirs.ForTrip(7)
	if record.Title != "Old" || len(record.Photos) != 1 {
		t.Errorf("failed save must not change the record: %+v", record)
	}
}

func TestRegenerateDiscardsUnsavedEdits(t *testing.T) {
	trip, items := kyotoStores()
	memoirs := &fakeMemoirStore{record: &models.Memoir{ID: 3, TripID: 7, Title: "T"}}
	assembler := &Assembler{Items: items, Memoirs: memoirs}

	photos, journals, err := assembler.Regenerate(trip)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("got %d photos, want 3 freshly aggregated", len(photos))
	}
	// A manually captioned upload entry never survives: the fresh list only
	// contains cover and gallery sourced photos
	for _, photo := range photos {
		if photo.Source == models.PhotoSourceUpload || photo.Caption == "my caption" {
			t.Errorf("unsaved edit survived regeneration: %+v", photo)
		}
	}
	if len(journals) != 3 {
		t.Errorf("got %d journals, want 3", len(journals))
	}
	// Regenerate itself persists nothing
	if memoirs.replaces != 0 {
		t.Errorf("replaces = %d, want 0", memoirs.replaces)
	}
}
