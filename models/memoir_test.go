package models

import (
	"testing"
)

func photoFixture() PhotoList {
	return PhotoList{
		{URL: "https://img/cover.jpg", Caption: "Temple", Order: 0, Source: PhotoSourceCover, ItemID: 1},
		{URL: "https://img/g1.jpg", Order: 1, Source: PhotoSourceGallery, ItemID: 1},
		{URL: "https://img/extra.jpg", Order: 2, Source: PhotoSourceUpload},
	}
}

func TestPhotoListReindexHealsGaps(t *testing.T) {
	photos := photoFixture()
	photos = photos.RemoveAt(1)
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos after removal, got %d", len(photos))
	}
	// Removal leaves the old order values behind
	if photos[1].Order != 2 {
		t.Fatalf("expected stale order 2 before reindex, got %d", photos[1].Order)
	}
	photos = photos.Reindex()
	for i, p := range photos {
		if p.Order != i {
			t.Errorf("photo %d has order %d after reindex", i, p.Order)
		}
	}
}

func TestPhotoListRemoveAtOutOfRange(t *testing.T) {
	photos := photoFixture()
	if got := photos.RemoveAt(-1); len(got) != 3 {
		t.Errorf("RemoveAt(-1) changed the list: %d entries", len(got))
	}
	if got := photos.RemoveAt(3); len(got) != 3 {
		t.Errorf("RemoveAt(3) changed the list: %d entries", len(got))
	}
}

func TestPhotoListSetCaption(t *testing.T) {
	photos := photoFixture()
	if !photos.SetCaption(1, "Shrine gate") {
		t.Fatal("SetCaption(1) should succeed")
	}
	if photos[1].Caption != "Shrine gate" {
		t.Errorf("caption = %q", photos[1].Caption)
	}
	if photos.SetCaption(5, "nope") {
		t.Error("SetCaption(5) should fail on out-of-range index")
	}
}

func TestPhotoListScanRoundTrip(t *testing.T) {
	photos := photoFixture()
	value, err := photos.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	restored := PhotoList{}
	if err = restored.Scan(value); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(restored) != len(photos) {
		t.Fatalf("restored %d photos, want %d", len(restored), len(photos))
	}
	if restored[0].ItemID != 1 || restored[0].Source != PhotoSourceCover {
		t.Errorf("first photo lost fields: %+v", restored[0])
	}
	if restored[2].ItemID != 0 {
		t.Errorf("upload photo should have no item: %+v", restored[2])
	}
}

func TestPhotoListScanNil(t *testing.T) {
	photos := PhotoList{}
	if err := photos.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("Scan(nil) should yield an empty list, got %d entries", len(photos))
	}
}

func TestNilPhotoListValue(t *testing.T) {
	var photos PhotoList
	value, err := photos.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if value != "[]" {
		t.Errorf("nil list should serialize as empty array, got %v", value)
	}
}
