package memoir

import (
	"testing"
	"time"
	"tripbook/models"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestNarrative(t *testing.T) {
	tests := []struct {
		name  string
		items []models.ItineraryItem
		want  string
	}{
		{
			name:  "empty day",
			items: nil,
			want:  freeDayText,
		},
		{
			name: "transit only",
			items: []models.ItineraryItem{
				{Type: models.ItemTypeTransport, Title: "Shinkansen"},
				{Type: models.ItemTypeLodging, Title: "Hotel"},
			},
			want: transitDayText,
		},
		{
			name: "untitled activities",
			items: []models.ItineraryItem{
				{Type: models.ItemTypeActivity, Title: ""},
			},
			want: transitDayText,
		},
		{
			name: "single activity",
			items: []models.ItineraryItem{
				{Type: models.ItemTypeActivity, Title: "Fushimi Inari"},
			},
			want: "Today we went to Fushimi Inari.",
		},
		{
			name: "joined with full-width comma",
			items: []models.ItineraryItem{
				{Type: models.ItemTypeActivity, Title: "Fushimi Inari"},
				{Type: models.ItemTypeTransport, Title: "Bus"},
				{Type: models.ItemTypeFood, Title: "Ramen Shop"},
			},
			want: "Today we went to Fushimi Inari、Ramen Shop.",
		},
		{
			name: "first item description is appended",
			items: []models.ItineraryItem{
				{Type: models.ItemTypeActivity, Title: "Fushimi Inari", Description: "Thousands of red gates."},
				{Type: models.ItemTypeFood, Title: "Ramen Shop"},
			},
			want: "Today we went to Fushimi Inari、Ramen Shop. Thousands of red gates.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Narrative(tt.items); got != tt.want {
				t.Errorf("Narrative() = %q, want %q", got, tt.want)
			}
			// Idempotent: a second call yields byte-identical text
			if again := Narrative(tt.items); again != Narrative(tt.items) {
				t.Errorf("Narrative() is not deterministic: %q vs %q", again, Narrative(tt.items))
			}
		})
	}
}

func TestBuildJournalsDates(t *testing.T) {
	start := day("2024-04-01")
	items := []models.ItineraryItem{
		{ID: 1, DayIndex: 0, Type: models.ItemTypeActivity, Title: "A"},
		{ID: 2, DayIndex: 4, Type: models.ItemTypeActivity, Title: "B"},
	}
	journals := BuildJournals(start, 5, items)
	if len(journals) != 5 {
		t.Fatalf("got %d journals, want 5", len(journals))
	}
	for k, journal := range journals {
		if journal.DayIndex != k {
			t.Errorf("journals[%d].DayIndex = %d", k, journal.DayIndex)
		}
		if want := start.AddDate(0, 0, k); !journal.Date.Equal(want) {
			t.Errorf("day %d date = %v, want %v", k, journal.Date, want)
		}
	}
}

func TestBuildJournalsNegativeDayIndex(t *testing.T) {
	journals := BuildJournals(day("2024-04-01"), 1, []models.ItineraryItem{
		{ID: 1, DayIndex: -3, Type: models.ItemTypeActivity, Title: "Lost"},
	})
	if len(journals) != 1 {
		t.Fatalf("got %d journals, want 1", len(journals))
	}
	if len(journals[0].Items) != 1 || journals[0].Items[0].Title != "Lost" {
		t.Errorf("item with missing day index should land on day 0, got %+v", journals[0].Items)
	}
}

func TestBuildJournalsDayIndexBeyondSpan(t *testing.T) {
	journals := BuildJournals(day("2024-04-01"), 2, []models.ItineraryItem{
		{ID: 1, DayIndex: 6, Type: models.ItemTypeActivity, Title: "Late addition"},
	})
	if len(journals) != 7 {
		t.Fatalf("got %d journals, want 7", len(journals))
	}
	if journals[6].Content != "Today we went to Late addition." {
		t.Errorf("day 6 content = %q", journals[6].Content)
	}
}

// The Kyoto scenario: three days, an activity with a cover photo, a food stop
// with two gallery photos and a free final day.
func TestKyotoTrip(t *testing.T) {
	trip := &models.Trip{
		ID:        7,
		Title:     "Kyoto Trip",
		StartDate: day("2024-04-01"),
		EndDate:   day("2024-04-03"),
	}
	items := []models.ItineraryItem{
		{ID: 1, TripID: 7, DayIndex: 0, Type: models.ItemTypeActivity, Title: "Fushimi Inari", ImageURL: "https://img/a.jpg"},
		{ID: 2, TripID: 7, DayIndex: 1, Type: models.ItemTypeFood, Title: "Ramen Shop"},
	}
	gallery := []models.ItemPhoto{
		{ID: 10, ItemID: 2, URL: "https://img/g1.jpg"},
		{ID: 11, ItemID: 2, URL: "https://img/g2.jpg"},
	}
	store := &fakeItemStore{items: items, gallery: gallery}

	journals := BuildJournals(trip.StartDate, TripDayCount(trip), items)
	if len(journals) != 3 {
		t.Fatalf("got %d journals, want 3", len(journals))
	}
	wantContent := []string{
		"Today we went to Fushimi Inari.",
		"Today we went to Ramen Shop.",
		freeDayText,
	}
	for k, want := range wantContent {
		if journals[k].Content != want {
			t.Errorf("day %d content = %q, want %q", k, journals[k].Content, want)
		}
	}

	photos := CollectPhotos(items, store)
	if len(photos) != 3 {
		t.Fatalf("got %d photos, want 3", len(photos))
	}
	wantURLs := []string{"https://img/a.jpg", "https://img/g1.jpg", "https://img/g2.jpg"}
	for i, want := range wantURLs {
		if photos[i].URL != want {
			t.Errorf("photos[%d].URL = %q, want %q", i, photos[i].URL, want)
		}
		if photos[i].Order != i {
			t.Errorf("photos[%d].Order = %d, want %d", i, photos[i].Order, i)
		}
	}
}
