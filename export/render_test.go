package export

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"
	"tripbook/memoir"
	"tripbook/models"

	"golang.org/x/image/font/basicfont"
)

func testDoc() *Document {
	start, _ := time.Parse("2006-01-02", "2024-04-01")
	return &Document{
		Title:    "Kyoto Trip - Travel Memoir",
		Subtitle: "1 Apr 2024 - 3 Apr 2024",
		Journals: []memoir.DayJournal{
			{DayIndex: 0, Date: start, Content: "Today we went to Fushimi Inari."},
		},
	}
}

func solidFetcher(w, h int) func(string) (image.Image, error) {
	return func(url string) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, w, h)), nil
	}
}

func TestRenderUpscales(t *testing.T) {
	r := &Renderer{Scale: 2, Fetch: solidFetcher(400, 300)}
	img, err := r.Render(testDoc())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != pageWidth*2 {
		t.Errorf("width = %d, want %d", got, pageWidth*2)
	}
	if img.Bounds().Dy() <= img.Bounds().Dx() {
		// A text-only memoir page is taller than wide (portrait)
		t.Errorf("page %dx%d is not portrait", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderNoScale(t *testing.T) {
	r := &Renderer{Scale: 1, Fetch: solidFetcher(400, 300)}
	img, err := r.Render(testDoc())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != pageWidth {
		t.Errorf("width = %d, want %d", got, pageWidth)
	}
}

func TestRenderAbortsOnPhotoFailure(t *testing.T) {
	doc := testDoc()
	doc.Photos = models.PhotoList{{URL: "https://img/broken.jpg", Order: 0}}
	r := &Renderer{Scale: 2, Fetch: func(url string) (image.Image, error) {
		return nil, errors.New("connection refused")
	}}
	if _, err := r.Render(doc); err == nil {
		t.Fatal("Render() should fail when a photo cannot be fetched")
	}
}

func TestRenderGrowsWithPhotos(t *testing.T) {
	r := &Renderer{Scale: 1, Fetch: solidFetcher(400, 300)}
	bare, err := r.Render(testDoc())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := testDoc()
	for i := 0; i < 7; i++ {
		doc.Photos = append(doc.Photos, models.PhotoEntry{URL: "https://img/p.jpg", Order: i})
	}
	withPhotos, err := r.Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// 7 photos at 3 per row adds 3 collage rows
	if withPhotos.Bounds().Dy() <= bare.Bounds().Dy() {
		t.Errorf("photo page height %d should exceed text-only height %d",
			withPhotos.Bounds().Dy(), bare.Bounds().Dy())
	}
}

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13
	lines := wrapText(face, strings.Repeat("word ", 40), 200)
	if len(lines) < 2 {
		t.Fatalf("long paragraph should wrap, got %d line(s)", len(lines))
	}
	for i, line := range lines {
		if w := measure(face, line); w > 200 {
			t.Errorf("line %d is %dpx wide: %q", i, w, line)
		}
	}
	if got := wrapText(face, "", 200); len(got) != 1 || got[0] != "" {
		t.Errorf("empty text should yield one empty line, got %q", got)
	}
}

func measure(face *basicfont.Face, s string) int {
	// basicfont is fixed-width
	return len(s) * face.Advance
}
