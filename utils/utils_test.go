package utils

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"
)

func TestGetDatesString(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"range", day("2024-04-01"), day("2024-04-03"), "1 Apr 2024 - 3 Apr 2024"},
		{"single day", day("2024-04-01"), day("2024-04-01"), "1 Apr 2024"},
		{"no end", day("2024-04-01"), time.Time{}, "1 Apr 2024"},
		{"no dates", time.Time{}, time.Time{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetDatesString(tt.start, tt.end); got != tt.want {
				t.Errorf("GetDatesString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateThumb(t *testing.T) {
	var src bytes.Buffer
	if err := png.Encode(&src, image.NewRGBA(image.Rect(0, 0, 800, 600))); err != nil {
		t.Fatal(err)
	}
	var thumb bytes.Buffer
	result, err := CreateThumb(200, &src, &thumb)
	if err != nil {
		t.Fatalf("CreateThumb() error = %v", err)
	}
	if result.OldX != 800 || result.OldY != 600 {
		t.Errorf("original size = %dx%d, want 800x600", result.OldX, result.OldY)
	}
	if result.NewX != 200 || result.NewY != 150 {
		t.Errorf("thumb size = %dx%d, want 200x150", result.NewX, result.NewY)
	}
	if int64(thumb.Len()) != result.ThumbSize || result.ThumbSize == 0 {
		t.Errorf("thumb bytes = %d, result.ThumbSize = %d", thumb.Len(), result.ThumbSize)
	}
}
