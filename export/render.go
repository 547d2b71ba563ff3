package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"
	"tripbook/memoir"
	"tripbook/models"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Document is the fully assembled memoir ready for rasterization.
type Document struct {
	Title    string
	Subtitle string
	Journals []memoir.DayJournal
	Photos   models.PhotoList
}

const (
	pageWidth    = 800 // layout width in pixels before upscaling
	marginX      = 50
	lineHeight   = 18
	photoColumns = 3
	photoCellW   = 220
	photoCellH   = 165
	photoGap     = 20
)

var paperColor = color.RGBA{R: 0xff, G: 0xfb, B: 0xf7, A: 0xff}

// Renderer rasterizes a Document into a single bitmap. Fetch loads a photo
// by URL; the default uses HTTP with a timeout. Scale is the fixed
// upscaling factor applied for legibility.
type Renderer struct {
	Fetch func(url string) (image.Image, error)
	Scale int
}

func NewRenderer() *Renderer {
	client := &http.Client{Timeout: 30 * time.Second}
	return &Renderer{
		Scale: 2,
		Fetch: func(url string) (image.Image, error) {
			resp, err := client.Get(url)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
			}
			img, _, err := image.Decode(resp.Body)
			return img, err
		},
	}
}

// Render lays the document out at 1x and upscales the finished page. Any
// photo fetch or decode failure aborts the whole export.
func (r *Renderer) Render(doc *Document) (image.Image, error) {
	if r.Fetch == nil {
		return nil, errors.New("no photo fetcher configured")
	}
	photos := make([]image.Image, 0, len(doc.Photos))
	for _, entry := range doc.Photos {
		img, err := r.Fetch(entry.URL)
		if err != nil {
			return nil, fmt.Errorf("photo %d: %w", entry.Order, err)
		}
		photos = append(photos, resize.Thumbnail(photoCellW, photoCellH, img, resize.Lanczos3))
	}

	face := basicfont.Face7x13
	textWidth := pageWidth - 2*marginX
	lines := []string{"", doc.Title, doc.Subtitle, ""}
	for _, journal := range doc.Journals {
		lines = append(lines, fmt.Sprintf("Day %d - %s", journal.DayIndex+1, journal.Date.Format("2 Jan 2006")))
		lines = append(lines, wrapText(face, journal.Content, textWidth)...)
		lines = append(lines, "")
	}

	photoRows := (len(doc.Photos) + photoColumns - 1) / photoColumns
	captionSpace := lineHeight + photoGap
	height := len(lines)*lineHeight + photoRows*(photoCellH+captionSpace) + 3*lineHeight

	canvas := image.NewRGBA(image.Rect(0, 0, pageWidth, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: paperColor}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: face,
	}
	y := lineHeight
	for _, line := range lines {
		drawer.Dot = fixed.P(marginX, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	for i, photo := range photos {
		col := i % photoColumns
		row := i / photoColumns
		x := marginX + col*(photoCellW+photoGap)
		top := y + row*(photoCellH+captionSpace)
		bounds := photo.Bounds()
		// Center the thumbnail inside its cell
		offset := image.Pt(x+(photoCellW-bounds.Dx())/2, top+(photoCellH-bounds.Dy())/2)
		draw.Draw(canvas, bounds.Add(offset.Sub(bounds.Min)), photo, bounds.Min, draw.Over)
		if caption := doc.Photos[i].Caption; caption != "" {
			drawer.Dot = fixed.P(x, top+photoCellH+lineHeight)
			drawer.DrawString(truncateText(face, caption, photoCellW))
		}
	}

	if r.Scale <= 1 {
		return canvas, nil
	}
	return resize.Resize(uint(pageWidth*r.Scale), 0, canvas, resize.Lanczos3), nil
}

// wrapText splits a paragraph into lines no wider than maxWidth pixels
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func truncateText(face font.Face, text string, maxWidth int) string {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if font.MeasureString(face, string(runes)+"...").Ceil() <= maxWidth {
			break
		}
	}
	return string(runes) + "..."
}
