package export

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"
	"log"
	"tripbook/config"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"
)

func Init() {
	if config.PDF_LICENSE_KEY == "" {
		return
	}
	if err := license.SetMeteredKey(config.PDF_LICENSE_KEY); err != nil {
		log.Printf("UniPDF license key rejected: %v", err)
	}
}

// ToPDF wraps a rendered page bitmap as a single-page PDF whose page size
// matches the bitmap's pixel dimensions, so orientation follows the image.
func ToPDF(img image.Image, w io.Writer) error {
	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, img, &jpeg.Options{Quality: 90}); err != nil {
		return err
	}
	width := float64(img.Bounds().Dx())
	height := float64(img.Bounds().Dy())

	c := creator.New()
	c.SetPageSize(creator.PageSize{width, height})
	c.SetPageMargins(0, 0, 0, 0)
	c.NewPage()

	page, err := c.NewImageFromData(jpegBuf.Bytes())
	if err != nil {
		return err
	}
	page.SetPos(0, 0)
	page.SetWidth(width)
	page.SetHeight(height)
	if err = c.Draw(page); err != nil {
		return err
	}
	return c.Write(w)
}
