// Package certificate renders completion records as PNG certificate images.
package certificate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/abhisek/kakomon/internal/completion"
)

// Download contract for the hosting UI.
const (
	Filename = "certificate.png"
	MIMEType = "image/png"
)

const (
	imgWidth  = 800
	imgHeight = 500
	margin    = 24
)

var (
	paper = color.RGBA{R: 0xFD, G: 0xF8, B: 0xEC, A: 0xFF}
	frame = color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF}
	ink   = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	dim   = color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF}
)

// PNGRenderer renders certificates with the process-independent basicfont
// face, so output is reproducible across hosts.
type PNGRenderer struct{}

var _ completion.Renderer = PNGRenderer{}

// Render draws the certificate and returns encoded PNG bytes.
func (PNGRenderer) Render(rec completion.Record) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	draw.Draw(img, img.Bounds(), image.NewUniform(frame), image.Point{}, draw.Src)
	inner := image.Rect(margin, margin, imgWidth-margin, imgHeight-margin)
	draw.Draw(img, inner, image.NewUniform(paper), image.Point{}, draw.Src)

	lines := []struct {
		text  string
		color color.Color
		y     int
	}{
		{"CERTIFICATE OF COMPLETION", ink, 120},
		{"Perfect score", frame, 170},
		{fmt.Sprintf("Sittings: %s", rec.SittingsLabel), ink, 240},
		{fmt.Sprintf("Categories: %s", rec.CategoriesLabel), ink, 270},
		{fmt.Sprintf("All %d questions answered correctly", rec.QuestionCount), ink, 300},
		{rec.Timestamp.Format("2006-01-02 15:04"), dim, 380},
		{rec.ID, dim, 410},
	}
	for _, line := range lines {
		drawCentered(img, line.text, line.color, line.y)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCentered(img draw.Image, text string, c color.Color, y int) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	x := (imgWidth - width) / 2
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
