// Package export writes a saved markup out as a single-page PDF.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"

	"photo-markup/internal/annotation"
	"photo-markup/internal/render"
)

// A4 content box in millimeters, inside a 10mm margin.
const (
	pageWidthMM  = 190.0
	pageHeightMM = 277.0
	marginMM     = 10.0
)

// PDF renders the photo with its annotations at authoring size and embeds
// the result as a fitted image on one A4 page. Title and notes, when set,
// print above the image.
func PDF(path string, base image.Image, data annotation.Data, title, notes string) error {
	w := int(data.Width)
	h := int(data.Height)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("export: invalid markup dimensions %vx%v", data.Width, data.Height)
	}

	surface := render.NewRaster(w, h)
	render.Render(surface, base, data.Annotations, 1, 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.Image()); err != nil {
		return fmt.Errorf("export: encoding render: %w", err)
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	y := marginMM
	if title != "" {
		p.SetFont("Helvetica", "B", 14)
		p.Text(marginMM, y+5, title)
		y += 8
	}
	if notes != "" {
		p.SetFont("Helvetica", "", 10)
		p.Text(marginMM, y+4, notes)
		y += 7
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("markup", opts, &buf)

	// Fit the image inside the remaining content box, preserving aspect.
	availW := pageWidthMM
	availH := pageHeightMM - (y - marginMM)
	scale := availW / float64(w)
	if s := availH / float64(h); s < scale {
		scale = s
	}
	p.ImageOptions("markup", marginMM, y, float64(w)*scale, float64(h)*scale, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}
