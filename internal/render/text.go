package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"photo-markup/pkg/geometry"
)

var (
	loadFontOnce sync.Once
	markupFont   *opentype.Font
)

// sourceFont parses the embedded Go Regular face once. The TTF is compiled
// in, so a parse failure is a programmer error.
func sourceFont() *opentype.Font {
	loadFontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("render: parsing embedded font: " + err.Error())
		}
		markupFont = f
	})
	return markupFont
}

func newFace(size float64) font.Face {
	if size < 1 {
		size = 1
	}
	face, err := opentype.NewFace(sourceFont(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("render: creating font face: " + err.Error())
	}
	return face
}

// DrawText implements Surface. The anchor is the baseline's left edge.
func (r *Raster) DrawText(at geometry.Point2D, text string, col color.RGBA, size float64) {
	if text == "" {
		return
	}
	face := newFace(size)
	defer face.Close()

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(at.X * 64),
			Y: fixed.Int26_6(at.Y * 64),
		},
	}
	d.DrawString(text)
}

// MeasureText implements Surface.
func (r *Raster) MeasureText(text string, size float64) geometry.Size {
	return measureText(text, size)
}

// Measurer measures text without a drawing surface. The editor uses it for
// hit-testing text annotations.
type Measurer struct{}

// MeasureText returns the advance width and line height of text.
func (Measurer) MeasureText(text string, size float64) geometry.Size {
	return measureText(text, size)
}

func measureText(text string, size float64) geometry.Size {
	face := newFace(size)
	defer face.Close()

	d := &font.Drawer{Face: face}
	advance := d.MeasureString(text)
	metrics := face.Metrics()
	return geometry.NewSize(float64(advance)/64, float64(metrics.Height)/64)
}

// TextBounds returns the bounding box of text whose baseline origin is at.
// The box height is the face line height; roughly 80% of it sits above the
// baseline (the ascent), the rest below.
func TextBounds(at geometry.Point2D, measured geometry.Size) geometry.Rect {
	ascent := measured.Height * 0.8
	return geometry.NewRect(at.X, at.Y-ascent, measured.Width, measured.Height)
}
