// Package colorutil provides the markup color palette and shared color helpers.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	// SelectionBlue is the dashed outline color for the selected annotation.
	SelectionBlue = color.RGBA{R: 33, G: 150, B: 243, A: 255}
)

// PaletteEntry pairs a color name with its RGBA value.
type PaletteEntry struct {
	Name  string
	Color color.RGBA
}

// Palette is the fixed set of ten named markup colors. Annotations store the
// name, not the RGBA value, so saved markups stay readable as data.
var Palette = []PaletteEntry{
	{"red", color.RGBA{R: 229, G: 57, B: 53, A: 255}},
	{"orange", color.RGBA{R: 251, G: 140, B: 0, A: 255}},
	{"yellow", color.RGBA{R: 253, G: 216, B: 53, A: 255}},
	{"green", color.RGBA{R: 67, G: 160, B: 71, A: 255}},
	{"teal", color.RGBA{R: 0, G: 137, B: 123, A: 255}},
	{"blue", color.RGBA{R: 30, G: 136, B: 229, A: 255}},
	{"purple", color.RGBA{R: 142, G: 36, B: 170, A: 255}},
	{"pink", color.RGBA{R: 216, G: 27, B: 96, A: 255}},
	{"white", White},
	{"black", Black},
}

// Lookup returns the palette color for a name. Unknown names fall back to
// black so stale or hand-edited payloads still render.
func Lookup(name string) color.RGBA {
	for _, e := range Palette {
		if e.Name == name {
			return e.Color
		}
	}
	return Black
}

// Contrast returns black or white, whichever reads better against c.
func Contrast(c color.RGBA) color.RGBA {
	// Rec. 601 luma.
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 145 {
		return Black
	}
	return White
}
