// Package render paints a base image plus an ordered annotation list onto a
// drawing surface. The same routine backs the editor's live canvas and the
// read-only review canvas; a scale pair converts authoring coordinates to
// surface coordinates so saved markups replay correctly at any display size.
package render

import (
	"image"
	"image/color"

	"photo-markup/pkg/geometry"
)

// Surface is the minimal 2D drawing contract the renderer needs. The raster
// implementation in this package draws into an *image.RGBA; tests use it
// directly and the Fyne widgets hand its output to a canvas raster.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() geometry.Size
	// Clear resets the surface to an opaque white background.
	Clear()
	// DrawImage paints src stretched to cover the whole surface.
	DrawImage(src image.Image)
	// StrokePath strokes a continuous polyline with round caps and joins.
	// Opacity below 1 blends the whole stroke once, not per segment.
	StrokePath(points []geometry.Point2D, col color.RGBA, width, opacity float64)
	// StrokeLine strokes an opaque segment with round caps.
	StrokeLine(a, b geometry.Point2D, col color.RGBA, width float64)
	// DashedLine strokes a dashed segment, used for previews and selection.
	DashedLine(a, b geometry.Point2D, col color.RGBA, width float64)
	// StrokeEllipse strokes the ellipse inscribed in bounds.
	StrokeEllipse(bounds geometry.Rect, col color.RGBA, width float64)
	// DashedEllipse strokes a dashed ellipse inscribed in bounds.
	DashedEllipse(bounds geometry.Rect, col color.RGBA, width float64)
	// StrokeRect strokes the rectangle outline.
	StrokeRect(bounds geometry.Rect, col color.RGBA, width float64)
	// DashedRect strokes a dashed rectangle outline.
	DashedRect(bounds geometry.Rect, col color.RGBA)
	// FillCircle fills a disc.
	FillCircle(center geometry.Point2D, radius float64, col color.RGBA)
	// FillTriangle fills a triangle.
	FillTriangle(a, b, c geometry.Point2D, col color.RGBA)
	// DrawText draws text with its baseline's left edge at the anchor.
	DrawText(at geometry.Point2D, text string, col color.RGBA, size float64)
	// MeasureText returns the advance width and line height of text.
	MeasureText(text string, size float64) geometry.Size
}
