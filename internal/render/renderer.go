package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/colorutil"
	"photo-markup/pkg/geometry"
)

const (
	// ArrowArmLength is the chevron arm length in authoring pixels.
	ArrowArmLength = 15.0
	// arrowArmAngle is the chevron arm angle off the shaft.
	arrowArmAngle = math.Pi / 6

	// MarkerPinRadius is the pin head radius in authoring pixels.
	MarkerPinRadius = 10.0
	// MarkerPinLift is how far above the anchor the pin head center sits.
	MarkerPinLift = 12.0

	markerLabelSize = 9.0

	// SelectionPad inflates the selection outline past the annotation bounds.
	SelectionPad = 5.0
)

// Render paints the surface in the fixed order: clear, base image stretched
// to the surface, then every annotation in list order scaled from authoring
// coordinates by (scaleX, scaleY). Linear dimensions scale by the smaller of
// the two factors.
func Render(s Surface, base image.Image, annotations []annotation.Annotation, scaleX, scaleY float64) {
	s.Clear()
	if base != nil {
		s.DrawImage(base)
	}
	for _, ann := range annotations {
		DrawAnnotation(s, ann, scaleX, scaleY)
	}
}

// DrawAnnotation paints a single annotation scaled to surface coordinates.
func DrawAnnotation(s Surface, ann annotation.Annotation, scaleX, scaleY float64) {
	k := math.Min(scaleX, scaleY)
	switch v := ann.(type) {
	case *annotation.Path:
		s.StrokePath(scalePoints(v.Points, scaleX, scaleY), colorutil.Lookup(v.Color), v.Width*k, v.Opacity)

	case *annotation.Text:
		s.DrawText(v.At.ScaleXY(scaleX, scaleY), v.Text, colorutil.Lookup(v.Color), v.FontSize*k)

	case *annotation.Shape:
		col := colorutil.Lookup(v.Color)
		start := v.Start.ScaleXY(scaleX, scaleY)
		end := v.End.ScaleXY(scaleX, scaleY)
		switch v.Tool {
		case annotation.KindLine:
			s.StrokeLine(start, end, col, v.Width*k)
		case annotation.KindArrow:
			s.StrokeLine(start, end, col, v.Width*k)
			drawChevron(s, start, end, col, v.Width*k, ArrowArmLength*k)
		case annotation.KindCircle:
			s.StrokeEllipse(geometry.RectFromPoints(start, end), col, v.Width*k)
		case annotation.KindRectangle:
			s.StrokeRect(geometry.RectFromPoints(start, end), col, v.Width*k)
		}

	case *annotation.Marker:
		drawMarker(s, v, scaleX, scaleY, k)
	}
}

// drawChevron paints the two arrowhead arms at the end point, angled ±30°
// back along the shaft.
func drawChevron(s Surface, start, end geometry.Point2D, col color.RGBA, width, armLen float64) {
	shaft := r2.Vec{X: start.X - end.X, Y: start.Y - end.Y}
	if r2.Norm(shaft) < 1e-9 {
		return
	}
	back := r2.Scale(armLen, r2.Unit(shaft))
	tip := r2.Vec{X: end.X, Y: end.Y}
	for _, angle := range []float64{arrowArmAngle, -arrowArmAngle} {
		arm := r2.Add(tip, r2.Rotate(back, angle, r2.Vec{}))
		s.StrokeLine(end, geometry.NewPoint2D(arm.X, arm.Y), col, width)
	}
}

// drawMarker paints a map-style pin: filled head above the anchor, a
// triangular point down to the anchor, and the label centered in the head in
// a contrasting color.
func drawMarker(s Surface, m *annotation.Marker, scaleX, scaleY, k float64) {
	col := colorutil.Lookup(m.Color)
	anchor := m.At.ScaleXY(scaleX, scaleY)
	radius := MarkerPinRadius * k
	center := geometry.NewPoint2D(anchor.X, anchor.Y-MarkerPinLift*k)

	// Pin point: anchor to the lower flanks of the head circle.
	flank := radius * math.Cos(math.Pi/6)
	drop := radius * math.Sin(math.Pi/6)
	left := geometry.NewPoint2D(center.X-flank, center.Y+drop)
	right := geometry.NewPoint2D(center.X+flank, center.Y+drop)
	s.FillTriangle(anchor, left, right, col)
	s.FillCircle(center, radius, col)

	if m.Label != "" {
		size := markerLabelSize * k
		measured := s.MeasureText(m.Label, size)
		at := geometry.NewPoint2D(center.X-measured.Width/2, center.Y+measured.Height*0.28)
		s.DrawText(at, m.Label, colorutil.Contrast(col), size)
	}
}

// Bounds returns the annotation's bounding box in surface coordinates, using
// the surface's text metrics where needed.
func Bounds(s Surface, ann annotation.Annotation, scaleX, scaleY float64) geometry.Rect {
	k := math.Min(scaleX, scaleY)
	switch v := ann.(type) {
	case *annotation.Path:
		return geometry.BoundingBox(scalePoints(v.Points, scaleX, scaleY)).Inflate(v.Width * k / 2)
	case *annotation.Text:
		return TextBounds(v.At.ScaleXY(scaleX, scaleY), s.MeasureText(v.Text, v.FontSize*k))
	case *annotation.Shape:
		return geometry.RectFromPoints(v.Start.ScaleXY(scaleX, scaleY), v.End.ScaleXY(scaleX, scaleY))
	case *annotation.Marker:
		anchor := v.At.ScaleXY(scaleX, scaleY)
		head := MarkerHitBox(v.At).ScaleXY(scaleX, scaleY)
		return head.Union(geometry.NewRect(anchor.X, anchor.Y, 0, 0))
	}
	return geometry.Rect{}
}

// MarkerHitBox returns the marker's selectable region in authoring
// coordinates: a 30×30 square centered on the pin head.
func MarkerHitBox(anchor geometry.Point2D) geometry.Rect {
	const side = 30.0
	return geometry.NewRect(anchor.X-side/2, anchor.Y-MarkerPinLift-side/2, side, side)
}

// DrawSelection paints the dashed blue outline over the selected
// annotation's bounds, inflated by SelectionPad. Editor-only; never part of
// the persisted visual.
func DrawSelection(s Surface, ann annotation.Annotation, scaleX, scaleY float64) {
	s.DashedRect(Bounds(s, ann, scaleX, scaleY).Inflate(SelectionPad), colorutil.SelectionBlue)
}

// DrawPreview paints an in-progress annotation: strokes draw normally,
// shapes draw dashed until committed.
func DrawPreview(s Surface, ann annotation.Annotation, scaleX, scaleY float64) {
	shape, ok := ann.(*annotation.Shape)
	if !ok {
		DrawAnnotation(s, ann, scaleX, scaleY)
		return
	}
	k := math.Min(scaleX, scaleY)
	col := colorutil.Lookup(shape.Color)
	start := shape.Start.ScaleXY(scaleX, scaleY)
	end := shape.End.ScaleXY(scaleX, scaleY)
	switch shape.Tool {
	case annotation.KindLine, annotation.KindArrow:
		s.DashedLine(start, end, col, shape.Width*k)
	case annotation.KindCircle:
		s.DashedEllipse(geometry.RectFromPoints(start, end), col, shape.Width*k)
	case annotation.KindRectangle:
		s.DashedRect(geometry.RectFromPoints(start, end), col)
	}
}

// FitScale computes the display scale for an image inside a container:
// aspect-preserving, never upscaling past native resolution.
func FitScale(imageW, imageH, containerW, containerH float64) float64 {
	if imageW <= 0 || imageH <= 0 {
		return 1
	}
	scale := math.Min(containerW/imageW, containerH/imageH)
	return math.Min(scale, 1)
}

func scalePoints(points []geometry.Point2D, sx, sy float64) []geometry.Point2D {
	out := make([]geometry.Point2D, len(points))
	for i, p := range points {
		out[i] = p.ScaleXY(sx, sy)
	}
	return out
}
