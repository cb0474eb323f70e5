package render

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"math"
	"testing"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/geometry"
)

func testAnnotations() []annotation.Annotation {
	return []annotation.Annotation{
		annotation.NewPath(annotation.KindPen,
			[]geometry.Point2D{{X: 10, Y: 10}, {X: 20, Y: 14}, {X: 50, Y: 10}}, "red", 3, 0.8),
		annotation.NewPath(annotation.KindHighlighter,
			[]geometry.Point2D{{X: 5, Y: 40}, {X: 80, Y: 40}}, "yellow", 8, 1),
		annotation.NewText(geometry.NewPoint2D(100, 60), "note", "black", 18),
		annotation.NewShape(annotation.KindArrow, geometry.NewPoint2D(50, 50), geometry.NewPoint2D(120, 90), "blue", 2),
		annotation.NewShape(annotation.KindLine, geometry.NewPoint2D(10, 100), geometry.NewPoint2D(90, 120), "green", 1),
		annotation.NewShape(annotation.KindCircle, geometry.NewPoint2D(200, 100), geometry.NewPoint2D(150, 80), "teal", 4),
		annotation.NewShape(annotation.KindRectangle, geometry.NewPoint2D(200, 150), geometry.NewPoint2D(100, 100), "purple", 2),
		annotation.NewMarker(geometry.NewPoint2D(130, 144), "A1", "pink"),
	}
}

func grayBase(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 128
		img.Pix[i+1] = 128
		img.Pix[i+2] = 128
		img.Pix[i+3] = 255
	}
	return img
}

// Serializing and deserializing a markup must render pixel-identical output.
func TestRoundTripRendersIdentically(t *testing.T) {
	original := annotation.Data{Annotations: testAnnotations(), Width: 400, Height: 300}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded annotation.Data
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	base := grayBase(400, 300)
	before := NewRaster(400, 300)
	after := NewRaster(400, 300)
	Render(before, base, original.Annotations, 1, 1)
	Render(after, base, decoded.Annotations, 1, 1)

	if !bytes.Equal(before.Image().Pix, after.Image().Pix) {
		t.Error("round-tripped markup renders differently")
	}
}

// Rendering at a different surface size must scale every coordinate and
// linear dimension by the surface/authoring ratio.
func TestScaleInvarianceOfBounds(t *testing.T) {
	s1 := NewRaster(400, 300)
	s2 := NewRaster(800, 600)
	const factor = 2.0

	for _, ann := range testAnnotations() {
		b1 := Bounds(s1, ann, 1, 1)
		b2 := Bounds(s2, ann, factor, factor)

		// Text bounds depend on font metrics, which quantize per size;
		// allow proportional slack there, exact elsewhere.
		tolerance := 0.01
		if ann.Kind() == annotation.KindText {
			tolerance = 0.15 * math.Max(b1.Width, b1.Height) * factor
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"x", b2.X, b1.X * factor},
			{"y", b2.Y, b1.Y * factor},
			{"width", b2.Width, b1.Width * factor},
			{"height", b2.Height, b1.Height * factor},
		}
		for _, c := range checks {
			if math.Abs(c.got-c.want) > tolerance {
				t.Errorf("%s: %s = %v, want %v (±%v)", ann.Kind(), c.name, c.got, c.want, tolerance)
			}
		}
	}
}

func TestRenderDrawOrderBaseThenAnnotations(t *testing.T) {
	s := NewRaster(100, 100)
	stroke := annotation.NewPath(annotation.KindPen,
		[]geometry.Point2D{{X: 10, Y: 50}, {X: 90, Y: 50}}, "black", 6, 1)
	Render(s, grayBase(100, 100), []annotation.Annotation{stroke}, 1, 1)

	// A pixel on the stroke is the stroke color, not the base.
	if got := s.Image().RGBAAt(50, 50); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("stroke pixel = %v, want opaque black", got)
	}
	// A pixel off the stroke is the base image.
	if got := s.Image().RGBAAt(50, 10); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("base pixel = %v, want gray base", got)
	}
}

func TestRenderWithoutAnnotationsPaintsBaseOnly(t *testing.T) {
	withAnns := NewRaster(120, 90)
	baseOnly := NewRaster(120, 90)
	Render(withAnns, grayBase(120, 90), testAnnotations(), 1, 1)
	Render(baseOnly, grayBase(120, 90), nil, 1, 1)

	if bytes.Equal(withAnns.Image().Pix, baseOnly.Image().Pix) {
		t.Error("annotations had no visible effect")
	}
	if got := baseOnly.Image().RGBAAt(60, 45); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("base-only pixel = %v, want gray", got)
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		imgW, imgH, boxW, boxH, want float64
	}{
		{800, 600, 400, 300, 0.5},
		{800, 600, 400, 600, 0.5},
		{200, 100, 400, 300, 1},   // never upscale
		{400, 300, 400, 300, 1},
		{1000, 100, 500, 300, 0.5},
		{0, 0, 400, 300, 1},
	}
	for _, tt := range tests {
		if got := FitScale(tt.imgW, tt.imgH, tt.boxW, tt.boxH); got != tt.want {
			t.Errorf("FitScale(%v,%v,%v,%v) = %v, want %v", tt.imgW, tt.imgH, tt.boxW, tt.boxH, got, tt.want)
		}
	}
}

func TestMarkerHitBox(t *testing.T) {
	box := MarkerHitBox(geometry.NewPoint2D(100, 100))
	if box.Width != 30 || box.Height != 30 {
		t.Errorf("hit box size = %vx%v, want 30x30", box.Width, box.Height)
	}
	if got := box.Center(); got.X != 100 || got.Y != 100-MarkerPinLift {
		t.Errorf("hit box center = %v, want (100, %v)", got, 100-MarkerPinLift)
	}
}
