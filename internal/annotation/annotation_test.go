package annotation

import (
	"testing"

	"photo-markup/pkg/geometry"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ab", "AB"},
		{"abcdef", "ABC"},
		{"  a1  ", "A1"},
		{"x", "X"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLabel(tt.in); got != tt.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewMarkerNormalizesLabel(t *testing.T) {
	m := NewMarker(geometry.NewPoint2D(10, 20), "abcdef", "red")
	if m.Label != "ABC" {
		t.Errorf("Label = %q, want %q", m.Label, "ABC")
	}
}

func TestNewPathHighlighterPinsOpacity(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 5, Y: 5}}

	h := NewPath(KindHighlighter, pts, "yellow", 4, 0.9)
	if h.Opacity != HighlighterOpacity {
		t.Errorf("highlighter Opacity = %v, want %v", h.Opacity, HighlighterOpacity)
	}

	p := NewPath(KindPen, pts, "red", 4, 0.9)
	if p.Opacity != 0.9 {
		t.Errorf("pen Opacity = %v, want 0.9", p.Opacity)
	}
}

func TestNewPathCopiesPoints(t *testing.T) {
	pts := []geometry.Point2D{{X: 1, Y: 1}, {X: 2, Y: 2}}
	p := NewPath(KindPen, pts, "red", 2, 1)

	pts[0].X = 99
	if p.Points[0].X != 1 {
		t.Error("NewPath shares the caller's point slice")
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestKinds(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
	tests := []struct {
		ann  Annotation
		want Kind
	}{
		{NewPath(KindPen, pts, "red", 2, 1), KindPen},
		{NewPath(KindHighlighter, pts, "yellow", 6, 1), KindHighlighter},
		{NewText(geometry.Point2D{}, "hi", "black", 16), KindText},
		{NewShape(KindArrow, pts[0], pts[1], "blue", 2), KindArrow},
		{NewShape(KindRectangle, pts[0], pts[1], "blue", 2), KindRectangle},
		{NewMarker(geometry.Point2D{}, "a", "green"), KindMarker},
	}
	for _, tt := range tests {
		if got := tt.ann.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
		if tt.ann.AnnotationID() == "" {
			t.Errorf("%q annotation has empty id", tt.want)
		}
	}
}

func TestCloneSharesAnnotationsCopiesSlice(t *testing.T) {
	d := Data{
		Annotations: []Annotation{NewMarker(geometry.Point2D{X: 1}, "a", "red")},
		Width:       400,
		Height:      300,
	}
	c := d.Clone()

	c.Annotations = append(c.Annotations, NewMarker(geometry.Point2D{X: 2}, "b", "red"))
	if len(d.Annotations) != 1 {
		t.Error("Clone shares the backing slice with the original")
	}
	if c.Width != 400 || c.Height != 300 {
		t.Error("Clone dropped authoring dimensions")
	}
}
