// Package annotation defines the serializable markup model: the tagged set of
// mark types produced by one editing session, plus the canvas dimensions the
// marks were authored at.
package annotation

import (
	"strings"

	"photo-markup/pkg/geometry"
)

// Kind discriminates annotation variants on the wire and in type switches.
type Kind string

const (
	KindPen         Kind = "pen"
	KindHighlighter Kind = "highlighter"
	KindText        Kind = "text"
	KindArrow       Kind = "arrow"
	KindLine        Kind = "line"
	KindCircle      Kind = "circle"
	KindRectangle   Kind = "rectangle"
	KindMarker      Kind = "marker"
)

// MaxMarkerLabelLen is the longest label a map-style marker can carry.
const MaxMarkerLabelLen = 3

// HighlighterOpacity is applied to highlighter strokes at creation time.
// The user-facing opacity control affects pen strokes only; a highlighter
// simulates a translucent marker and always records this value.
const HighlighterOpacity = 0.4

// Annotation is one committed mark. The interface is sealed: the renderer,
// hit-testing, and the codec each handle every variant in a type switch.
type Annotation interface {
	// AnnotationID returns the mark's session-unique id.
	AnnotationID() string
	// Kind returns the variant discriminator.
	Kind() Kind

	annotation()
}

// Path is a freehand stroke (pen or highlighter) through ordered points in
// authoring-canvas coordinates. A committed path has at least two points.
type Path struct {
	ID      string             `json:"id"`
	Tool    Kind               `json:"type"`
	Points  []geometry.Point2D `json:"points"`
	Color   string             `json:"color"`
	Width   float64            `json:"width"`
	Opacity float64            `json:"opacity"`
}

// Text is a text label anchored at the baseline's left edge.
type Text struct {
	ID       string           `json:"id"`
	At       geometry.Point2D `json:"at"`
	Text     string           `json:"text"`
	Color    string           `json:"color"`
	FontSize float64          `json:"fontSize"`
}

// Shape is a two-point mark: arrow and line run from Start to End, circle and
// rectangle are defined by the axis-aligned box spanned by Start and End.
// Start and End are stored exactly as dragged; normalization happens only at
// render time.
type Shape struct {
	ID    string           `json:"id"`
	Tool  Kind             `json:"type"`
	Start geometry.Point2D `json:"start"`
	End   geometry.Point2D `json:"end"`
	Color string           `json:"color"`
	Width float64          `json:"width"`
}

// Marker is a map-style pin with a short upper-case label.
type Marker struct {
	ID    string           `json:"id"`
	At    geometry.Point2D `json:"at"`
	Label string           `json:"label"`
	Color string           `json:"color"`
}

func (p *Path) AnnotationID() string   { return p.ID }
func (t *Text) AnnotationID() string   { return t.ID }
func (s *Shape) AnnotationID() string  { return s.ID }
func (m *Marker) AnnotationID() string { return m.ID }

func (p *Path) Kind() Kind   { return p.Tool }
func (t *Text) Kind() Kind   { return KindText }
func (s *Shape) Kind() Kind  { return s.Tool }
func (m *Marker) Kind() Kind { return KindMarker }

func (p *Path) annotation()   {}
func (t *Text) annotation()   {}
func (s *Shape) annotation()  {}
func (m *Marker) annotation() {}

// NewPath creates a committed freehand stroke. Highlighter strokes record
// HighlighterOpacity regardless of the requested opacity.
func NewPath(tool Kind, points []geometry.Point2D, color string, width, opacity float64) *Path {
	if tool == KindHighlighter {
		opacity = HighlighterOpacity
	}
	pts := make([]geometry.Point2D, len(points))
	copy(pts, points)
	return &Path{
		ID:      NewID(),
		Tool:    tool,
		Points:  pts,
		Color:   color,
		Width:   width,
		Opacity: opacity,
	}
}

// NewText creates a text annotation anchored at the given baseline origin.
func NewText(at geometry.Point2D, text, color string, fontSize float64) *Text {
	return &Text{ID: NewID(), At: at, Text: text, Color: color, FontSize: fontSize}
}

// NewShape creates a two-point shape annotation.
func NewShape(tool Kind, start, end geometry.Point2D, color string, width float64) *Shape {
	return &Shape{ID: NewID(), Tool: tool, Start: start, End: end, Color: color, Width: width}
}

// NewMarker creates a marker annotation with a normalized label.
func NewMarker(at geometry.Point2D, label, color string) *Marker {
	return &Marker{ID: NewID(), At: at, Label: NormalizeLabel(label), Color: color}
}

// NormalizeLabel trims, truncates to MaxMarkerLabelLen runes, and upper-cases
// a marker label. The result may be empty; callers reject empty labels.
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	runes := []rune(label)
	if len(runes) > MaxMarkerLabelLen {
		runes = runes[:MaxMarkerLabelLen]
	}
	return strings.ToUpper(string(runes))
}

// Data is the unit of persistence: the ordered annotation list plus the
// canvas pixel dimensions in effect when the marks were authored. Replaying
// at any other surface size scales by (surfaceW/Width, surfaceH/Height).
type Data struct {
	Annotations []Annotation `json:"annotations"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
}

// Clone returns a copy sharing the annotation values. Committed annotations
// are never mutated, so sharing them between snapshots is safe.
func (d Data) Clone() Data {
	anns := make([]Annotation, len(d.Annotations))
	copy(anns, d.Annotations)
	return Data{Annotations: anns, Width: d.Width, Height: d.Height}
}
