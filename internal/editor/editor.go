// Package editor owns the live state of one markup session: active tool,
// style, pointer capture, the committed annotation list, and linear
// undo/redo history. It does no drawing and holds no UI handles; the canvas
// widget feeds it pointer events and asks for snapshots to render.
package editor

import (
	"math"
	"strings"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/geometry"
)

// Tool selects how pointer events are interpreted.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPen
	ToolHighlighter
	ToolText
	ToolArrow
	ToolLine
	ToolCircle
	ToolRectangle
	ToolMarker
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPen:
		return "pen"
	case ToolHighlighter:
		return "highlighter"
	case ToolText:
		return "text"
	case ToolArrow:
		return "arrow"
	case ToolLine:
		return "line"
	case ToolCircle:
		return "circle"
	case ToolRectangle:
		return "rectangle"
	case ToolMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// shapeKind maps a shape tool to its annotation kind.
func (t Tool) shapeKind() (annotation.Kind, bool) {
	switch t {
	case ToolArrow:
		return annotation.KindArrow, true
	case ToolLine:
		return annotation.KindLine, true
	case ToolCircle:
		return annotation.KindCircle, true
	case ToolRectangle:
		return annotation.KindRectangle, true
	default:
		return "", false
	}
}

// shapeCommitThreshold is the drag displacement, on either axis, a shape must
// exceed to commit. Anything smaller is treated as an accidental click.
const shapeCommitThreshold = 5.0

const (
	// MinBrushWidth and MaxBrushWidth bound the brush width control.
	MinBrushWidth = 1.0
	MaxBrushWidth = 10.0
)

// Style is the current stroke style. Opacity applies to pen strokes only;
// highlighter strokes always record annotation.HighlighterOpacity.
type Style struct {
	Color   string
	Width   float64
	Opacity float64
}

// DefaultStyle is the style a fresh editor starts with.
func DefaultStyle() Style {
	return Style{Color: "red", Width: 3, Opacity: 1}
}

// PromptKind identifies which input the UI must collect after a pointer
// release with the text or marker tool.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptText
	PromptMarker
)

// Prompt is returned from PointerUp when the UI must open an input dialog
// anchored at At. The UI confirms via CommitText or CommitMarker.
type Prompt struct {
	Kind PromptKind
	At   geometry.Point2D
}

// TextMeasurer supplies text metrics for hit-testing text annotations.
type TextMeasurer interface {
	MeasureText(text string, size float64) geometry.Size
}

// Editor is the engine for one editing session. Not safe for concurrent use;
// all events arrive on the UI thread.
type Editor struct {
	width, height float64

	annotations []annotation.Annotation
	history     *History
	selected    string

	tool     Tool
	style    Style
	measurer TextMeasurer

	// In-progress capture state.
	dragging   bool
	stroke     []geometry.Point2D
	shapeStart *geometry.Point2D
	shapeEnd   geometry.Point2D
	pressAt    geometry.Point2D
}

// New creates an editor for a canvas of the given authoring dimensions.
// A non-nil initial resumes editing a saved markup; callers resuming must
// size the canvas to the markup's recorded dimensions so coordinates match.
func New(width, height float64, initial *annotation.Data, measurer TextMeasurer) *Editor {
	var anns []annotation.Annotation
	if initial != nil {
		anns = make([]annotation.Annotation, len(initial.Annotations))
		copy(anns, initial.Annotations)
	}
	return &Editor{
		width:       width,
		height:      height,
		annotations: anns,
		history:     NewHistory(anns),
		tool:        ToolPen,
		style:       DefaultStyle(),
		measurer:    measurer,
	}
}

// CanvasSize returns the authoring dimensions.
func (e *Editor) CanvasSize() geometry.Size {
	return geometry.NewSize(e.width, e.height)
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool and discards any in-progress capture.
// Committed annotations are unaffected.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.resetCapture()
	if t != ToolSelect {
		e.selected = ""
	}
}

// Style returns the current style.
func (e *Editor) Style() Style { return e.style }

// SetColor selects a palette color by name.
func (e *Editor) SetColor(name string) { e.style.Color = name }

// SetWidth sets the brush width, clamped to [MinBrushWidth, MaxBrushWidth].
func (e *Editor) SetWidth(w float64) {
	e.style.Width = math.Min(math.Max(w, MinBrushWidth), MaxBrushWidth)
}

// SetOpacity sets the pen opacity, clamped to [0, 1].
func (e *Editor) SetOpacity(o float64) {
	e.style.Opacity = math.Min(math.Max(o, 0), 1)
}

// Annotations returns the committed annotation list. The slice is a copy;
// the annotations themselves are immutable once committed.
func (e *Editor) Annotations() []annotation.Annotation {
	out := make([]annotation.Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// Selected returns the selected annotation id, or "".
func (e *Editor) Selected() string { return e.selected }

// SelectedAnnotation returns the selected annotation, or nil.
func (e *Editor) SelectedAnnotation() annotation.Annotation {
	for _, ann := range e.annotations {
		if ann.AnnotationID() == e.selected {
			return ann
		}
	}
	return nil
}

// PointerDown starts an interaction at p in authoring coordinates.
func (e *Editor) PointerDown(p geometry.Point2D) {
	switch e.tool {
	case ToolSelect:
		e.selected = e.hitTest(p)
	case ToolPen, ToolHighlighter:
		e.dragging = true
		e.stroke = []geometry.Point2D{p}
	case ToolArrow, ToolLine, ToolCircle, ToolRectangle:
		e.dragging = true
		start := p
		e.shapeStart = &start
		e.shapeEnd = p
	case ToolText, ToolMarker:
		e.pressAt = p
	}
}

// PointerMove extends the current capture. No-op unless dragging.
func (e *Editor) PointerMove(p geometry.Point2D) {
	if !e.dragging {
		return
	}
	switch e.tool {
	case ToolPen, ToolHighlighter:
		e.stroke = append(e.stroke, p)
	case ToolArrow, ToolLine, ToolCircle, ToolRectangle:
		e.shapeEnd = p
	}
}

// PointerUp finishes the current interaction. Strokes below two points and
// shape drags within the commit threshold are discarded silently. For the
// text and marker tools the returned Prompt tells the UI which input to
// collect; everything else returns PromptNone.
func (e *Editor) PointerUp(p geometry.Point2D) Prompt {
	switch e.tool {
	case ToolPen, ToolHighlighter:
		stroke := e.stroke
		e.resetCapture()
		if len(stroke) < 2 {
			return Prompt{}
		}
		kind := annotation.KindPen
		if e.tool == ToolHighlighter {
			kind = annotation.KindHighlighter
		}
		e.commit(annotation.NewPath(kind, stroke, e.style.Color, e.style.Width, e.style.Opacity))

	case ToolArrow, ToolLine, ToolCircle, ToolRectangle:
		start := e.shapeStart
		end := e.shapeEnd
		e.resetCapture()
		if start == nil {
			return Prompt{}
		}
		if math.Abs(end.X-start.X) <= shapeCommitThreshold && math.Abs(end.Y-start.Y) <= shapeCommitThreshold {
			return Prompt{}
		}
		kind, _ := e.tool.shapeKind()
		e.commit(annotation.NewShape(kind, *start, end, e.style.Color, e.style.Width))

	case ToolText:
		return Prompt{Kind: PromptText, At: e.pressAt}
	case ToolMarker:
		return Prompt{Kind: PromptMarker, At: e.pressAt}
	}
	return Prompt{}
}

// CommitText commits a text annotation at the prompt anchor. Empty or
// whitespace-only text commits nothing and reports false. Font size derives
// from the current brush width.
func (e *Editor) CommitText(at geometry.Point2D, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	e.commit(annotation.NewText(at, text, e.style.Color, e.fontSize()))
	return true
}

// CommitMarker commits a marker annotation at the prompt anchor. The label
// is trimmed, truncated to three runes, and upper-cased; an empty result
// commits nothing and reports false.
func (e *Editor) CommitMarker(at geometry.Point2D, label string) bool {
	label = annotation.NormalizeLabel(label)
	if label == "" {
		return false
	}
	e.commit(annotation.NewMarker(at, label, e.style.Color))
	return true
}

// fontSize derives the text annotation size from the brush width.
func (e *Editor) fontSize() float64 {
	return 12 + 2*e.style.Width
}

// Undo restores the previous history snapshot. No-op at the oldest entry.
func (e *Editor) Undo() {
	if snapshot, ok := e.history.Undo(); ok {
		e.annotations = snapshot
		e.selected = ""
	}
}

// Redo restores the next history snapshot. No-op at the newest entry.
func (e *Editor) Redo() {
	if snapshot, ok := e.history.Redo(); ok {
		e.annotations = snapshot
		e.selected = ""
	}
}

// CanUndo reports whether Undo would change state.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change state.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// DeleteSelected removes the selected annotation and pushes one history
// entry. No-op without a selection; reports whether anything was removed.
func (e *Editor) DeleteSelected() bool {
	if e.selected == "" {
		return false
	}
	kept := make([]annotation.Annotation, 0, len(e.annotations))
	removed := false
	for _, ann := range e.annotations {
		if ann.AnnotationID() == e.selected {
			removed = true
			continue
		}
		kept = append(kept, ann)
	}
	e.selected = ""
	if !removed {
		return false
	}
	e.annotations = kept
	e.history.Push(kept)
	return true
}

// ClearAll resets the annotation list and pushes a history entry. Callers
// must collect an explicit confirmation first; this is destructive.
func (e *Editor) ClearAll() {
	e.annotations = nil
	e.selected = ""
	e.history.Push(nil)
}

// Snapshot packages the committed annotations with the authoring dimensions.
// It does not clear editor state; the session owner controls the lifecycle
// after a save resolves.
func (e *Editor) Snapshot() annotation.Data {
	return annotation.Data{
		Annotations: e.Annotations(),
		Width:       e.width,
		Height:      e.height,
	}
}

// Preview returns uncommitted capture state as transient annotations for the
// canvas to draw: the in-progress stroke or the rubber-band shape. Never
// recorded in history.
func (e *Editor) Preview() []annotation.Annotation {
	if !e.dragging {
		return nil
	}
	switch e.tool {
	case ToolPen, ToolHighlighter:
		if len(e.stroke) < 2 {
			return nil
		}
		kind := annotation.KindPen
		if e.tool == ToolHighlighter {
			kind = annotation.KindHighlighter
		}
		return []annotation.Annotation{
			annotation.NewPath(kind, e.stroke, e.style.Color, e.style.Width, e.style.Opacity),
		}
	case ToolArrow, ToolLine, ToolCircle, ToolRectangle:
		if e.shapeStart == nil {
			return nil
		}
		kind, _ := e.tool.shapeKind()
		return []annotation.Annotation{
			annotation.NewShape(kind, *e.shapeStart, e.shapeEnd, e.style.Color, e.style.Width),
		}
	}
	return nil
}

// commit appends an annotation, pushes a history entry, and clears capture
// state. History entries past the current index are truncated by the push.
func (e *Editor) commit(ann annotation.Annotation) {
	e.annotations = append(e.Annotations(), ann)
	e.history.Push(e.annotations)
	e.resetCapture()
}

func (e *Editor) resetCapture() {
	e.dragging = false
	e.stroke = nil
	e.shapeStart = nil
	e.shapeEnd = geometry.Point2D{}
}
