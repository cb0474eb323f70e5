// Package viewer holds the state of the read-only markup review screen:
// which saved markup is showing, whether the overlay is visible, and the
// zoom level. Like the editor engine it does no drawing itself.
package viewer

import (
	"math"

	"photo-markup/internal/annotation"
)

// Zoom limits and step for the review screen.
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.25
)

// Item is one reviewable markup: the photo it belongs to plus the saved
// annotation data.
type Item struct {
	ID        string
	PhotoPath string
	Title     string
	Notes     string
	Data      annotation.Data
}

// Viewer pages through saved markups. Navigation wraps at both ends.
// Not safe for concurrent use.
type Viewer struct {
	items       []Item
	index       int
	zoom        float64
	annotations bool
}

// New creates a viewer over items. Annotations start visible at 1x zoom.
func New(items []Item) *Viewer {
	return &Viewer{items: items, zoom: 1, annotations: true}
}

// Empty reports whether there is nothing to review.
func (v *Viewer) Empty() bool { return len(v.items) == 0 }

// Len returns the number of items.
func (v *Viewer) Len() int { return len(v.items) }

// Index returns the current position, zero-based.
func (v *Viewer) Index() int { return v.index }

// Current returns the item on screen. ok is false when the viewer is empty.
func (v *Viewer) Current() (Item, bool) {
	if v.Empty() {
		return Item{}, false
	}
	return v.items[v.index], true
}

// Next advances to the following item, wrapping past the last to the first.
// Zoom resets; the overlay toggle carries over.
func (v *Viewer) Next() {
	if v.Empty() {
		return
	}
	v.index = (v.index + 1) % len(v.items)
	v.zoom = 1
}

// Prev steps back to the preceding item, wrapping past the first to the last.
func (v *Viewer) Prev() {
	if v.Empty() {
		return
	}
	v.index = (v.index - 1 + len(v.items)) % len(v.items)
	v.zoom = 1
}

// ShowAnnotations reports whether the overlay is visible.
func (v *Viewer) ShowAnnotations() bool { return v.annotations }

// SetShowAnnotations sets overlay visibility directly.
func (v *Viewer) SetShowAnnotations(visible bool) { v.annotations = visible }

// ToggleAnnotations flips overlay visibility and returns the new state.
func (v *Viewer) ToggleAnnotations() bool {
	v.annotations = !v.annotations
	return v.annotations
}

// Zoom returns the current zoom factor.
func (v *Viewer) Zoom() float64 { return v.zoom }

// ZoomIn raises zoom one step, capped at MaxZoom.
func (v *Viewer) ZoomIn() { v.setZoom(v.zoom + ZoomStep) }

// ZoomOut lowers zoom one step, floored at MinZoom.
func (v *Viewer) ZoomOut() { v.setZoom(v.zoom - ZoomStep) }

// ResetZoom returns to 1x.
func (v *Viewer) ResetZoom() { v.zoom = 1 }

func (v *Viewer) setZoom(z float64) {
	v.zoom = math.Min(math.Max(z, MinZoom), MaxZoom)
}

// Annotations returns the overlay for the current item, or nil when the
// overlay is hidden or the viewer is empty.
func (v *Viewer) Annotations() []annotation.Annotation {
	if !v.annotations {
		return nil
	}
	item, ok := v.Current()
	if !ok {
		return nil
	}
	return item.Data.Annotations
}
