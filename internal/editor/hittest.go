package editor

import (
	"photo-markup/internal/annotation"
	"photo-markup/internal/render"
	"photo-markup/pkg/geometry"
)

// hitTest returns the id of the topmost annotation under p, scanning the
// list back to front. Only text and markers are selectable: freehand strokes
// and shapes have no grab region and are removed via undo instead.
func (e *Editor) hitTest(p geometry.Point2D) string {
	for i := len(e.annotations) - 1; i >= 0; i-- {
		switch v := e.annotations[i].(type) {
		case *annotation.Text:
			if e.measurer == nil {
				continue
			}
			measured := e.measurer.MeasureText(v.Text, v.FontSize)
			if render.TextBounds(v.At, measured).Contains(p) {
				return v.ID
			}
		case *annotation.Marker:
			if render.MarkerHitBox(v.At).Contains(p) {
				return v.ID
			}
		}
	}
	return ""
}
