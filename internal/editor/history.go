package editor

import "photo-markup/internal/annotation"

// History is a linear undo/redo stack of whole-list snapshots. Annotations
// are immutable after commit, so snapshots share the underlying values and
// only the slices are copied.
type History struct {
	snapshots [][]annotation.Annotation
	index     int
}

// NewHistory starts a history whose oldest entry is the initial list.
func NewHistory(initial []annotation.Annotation) *History {
	return &History{snapshots: [][]annotation.Annotation{cloneList(initial)}}
}

// Push records a new snapshot after the current position, discarding any
// entries that had been undone.
func (h *History) Push(list []annotation.Annotation) {
	h.snapshots = append(h.snapshots[:h.index+1], cloneList(list))
	h.index++
}

// Undo steps back one snapshot. Returns false at the oldest entry.
func (h *History) Undo() ([]annotation.Annotation, bool) {
	if h.index == 0 {
		return nil, false
	}
	h.index--
	return cloneList(h.snapshots[h.index]), true
}

// Redo steps forward one snapshot. Returns false at the newest entry.
func (h *History) Redo() ([]annotation.Annotation, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return cloneList(h.snapshots[h.index]), true
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len returns the number of snapshots, including the initial one.
func (h *History) Len() int { return len(h.snapshots) }

func cloneList(list []annotation.Annotation) []annotation.Annotation {
	if len(list) == 0 {
		return nil
	}
	out := make([]annotation.Annotation, len(list))
	copy(out, list)
	return out
}
