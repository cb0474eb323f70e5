// Package canvas provides the drawing surface widgets: the editable markup
// canvas and the read-only review canvas.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"photo-markup/internal/editor"
	"photo-markup/internal/render"
	"photo-markup/pkg/geometry"
)

// MarkupCanvas is the interactive editing surface. It renders the base photo
// plus the editor's annotations into a raster and translates mouse events
// into editor pointer events. The widget is laid out at the editor's
// authoring size; the raster callback repaints at whatever pixel density the
// driver asks for.
type MarkupCanvas struct {
	widget.BaseWidget

	editor *editor.Editor
	base   image.Image
	raster *fynecanvas.Raster

	surface *render.Raster

	// OnPrompt fires when a pointer release needs text or a marker label.
	OnPrompt func(editor.Prompt)
	// OnChanged fires after any event that may have altered editor state,
	// so the window can refresh undo/redo button enablement.
	OnChanged func()
}

var (
	_ desktop.Mouseable = (*MarkupCanvas)(nil)
	_ fyne.Draggable    = (*MarkupCanvas)(nil)
)

// NewMarkupCanvas creates the editing surface for base displayed at the
// editor's authoring size.
func NewMarkupCanvas(ed *editor.Editor, base image.Image) *MarkupCanvas {
	mc := &MarkupCanvas{editor: ed, base: base}
	mc.raster = fynecanvas.NewRaster(mc.draw)
	size := ed.CanvasSize()
	mc.raster.SetMinSize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	mc.ExtendBaseWidget(mc)
	return mc
}

// CreateRenderer implements fyne.Widget.
func (mc *MarkupCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mc.raster)
}

// MinSize pins the widget to the authoring size.
func (mc *MarkupCanvas) MinSize() fyne.Size {
	return mc.raster.MinSize()
}

// draw repaints the full frame: base, committed annotations, live preview,
// then the selection outline.
func (mc *MarkupCanvas) draw(w, h int) image.Image {
	if mc.surface == nil || mc.surface.Size() != geometry.NewSize(float64(w), float64(h)) {
		mc.surface = render.NewRaster(w, h)
	}
	size := mc.editor.CanvasSize()
	sx := float64(w) / size.Width
	sy := float64(h) / size.Height

	render.Render(mc.surface, mc.base, mc.editor.Annotations(), sx, sy)
	for _, ann := range mc.editor.Preview() {
		render.DrawPreview(mc.surface, ann, sx, sy)
	}
	if sel := mc.editor.SelectedAnnotation(); sel != nil {
		render.DrawSelection(mc.surface, sel, sx, sy)
	}
	return mc.surface.Image()
}

// toAuthoring converts a widget-relative event position to authoring
// coordinates.
func (mc *MarkupCanvas) toAuthoring(pos fyne.Position) geometry.Point2D {
	widgetSize := mc.Size()
	authoring := mc.editor.CanvasSize()
	if widgetSize.Width <= 0 || widgetSize.Height <= 0 {
		return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
	}
	return geometry.NewPoint2D(
		float64(pos.X)/float64(widgetSize.Width)*authoring.Width,
		float64(pos.Y)/float64(widgetSize.Height)*authoring.Height,
	)
}

// MouseDown implements desktop.Mouseable.
func (mc *MarkupCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	mc.editor.PointerDown(mc.toAuthoring(ev.Position))
	mc.notify()
}

// MouseUp implements desktop.Mouseable.
func (mc *MarkupCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	prompt := mc.editor.PointerUp(mc.toAuthoring(ev.Position))
	if prompt.Kind != editor.PromptNone && mc.OnPrompt != nil {
		mc.OnPrompt(prompt)
	}
	mc.notify()
}

// Dragged implements fyne.Draggable. Fyne delivers drag positions relative
// to the widget, which is what toAuthoring expects.
func (mc *MarkupCanvas) Dragged(ev *fyne.DragEvent) {
	mc.editor.PointerMove(mc.toAuthoring(ev.Position))
	mc.Refresh()
}

// DragEnd implements fyne.Draggable. MouseUp already finished the capture.
func (mc *MarkupCanvas) DragEnd() {}

func (mc *MarkupCanvas) notify() {
	mc.Refresh()
	if mc.OnChanged != nil {
		mc.OnChanged()
	}
}
