package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"photo-markup/internal/annotation"
	"photo-markup/internal/render"
)

// ReviewCanvas is the read-only surface of the review screen. Each item is
// rendered once at its authoring size; zoom only changes the displayed size
// of the result.
type ReviewCanvas struct {
	widget.BaseWidget

	img    *fynecanvas.Image
	scroll *container.Scroll

	rendered image.Image
	width    float64
	height   float64
	zoom     float64
}

// NewReviewCanvas creates an empty review surface.
func NewReviewCanvas() *ReviewCanvas {
	rc := &ReviewCanvas{zoom: 1}
	rc.img = fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	rc.img.FillMode = fynecanvas.ImageFillStretch
	rc.img.ScaleMode = fynecanvas.ImageScaleSmooth
	rc.scroll = container.NewScroll(rc.img)
	rc.ExtendBaseWidget(rc)
	return rc
}

// CreateRenderer implements fyne.Widget.
func (rc *ReviewCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rc.scroll)
}

// Show renders base with the overlay at the markup's authoring size and
// displays it at the given zoom. A nil base shows the annotations on a
// white placeholder, so a missing photo file still reviews.
func (rc *ReviewCanvas) Show(base image.Image, data annotation.Data, overlay []annotation.Annotation, zoom float64) {
	w := int(data.Width)
	h := int(data.Height)
	if w <= 0 || h <= 0 {
		w, h = 400, 300
	}
	surface := render.NewRaster(w, h)
	render.Render(surface, base, overlay, 1, 1)

	rc.rendered = surface.Image()
	rc.width = float64(w)
	rc.height = float64(h)
	rc.img.Image = rc.rendered
	rc.SetZoom(zoom)
}

// SetZoom changes the displayed size without re-rendering.
func (rc *ReviewCanvas) SetZoom(zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	rc.zoom = zoom
	rc.img.SetMinSize(fyne.NewSize(float32(rc.width*zoom), float32(rc.height*zoom)))
	rc.img.Refresh()
	rc.scroll.Refresh()
}
