package render

import (
	"image"
	"image/color"
	"math"

	"photo-markup/pkg/geometry"
)

// Raster is a Surface drawing into an *image.RGBA. All strokes stamp a
// circular brush along their trajectory, which yields round caps and round
// joins without special-casing either.
type Raster struct {
	img *image.RGBA
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a raster surface of the given pixel size.
func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r := &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	r.Clear()
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size implements Surface.
func (r *Raster) Size() geometry.Size {
	b := r.img.Bounds()
	return geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
}

// Clear implements Surface.
func (r *Raster) Clear() {
	for i := range r.img.Pix {
		r.img.Pix[i] = 255
	}
}

// DrawImage implements Surface. The source is stretched to the surface size
// with nearest-neighbor sampling.
func (r *Raster) DrawImage(src image.Image) {
	if src == nil {
		return
	}
	dst := r.img.Bounds()
	sb := src.Bounds()
	if dst.Dx() == 0 || dst.Dy() == 0 || sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	for y := 0; y < dst.Dy(); y++ {
		srcY := sb.Min.Y + y*sb.Dy()/dst.Dy()
		for x := 0; x < dst.Dx(); x++ {
			srcX := sb.Min.X + x*sb.Dx()/dst.Dx()
			r.img.Set(x, y, src.At(srcX, srcY))
		}
	}
}

// blend writes col at (x, y) mixed with the existing pixel. The output stays
// opaque; alpha only controls the mix.
func (r *Raster) blend(x, y int, col color.RGBA, alpha float64) {
	b := r.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if alpha >= 0.999 {
		r.img.SetRGBA(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: 255})
		return
	}
	if alpha <= 0.001 {
		return
	}
	existing := r.img.RGBAAt(x, y)
	inv := 1 - alpha
	r.img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(col.R)*alpha + float64(existing.R)*inv),
		G: uint8(float64(col.G)*alpha + float64(existing.G)*inv),
		B: uint8(float64(col.B)*alpha + float64(existing.B)*inv),
		A: 255,
	})
}

// stampDisc marks a filled disc in the coverage mask.
func (r *Raster) stampDisc(mask []bool, cx, cy, radius float64) {
	if radius < 0.5 {
		radius = 0.5
	}
	b := r.img.Bounds()
	w := b.Dx()
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				mask[y*w+x] = true
			}
		}
	}
}

// stampSegment marks a thick segment in the coverage mask by stamping the
// brush at one-pixel steps along the segment.
func (r *Raster) stampSegment(mask []bool, a, b geometry.Point2D, radius float64) {
	dist := a.Distance(b)
	steps := int(math.Ceil(dist))
	if steps == 0 {
		r.stampDisc(mask, a.X, a.Y, radius)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.stampDisc(mask, a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, radius)
	}
}

// flushMask blends every covered pixel exactly once. Strokes with opacity
// below 1 must not double-blend where the brush overlaps itself.
func (r *Raster) flushMask(mask []bool, col color.RGBA, opacity float64) {
	b := r.img.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := y * w
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask[row+x] {
				r.blend(x, y, col, opacity)
			}
		}
	}
}

func (r *Raster) newMask() []bool {
	b := r.img.Bounds()
	return make([]bool, b.Dx()*b.Dy())
}

// StrokePath implements Surface.
func (r *Raster) StrokePath(points []geometry.Point2D, col color.RGBA, width, opacity float64) {
	if len(points) == 0 {
		return
	}
	mask := r.newMask()
	radius := width / 2
	if len(points) == 1 {
		r.stampDisc(mask, points[0].X, points[0].Y, radius)
	}
	for i := 1; i < len(points); i++ {
		r.stampSegment(mask, points[i-1], points[i], radius)
	}
	r.flushMask(mask, col, opacity)
}

// StrokeLine implements Surface.
func (r *Raster) StrokeLine(a, b geometry.Point2D, col color.RGBA, width float64) {
	r.StrokePath([]geometry.Point2D{a, b}, col, width, 1)
}

const (
	dashOn  = 6.0
	dashOff = 4.0
)

// DashedLine implements Surface.
func (r *Raster) DashedLine(a, b geometry.Point2D, col color.RGBA, width float64) {
	dist := a.Distance(b)
	steps := int(math.Ceil(dist))
	if steps == 0 {
		return
	}
	mask := r.newMask()
	radius := width / 2
	period := dashOn + dashOff
	for i := 0; i <= steps; i++ {
		t := float64(i)
		if math.Mod(t, period) >= dashOn {
			continue
		}
		f := t / float64(steps)
		r.stampDisc(mask, a.X+(b.X-a.X)*f, a.Y+(b.Y-a.Y)*f, radius)
	}
	r.flushMask(mask, col, 1)
}

// ellipseSteps picks a sampling density fine enough that consecutive stamps
// overlap at any radius.
func ellipseSteps(rx, ry float64) int {
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	if steps < 16 {
		steps = 16
	}
	return steps
}

// StrokeEllipse implements Surface.
func (r *Raster) StrokeEllipse(bounds geometry.Rect, col color.RGBA, width float64) {
	cx, cy := bounds.Center().X, bounds.Center().Y
	rx, ry := bounds.Width/2, bounds.Height/2
	mask := r.newMask()
	radius := width / 2
	steps := ellipseSteps(rx, ry)
	for i := 0; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		r.stampDisc(mask, cx+rx*math.Cos(theta), cy+ry*math.Sin(theta), radius)
	}
	r.flushMask(mask, col, 1)
}

// DashedEllipse implements Surface.
func (r *Raster) DashedEllipse(bounds geometry.Rect, col color.RGBA, width float64) {
	cx, cy := bounds.Center().X, bounds.Center().Y
	rx, ry := bounds.Width/2, bounds.Height/2
	mask := r.newMask()
	radius := width / 2
	steps := ellipseSteps(rx, ry)
	circumference := 2 * math.Pi * math.Max(rx, ry)
	period := dashOn + dashOff
	for i := 0; i <= steps; i++ {
		arc := circumference * float64(i) / float64(steps)
		if math.Mod(arc, period) >= dashOn {
			continue
		}
		theta := 2 * math.Pi * float64(i) / float64(steps)
		r.stampDisc(mask, cx+rx*math.Cos(theta), cy+ry*math.Sin(theta), radius)
	}
	r.flushMask(mask, col, 1)
}

// StrokeRect implements Surface.
func (r *Raster) StrokeRect(bounds geometry.Rect, col color.RGBA, width float64) {
	tl := geometry.NewPoint2D(bounds.X, bounds.Y)
	tr := geometry.NewPoint2D(bounds.X+bounds.Width, bounds.Y)
	br := geometry.NewPoint2D(bounds.X+bounds.Width, bounds.Y+bounds.Height)
	bl := geometry.NewPoint2D(bounds.X, bounds.Y+bounds.Height)
	r.StrokePath([]geometry.Point2D{tl, tr, br, bl, tl}, col, width, 1)
}

// DashedRect implements Surface.
func (r *Raster) DashedRect(bounds geometry.Rect, col color.RGBA) {
	tl := geometry.NewPoint2D(bounds.X, bounds.Y)
	tr := geometry.NewPoint2D(bounds.X+bounds.Width, bounds.Y)
	br := geometry.NewPoint2D(bounds.X+bounds.Width, bounds.Y+bounds.Height)
	bl := geometry.NewPoint2D(bounds.X, bounds.Y+bounds.Height)
	r.DashedLine(tl, tr, col, 1)
	r.DashedLine(tr, br, col, 1)
	r.DashedLine(br, bl, col, 1)
	r.DashedLine(bl, tl, col, 1)
}

// FillCircle implements Surface.
func (r *Raster) FillCircle(center geometry.Point2D, radius float64, col color.RGBA) {
	mask := r.newMask()
	r.stampDisc(mask, center.X, center.Y, radius)
	r.flushMask(mask, col, 1)
}

// FillTriangle implements Surface. Scanline fill over the three edges.
func (r *Raster) FillTriangle(a, b, c geometry.Point2D, col color.RGBA) {
	pts := []geometry.Point2D{a, b, c}
	box := geometry.BoundingBox(pts)
	bounds := r.img.Bounds()

	for y := int(math.Floor(box.Y)); y <= int(math.Ceil(box.Y+box.Height)); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		fy := float64(y)
		var xs []float64
		for i := 0; i < 3; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%3]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
		}
		for x := int(math.Floor(xs[0])); x <= int(math.Ceil(xs[1])); x++ {
			if x >= bounds.Min.X && x < bounds.Max.X && float64(x) >= xs[0] && float64(x) <= xs[1] {
				r.blend(x, y, col, 1)
			}
		}
	}
}
