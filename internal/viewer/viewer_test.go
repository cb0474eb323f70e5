package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/geometry"
)

func threeItems() []Item {
	var items []Item
	for _, id := range []string{"a", "b", "c"} {
		items = append(items, Item{
			ID: id,
			Data: annotation.Data{
				Annotations: []annotation.Annotation{
					annotation.NewMarker(geometry.NewPoint2D(10, 10), "M", "red"),
				},
				Width:  400,
				Height: 300,
			},
		})
	}
	return items
}

func TestNavigationWraps(t *testing.T) {
	v := New(threeItems())

	v.Next()
	v.Next()
	assert.Equal(t, 2, v.Index())
	v.Next()
	assert.Equal(t, 0, v.Index(), "Next wraps from last to first")

	v.Prev()
	assert.Equal(t, 2, v.Index(), "Prev wraps from first to last")
}

func TestNavigationResetsZoomKeepsToggle(t *testing.T) {
	v := New(threeItems())
	v.ZoomIn()
	v.ToggleAnnotations()
	require.False(t, v.ShowAnnotations())

	v.Next()
	assert.Equal(t, 1.0, v.Zoom())
	assert.False(t, v.ShowAnnotations(), "overlay toggle carries across items")
}

func TestZoomClamped(t *testing.T) {
	v := New(threeItems())
	for i := 0; i < 20; i++ {
		v.ZoomIn()
	}
	assert.Equal(t, MaxZoom, v.Zoom())

	for i := 0; i < 20; i++ {
		v.ZoomOut()
	}
	assert.Equal(t, MinZoom, v.Zoom())

	v.ResetZoom()
	assert.Equal(t, 1.0, v.Zoom())
}

func TestToggleHidesOverlay(t *testing.T) {
	v := New(threeItems())
	require.NotEmpty(t, v.Annotations())

	v.ToggleAnnotations()
	assert.Nil(t, v.Annotations())

	v.ToggleAnnotations()
	assert.NotEmpty(t, v.Annotations())
}

func TestSetShowAnnotations(t *testing.T) {
	v := New(threeItems())

	v.SetShowAnnotations(false)
	assert.False(t, v.ShowAnnotations())
	assert.Nil(t, v.Annotations())

	v.SetShowAnnotations(true)
	assert.NotEmpty(t, v.Annotations())
}

func TestEmptyViewer(t *testing.T) {
	v := New(nil)
	assert.True(t, v.Empty())

	_, ok := v.Current()
	assert.False(t, ok)
	assert.Nil(t, v.Annotations())

	// Navigation on an empty viewer is a no-op, not a panic.
	v.Next()
	v.Prev()
	assert.Equal(t, 0, v.Index())
}
