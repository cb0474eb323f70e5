package annotation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-markup/pkg/geometry"
)

func sampleData() Data {
	return Data{
		Annotations: []Annotation{
			NewPath(KindPen, []geometry.Point2D{{X: 10, Y: 10}, {X: 20, Y: 12}, {X: 30, Y: 15}}, "red", 3, 0.8),
			NewPath(KindHighlighter, []geometry.Point2D{{X: 5, Y: 40}, {X: 80, Y: 40}}, "yellow", 8, 1),
			NewText(geometry.NewPoint2D(100, 60), "dry patch", "black", 18),
			NewShape(KindArrow, geometry.NewPoint2D(50, 50), geometry.NewPoint2D(120, 90), "blue", 2),
			NewShape(KindLine, geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 10), "green", 1),
			NewShape(KindCircle, geometry.NewPoint2D(200, 100), geometry.NewPoint2D(150, 80), "teal", 4),
			NewShape(KindRectangle, geometry.NewPoint2D(200, 150), geometry.NewPoint2D(100, 100), "purple", 2),
			NewMarker(geometry.NewPoint2D(33, 44), "a1", "pink"),
		},
		Width:  400,
		Height: 300,
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleData()

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Data
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Len(t, decoded.Annotations, len(original.Annotations))
	assert.Equal(t, original.Width, decoded.Width)
	assert.Equal(t, original.Height, decoded.Height)

	for i, want := range original.Annotations {
		assert.Equal(t, want, decoded.Annotations[i], "annotation %d", i)
	}
}

func TestRoundTripPreservesUnnormalizedCorners(t *testing.T) {
	// Start/end are stored as dragged; only the renderer normalizes.
	rect := NewShape(KindRectangle, geometry.NewPoint2D(200, 150), geometry.NewPoint2D(100, 100), "red", 2)
	original := Data{Annotations: []Annotation{rect}, Width: 400, Height: 300}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Data
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	got, ok := decoded.Annotations[0].(*Shape)
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint2D(200, 150), got.Start)
	assert.Equal(t, geometry.NewPoint2D(100, 100), got.End)
}

func TestRoundTripEmpty(t *testing.T) {
	original := Data{Annotations: []Annotation{}, Width: 640, Height: 480}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Data
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Empty(t, decoded.Annotations)
	assert.Equal(t, original.Width, decoded.Width)
}

func TestDiscriminatorsOnWire(t *testing.T) {
	encoded, err := json.Marshal(sampleData())
	require.NoError(t, err)

	var env struct {
		Annotations []struct {
			Type Kind `json:"type"`
		} `json:"annotations"`
	}
	require.NoError(t, json.Unmarshal(encoded, &env))

	want := []Kind{
		KindPen, KindHighlighter, KindText, KindArrow,
		KindLine, KindCircle, KindRectangle, KindMarker,
	}
	require.Len(t, env.Annotations, len(want))
	for i, k := range want {
		assert.Equal(t, k, env.Annotations[i].Type)
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	payload := `{"annotations":[{"id":"x","type":"scribble"}],"width":10,"height":10}`

	var decoded Data
	err := json.Unmarshal([]byte(payload), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scribble")
}
