package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/geometry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleData() annotation.Data {
	return annotation.Data{
		Annotations: []annotation.Annotation{
			annotation.NewPath(annotation.KindPen,
				[]geometry.Point2D{{X: 1, Y: 2}, {X: 3, Y: 4}}, "red", 3, 1),
			annotation.NewMarker(geometry.NewPoint2D(50, 60), "A1", "blue"),
		},
		Width:  400,
		Height: 300,
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	data := sampleData()
	saved, err := s.Save("photos/cheek.jpg", "week 3", "redness improving", data)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "photos/cheek.jpg", got.PhotoPath)
	assert.Equal(t, "week 3", got.Title)
	assert.Equal(t, "redness improving", got.Notes)
	assert.Equal(t, data, got.Data)
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByPhotoOrdersByCreation(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Save("a.jpg", "first", "", sampleData())
	require.NoError(t, err)
	second, err := s.Save("a.jpg", "second", "", sampleData())
	require.NoError(t, err)
	_, err = s.Save("b.jpg", "other photo", "", sampleData())
	require.NoError(t, err)

	got, err := s.ListByPhoto("a.jpg")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)

	all, err := s.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepeatedSaveCreatesNewRecords(t *testing.T) {
	s := openTestStore(t)

	a, err := s.Save("a.jpg", "", "", sampleData())
	require.NoError(t, err)
	b, err := s.Save("a.jpg", "", "", sampleData())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "saving twice must not overwrite")
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.Save("a.jpg", "", "", sampleData())
	require.NoError(t, err)

	require.NoError(t, s.Delete(saved.ID))
	_, err = s.Get(saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(saved.ID), ErrNotFound)
}

func TestEmptyMarkupPersists(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.Save("a.jpg", "", "", annotation.Data{Width: 100, Height: 80})
	require.NoError(t, err)

	got, err := s.Get(saved.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Data.Annotations)
	assert.Equal(t, 100.0, got.Data.Width)
	assert.Equal(t, 80.0, got.Data.Height)
}
