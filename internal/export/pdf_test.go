package export

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"photo-markup/internal/annotation"
	"photo-markup/pkg/geometry"
)

func TestPDFWritesFile(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 200, 150))
	data := annotation.Data{
		Annotations: []annotation.Annotation{
			annotation.NewShape(annotation.KindRectangle,
				geometry.NewPoint2D(20, 20), geometry.NewPoint2D(120, 90), "red", 2),
			annotation.NewMarker(geometry.NewPoint2D(60, 60), "A", "blue"),
		},
		Width:  200,
		Height: 150,
	}

	path := filepath.Join(t.TempDir(), "markup.pdf")
	if err := PDF(path, base, data, "week 3", "left cheek"); err != nil {
		t.Fatalf("PDF: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestPDFRejectsInvalidDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	err := PDF(path, nil, annotation.Data{}, "", "")
	if err == nil {
		t.Error("expected an error for zero dimensions")
	}
}
