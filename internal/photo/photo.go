// Package photo loads the base photographs that markups are drawn over.
package photo

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/tiff"

	"photo-markup/pkg/geometry"
)

// Photo is a loaded base image.
type Photo struct {
	Path  string
	Image image.Image
}

// Load opens and decodes the image at path. JPEG, PNG, and TIFF are
// supported. Failures return an error for the caller to surface; the UI
// shows a placeholder rather than crashing.
func Load(path string) (*Photo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo %s: %w", filepath.Base(path), err)
	}
	return &Photo{Path: path, Image: img}, nil
}

// Width returns the decoded width in pixels.
func (p *Photo) Width() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dx()
}

// Height returns the decoded height in pixels.
func (p *Photo) Height() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dy()
}

// Size returns the decoded dimensions.
func (p *Photo) Size() geometry.Size {
	return geometry.NewSize(float64(p.Width()), float64(p.Height()))
}
