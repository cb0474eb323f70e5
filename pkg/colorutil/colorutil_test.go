package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownName(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 229, G: 57, B: 53, A: 255}, Lookup("red"))
	assert.Equal(t, White, Lookup("white"))
}

func TestLookupUnknownNameFallsBackToBlack(t *testing.T) {
	assert.Equal(t, Black, Lookup("chartreuse"))
	assert.Equal(t, Black, Lookup(""))
}

func TestContrast(t *testing.T) {
	assert.Equal(t, White, Contrast(Black))
	assert.Equal(t, Black, Contrast(White))
	assert.Equal(t, Black, Contrast(Lookup("yellow")))
	assert.Equal(t, White, Contrast(Lookup("blue")))
}
