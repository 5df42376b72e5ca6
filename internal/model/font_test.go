package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFont(t *testing.T) {
	f := DefaultFont()

	assert.Equal(t, "Arial", f.Family)
	assert.Equal(t, 12, f.Size)
	assert.Equal(t, WeightNormal, f.Weight)
	assert.Equal(t, SlantRoman, f.Slant)
}

func TestFontNormalizeRepairsFields(t *testing.T) {
	f := FontDescriptor{
		Family: "",
		Size:   -3,
		Weight: "heavy",
		Slant:  "oblique",
	}

	got := f.Normalize()
	assert.Equal(t, DefaultFont(), got)
}

func TestFontNormalizeKeepsValidFields(t *testing.T) {
	f := FontDescriptor{
		Family: "Consolas",
		Size:   16,
		Weight: WeightBold,
		Slant:  SlantItalic,
	}

	assert.Equal(t, f, f.Normalize())
}

func TestFontNormalizePartialRepair(t *testing.T) {
	f := FontDescriptor{
		Family: "Georgia",
		Size:   0,
		Weight: WeightBold,
		Slant:  "",
	}

	got := f.Normalize()
	assert.Equal(t, "Georgia", got.Family)
	assert.Equal(t, 12, got.Size)
	assert.Equal(t, WeightBold, got.Weight)
	assert.Equal(t, SlantRoman, got.Slant)
}

func TestFontBoldItalic(t *testing.T) {
	f := FontDescriptor{Weight: WeightBold, Slant: SlantItalic}
	assert.True(t, f.Bold())
	assert.True(t, f.Italic())

	assert.False(t, DefaultFont().Bold())
	assert.False(t, DefaultFont().Italic())
}
