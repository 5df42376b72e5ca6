package model

// Font weight and slant values. The persisted files only ever contain
// these strings; anything else is repaired by Normalize.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"

	SlantRoman  = "roman"
	SlantItalic = "italic"
)

// FontDescriptor describes the text rendering style of a note: family,
// point size, weight, and slant.
type FontDescriptor struct {
	Family string `json:"family" mapstructure:"family"`
	Size   int    `json:"size" mapstructure:"size"`
	Weight string `json:"weight" mapstructure:"weight"`
	Slant  string `json:"slant" mapstructure:"slant"`
}

// DefaultFont returns the descriptor used when no preference has been saved.
func DefaultFont() FontDescriptor {
	return FontDescriptor{
		Family: "Arial",
		Size:   12,
		Weight: WeightNormal,
		Slant:  SlantRoman,
	}
}

// Normalize repairs a descriptor loaded from disk field by field, so a
// partially malformed record degrades to defaults instead of being dropped.
func (f FontDescriptor) Normalize() FontDescriptor {
	def := DefaultFont()
	if f.Family == "" {
		f.Family = def.Family
	}
	if f.Size <= 0 {
		f.Size = def.Size
	}
	if f.Weight != WeightNormal && f.Weight != WeightBold {
		f.Weight = def.Weight
	}
	if f.Slant != SlantRoman && f.Slant != SlantItalic {
		f.Slant = def.Slant
	}
	return f
}

// Bold reports whether the descriptor uses the bold weight.
func (f FontDescriptor) Bold() bool { return f.Weight == WeightBold }

// Italic reports whether the descriptor uses the italic slant.
func (f FontDescriptor) Italic() bool { return f.Slant == SlantItalic }
