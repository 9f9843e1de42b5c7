package powerline

import "fmt"

// Mode names a glyph set.
type Mode string

const (
	// ModeCompatible uses geometric shapes available in most fonts.
	ModeCompatible Mode = "compatible"
	// ModePatched uses the private-use glyphs of powerline-patched fonts.
	ModePatched Mode = "patched"
)

// Symbols holds the separator glyphs for one mode.
type Symbols struct {
	Separator          string
	SeparatorThin      string
	SeparatorRight     string
	SeparatorRightThin string
}

var symbolSets = map[Mode]Symbols{
	ModeCompatible: {
		Separator:          "▶",
		SeparatorThin:      "❯",
		SeparatorRight:     "◀",
		SeparatorRightThin: "❮",
	},
	ModePatched: {
		Separator:          "\ue0b0",
		SeparatorThin:      "\ue0b1",
		SeparatorRight:     "\ue0b2",
		SeparatorRightThin: "\ue0b3",
	},
}

// SymbolsFor returns the glyph set for mode.
func SymbolsFor(mode Mode) (Symbols, error) {
	s, ok := symbolSets[mode]
	if !ok {
		return Symbols{}, fmt.Errorf("powerline: unknown mode %q (supported: compatible, patched)", mode)
	}
	return s, nil
}
