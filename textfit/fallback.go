package textfit

import (
	"strings"
	"unicode"
)

// FallbackTable estimates text dimensions from per-script width
// multipliers when no real font metrics are available for a family.
// Widths are linear in the font size, so the estimate preserves the
// total ordering the fitting binary search needs, at reduced accuracy.
//
// Multipliers apply to a 0.5 em base advance: a Latin glyph at 14pt is
// estimated at 7pt wide, a Hangul syllable at 9.8pt.
type FallbackTable struct {
	// Latin is the multiplier for narrow (halfwidth) runes.
	Latin float64
	// Hangul is the multiplier for Korean syllables and jamo.
	Hangul float64
	// Han is the multiplier for Chinese ideographs.
	Han float64
	// Wide is the multiplier for other East Asian wide runes.
	Wide float64
	// Punctuation is the multiplier for common punctuation.
	Punctuation float64
}

// DefaultFallbackTable returns the standard multipliers.
func DefaultFallbackTable() FallbackTable {
	return FallbackTable{
		Latin:       1.0,
		Hangul:      1.4,
		Han:         1.3,
		Wide:        1.3,
		Punctuation: 0.6,
	}
}

// RuneWidth estimates the advance of a single rune in points at the
// given font size.
func (t FallbackTable) RuneWidth(r rune, size int) float64 {
	base := 0.5 * float64(size)
	switch {
	case unicode.In(r, unicode.Hangul):
		return base * t.Hangul
	case unicode.In(r, unicode.Han):
		return base * t.Han
	case isPunctuation(r):
		return base * t.Punctuation
	case isWideRune(r):
		return base * t.Wide
	default:
		return base * t.Latin
	}
}

// Measure estimates single-line text dimensions at the given size.
// Height is the nominal line advance (one em).
func (t FallbackTable) Measure(text string, size int) Size {
	var w float64
	for _, r := range text {
		w += t.RuneWidth(r, size)
	}
	return Size{Width: w, Height: float64(size)}
}

// DisplayLength returns the width of the text in Latin-glyph units,
// used for character-count style thresholds on mixed-script text.
func (t FallbackTable) DisplayLength(text string) float64 {
	var n float64
	for _, r := range text {
		n += t.RuneWidth(r, 2) // 2pt size makes the base advance 1.0
	}
	return n
}

func isPunctuation(r rune) bool {
	return strings.ContainsRune(`.,;:!?-()[]{}'"`, r)
}
