package textfit

import (
	"math"
	"testing"
)

func TestFallbackRuneWidth(t *testing.T) {
	table := DefaultFallbackTable()

	tests := []struct {
		name string
		r    rune
		size int
		want float64
	}{
		{"latin", 'a', 12, 6},
		{"hangul", '전', 12, 8.4},
		{"han", '市', 12, 7.8},
		{"punctuation", '.', 12, 3.6},
		{"fullwidth", '！', 12, 7.8}, // East Asian fullwidth, not ASCII punctuation
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.RuneWidth(tt.r, tt.size); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("RuneWidth(%q, %d) = %v, want %v", tt.r, tt.size, got, tt.want)
			}
		})
	}
}

func TestFallbackMeasureMonotone(t *testing.T) {
	table := DefaultFallbackTable()
	text := "혼합 mixed 文本 text."

	var prev Size
	for size := 8; size <= 32; size += 2 {
		got := table.Measure(text, size)
		if got.Width < prev.Width || got.Height < prev.Height {
			t.Errorf("size %d: %+v smaller than previous %+v", size, got, prev)
		}
		prev = got
	}
}

func TestFallbackDisplayLength(t *testing.T) {
	table := DefaultFallbackTable()

	// Korean runes count 1.4 display units, Latin 1.0.
	got := table.DisplayLength("ab전")
	if math.Abs(got-3.4) > 0.0001 {
		t.Errorf("DisplayLength = %v, want 3.4", got)
	}
}
