package textfit

import (
	"unicode"

	"golang.org/x/text/width"
)

// Script identifies the dominant writing system of a piece of text.
// It drives line-breaking rules and fallback width estimation.
type Script int

const (
	// ScriptLatin covers space-delimited scripts (Latin, Cyrillic, ...).
	ScriptLatin Script = iota
	// ScriptHangul covers Korean text.
	ScriptHangul
	// ScriptHan covers Chinese text.
	ScriptHan
)

// String returns a human-readable representation of the script.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptHangul:
		return "hangul"
	case ScriptHan:
		return "han"
	default:
		return "unknown"
	}
}

// DetectScript returns the dominant script of the text. Hangul or Han
// dominate when they make up more than 30% of the runes; otherwise the
// text is treated as space-delimited.
func DetectScript(text string) Script {
	if text == "" {
		return ScriptLatin
	}

	var hangul, han, total int
	for _, r := range text {
		total++
		switch {
		case unicode.In(r, unicode.Hangul):
			hangul++
		case unicode.In(r, unicode.Han):
			han++
		}
	}

	switch {
	case float64(hangul)/float64(total) > 0.3:
		return ScriptHangul
	case float64(han)/float64(total) > 0.3:
		return ScriptHan
	default:
		return ScriptLatin
	}
}

// isWideRune reports whether a rune occupies an East Asian wide or
// fullwidth cell.
func isWideRune(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

// koreanParticles lists the grammatical particles treated as
// non-breakable suffixes of the preceding token when breaking Korean
// text. Two-rune particles come first so they match before their
// single-rune prefixes.
var koreanParticles = []string{
	"에서", "부터", "까지", "으로",
	"을", "를", "이", "가", "은", "는", "의", "에", "도", "로", "와", "과",
}

// particleAt returns the length in runes of the particle starting at
// runes[i], or 0 when none matches.
func particleAt(runes []rune, i int) int {
	rest := string(runes[i:])
	for _, p := range koreanParticles {
		if len(rest) >= len(p) && rest[:len(p)] == p {
			return len([]rune(p))
		}
	}
	return 0
}

// isSentenceEnd reports whether a rune terminates a sentence. The CJK
// fullwidth terminators count alongside the ASCII ones.
func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	default:
		return false
	}
}
