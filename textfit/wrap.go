package textfit

import "strings"

// Wrap breaks text into lines no wider than maxWidth points at the
// given family and size. Existing newlines are preserved as paragraph
// breaks.
//
// Space-delimited scripts break at word boundaries. Chinese breaks at
// any rune. Korean breaks at word boundaries, and when a single word
// must be hard-broken, trailing grammatical particles are kept as
// non-breakable suffixes of the syllable they attach to. A token is
// only ever split when it alone exceeds maxWidth.
func (e *Engine) Wrap(text, family string, size int, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	script := DetectScript(text)

	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		switch script {
		case ScriptHan:
			out = append(out, e.wrapRunes(para, family, size, maxWidth)...)
		default:
			out = append(out, e.wrapWords(para, family, size, maxWidth, script)...)
		}
	}
	return out
}

// wrapWords greedily packs whitespace-separated tokens into lines.
func (e *Engine) wrapWords(para, family string, size int, maxWidth float64, script Script) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if e.lineWidth(candidate, family, size) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if e.lineWidth(word, family, size) <= maxWidth {
			current = word
			continue
		}
		// The word alone exceeds the box width: hard-break it.
		parts := e.breakToken(word, family, size, maxWidth, script)
		lines = append(lines, parts[:len(parts)-1]...)
		current = parts[len(parts)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// wrapRunes packs runes directly, for scripts without word delimiters.
func (e *Engine) wrapRunes(para, family string, size int, maxWidth float64) []string {
	var lines []string
	current := ""
	for _, r := range para {
		candidate := current + string(r)
		if current != "" && e.lineWidth(candidate, family, size) > maxWidth {
			lines = append(lines, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakToken splits an over-wide token at the last rune boundary that
// fits, repeatedly, returning at least one rune per part so progress
// is guaranteed. For Korean, a break point that would strand a
// grammatical particle at the start of the next part is moved one
// syllable left so the particle stays attached to its stem.
func (e *Engine) breakToken(token, family string, size int, maxWidth float64, script Script) []string {
	runes := []rune(token)
	var parts []string

	for len(runes) > 0 {
		cut := len(runes)
		var w float64
		for i, r := range runes {
			w += e.runeWidth(r, family, size)
			if w > maxWidth && i > 0 {
				cut = i
				break
			}
		}
		if cut < len(runes) && script == ScriptHangul {
			// A cut at or inside a particle would strand it at the
			// start of the next line; pull the cut back so the
			// particle wraps together with its preceding syllable.
			for j := cut; j >= 1 && j >= cut-1; j-- {
				if particleAt(runes, j) > 0 {
					if j-1 >= 1 {
						cut = j - 1
					}
					break
				}
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	return parts
}

func (e *Engine) lineWidth(line, family string, size int) float64 {
	m := e.measureLine(line, family, size)
	return m.size.Width
}

// runeWidth measures a single rune, approximating kerning-free
// accumulation during token breaking.
func (e *Engine) runeWidth(r rune, family string, size int) float64 {
	return e.lineWidth(string(r), family, size)
}
