package textfit

import "strings"

// Ellipsis is the marker appended to truncated text.
const Ellipsis = "…"

// EllipsisLen is the rune length of the ellipsis marker.
const EllipsisLen = 1

// Truncate shortens text to at most maxLen runes plus the ellipsis
// marker. Text already within maxLen is returned unchanged. In smart
// mode the cut prefers the longest sentence-boundary prefix, then a
// word boundary, then a hard character cut; the boundary must keep at
// least 60% (sentences) or 70% (words) of the budget, matching how
// much loss is acceptable before a clean break stops being worth it.
// The result is never empty for non-empty input.
func Truncate(text string, maxLen int, smart bool) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return Ellipsis
	}

	prefix := runes[:maxLen]
	if !smart {
		return string(prefix) + Ellipsis
	}

	// Sentence boundary.
	for i := len(prefix) - 1; i >= 0; i-- {
		if isSentenceEnd(prefix[i]) {
			if float64(i+1) >= 0.6*float64(maxLen) {
				return string(prefix[:i+1]) + Ellipsis
			}
			break
		}
	}

	// Word boundary.
	if idx := strings.LastIndexAny(string(prefix), " \t"); idx > 0 {
		cut := len([]rune(string(prefix)[:idx]))
		if float64(cut) >= 0.7*float64(maxLen) {
			return strings.TrimRight(string(prefix[:cut]), " \t") + Ellipsis
		}
	}

	// Hard character cut.
	return string(prefix) + Ellipsis
}

// TruncateLines keeps at most maxLines lines, appending the ellipsis
// marker to the last kept line when anything was dropped.
func TruncateLines(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	kept := make([]string, maxLines)
	copy(kept, lines[:maxLines])
	kept[maxLines-1] = strings.TrimRight(kept[maxLines-1], " ") + Ellipsis
	return kept
}
