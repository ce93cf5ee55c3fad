package layout

import (
	"strconv"
	"strings"

	"github.com/joonbary/slidefit/model"
)

// resolveSlot maps a slot role to its source text in the content block.
// Missing fields resolve to the empty string, never an error. The same
// resolution feeds both compatibility scoring and binding, so a slot
// scored as matched is guaranteed to receive text.
func resolveSlot(block *model.ContentBlock, slot *model.ElementSlot) string {
	switch slot.Role {
	case model.RoleTitle:
		return block.Title
	case model.RoleSubtitle:
		return block.Subtitle
	case model.RoleHeadline:
		// A headline slot prefers the dedicated field but falls back to
		// the title so headline-led templates still bind plain blocks.
		if block.Headline != "" {
			return block.Headline
		}
		return block.Title
	case model.RoleBody:
		if block.Body != "" {
			return block.Body
		}
		return strings.Join(block.Bullets, "\n")
	case model.RoleBullets:
		return strings.Join(block.Bullets, "\n")
	case "bullets_left":
		left, _ := splitHalves(block.Bullets)
		return strings.Join(left, "\n")
	case "bullets_right":
		_, right := splitHalves(block.Bullets)
		return strings.Join(right, "\n")
	case model.RoleQuote:
		return block.Quote
	case model.RoleAttribution:
		return block.Attribution
	}

	if n, ok := indexedRole(slot.Role, "column_"); ok {
		return strings.Join(columnSlice(block.Bullets, n, 3), "\n")
	}
	if n, ok := indexedRole(slot.Role, model.RoleItem+"_"); ok {
		if n <= len(block.Bullets) {
			return block.Bullets[n-1]
		}
		return ""
	}
	if n, ok := indexedRole(slot.Role, model.RoleKPI+"_"); ok {
		if n <= len(block.KPIs) {
			return formatKPI(block.KPIs[n-1])
		}
		return ""
	}
	return ""
}

// indexedRole parses roles of the form prefixN (1-based). It returns
// false for malformed or non-positive indexes.
func indexedRole(role, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(role, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// splitHalves divides bullets between two columns, left-heavy for odd
// counts.
func splitHalves(bullets []string) (left, right []string) {
	mid := (len(bullets) + 1) / 2
	return bullets[:mid], bullets[mid:]
}

// columnSlice returns the n-th of cols roughly equal contiguous runs of
// bullets (1-based). Early columns absorb the remainder.
func columnSlice(bullets []string, n, cols int) []string {
	total := len(bullets)
	if total == 0 || n > cols {
		return nil
	}
	base := total / cols
	extra := total % cols

	start := 0
	for i := 1; i <= cols; i++ {
		size := base
		if i <= extra {
			size++
		}
		if i == n {
			return bullets[start : start+size]
		}
		start += size
	}
	return nil
}

// formatKPI renders a KPI tuple as stacked lines: value on top, label
// beneath, description last when present.
func formatKPI(k model.KPI) string {
	parts := make([]string, 0, 3)
	if k.Value != "" {
		parts = append(parts, k.Value)
	}
	if k.Label != "" {
		parts = append(parts, k.Label)
	}
	if k.Description != "" {
		parts = append(parts, k.Description)
	}
	return strings.Join(parts, "\n")
}
