// Package textfit provides exact text measurement, font-size fitting,
// and language-aware wrapping and truncation for slide layout.
//
// The [Engine] is the core type. It delegates raw measurement to a
// [Provider] (the [OpenTypeProvider] measures real glyph metrics via
// golang.org/x/image/font) and caches results in a bounded LRU keyed
// by (text, family, size). The cache is safe for concurrent readers,
// so a single engine can serve many slides processed in parallel.
//
// # Fitting
//
// [Engine.FitToBox] binary-searches integer font sizes for the largest
// size whose wrapped text stacks within a box:
//
//	res, err := engine.FitToBox(text, "Arial", 400, 120, 10, 18, 14)
//	if !res.Fits {
//	    // best effort at the minimum size; res.Overflow is the
//	    // residual height in points
//	}
//
// The search is sound because measured dimensions are monotone in the
// font size; every Provider must preserve that invariant.
//
// # Language awareness
//
// [Engine.Wrap] breaks space-delimited scripts at word boundaries,
// Chinese at any rune, and Korean at word boundaries with grammatical
// particles treated as non-breakable suffixes when a long word must be
// hard-broken. [Truncate] prefers sentence boundaries, then word
// boundaries, then a hard cut, always appending an ellipsis marker.
//
// # Degraded accuracy
//
// When a font family cannot be resolved, measurement falls back to a
// per-script fixed-width table ([FallbackTable]) whose estimates stay
// linear in the font size, preserving the ordering the binary search
// needs. Results measured this way are flagged approximate rather than
// failing the slide.
package textfit
