package textfit

import "errors"

// ErrUnknownFamily is returned by a Provider when a font family cannot
// be resolved. The engine recovers by switching to the fallback width
// table for that measurement.
var ErrUnknownFamily = errors.New("textfit: unknown font family")

// Size holds measured text dimensions in points.
type Size struct {
	Width  float64
	Height float64
}

// Provider measures single-line text dimensions for a font family and
// size. Height is the line advance (ascent plus descent) at the given
// size.
//
// Implementations must preserve the monotonicity invariant the fitting
// binary search depends on: for identical text, increasing the font
// size never decreases the measured width or height.
type Provider interface {
	Measure(text, family string, size int) (Size, error)
}
