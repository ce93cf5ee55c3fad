package textfit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidSizeRange is returned by FitToBox for an impossible font
// size range. This is a programmer-usage error, never a data-quality
// condition.
var ErrInvalidSizeRange = errors.New("textfit: invalid font size range")

const defaultCacheSize = 4096

// Engine measures text, fits it into bounded boxes, and wraps and
// truncates it language-awarely. Measurements are cached in a bounded
// LRU keyed by (text, family, size); the cache is safe for concurrent
// use, so one Engine may be shared across slides processed in
// parallel.
type Engine struct {
	provider Provider
	table    FallbackTable
	cache    *lru.Cache[string, measurement]
	spacing  float64

	hits   atomic.Int64
	misses atomic.Int64
}

type measurement struct {
	size   Size
	approx bool
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	cacheSize int
	spacing   float64
	table     FallbackTable
}

// WithCacheSize bounds the measurement LRU. The default is 4096
// entries.
func WithCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// WithLineSpacing sets the line height multiplier used for wrapped
// text heights. The default is 1.2.
func WithLineSpacing(spacing float64) Option {
	return func(c *config) { c.spacing = spacing }
}

// WithFallbackTable replaces the per-script fallback width table.
func WithFallbackTable(t FallbackTable) Option {
	return func(c *config) { c.table = t }
}

// NewEngine creates a measurement engine backed by the given provider.
// A nil provider is allowed: every measurement then uses the fallback
// width table and is flagged approximate.
func NewEngine(provider Provider, opts ...Option) (*Engine, error) {
	cfg := config{
		cacheSize: defaultCacheSize,
		spacing:   1.2,
		table:     DefaultFallbackTable(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize <= 0 {
		return nil, fmt.Errorf("textfit: cache size must be positive, got %d", cfg.cacheSize)
	}
	if cfg.spacing <= 0 {
		return nil, fmt.Errorf("textfit: line spacing must be positive, got %v", cfg.spacing)
	}

	cache, err := lru.New[string, measurement](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("textfit: creating cache: %w", err)
	}
	return &Engine{
		provider: provider,
		table:    cfg.table,
		cache:    cache,
		spacing:  cfg.spacing,
	}, nil
}

// LineHeight returns the line advance in points at the given size,
// including line spacing.
func (e *Engine) LineHeight(size int) float64 {
	return float64(size) * e.spacing
}

// LineSpacing returns the line height multiplier used for stacked
// measurements.
func (e *Engine) LineSpacing() float64 {
	return e.spacing
}

// Measure returns the dimensions of the text at the given family and
// size. Multi-line text reports the widest line and the stacked line
// height. The second return value is true when the fallback width
// table was used because the family could not be resolved.
func (e *Engine) Measure(text, family string, size int) (Size, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		m := e.measureLine(text, family, size)
		return m.size, m.approx
	}
	return e.measureLines(lines, family, size)
}

// measureLines stacks per-line measurements: width is the maximum line
// width, height is the sum of line advances scaled by line spacing. A
// line never advances less than one em, so the total is monotone in
// the font size.
func (e *Engine) measureLines(lines []string, family string, size int) (Size, bool) {
	var out Size
	approx := false
	for _, line := range lines {
		m := e.measureLine(line, family, size)
		if m.approx {
			approx = true
		}
		if m.size.Width > out.Width {
			out.Width = m.size.Width
		}
		lineH := m.size.Height
		if lineH < float64(size) {
			lineH = float64(size)
		}
		out.Height += lineH * e.spacing
	}
	return out, approx
}

func (e *Engine) measureLine(line, family string, size int) measurement {
	key := family + "\x1f" + strconv.Itoa(size) + "\x1f" + line
	if m, ok := e.cache.Get(key); ok {
		e.hits.Add(1)
		return m
	}
	e.misses.Add(1)

	var m measurement
	if e.provider != nil {
		if s, err := e.provider.Measure(line, family, size); err == nil {
			m = measurement{size: s}
			e.cache.Add(key, m)
			return m
		}
	}
	m = measurement{size: e.table.Measure(line, size), approx: true}
	e.cache.Add(key, m)
	return m
}

// Approximate reports whether measurements for the family fall back to
// the width table.
func (e *Engine) Approximate(family string) bool {
	if e.provider == nil {
		return true
	}
	_, err := e.provider.Measure("M", family, 12)
	return err != nil
}

// FitResult is the outcome of fitting text into a box.
type FitResult struct {
	// Size is the chosen font size in points. When Fits is false this
	// is the minimum of the requested range.
	Size int

	// Lines is the text wrapped to the box width at Size.
	Lines []string

	// Fits is false when even the minimum size overflows the box.
	Fits bool

	// Overflow is the residual height past the box in points when
	// Fits is false.
	Overflow float64

	// Approximate is set when the fallback width table was used.
	Approximate bool
}

// Text returns the wrapped lines rejoined with newlines.
func (r FitResult) Text() string {
	return strings.Join(r.Lines, "\n")
}

// FitToBox finds the largest integer font size in [sizeMin, sizeMax]
// at which the text, wrapped to boxW, stacks no taller than boxH. The
// search is a binary search over sizes, probing guess first to narrow
// the range; correctness relies on measured dimensions being monotone
// in the font size. If no size fits, the result carries the
// best-effort wrap at sizeMin with Fits false and the residual
// overflow height.
func (e *Engine) FitToBox(text, family string, boxW, boxH float64, sizeMin, sizeMax, guess int) (FitResult, error) {
	if sizeMin < 1 || sizeMax < sizeMin {
		return FitResult{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidSizeRange, sizeMin, sizeMax)
	}
	approx := e.Approximate(family)

	if strings.TrimSpace(text) == "" {
		size := guess
		if size < sizeMin {
			size = sizeMin
		}
		if size > sizeMax {
			size = sizeMax
		}
		return FitResult{Size: size, Fits: true, Approximate: approx}, nil
	}

	attempt := func(size int) ([]string, float64) {
		lines := e.Wrap(text, family, size, boxW)
		s, _ := e.measureLines(lines, family, size)
		return lines, s.Height
	}

	best := -1
	var bestLines []string
	lo, hi := sizeMin, sizeMax

	if guess >= lo && guess <= hi {
		lines, h := attempt(guess)
		if h <= boxH {
			best, bestLines = guess, lines
			lo = guess + 1
		} else {
			hi = guess - 1
		}
	}
	for lo <= hi {
		mid := (lo + hi) / 2
		lines, h := attempt(mid)
		if h <= boxH {
			best, bestLines = mid, lines
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best >= 0 {
		return FitResult{Size: best, Lines: bestLines, Fits: true, Approximate: approx}, nil
	}

	lines, h := attempt(sizeMin)
	return FitResult{
		Size:        sizeMin,
		Lines:       lines,
		Fits:        false,
		Overflow:    h - boxH,
		Approximate: approx,
	}, nil
}

// CacheStats reports measurement cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Len    int
}

// Stats returns a snapshot of the cache counters.
func (e *Engine) Stats() CacheStats {
	return CacheStats{
		Hits:   e.hits.Load(),
		Misses: e.misses.Load(),
		Len:    e.cache.Len(),
	}
}
