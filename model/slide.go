package model

// Standard 16:9 slide canvas in points (13.33 x 7.5 inches).
const (
	DefaultCanvasWidth  = 960.0
	DefaultCanvasHeight = 540.0
)

// FittedBox is the concrete, per-slide instantiation of a template slot
// after text fitting: resolved text, font, geometry, and fit diagnostics.
// A box is owned exclusively by the Slide that contains it; it is created
// by the layout applier and mutated only by the fixer.
type FittedBox struct {
	// Role is the semantic role inherited from the slot.
	Role string

	// Rect is the current box geometry in canvas points.
	Rect Rect

	// Text is the resolved (possibly truncated) source text.
	Text string

	// Lines is the wrapped form of Text at the resolved font size.
	Lines []string

	FontFamily string
	FontSize   int
	Bold       bool
	Italic     bool
	Alignment  Alignment

	// FontMin and FontMax carry the slot's size bounds so repairs stay
	// within them.
	FontMin int
	FontMax int

	LineSpacing float64

	// Truncated is set when the text had to be shortened to fit at the
	// minimum font size.
	Truncated bool

	// Placeholder is set when the slot's source field was absent and an
	// empty placeholder was substituted.
	Placeholder bool

	// Confidence estimates fit quality in [0,1]: 1 means the text fits
	// untouched at a comfortable size, lower values indicate truncation
	// or approximate measurement.
	Confidence float64

	// Approximate is set when dimensions were measured with the
	// fallback width table instead of real font metrics.
	Approximate bool
}

// TextHeight returns the wrapped text height in points at the current
// font size and line spacing.
func (b *FittedBox) TextHeight() float64 {
	spacing := b.LineSpacing
	if spacing <= 0 {
		spacing = 1.2
	}
	return float64(len(b.Lines)) * float64(b.FontSize) * spacing
}

// Clone returns a deep copy of the box.
func (b *FittedBox) Clone() FittedBox {
	c := *b
	if b.Lines != nil {
		c.Lines = make([]string, len(b.Lines))
		copy(c.Lines, b.Lines)
	}
	return c
}

// Slide is the full per-slide geometric state passed between engine
// stages (the slide geometry model): an ordered collection of fitted
// boxes plus canvas dimensions, the chosen template, and the content
// complexity score. It is created per slide by the applier, mutated in
// place by the fixer, and handed off read-only to the serializer.
type Slide struct {
	CanvasWidth  float64
	CanvasHeight float64

	TemplateID string
	Category   string
	Complexity float64

	Boxes []FittedBox
}

// Canvas returns the canvas as a rectangle at the origin.
func (s *Slide) Canvas() Rect {
	return Rect{Width: s.CanvasWidth, Height: s.CanvasHeight}
}

// Box returns a pointer to the i-th box, or nil if out of range.
func (s *Slide) Box(i int) *FittedBox {
	if i < 0 || i >= len(s.Boxes) {
		return nil
	}
	return &s.Boxes[i]
}

// BoxByRole returns the index of the first box with the given role,
// or -1 when absent.
func (s *Slide) BoxByRole(role string) int {
	for i := range s.Boxes {
		if s.Boxes[i].Role == role {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the slide.
func (s *Slide) Clone() *Slide {
	c := *s
	c.Boxes = make([]FittedBox, len(s.Boxes))
	for i := range s.Boxes {
		c.Boxes[i] = s.Boxes[i].Clone()
	}
	return &c
}
