package layout

import (
	"errors"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/joonbary/slidefit/model"
	"github.com/joonbary/slidefit/textfit"
)

// ErrNilTemplate is returned by Bind when no template is supplied.
var ErrNilTemplate = errors.New("layout: nil template")

const defaultFontFamily = "Arial"

// Applier binds content blocks to templates, producing slides with
// every slot's text fitted into its geometry. It is stateless apart
// from the shared measurement engine and safe for concurrent use.
type Applier struct {
	engine *textfit.Engine
	family string
}

// ApplierOption configures an Applier.
type ApplierOption func(*Applier)

// WithDefaultFamily sets the font family used for slots that do not
// name their own. The default is Arial.
func WithDefaultFamily(family string) ApplierOption {
	return func(a *Applier) { a.family = family }
}

// NewApplier creates an applier backed by the given measurement engine.
func NewApplier(engine *textfit.Engine, opts ...ApplierOption) *Applier {
	a := &Applier{engine: engine, family: defaultFontFamily}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Bind instantiates the template with the block's content: each slot
// yields exactly one fitted box, in slot order. Text longer than a
// slot's length budget is truncated before fitting; text that still
// cannot fit at the slot's minimum font size is cut to the lines the
// box can hold. A required slot whose source field is absent produces
// an empty placeholder box rather than an error, so downstream
// validation can report it.
func (a *Applier) Bind(block *model.ContentBlock, tmpl *model.LayoutTemplate, cls Classification) (*model.Slide, error) {
	if tmpl == nil {
		return nil, ErrNilTemplate
	}
	if block == nil {
		block = &model.ContentBlock{}
	}

	slide := &model.Slide{
		CanvasWidth:  model.DefaultCanvasWidth,
		CanvasHeight: model.DefaultCanvasHeight,
		TemplateID:   tmpl.ID,
		Category:     cls.Category.String(),
		Complexity:   cls.Complexity,
		Boxes:        make([]model.FittedBox, 0, len(tmpl.Slots)),
	}

	for i := range tmpl.Slots {
		box, err := a.bindSlot(block, tmpl, &tmpl.Slots[i])
		if err != nil {
			return nil, err
		}
		slide.Boxes = append(slide.Boxes, box)
	}
	return slide, nil
}

func (a *Applier) bindSlot(block *model.ContentBlock, tmpl *model.LayoutTemplate, slot *model.ElementSlot) (model.FittedBox, error) {
	text := resolveSlot(block, slot)
	truncated := false
	if slot.MaxLength > 0 && utf8.RuneCountInString(text) > slot.MaxLength {
		text = textfit.Truncate(text, slot.MaxLength, true)
		truncated = true
	}

	family := a.family
	if len(slot.FontFamilies) > 0 {
		family = slot.FontFamilies[0]
	}

	// The engine stacks lines with its own spacing; the slot may use a
	// different multiplier. Scaling the height budget keeps the fitted
	// text within the box at the slot's spacing too.
	spacing := slot.EffectiveLineSpacing()
	heightBudget := slot.Rect.Height * a.engine.LineSpacing() / spacing

	fit, err := a.engine.FitToBox(text, family,
		slot.Rect.Width, heightBudget,
		slot.FontMin, slot.FontMax, a.sizeGuess(tmpl, slot))
	if err != nil {
		return model.FittedBox{}, err
	}

	lines := fit.Lines
	if !fit.Fits {
		// Even the minimum size overflows: keep the lines the box can
		// hold and let the rest go. The truncation is visible in the
		// box flags, and validation reports any residual overflow.
		maxLines := int(slot.Rect.Height / (float64(fit.Size) * spacing))
		if maxLines < 1 {
			maxLines = 1
		}
		if len(lines) > maxLines {
			lines = textfit.TruncateLines(lines, maxLines)
			truncated = true
		}
	}

	box := model.FittedBox{
		Role:        slot.Role,
		Rect:        slot.Rect,
		Text:        text,
		Lines:       lines,
		FontFamily:  family,
		FontSize:    fit.Size,
		Bold:        slot.Bold,
		Italic:      slot.Italic,
		Alignment:   slot.Alignment,
		FontMin:     slot.FontMin,
		FontMax:     slot.FontMax,
		LineSpacing: spacing,
		Truncated:   truncated,
		Placeholder: text == "" && !slot.Optional,
		Approximate: fit.Approximate,
	}
	box.Confidence = confidence(&box, fit)
	return box, nil
}

// sizeGuess picks the initial font size probe for the fit search:
// sparse layouts start near the slot maximum, dense multi-slot layouts
// start lower. A good guess only speeds the search up; the result is
// the same either way.
func (a *Applier) sizeGuess(tmpl *model.LayoutTemplate, slot *model.ElementSlot) int {
	guess := slot.FontMax - (len(tmpl.Slots)-2)*2
	return lo.Clamp(guess, slot.FontMin, slot.FontMax)
}

// confidence estimates fit quality in [0,1]. Untouched fitting text
// scores 1, truncation halves it, residual overflow drops it further,
// and fallback-table measurement discounts whatever remains.
func confidence(box *model.FittedBox, fit textfit.FitResult) float64 {
	c := 1.0
	switch {
	case !fit.Fits:
		c = 0.3
	case box.Truncated:
		c = 0.5
	}
	if box.Approximate {
		c *= 0.8
	}
	return c
}
