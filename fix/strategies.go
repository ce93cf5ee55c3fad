package fix

import (
	"strings"
	"unicode"

	"github.com/joonbary/slidefit/model"
	"github.com/joonbary/slidefit/textfit"
)

// Strategy method names recorded in fix results.
const (
	methodNone          = model.FixMethodNone
	methodClamp         = "clamp"
	methodRefit         = "refit"
	methodGrow          = "grow"
	methodTruncate      = "truncate"
	methodMove          = "move"
	methodShrink        = "shrink"
	methodNudge         = "nudge"
	methodRaiseFont     = "raise_font"
	methodRewrap        = "rewrap"
	methodNormalizeCaps = "normalize_caps"
	methodHarmonize     = "harmonize"
)

// Boxes are never shrunk below this footprint; text in anything
// smaller is unreadable anyway.
const (
	minBoxWidth  = 72.0
	minBoxHeight = 36.0
)

// fit rewraps the box text into its current rect within the given size
// range.
func (f *Fixer) fit(box *model.FittedBox, sizeMin, sizeMax int) (textfit.FitResult, bool) {
	if sizeMin < 1 {
		sizeMin = 1
	}
	if sizeMax < sizeMin {
		sizeMax = sizeMin
	}
	spacing := box.LineSpacing
	if spacing <= 0 {
		spacing = 1.2
	}
	budget := box.Rect.Height * f.engine.LineSpacing() / spacing

	result, err := f.engine.FitToBox(box.Text, box.FontFamily, box.Rect.Width, budget, sizeMin, sizeMax, sizeMax)
	return result, err == nil
}

// tryRefit rewraps the box within the size range and commits the
// result only when the text fits.
func (f *Fixer) tryRefit(box *model.FittedBox, sizeMin, sizeMax int) bool {
	if box.Text == "" {
		return true
	}
	result, ok := f.fit(box, sizeMin, sizeMax)
	if !ok || !result.Fits {
		return false
	}
	box.FontSize = result.Size
	box.Lines = result.Lines
	return true
}

// forceRefit rewraps the box and commits the best effort even when the
// text still overflows, reporting whether it fits.
func (f *Fixer) forceRefit(box *model.FittedBox, sizeMin, sizeMax int) bool {
	if box.Text == "" {
		return true
	}
	result, ok := f.fit(box, sizeMin, sizeMax)
	if !ok {
		return false
	}
	box.FontSize = result.Size
	box.Lines = result.Lines
	return result.Fits
}

// cutToCapacity drops wrapped lines past what the box can display and
// flags the box truncated.
func (f *Fixer) cutToCapacity(box *model.FittedBox) {
	spacing := box.LineSpacing
	if spacing <= 0 {
		spacing = 1.2
	}
	maxLines := int(box.Rect.Height / (float64(box.FontSize) * spacing))
	if maxLines < 1 {
		maxLines = 1
	}
	if len(box.Lines) <= maxLines {
		return
	}
	box.Lines = textfit.TruncateLines(box.Lines, maxLines)
	box.Truncated = true
}

// fixOutOfBounds clamps the box back onto the canvas, shrinking it
// when it is larger than the canvas itself, and refits the text to the
// adjusted geometry.
func (f *Fixer) fixOutOfBounds(slide *model.Slide, issue model.Issue) string {
	box := slide.Box(issue.Boxes[0])
	if box == nil {
		return methodNone
	}
	canvas := slide.Canvas()

	r := box.Rect
	r.Width = min(r.Width, canvas.Width)
	r.Height = min(r.Height, canvas.Height)
	r.Width = max(r.Width, min(minBoxWidth, canvas.Width))
	r.Height = max(r.Height, min(minBoxHeight, canvas.Height))
	r.X = clampf(r.X, 0, canvas.Width-r.Width)
	r.Y = clampf(r.Y, 0, canvas.Height-r.Height)

	if r == box.Rect {
		return methodNone
	}
	resized := r.Width != box.Rect.Width || r.Height != box.Rect.Height
	box.Rect = r
	if resized {
		if !f.forceRefit(box, box.FontMin, box.FontSize) && f.aggressive {
			f.cutToCapacity(box)
		}
	}
	return methodClamp
}

// fixOverflow tries, in order: shrinking the font within the slot's
// range, growing the box into free space below it, and (aggressively)
// cutting the text to the displayable line count.
func (f *Fixer) fixOverflow(slide *model.Slide, issue model.Issue) string {
	box := slide.Box(issue.Boxes[0])
	if box == nil {
		return methodNone
	}

	if f.tryRefit(box, box.FontMin, box.FontSize) {
		return methodRefit
	}

	if slack := f.slackBelow(slide, issue.Boxes[0]); slack > f.validator.Style().Epsilon {
		box.Rect.Height += slack
		if f.tryRefit(box, box.FontMin, box.FontSize) {
			return methodGrow
		}
		box.Rect.Height -= slack
	}

	if f.aggressive {
		f.forceRefit(box, box.FontMin, box.FontSize)
		f.cutToCapacity(box)
		return methodTruncate
	}
	return methodNone
}

// slackBelow returns the vertical room a box can grow into before
// hitting another box or the bottom comfort margin.
func (f *Fixer) slackBelow(slide *model.Slide, idx int) float64 {
	style := f.validator.Style()
	box := slide.Box(idx)
	limit := slide.CanvasHeight - style.Margin

	for i := range slide.Boxes {
		other := &slide.Boxes[i]
		if i == idx || other.Text == "" {
			continue
		}
		o := other.Rect
		horizontal := o.Left() < box.Rect.Right() && o.Right() > box.Rect.Left()
		if horizontal && o.Top() >= box.Rect.Bottom() {
			limit = min(limit, o.Top()-style.MinSpacing)
		}
	}
	return limit - box.Rect.Bottom()
}

// fixOverlap separates two boxes by moving the less important one the
// shortest distance that clears the other plus the minimum spacing.
// When no in-canvas move exists, aggressive mode shrinks the mover
// away from the overlap instead.
func (f *Fixer) fixOverlap(slide *model.Slide, issue model.Issue) string {
	if len(issue.Boxes) != 2 {
		return methodNone
	}
	a, b := issue.Boxes[0], issue.Boxes[1]
	keeperIdx, moverIdx := a, b
	if roleWeight(slide.Boxes[b].Role) > roleWeight(slide.Boxes[a].Role) {
		keeperIdx, moverIdx = b, a
	}
	keeper := slide.Boxes[keeperIdx].Rect
	mover := slide.Box(moverIdx)
	spacing := f.validator.Style().MinSpacing
	canvas := slide.Canvas()

	type move struct{ dx, dy float64 }
	candidates := []move{
		{dx: keeper.Right() + spacing - mover.Rect.Left()}, // right
		{dy: keeper.Bottom() + spacing - mover.Rect.Top()}, // down
		{dx: keeper.Left() - spacing - mover.Rect.Right()}, // left
		{dy: keeper.Top() - spacing - mover.Rect.Bottom()}, // up
	}
	best := move{}
	bestDist := -1.0
	for _, c := range candidates {
		moved := mover.Rect.Translate(c.dx, c.dy)
		if !canvas.ContainsRect(moved) {
			continue
		}
		dist := abs(c.dx) + abs(c.dy)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if bestDist >= 0 {
		mover.Rect = mover.Rect.Translate(best.dx, best.dy)
		return methodMove
	}

	if f.aggressive {
		// No room to move: surrender the overlapping strip on the
		// cheaper axis and refit into what remains.
		inter := mover.Rect.Intersection(keeper)
		r := mover.Rect
		if inter.Width <= inter.Height {
			if mover.Rect.Center().X < keeper.Center().X {
				r.Width = keeper.Left() - spacing - r.X
			} else {
				shift := keeper.Right() + spacing
				r.Width = r.Right() - shift
				r.X = shift
			}
		} else {
			if mover.Rect.Center().Y < keeper.Center().Y {
				r.Height = keeper.Top() - spacing - r.Y
			} else {
				shift := keeper.Bottom() + spacing
				r.Height = r.Bottom() - shift
				r.Y = shift
			}
		}
		if r.Width >= minBoxWidth && r.Height >= minBoxHeight {
			mover.Rect = r
			if !f.forceRefit(mover, mover.FontMin, mover.FontSize) {
				f.cutToCapacity(mover)
			}
			return methodShrink
		}
	}
	return methodNone
}

// roleWeight ranks which box stays put when two collide.
func roleWeight(role string) int {
	switch role {
	case model.RoleTitle:
		return 3
	case model.RoleSubtitle, model.RoleHeadline:
		return 2
	default:
		return 1
	}
}

// fixMargin nudges a box inside the comfort margin, or pushes apart a
// pair packed tighter than the minimum spacing.
func (f *Fixer) fixMargin(slide *model.Slide, issue model.Issue) string {
	style := f.validator.Style()
	inner := slide.Canvas().Inset(style.Margin)

	if len(issue.Boxes) == 2 {
		mover := slide.Box(issue.Boxes[1])
		moved := mover.Rect.Translate(0, issue.Measure)
		if !inner.ContainsRect(moved) {
			moved = mover.Rect.Translate(issue.Measure, 0)
		}
		if !inner.ContainsRect(moved) {
			return methodNone
		}
		mover.Rect = moved
		return methodNudge
	}

	box := slide.Box(issue.Boxes[0])
	if box == nil {
		return methodNone
	}
	if box.Rect.Width > inner.Width || box.Rect.Height > inner.Height {
		return methodNone
	}
	r := box.Rect
	r.X = clampf(r.X, inner.Left(), inner.Right()-r.Width)
	r.Y = clampf(r.Y, inner.Top(), inner.Bottom()-r.Height)
	if r == box.Rect {
		return methodNone
	}
	box.Rect = r
	return methodNudge
}

// fixReadability raises sub-floor font sizes, rewraps overlong lines,
// and (aggressively) rewrites shouting caps runs.
func (f *Fixer) fixReadability(slide *model.Slide, issue model.Issue) string {
	style := f.validator.Style()
	box := slide.Box(issue.Boxes[0])
	if box == nil {
		return methodNone
	}

	floor := style.MinFontSize
	if box.Role == model.RoleTitle {
		floor = style.MinTitleFontSize
	}
	if box.FontSize < floor {
		if box.FontMax > 0 && floor > box.FontMax {
			// The slot's range tops out below the style floor; raising
			// past FontMax would trade one violation for another.
			return methodNone
		}
		// Raise to the floor, not beyond it; anything larger is a
		// layout decision the applier already made.
		if !f.forceRefit(box, floor, floor) && f.aggressive {
			f.cutToCapacity(box)
		}
		return methodRaiseFont
	}

	if run := longestCapsRun(box.Text); run > style.MaxCapsRun {
		if !f.aggressive {
			return methodNone
		}
		box.Text = softenCaps(box.Text)
		f.forceRefit(box, box.FontSize, box.FontSize)
		return methodNormalizeCaps
	}

	// Overlong lines: rewrapping at a smaller size shortens them only
	// when the wrap is width-bound, but it is the only non-destructive
	// lever available.
	before := len(box.Lines)
	if f.tryRefit(box, box.FontMin, box.FontSize) && len(box.Lines) != before {
		return methodRewrap
	}
	return methodNone
}

// longestCapsRun mirrors the validator's caps measurement.
func longestCapsRun(text string) int {
	longest, run := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			run++
			longest = max(longest, run)
		case r == ' ' && run > 0:
		default:
			run = 0
		}
	}
	return longest
}

// softenCaps rewrites fully uppercase words to capitalized form,
// leaving short acronyms alone.
func softenCaps(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		runes := []rune(w)
		if len(runes) < 4 || strings.ToUpper(w) != w {
			continue
		}
		lowered := []rune(strings.ToLower(w))
		lowered[0] = unicode.ToUpper(lowered[0])
		words[i] = string(lowered)
	}
	return strings.Join(words, " ")
}

// fixFontConsistency harmonizes sizes: a box outweighing the title is
// brought down to it, and mismatched sibling boxes are refitted at
// their common smallest size.
func (f *Fixer) fixFontConsistency(slide *model.Slide, issue model.Issue) string {
	if len(issue.Boxes) < 2 {
		return methodNone
	}

	if issue.Severity == model.SeverityWarning {
		title := slide.Box(issue.Boxes[0])
		box := slide.Box(issue.Boxes[1])
		if title == nil || box == nil {
			return methodNone
		}
		target := max(title.FontSize, box.FontMin)
		f.forceRefit(box, box.FontMin, target)
		return methodHarmonize
	}

	target := 0
	for _, i := range issue.Boxes {
		if b := slide.Box(i); b != nil && (target == 0 || b.FontSize < target) {
			target = b.FontSize
		}
	}
	if target == 0 {
		return methodNone
	}
	for _, i := range issue.Boxes {
		if b := slide.Box(i); b != nil && b.FontSize != target {
			f.forceRefit(b, target, target)
		}
	}
	return methodHarmonize
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
