package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/joonbary/slidefit/model"
)

// Validator checks slides against geometric and style rules. It never
// mutates the slide and never re-measures text: a box's wrapped lines
// and font size are taken as the ground truth established at binding.
// Validation is deterministic, so the same slide always yields the
// same result.
type Validator struct {
	style StyleConfig
}

// NewValidator creates a validator with the given style rules.
func NewValidator(style StyleConfig) *Validator {
	return &Validator{style: style}
}

// Style returns the active style rules.
func (v *Validator) Style() StyleConfig {
	return v.style
}

// Validate runs every check against the slide and returns the sorted,
// categorized findings.
func (v *Validator) Validate(slide *model.Slide) *model.Result {
	var issues []model.Issue

	issues = append(issues, v.checkOverflow(slide)...)
	issues = append(issues, v.checkOverlap(slide)...)

	outOfBounds := map[int]bool{}
	oob := v.checkOutOfBounds(slide)
	for _, is := range oob {
		for _, b := range is.Boxes {
			outOfBounds[b] = true
		}
	}
	issues = append(issues, oob...)
	issues = append(issues, v.checkMargin(slide, outOfBounds)...)

	issues = append(issues, v.checkReadability(slide)...)
	issues = append(issues, v.checkFontConsistency(slide)...)
	issues = append(issues, v.checkDensity(slide)...)
	issues = append(issues, v.checkStyleGuide(slide)...)

	return model.NewResult(issues)
}

// checkOverflow reports boxes whose wrapped text stacks taller than
// the box. Gross overflow is critical, mild overflow a warning.
func (v *Validator) checkOverflow(slide *model.Slide) []model.Issue {
	var issues []model.Issue
	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		if len(box.Lines) == 0 {
			continue
		}
		excess := box.TextHeight() - box.Rect.Height
		if excess <= v.style.Epsilon {
			continue
		}
		severity := model.SeverityWarning
		if excess > box.Rect.Height*v.style.OverflowCriticalRatio {
			severity = model.SeverityCritical
		}
		issues = append(issues, model.Issue{
			Category: model.CategoryOverflow,
			Severity: severity,
			Boxes:    []int{i},
			Measure:  excess,
			Message:  fmt.Sprintf("text in %q overflows its box by %.1fpt", box.Role, excess),
		})
	}
	return issues
}

// checkOverlap reports pairwise box intersections. The measure is the
// overlap area relative to the smaller box, so a caption fully covered
// by a body box scores 1 regardless of the body's size.
func (v *Validator) checkOverlap(slide *model.Slide) []model.Issue {
	var issues []model.Issue
	epsArea := v.style.Epsilon * v.style.Epsilon
	for i := 0; i < len(slide.Boxes); i++ {
		for j := i + 1; j < len(slide.Boxes); j++ {
			a, b := &slide.Boxes[i], &slide.Boxes[j]
			if a.Text == "" || b.Text == "" {
				continue
			}
			area := a.Rect.IntersectionArea(b.Rect)
			if area <= epsArea {
				continue
			}
			smaller := min(a.Rect.Area(), b.Rect.Area())
			if smaller <= 0 {
				continue
			}
			ratio := area / smaller

			severity := model.SeveritySuggestion
			switch {
			case ratio > v.style.OverlapCritical:
				severity = model.SeverityCritical
			case ratio > v.style.OverlapWarning:
				severity = model.SeverityWarning
			}
			issues = append(issues, model.Issue{
				Category: model.CategoryOverlap,
				Severity: severity,
				Boxes:    []int{i, j},
				Measure:  ratio,
				Message:  fmt.Sprintf("boxes %q and %q overlap by %.0f%% of the smaller box", a.Role, b.Role, ratio*100),
			})
		}
	}
	return issues
}

// checkOutOfBounds reports boxes extending past the canvas. Any real
// excursion is critical: content outside the canvas is simply not
// rendered.
func (v *Validator) checkOutOfBounds(slide *model.Slide) []model.Issue {
	var issues []model.Issue
	canvas := slide.Canvas()
	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		excess := edgeExcess(box.Rect, canvas)
		if excess <= v.style.Epsilon {
			continue
		}
		issues = append(issues, model.Issue{
			Category: model.CategoryOutOfBounds,
			Severity: model.SeverityCritical,
			Boxes:    []int{i},
			Measure:  excess,
			Message:  fmt.Sprintf("box %q extends %.1fpt past the canvas", box.Role, excess),
		})
	}
	return issues
}

// edgeExcess returns the largest distance r sticks out of bounds, or 0.
func edgeExcess(r, bounds model.Rect) float64 {
	excess := 0.0
	excess = max(excess, bounds.Left()-r.Left())
	excess = max(excess, r.Right()-bounds.Right())
	excess = max(excess, bounds.Top()-r.Top())
	excess = max(excess, r.Bottom()-bounds.Bottom())
	return excess
}

// checkMargin reports boxes crowding the canvas edges and neighbor
// pairs packed tighter than the minimum spacing. Boxes already
// reported out of bounds are skipped so one geometric fault does not
// produce two findings.
func (v *Validator) checkMargin(slide *model.Slide, outOfBounds map[int]bool) []model.Issue {
	var issues []model.Issue
	canvas := slide.Canvas()
	inner := canvas.Inset(v.style.Margin)

	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		if outOfBounds[i] || box.Text == "" {
			continue
		}
		intrusion := edgeExcess(box.Rect, inner)
		if intrusion <= v.style.Epsilon {
			continue
		}
		issues = append(issues, model.Issue{
			Category: model.CategoryMargin,
			Severity: model.SeverityWarning,
			Boxes:    []int{i},
			Measure:  intrusion,
			Message:  fmt.Sprintf("box %q sits %.1fpt inside the %.0fpt comfort margin", box.Role, intrusion, v.style.Margin),
		})
	}

	for i := 0; i < len(slide.Boxes); i++ {
		for j := i + 1; j < len(slide.Boxes); j++ {
			a, b := &slide.Boxes[i], &slide.Boxes[j]
			if a.Text == "" || b.Text == "" || a.Rect.Intersects(b.Rect) {
				continue
			}
			gap := rectGap(a.Rect, b.Rect)
			if gap >= v.style.MinSpacing-v.style.Epsilon {
				continue
			}
			issues = append(issues, model.Issue{
				Category: model.CategoryMargin,
				Severity: model.SeveritySuggestion,
				Boxes:    []int{i, j},
				Measure:  v.style.MinSpacing - gap,
				Message:  fmt.Sprintf("boxes %q and %q are only %.1fpt apart", a.Role, b.Role, gap),
			})
		}
	}
	return issues
}

// rectGap returns the separation between two non-intersecting
// rectangles along their closest axis.
func rectGap(a, b model.Rect) float64 {
	dx := max(a.Left()-b.Right(), b.Left()-a.Right())
	dy := max(a.Top()-b.Bottom(), b.Top()-a.Bottom())
	// Diagonal neighbors are separated on both axes; the larger
	// component is the visually effective gap.
	if dx > 0 && dy > 0 {
		return max(dx, dy)
	}
	return max(dx, dy, 0)
}

// checkReadability reports sub-minimum font sizes, overlong lines, and
// shouting caps runs.
func (v *Validator) checkReadability(slide *model.Slide) []model.Issue {
	var issues []model.Issue
	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		if box.Text == "" {
			continue
		}

		floor := v.style.MinFontSize
		if box.Role == model.RoleTitle {
			floor = v.style.MinTitleFontSize
		}
		if box.FontSize < floor {
			issues = append(issues, model.Issue{
				Category: model.CategoryReadability,
				Severity: model.SeverityWarning,
				Boxes:    []int{i},
				Measure:  float64(floor - box.FontSize),
				Message:  fmt.Sprintf("%q uses %dpt, below the %dpt readability floor", box.Role, box.FontSize, floor),
			})
		}

		for _, line := range box.Lines {
			if n := len([]rune(line)); n > v.style.MaxLineRunes {
				issues = append(issues, model.Issue{
					Category: model.CategoryReadability,
					Severity: model.SeveritySuggestion,
					Boxes:    []int{i},
					Measure:  float64(n - v.style.MaxLineRunes),
					Message:  fmt.Sprintf("a line in %q runs %d characters, past the comfortable %d", box.Role, n, v.style.MaxLineRunes),
				})
				break
			}
		}

		if run := longestCapsRun(box.Text); run > v.style.MaxCapsRun {
			issues = append(issues, model.Issue{
				Category: model.CategoryReadability,
				Severity: model.SeveritySuggestion,
				Boxes:    []int{i},
				Measure:  float64(run),
				Message:  fmt.Sprintf("%q contains a %d-letter all-caps run", box.Role, run),
			})
		}
	}
	return issues
}

// longestCapsRun returns the longest run of consecutive uppercase
// letters, counting spaces inside the run but requiring letters at both
// ends.
func longestCapsRun(text string) int {
	longest, run := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			run++
			if run > longest {
				longest = run
			}
		case r == ' ' && run > 0:
			// A space keeps the run alive but adds nothing.
		default:
			run = 0
		}
	}
	return longest
}

// checkFontConsistency reports size-hierarchy inversions (a title
// smaller than body text) and same-role boxes fitted at different
// sizes.
func (v *Validator) checkFontConsistency(slide *model.Slide) []model.Issue {
	var issues []model.Issue

	titleIdx := slide.BoxByRole(model.RoleTitle)
	if titleIdx >= 0 && slide.Boxes[titleIdx].Text != "" {
		title := &slide.Boxes[titleIdx]
		for i := range slide.Boxes {
			box := &slide.Boxes[i]
			if i == titleIdx || box.Text == "" || box.Role == model.RoleSubtitle {
				continue
			}
			if box.FontSize > title.FontSize {
				issues = append(issues, model.Issue{
					Category: model.CategoryFontConsistency,
					Severity: model.SeverityWarning,
					Boxes:    []int{titleIdx, i},
					Measure:  float64(box.FontSize - title.FontSize),
					Message:  fmt.Sprintf("%q (%dpt) outweighs the title (%dpt)", box.Role, box.FontSize, title.FontSize),
				})
			}
		}
	}

	sizes := map[string][]int{}
	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		if box.Text == "" {
			continue
		}
		if prefix, ok := roleFamily(box.Role); ok {
			sizes[prefix] = append(sizes[prefix], i)
		}
	}
	for prefix, idxs := range sizes {
		if len(idxs) < 2 {
			continue
		}
		first := slide.Boxes[idxs[0]].FontSize
		for _, i := range idxs[1:] {
			if slide.Boxes[i].FontSize != first {
				issues = append(issues, model.Issue{
					Category: model.CategoryFontConsistency,
					Severity: model.SeveritySuggestion,
					Boxes:    idxs,
					Measure:  float64(abs(slide.Boxes[i].FontSize - first)),
					Message:  fmt.Sprintf("%s boxes use mixed font sizes", prefix),
				})
				break
			}
		}
	}
	return issues
}

// roleFamily groups indexed roles (item_1, kpi_2, column_3) under their
// prefix so sibling boxes can be compared.
func roleFamily(role string) (string, bool) {
	for _, prefix := range []string{model.RoleItem, model.RoleKPI, "column"} {
		if strings.HasPrefix(role, prefix+"_") {
			return prefix, true
		}
	}
	return "", false
}

// checkDensity reports slides carrying more content than they can
// comfortably present.
func (v *Validator) checkDensity(slide *model.Slide) []model.Issue {
	var issues []model.Issue

	filled := 0
	total := 0
	for i := range slide.Boxes {
		box := &slide.Boxes[i]
		if box.Text == "" {
			continue
		}
		filled++
		total += len([]rune(box.Text))

		if box.Role == model.RoleBullets && len(box.Lines) > v.style.MaxBullets {
			issues = append(issues, model.Issue{
				Category: model.CategoryDensity,
				Severity: model.SeverityWarning,
				Boxes:    []int{i},
				Measure:  float64(len(box.Lines) - v.style.MaxBullets),
				Message:  fmt.Sprintf("%d bullets where %d read comfortably", len(box.Lines), v.style.MaxBullets),
			})
		}
	}

	if total > v.style.MaxChars {
		issues = append(issues, model.Issue{
			Category: model.CategoryDensity,
			Severity: model.SeveritySuggestion,
			Measure:  float64(total - v.style.MaxChars),
			Message:  fmt.Sprintf("slide carries %d characters, past the recommended %d", total, v.style.MaxChars),
		})
	}
	if filled > v.style.MaxBoxes {
		issues = append(issues, model.Issue{
			Category: model.CategoryDensity,
			Severity: model.SeverityWarning,
			Measure:  float64(filled - v.style.MaxBoxes),
			Message:  fmt.Sprintf("slide has %d filled boxes, past the recommended %d", filled, v.style.MaxBoxes),
		})
	}
	return issues
}

// checkStyleGuide reports unapproved font families, unresolved
// placeholder boxes, and truncated content.
func (v *Validator) checkStyleGuide(slide *model.Slide) []model.Issue {
	var issues []model.Issue
	for i := range slide.Boxes {
		box := &slide.Boxes[i]

		if box.Placeholder {
			issues = append(issues, model.Issue{
				Category: model.CategoryStyleGuide,
				Severity: model.SeverityWarning,
				Boxes:    []int{i},
				Message:  fmt.Sprintf("required %q content is missing", box.Role),
			})
			continue
		}
		if box.Text == "" {
			continue
		}

		if len(v.style.ApprovedFonts) > 0 && !lo.Contains(v.style.ApprovedFonts, box.FontFamily) {
			issues = append(issues, model.Issue{
				Category: model.CategoryStyleGuide,
				Severity: model.SeveritySuggestion,
				Boxes:    []int{i},
				Message:  fmt.Sprintf("font %q is not in the approved set", box.FontFamily),
			})
		}
		if box.Truncated {
			issues = append(issues, model.Issue{
				Category: model.CategoryStyleGuide,
				Severity: model.SeverityInfo,
				Boxes:    []int{i},
				Message:  fmt.Sprintf("%q content was truncated to fit", box.Role),
			})
		}
	}
	return issues
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
