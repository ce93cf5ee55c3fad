package model

import (
	"fmt"
	"sort"
)

// Severity ranks how serious a validation issue is.
type Severity int

const (
	// SeverityCritical issues make a slide invalid and are targeted by
	// the repair loop.
	SeverityCritical Severity = iota
	// SeverityWarning issues degrade quality but do not fail validation.
	SeverityWarning
	// SeveritySuggestion issues are stylistic improvements.
	SeveritySuggestion
	// SeverityInfo issues are informational findings.
	SeverityInfo
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies a validation issue by the contract it violates.
type Category int

const (
	CategoryOverflow Category = iota
	CategoryOverlap
	CategoryOutOfBounds
	CategoryMargin
	CategoryReadability
	CategoryFontConsistency
	CategoryDensity
	CategoryStyleGuide
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryOverflow:
		return "overflow"
	case CategoryOverlap:
		return "overlap"
	case CategoryOutOfBounds:
		return "out_of_bounds"
	case CategoryMargin:
		return "margin"
	case CategoryReadability:
		return "readability"
	case CategoryFontConsistency:
		return "font_consistency"
	case CategoryDensity:
		return "density"
	case CategoryStyleGuide:
		return "style_guide"
	default:
		return "unknown"
	}
}

// Priority returns the repair priority for the category; higher values
// are repaired first. Categories with priority zero have no automated
// repair strategy.
func (c Category) Priority() int {
	switch c {
	case CategoryOutOfBounds:
		return 10
	case CategoryOverflow:
		return 9
	case CategoryOverlap:
		return 8
	case CategoryReadability:
		return 7
	case CategoryMargin:
		return 6
	case CategoryFontConsistency:
		return 5
	default:
		return 0
	}
}

// Issue is a single categorized, severity-ranked validation finding.
type Issue struct {
	Category Category
	Severity Severity

	// Boxes holds the indexes of the affected boxes within the slide.
	// Overlap issues reference two boxes; most others reference one.
	// Slide-level findings reference none.
	Boxes []int

	// Measure is the quantitative size of the violation: overflow
	// height in points, overlap area in square points, excess distance
	// past an edge, and so on.
	Measure float64

	// Message describes the finding.
	Message string
}

// String formats the issue for diagnostics.
func (i Issue) String() string {
	return fmt.Sprintf("[%s/%s] %s", i.Severity, i.Category, i.Message)
}

// Result is an immutable snapshot of one validation pass.
type Result struct {
	// Issues sorted by severity, then by category repair priority.
	Issues []Issue

	// Valid is true when no critical issues were found.
	Valid bool

	// Counts holds the number of issues per category.
	Counts map[Category]int
}

// NewResult builds a Result from raw issues, sorting them and computing
// the summary fields.
func NewResult(issues []Issue) *Result {
	sort.SliceStable(issues, func(a, b int) bool {
		if issues[a].Severity != issues[b].Severity {
			return issues[a].Severity < issues[b].Severity
		}
		return issues[a].Category.Priority() > issues[b].Category.Priority()
	})

	counts := make(map[Category]int)
	valid := true
	for _, is := range issues {
		counts[is.Category]++
		if is.Severity == SeverityCritical {
			valid = false
		}
	}
	return &Result{Issues: issues, Valid: valid, Counts: counts}
}

// Critical returns the critical issues only.
func (r *Result) Critical() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityCritical {
			out = append(out, is)
		}
	}
	return out
}

// ByCategory returns the issues in the given category.
func (r *Result) ByCategory(c Category) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Category == c {
			out = append(out, is)
		}
	}
	return out
}
