package fix

import (
	"context"
	"slices"
	"time"

	"github.com/joonbary/slidefit/model"
	"github.com/joonbary/slidefit/textfit"
	"github.com/joonbary/slidefit/validate"
)

const defaultMaxIterations = 3

// Fixer repairs validation issues in place, one strategy per issue
// category. Repairs run in priority order (geometry before style), and
// the loop re-validates between passes so a repair that introduces a
// new fault gets caught in the next one. Unfixable issues are recorded
// and skipped, never fatal.
type Fixer struct {
	engine        *textfit.Engine
	validator     *validate.Validator
	maxIterations int
	aggressive    bool
}

// Option configures a Fixer.
type Option func(*Fixer)

// WithMaxIterations bounds the repair loop. The default is 3 passes.
func WithMaxIterations(n int) Option {
	return func(f *Fixer) {
		if n > 0 {
			f.maxIterations = n
		}
	}
}

// WithAggressive enables destructive repairs: truncating text that
// cannot be made to fit and rewriting shouting caps. Conservative mode
// only moves, shrinks, and refits.
func WithAggressive(enabled bool) Option {
	return func(f *Fixer) { f.aggressive = enabled }
}

// NewFixer creates a fixer sharing the engine used at binding, so
// repaired text is measured the same way it was fitted.
func NewFixer(engine *textfit.Engine, validator *validate.Validator, opts ...Option) *Fixer {
	f := &Fixer{
		engine:        engine,
		validator:     validator,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fix repairs the slide in place, starting from a prior validation
// result (pass nil to validate first). The first pass attempts every
// fixable issue; subsequent passes target only the criticals that
// survived re-validation. The loop ends when the slide validates clean
// of criticals, when a pass changes nothing, or at the iteration cap.
// Cancellation is checked between passes, never inside one, so the
// slide handed back always matches the returned result: either no pass
// ran, or the last pass completed, re-validated, and tallied.
func (f *Fixer) Fix(ctx context.Context, slide *model.Slide, result *model.Result) (*model.FixSummary, *model.Result, error) {
	summary := &model.FixSummary{}
	if result == nil {
		result = f.validator.Validate(slide)
	}

	for iter := 0; iter < f.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return summary, result, err
		}
		targets := fixableIssues(result, iter > 0)
		if len(targets) == 0 {
			break
		}
		summary.Iterations++

		var attempts []model.FixResult
		changed := false
		for _, issue := range targets {
			attempt := f.apply(slide, issue)
			attempts = append(attempts, attempt)
			if attempt.Method != methodNone {
				changed = true
			}
		}

		result = f.validator.Validate(slide)
		f.tally(summary, attempts, result)

		if !changed || result.Valid {
			break
		}
	}
	return summary, result, nil
}

// fixableIssues selects and orders the issues a pass will attempt:
// priority descending, severity ascending within a priority. Later
// passes narrow to criticals so the loop converges instead of
// polishing suggestions forever.
func fixableIssues(result *model.Result, criticalOnly bool) []model.Issue {
	var out []model.Issue
	for _, issue := range result.Issues {
		if issue.Category.Priority() == 0 {
			continue
		}
		if criticalOnly && issue.Severity != model.SeverityCritical {
			continue
		}
		out = append(out, issue)
	}
	slices.SortStableFunc(out, func(a, b model.Issue) int {
		if a.Category.Priority() != b.Category.Priority() {
			return b.Category.Priority() - a.Category.Priority()
		}
		return int(a.Severity) - int(b.Severity)
	})
	return out
}

// apply dispatches one issue to its category strategy and snapshots
// the primary box around the attempt.
func (f *Fixer) apply(slide *model.Slide, issue model.Issue) model.FixResult {
	attempt := model.FixResult{Issue: issue}
	start := time.Now()

	var primary *model.FittedBox
	if len(issue.Boxes) > 0 {
		primary = slide.Box(issue.Boxes[0])
	}
	if primary != nil {
		attempt.Before = primary.Clone()
	}

	switch issue.Category {
	case model.CategoryOutOfBounds:
		attempt.Method = f.fixOutOfBounds(slide, issue)
	case model.CategoryOverflow:
		attempt.Method = f.fixOverflow(slide, issue)
	case model.CategoryOverlap:
		attempt.Method = f.fixOverlap(slide, issue)
	case model.CategoryReadability:
		attempt.Method = f.fixReadability(slide, issue)
	case model.CategoryMargin:
		attempt.Method = f.fixMargin(slide, issue)
	case model.CategoryFontConsistency:
		attempt.Method = f.fixFontConsistency(slide, issue)
	default:
		attempt.Method = methodNone
	}

	if primary != nil {
		attempt.After = primary.Clone()
	}
	attempt.Duration = time.Since(start)
	return attempt
}

// tally marks each attempt fixed or failed against the re-validation
// result and folds it into the summary.
func (f *Fixer) tally(summary *model.FixSummary, attempts []model.FixResult, result *model.Result) {
	for _, attempt := range attempts {
		attempt.Fixed = attempt.Method != methodNone && !persists(result, attempt.Issue)
		if attempt.Fixed {
			summary.Fixed++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, attempt)
	}
}

// persists reports whether an issue of the same category against the
// same boxes survived re-validation.
func persists(result *model.Result, issue model.Issue) bool {
	for _, current := range result.Issues {
		if current.Category == issue.Category && slices.Equal(current.Boxes, issue.Boxes) {
			return true
		}
	}
	return false
}
