// Package slidefit fits slide content into layout templates and
// repairs slides that violate geometric and style rules.
//
// Basic usage:
//
//	engine, err := slidefit.New()
//	if err != nil {
//	    // handle error
//	}
//	slide, result, err := engine.Compose(&model.ContentBlock{
//	    Title:   "Q3 results",
//	    Bullets: []string{"Revenue up 12%", "Churn down to 1.8%"},
//	})
//	if err != nil {
//	    // handle error
//	}
//	if !result.Valid {
//	    summary, result, _ := engine.Repair(ctx, slide, result)
//	    log.Println("repairs:", summary.Fixed, "valid:", result.Valid)
//	}
//
// The lower-level textfit, layout, validate, and fix packages are also
// available for advanced use.
package slidefit

import (
	"context"
	"fmt"

	"github.com/joonbary/slidefit/fix"
	"github.com/joonbary/slidefit/layout"
	"github.com/joonbary/slidefit/model"
	"github.com/joonbary/slidefit/textfit"
	"github.com/joonbary/slidefit/validate"
)

// Engine composes slides end to end: classify content, select a
// template, bind and fit text, validate, and repair. An Engine is
// immutable after construction and safe for concurrent use; slides for
// independent content blocks may be composed in parallel.
type Engine struct {
	metrics   *textfit.Engine
	analyzer  *layout.Analyzer
	library   *layout.Library
	applier   *layout.Applier
	validator *validate.Validator
	fixer     *fix.Fixer
}

// New creates an Engine. By default text is measured with the built-in
// Go font standing in for the common presentation families; use
// WithProvider to register real fonts or WithApproximateMetrics for
// table-based measurement.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	provider := cfg.provider
	if !cfg.providerSet {
		p, err := textfit.NewOpenTypeProvider()
		if err != nil {
			return nil, fmt.Errorf("slidefit: loading default font: %w", err)
		}
		provider = p
	}

	metrics, err := textfit.NewEngine(provider, cfg.metricsOptions...)
	if err != nil {
		return nil, err
	}

	var library *layout.Library
	if cfg.catalog != nil {
		library, err = layout.LoadLibrary(cfg.catalog)
	} else {
		library, err = layout.NewLibrary()
	}
	if err != nil {
		return nil, err
	}

	validator := validate.NewValidator(cfg.style)
	return &Engine{
		metrics:   metrics,
		analyzer:  layout.NewAnalyzer(),
		library:   library,
		applier:   layout.NewApplier(metrics, layout.WithDefaultFamily(cfg.defaultFamily)),
		validator: validator,
		fixer: fix.NewFixer(metrics, validator,
			fix.WithAggressive(cfg.aggressive),
			fix.WithMaxIterations(cfg.maxIterations)),
	}, nil
}

// Classify returns the content classification the engine would use for
// template selection.
func (e *Engine) Classify(block *model.ContentBlock) layout.Classification {
	return e.analyzer.Classify(block)
}

// SelectTemplate returns the template the block would be bound to,
// honoring its layout hint.
func (e *Engine) SelectTemplate(block *model.ContentBlock) *model.LayoutTemplate {
	return e.library.Select(e.analyzer.Classify(block), block, block.LayoutHint)
}

// Template returns a template from the catalog by ID.
func (e *Engine) Template(id string) (*model.LayoutTemplate, error) {
	return e.library.Get(id)
}

// Compose classifies the block, selects a template, binds the content
// into fitted boxes, and validates the result. The slide is always
// produced; the result tells whether it is presentable as is.
func (e *Engine) Compose(block *model.ContentBlock) (*model.Slide, *model.Result, error) {
	cls := e.analyzer.Classify(block)
	tmpl := e.library.Select(cls, block, block.LayoutHint)

	slide, err := e.applier.Bind(block, tmpl, cls)
	if err != nil {
		return nil, nil, err
	}
	return slide, e.validator.Validate(slide), nil
}

// Validate re-checks a slide, for example after external mutation.
func (e *Engine) Validate(slide *model.Slide) *model.Result {
	return e.validator.Validate(slide)
}

// Repair fixes the slide in place, starting from a prior validation
// result (pass nil to validate first). The summary reports every
// attempt and the returned result describes the slide as repaired;
// issues with no working strategy are recorded, not errors.
func (e *Engine) Repair(ctx context.Context, slide *model.Slide, result *model.Result) (*model.FixSummary, *model.Result, error) {
	return e.fixer.Fix(ctx, slide, result)
}

// Process runs the full pipeline: compose, and repair when validation
// finds critical issues. The returned result reflects the slide's
// final state.
func (e *Engine) Process(ctx context.Context, block *model.ContentBlock) (*model.Slide, *model.Result, *model.FixSummary, error) {
	slide, result, err := e.Compose(block)
	if err != nil {
		return nil, nil, nil, err
	}
	summary := &model.FixSummary{}
	if !result.Valid {
		summary, result, err = e.fixer.Fix(ctx, slide, result)
		if err != nil {
			return slide, result, summary, err
		}
	}
	return slide, result, summary, nil
}

// MetricsStats reports the measurement cache counters.
func (e *Engine) MetricsStats() textfit.CacheStats {
	return e.metrics.Stats()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
