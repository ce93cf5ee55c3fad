package slidefit

import (
	"github.com/joonbary/slidefit/textfit"
	"github.com/joonbary/slidefit/validate"
)

// config holds construction options for an Engine.
type config struct {
	provider       textfit.Provider
	providerSet    bool
	catalog        []byte
	style          validate.StyleConfig
	defaultFamily  string
	aggressive     bool
	maxIterations  int
	metricsOptions []textfit.Option
}

// Option configures an Engine at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		style:         validate.DefaultStyleConfig(),
		defaultFamily: "Arial",
		maxIterations: 3,
	}
}

// WithProvider replaces the font metrics provider. Passing nil selects
// the built-in fallback width table; every measurement is then flagged
// approximate.
func WithProvider(p textfit.Provider) Option {
	return func(c *config) {
		c.provider = p
		c.providerSet = true
	}
}

// WithApproximateMetrics skips real font metrics entirely and measures
// with the per-script width table. Useful where determinism matters
// more than precision.
func WithApproximateMetrics() Option {
	return WithProvider(nil)
}

// WithTemplateCatalog replaces the built-in template catalog with a
// custom YAML catalog.
func WithTemplateCatalog(yaml []byte) Option {
	return func(c *config) { c.catalog = yaml }
}

// WithStyle replaces the validation style rules.
func WithStyle(style validate.StyleConfig) Option {
	return func(c *config) { c.style = style }
}

// WithDefaultFamily sets the font family used for slots that do not
// name their own. The default is Arial.
func WithDefaultFamily(family string) Option {
	return func(c *config) { c.defaultFamily = family }
}

// WithAggressiveRepair lets the repair loop truncate text and rewrite
// shouting caps when nothing gentler works.
func WithAggressiveRepair(enabled bool) Option {
	return func(c *config) { c.aggressive = enabled }
}

// WithMaxRepairIterations bounds the repair loop. The default is 3.
func WithMaxRepairIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithMetricsOptions passes options through to the text measurement
// engine (cache size, line spacing, fallback table).
func WithMetricsOptions(opts ...textfit.Option) Option {
	return func(c *config) { c.metricsOptions = append(c.metricsOptions, opts...) }
}
