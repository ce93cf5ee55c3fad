package model

import "strings"

// Well-known semantic roles for content fields and template slots.
// A slot's Role determines which ContentBlock field feeds it. Indexed
// roles use an underscore-number suffix, e.g. "item_1" or "kpi_3".
const (
	RoleTitle       = "title"
	RoleSubtitle    = "subtitle"
	RoleHeadline    = "headline"
	RoleBody        = "body"
	RoleBullets     = "bullets"
	RoleQuote       = "quote"
	RoleAttribution = "attribution"
	RoleCaption     = "caption"
	RoleItem        = "item" // indexed: item_1, item_2, ...
	RoleKPI         = "kpi"  // indexed: kpi_1, kpi_2, ...
)

// KPI is a single key-performance-indicator tuple for dashboard slides.
type KPI struct {
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

// ChartSpec describes structured chart data attached to a content block.
// The engine only uses it for classification and density accounting; the
// downstream serializer renders it.
type ChartSpec struct {
	Kind   string    `yaml:"kind"` // bar, line, pie, waterfall
	Labels []string  `yaml:"labels,omitempty"`
	Values []float64 `yaml:"values,omitempty"`
}

// ContentBlock is the semantic input unit for one slide: role-tagged text
// fields plus optional structured data. It is immutable input owned by the
// caller; the engine never modifies it. Missing optional fields are treated
// as absent, never as errors.
type ContentBlock struct {
	Title       string
	Subtitle    string
	Headline    string
	Body        string
	Bullets     []string
	Quote       string
	Attribution string

	KPIs  []KPI
	Chart *ChartSpec

	// LayoutHint optionally names a template to use, bypassing
	// classification. An unknown hint is ignored.
	LayoutHint string
}

// IsEmpty reports whether the block carries no text content at all.
func (b *ContentBlock) IsEmpty() bool {
	return b.Title == "" && b.Subtitle == "" && b.Headline == "" &&
		b.Body == "" && len(b.Bullets) == 0 && b.Quote == "" &&
		len(b.KPIs) == 0
}

// CombinedText returns all text fields joined for keyword analysis.
func (b *ContentBlock) CombinedText() string {
	parts := make([]string, 0, 6+len(b.Bullets))
	for _, s := range []string{b.Title, b.Subtitle, b.Headline, b.Body, b.Quote, b.Attribution} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, b.Bullets...)
	return strings.Join(parts, " ")
}

// TextLength returns the total number of runes across all text fields.
func (b *ContentBlock) TextLength() int {
	n := len([]rune(b.Title)) + len([]rune(b.Subtitle)) + len([]rune(b.Headline)) +
		len([]rune(b.Body)) + len([]rune(b.Quote))
	for _, bu := range b.Bullets {
		n += len([]rune(bu))
	}
	return n
}
