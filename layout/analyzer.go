package layout

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/joonbary/slidefit/model"
)

// Category is the closed set of content categories a block can be
// classified into. Classification drives template selection.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTimeline
	CategoryProcess
	CategoryDashboard
	CategoryQuote
	CategorySplit
	CategoryPyramid
	CategoryAgenda
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "generic"
	case CategoryTimeline:
		return "timeline"
	case CategoryProcess:
		return "process"
	case CategoryDashboard:
		return "dashboard"
	case CategoryQuote:
		return "quote"
	case CategorySplit:
		return "split"
	case CategoryPyramid:
		return "pyramid"
	case CategoryAgenda:
		return "agenda"
	default:
		return "unknown"
	}
}

// Density buckets total text volume.
type Density int

const (
	DensityLow Density = iota
	DensityMedium
	DensityHigh
)

// String returns a human-readable representation of the density.
func (d Density) String() string {
	switch d {
	case DensityLow:
		return "low"
	case DensityMedium:
		return "medium"
	case DensityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Classification is the analyzer's verdict on a content block.
type Classification struct {
	Category   Category
	Confidence float64

	// Complexity is the deterministic content complexity score in
	// [0,1]: category base plus bullet-count and density adjustments.
	Complexity float64

	BulletCount int
	Density     Density
}

// categoryRule pairs a category with its trigger keywords. Rules are
// evaluated in declaration order; the first match wins, which encodes
// the priority resolution for overlapping keywords (agenda outranks
// timeline for schedule-like wording).
type categoryRule struct {
	category Category
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryAgenda, []string{
		"agenda", "toc", "table of contents", "outline", "schedule", "program",
		"의제", "목차", "개요", "일정", "프로그램",
	}},
	{CategoryTimeline, []string{
		"timeline", "roadmap", "milestone", "chronology", "history", "progression",
		"타임라인", "로드맵", "마일스톤", "역사", "진행",
	}},
	{CategoryProcess, []string{
		"process", "workflow", "step", "procedure", "method", "flow", "guide",
		"프로세스", "워크플로우", "단계", "절차", "방법", "흐름", "가이드",
	}},
	{CategoryPyramid, []string{
		"pyramid", "hierarchy", "organization", "structure", "level", "rank", "priority",
		"피라미드", "계층", "조직", "구조", "레벨", "순위", "우선순위",
	}},
	{CategoryDashboard, []string{
		"dashboard", "kpi", "metrics", "performance", "monitoring", "scorecard",
		"대시보드", "지표", "성과", "모니터링", "스코어카드",
	}},
	{CategoryQuote, []string{
		"quote", "testimonial", "review", "feedback", "opinion", "says", "said",
		"인용", "추천", "후기", "피드백", "의견", "라고",
	}},
	{CategorySplit, []string{
		"split", "divide", "50/50", "half", "side by side", "parallel", "versus", "vs",
		"분할", "나누기", "절반", "나란히", "병렬", "비교", "대비",
	}},
}

// categoryBaseComplexity is each category's base complexity score.
var categoryBaseComplexity = map[Category]float64{
	CategoryGeneric:   0.2,
	CategoryQuote:     0.3,
	CategoryAgenda:    0.5,
	CategorySplit:     0.5,
	CategoryTimeline:  0.7,
	CategoryProcess:   0.8,
	CategoryPyramid:   0.8,
	CategoryDashboard: 0.9,
}

// Analyzer classifies content blocks into template categories. It is
// pure and stateless: the same block always yields the same
// classification.
type Analyzer struct{}

// NewAnalyzer creates a content analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Classify determines the template category and complexity score for
// a block. Structured data is the strongest signal (KPI tuples mean a
// dashboard, a quote field means a quote slide); otherwise keyword
// rules are applied in priority order over the combined text.
func (a *Analyzer) Classify(block *model.ContentBlock) Classification {
	cls := Classification{
		Category:    CategoryGeneric,
		Confidence:  0.5,
		BulletCount: len(block.Bullets),
		Density:     textDensity(block),
	}

	switch {
	case len(block.KPIs) > 0:
		cls.Category = CategoryDashboard
		cls.Confidence = 0.9
	case block.Quote != "":
		cls.Category = CategoryQuote
		cls.Confidence = 0.9
	default:
		text := strings.ToLower(block.CombinedText())
		for _, rule := range categoryRules {
			matches := lo.CountBy(rule.keywords, func(kw string) bool {
				return strings.Contains(text, kw)
			})
			if matches > 0 {
				cls.Category = rule.category
				cls.Confidence = lo.Clamp(0.6+0.1*float64(matches), 0, 0.9)
				break
			}
		}
	}

	cls.Complexity = a.complexity(cls)
	return cls
}

// complexity combines the category base score with bullet-count and
// density adjustments, clamped to [0,1].
func (a *Analyzer) complexity(cls Classification) float64 {
	score := categoryBaseComplexity[cls.Category]

	switch {
	case cls.BulletCount > 8:
		score += 0.2
	case cls.BulletCount > 5:
		score += 0.1
	}

	switch cls.Density {
	case DensityHigh:
		score += 0.1
	case DensityLow:
		score -= 0.1
	}

	return lo.Clamp(score, 0, 1)
}

// textDensity buckets the block by estimated word count. Korean text
// carries few spaces, so syllable count divided by three stands in for
// its word count.
func textDensity(block *model.ContentBlock) Density {
	text := block.CombinedText()

	words := len(strings.Fields(text))
	var hangul int
	for _, r := range text {
		if unicode.In(r, unicode.Hangul) {
			hangul++
		}
	}
	if est := hangul / 3; est > words {
		words = est
	}

	switch {
	case words < 50:
		return DensityLow
	case words < 150:
		return DensityMedium
	default:
		return DensityHigh
	}
}
