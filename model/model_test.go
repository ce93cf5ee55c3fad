package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// ============================================================================
// Rect Tests
// ============================================================================

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Left() != 10 {
		t.Errorf("Left() = %v, want 10", r.Left())
	}
	if r.Right() != 110 {
		t.Errorf("Right() = %v, want 110", r.Right())
	}
	if r.Top() != 20 {
		t.Errorf("Top() = %v, want 20", r.Top())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	center := r.Center()

	if center.X != 50 || center.Y != 25 {
		t.Errorf("Center() = %+v, want {50, 25}", center)
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 100, 100)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"full overlap", NewRect(0, 0, 100, 100), true},
		{"partial overlap", NewRect(50, 50, 100, 100), true},
		{"contained", NewRect(25, 25, 50, 50), true},
		{"edge touching", NewRect(100, 0, 50, 50), false},
		{"disjoint", NewRect(200, 200, 50, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectionArea(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"identical", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), 100},
		{"half overlap", NewRect(0, 0, 10, 10), NewRect(5, 0, 10, 10), 50},
		{"quarter overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), 25},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10), 0},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IntersectionArea(tt.b); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("IntersectionArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	canvas := NewRect(0, 0, 960, 540)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(36, 36, 100, 100), true},
		{"exact fit", NewRect(0, 0, 960, 540), true},
		{"past right", NewRect(900, 0, 100, 100), false},
		{"past bottom", NewRect(0, 500, 100, 100), false},
		{"negative origin", NewRect(-10, 0, 100, 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canvas.ContainsRect(tt.r); got != tt.want {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnionTranslateInset(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 20, 10, 10)

	u := a.Union(b)
	if u != (Rect{0, 0, 30, 30}) {
		t.Errorf("Union() = %+v, want {0 0 30 30}", u)
	}

	moved := a.Translate(5, -5)
	if moved != (Rect{5, -5, 10, 10}) {
		t.Errorf("Translate() = %+v, want {5 -5 10 10}", moved)
	}

	inset := NewRect(0, 0, 10, 10).Inset(2)
	if inset != (Rect{2, 2, 6, 6}) {
		t.Errorf("Inset() = %+v, want {2 2 6 6}", inset)
	}

	collapsed := NewRect(0, 0, 3, 3).Inset(2)
	if collapsed.Width != 0 || collapsed.Height != 0 {
		t.Errorf("Inset() past collapse = %+v, want zero size", collapsed)
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityCritical, "critical"},
		{SeverityWarning, "warning"},
		{SeveritySuggestion, "suggestion"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryOverflow, "overflow"},
		{CategoryOverlap, "overlap"},
		{CategoryOutOfBounds, "out_of_bounds"},
		{CategoryMargin, "margin"},
		{CategoryReadability, "readability"},
		{CategoryFontConsistency, "font_consistency"},
		{CategoryDensity, "density"},
		{CategoryStyleGuide, "style_guide"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("Category.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryPriorityOrdering(t *testing.T) {
	// Repair priority must strictly decrease along this chain.
	chain := []Category{
		CategoryOutOfBounds,
		CategoryOverflow,
		CategoryOverlap,
		CategoryReadability,
		CategoryMargin,
		CategoryFontConsistency,
	}

	for i := 1; i < len(chain); i++ {
		if chain[i-1].Priority() <= chain[i].Priority() {
			t.Errorf("Priority(%v)=%d not greater than Priority(%v)=%d",
				chain[i-1], chain[i-1].Priority(), chain[i], chain[i].Priority())
		}
	}

	if CategoryDensity.Priority() != 0 || CategoryStyleGuide.Priority() != 0 {
		t.Error("density and style_guide should have no repair priority")
	}
}

// ============================================================================
// Result Tests
// ============================================================================

func TestNewResultSortingAndCounts(t *testing.T) {
	issues := []Issue{
		{Category: CategoryMargin, Severity: SeverityWarning},
		{Category: CategoryOverlap, Severity: SeverityCritical},
		{Category: CategoryDensity, Severity: SeveritySuggestion},
		{Category: CategoryOutOfBounds, Severity: SeverityCritical},
	}

	result := NewResult(issues)

	if result.Valid {
		t.Error("result with critical issues should not be valid")
	}
	if len(result.Issues) != 4 {
		t.Fatalf("got %d issues, want 4", len(result.Issues))
	}

	// Critical first, out_of_bounds before overlap (higher priority).
	if result.Issues[0].Category != CategoryOutOfBounds {
		t.Errorf("first issue = %v, want out_of_bounds", result.Issues[0].Category)
	}
	if result.Issues[1].Category != CategoryOverlap {
		t.Errorf("second issue = %v, want overlap", result.Issues[1].Category)
	}
	if result.Issues[3].Category != CategoryDensity {
		t.Errorf("last issue = %v, want density", result.Issues[3].Category)
	}

	if result.Counts[CategoryOverlap] != 1 || result.Counts[CategoryMargin] != 1 {
		t.Errorf("unexpected counts: %+v", result.Counts)
	}

	if got := len(result.Critical()); got != 2 {
		t.Errorf("Critical() returned %d issues, want 2", got)
	}
}

func TestNewResultEmpty(t *testing.T) {
	result := NewResult(nil)
	if !result.Valid {
		t.Error("empty result should be valid")
	}
	if len(result.Issues) != 0 {
		t.Errorf("got %d issues, want 0", len(result.Issues))
	}
}

// ============================================================================
// Slide Tests
// ============================================================================

func TestSlideClone(t *testing.T) {
	slide := &Slide{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		TemplateID:   "bullet_list",
		Boxes: []FittedBox{
			{Role: RoleHeadline, Text: "Summary", Lines: []string{"Summary"}, FontSize: 24},
			{Role: RoleBullets, Text: "a\nb", Lines: []string{"a", "b"}, FontSize: 14},
		},
	}

	clone := slide.Clone()
	clone.Boxes[0].Text = "Changed"
	clone.Boxes[1].Lines[0] = "changed"

	if slide.Boxes[0].Text != "Summary" {
		t.Error("clone shares box data with original")
	}
	if slide.Boxes[1].Lines[0] != "a" {
		t.Error("clone shares line slices with original")
	}
}

func TestSlideBoxByRole(t *testing.T) {
	slide := &Slide{
		Boxes: []FittedBox{
			{Role: RoleHeadline},
			{Role: RoleBody},
		},
	}

	if got := slide.BoxByRole(RoleBody); got != 1 {
		t.Errorf("BoxByRole(body) = %d, want 1", got)
	}
	if got := slide.BoxByRole(RoleQuote); got != -1 {
		t.Errorf("BoxByRole(quote) = %d, want -1", got)
	}
}

func TestFittedBoxTextHeight(t *testing.T) {
	box := FittedBox{
		Lines:       []string{"one", "two", "three"},
		FontSize:    10,
		LineSpacing: 1.2,
	}
	if got := box.TextHeight(); math.Abs(got-36) > 0.0001 {
		t.Errorf("TextHeight() = %v, want 36", got)
	}

	// Zero spacing defaults to 1.2.
	box.LineSpacing = 0
	if got := box.TextHeight(); math.Abs(got-36) > 0.0001 {
		t.Errorf("TextHeight() with default spacing = %v, want 36", got)
	}
}

// ============================================================================
// FixSummary Tests
// ============================================================================

func TestFixSummarySuccessRate(t *testing.T) {
	empty := &FixSummary{}
	if empty.SuccessRate() != 1 {
		t.Errorf("empty SuccessRate() = %v, want 1", empty.SuccessRate())
	}
	if empty.Changed() {
		t.Error("empty summary should report no changes")
	}

	s := &FixSummary{
		Results: []FixResult{{Fixed: true}, {Fixed: true}, {Fixed: false}},
		Fixed:   2,
		Failed:  1,
	}
	if got := s.SuccessRate(); math.Abs(got-2.0/3.0) > 0.0001 {
		t.Errorf("SuccessRate() = %v, want 2/3", got)
	}
}

func TestFixSummaryChanged(t *testing.T) {
	tests := []struct {
		name    string
		results []FixResult
		want    bool
	}{
		{"no attempts", nil, false},
		{"only failed no-ops", []FixResult{{Method: FixMethodNone}, {Method: FixMethodNone}}, false},
		{"committed but unresolved", []FixResult{{Method: "truncate", Fixed: false}}, true},
		{"resolved", []FixResult{{Method: FixMethodNone}, {Method: "clamp", Fixed: true}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &FixSummary{Results: tt.results}
			if got := s.Changed(); got != tt.want {
				t.Errorf("Changed() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// ContentBlock Tests
// ============================================================================

func TestContentBlockIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		block ContentBlock
		want  bool
	}{
		{"empty", ContentBlock{}, true},
		{"title only", ContentBlock{Title: "T"}, false},
		{"bullets only", ContentBlock{Bullets: []string{"a"}}, false},
		{"kpis only", ContentBlock{KPIs: []KPI{{Label: "Revenue"}}}, false},
		{"hint only", ContentBlock{LayoutHint: "timeline"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentBlockTextLength(t *testing.T) {
	block := ContentBlock{
		Title:   "abc",
		Body:    "de",
		Bullets: []string{"f", "gh"},
	}
	if got := block.TextLength(); got != 8 {
		t.Errorf("TextLength() = %d, want 8", got)
	}

	// Rune counting, not bytes.
	korean := ContentBlock{Title: "전략 보고"}
	if got := korean.TextLength(); got != 5 {
		t.Errorf("TextLength() = %d, want 5", got)
	}
}
