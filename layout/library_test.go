package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/joonbary/slidefit/model"
)

func mustLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func TestBuiltinCatalogLoads(t *testing.T) {
	lib := mustLibrary(t)

	if got := len(lib.IDs()); got != 12 {
		t.Errorf("catalog has %d templates, want 12", got)
	}
	if lib.Generic() == nil || lib.Generic().ID != "single_column" {
		t.Errorf("generic template = %v, want single_column", lib.Generic())
	}

	for _, id := range lib.IDs() {
		tmpl, err := lib.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if len(tmpl.Slots) == 0 {
			t.Errorf("template %q has no slots", id)
		}
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	lib := mustLibrary(t)
	if _, err := lib.Get("nope"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("err = %v, want ErrUnknownTemplate", err)
	}
}

func TestLoadLibraryValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"no generic",
			`templates:
  - id: a
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]
    fallbacks: [a]`,
			"no generic",
		},
		{
			"bad font range",
			`templates:
  - id: a
    generic: true
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 20, font_max: 10}]`,
			"invalid font range",
		},
		{
			"unknown fallback",
			`templates:
  - id: g
    generic: true
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]
  - id: a
    fallbacks: [missing]
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]`,
			"does not exist",
		},
		{
			"chain not ending at generic",
			`templates:
  - id: g
    generic: true
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]
  - id: a
    fallbacks: [b]
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]
  - id: b
    fallbacks: [g]
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]`,
			"does not end at the generic",
		},
		{
			"duplicate id",
			`templates:
  - id: g
    generic: true
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]
  - id: g
    slots: [{role: title, rect: {x: 0, y: 0, width: 10, height: 10}, font_min: 10, font_max: 20}]`,
			"duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLibrary([]byte(tt.yaml))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestCompatibilityScoring(t *testing.T) {
	lib := mustLibrary(t)

	generic := lib.Generic()
	if got := lib.Compatibility(generic, &model.ContentBlock{}); got != 1 {
		t.Errorf("generic compatibility = %v, want 1", got)
	}

	timeline, _ := lib.Get("timeline")
	four := &model.ContentBlock{
		Title:   "Roadmap",
		Bullets: []string{"Q1 kickoff", "Q2 alpha", "Q3 beta", "Q4 launch"},
	}
	if got := lib.Compatibility(timeline, four); got < CompatibilityThreshold {
		t.Errorf("timeline with 4 items = %v, want >= %v", got, CompatibilityThreshold)
	}

	six := &model.ContentBlock{
		Title: "Roadmap",
		Bullets: []string{
			"Q1 kickoff", "Q2 alpha", "Q3 beta",
			"Q4 launch", "Q1 expansion", "Q2 review",
		},
	}
	if got := lib.Compatibility(timeline, six); got >= CompatibilityThreshold {
		t.Errorf("timeline with 6 items = %v, want below threshold", got)
	}
}

func TestCompatibilityLengthPenalty(t *testing.T) {
	lib := mustLibrary(t)
	timeline, _ := lib.Get("timeline")

	long := strings.Repeat("word ", 60) // far past the 120-rune slot budget
	fits := lib.Compatibility(timeline, &model.ContentBlock{
		Title:   "Roadmap",
		Bullets: []string{"short", "short", "short", "short"},
	})
	strained := lib.Compatibility(timeline, &model.ContentBlock{
		Title:   "Roadmap",
		Bullets: []string{long, long, long, long},
	})
	if strained >= fits {
		t.Errorf("over-length content scored %v, want below %v", strained, fits)
	}
}

func TestSelectByCategory(t *testing.T) {
	lib := mustLibrary(t)
	a := NewAnalyzer()

	tests := []struct {
		name  string
		block model.ContentBlock
		want  string
	}{
		{"generic prose", model.ContentBlock{Title: "Summary", Body: "All good."}, "single_column"},
		{"quote", model.ContentBlock{Quote: "Less is more.", Attribution: "Mies"}, "quote_highlight"},
		{"dashboard", model.ContentBlock{Title: "KPIs", KPIs: []model.KPI{{Label: "NPS", Value: "62"}}}, "dashboard_grid"},
		{"agenda", model.ContentBlock{Title: "Agenda", Bullets: []string{"Intro", "Plan", "Q&A"}}, "agenda_toc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := a.Classify(&tt.block)
			got := lib.Select(cls, &tt.block, "")
			if got.ID != tt.want {
				t.Errorf("Select() = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestSelectHintOverride(t *testing.T) {
	lib := mustLibrary(t)
	a := NewAnalyzer()

	block := model.ContentBlock{Title: "Launch", Subtitle: "Internal kickoff"}
	cls := a.Classify(&block)

	got := lib.Select(cls, &block, "title_slide")
	if got.ID != "title_slide" {
		t.Errorf("hinted Select() = %q, want title_slide", got.ID)
	}

	// An unknown hint falls back to category mapping.
	got = lib.Select(cls, &block, "holographic_cube")
	if got.ID != "single_column" {
		t.Errorf("Select() with bogus hint = %q, want single_column", got.ID)
	}
}

func TestSelectFallsThroughToGeneric(t *testing.T) {
	lib := mustLibrary(t)
	a := NewAnalyzer()

	// Six milestones overflow the timeline's four item slots and the
	// process flow's five, so selection lands on the generic template.
	block := model.ContentBlock{
		Title: "Migration milestones",
		Bullets: []string{
			"Inventory current systems",
			"Stand up target platform",
			"Migrate pilot workloads",
			"Migrate remaining workloads",
			"Decommission legacy estate",
			"Post-migration review",
		},
	}
	cls := a.Classify(&block)
	if cls.Category != CategoryTimeline {
		t.Fatalf("Classify() = %v, want timeline", cls.Category)
	}

	got := lib.Select(cls, &block, "")
	if got.ID != "single_column" {
		t.Errorf("Select() = %q, want single_column", got.ID)
	}
}

func TestSelectAcceptsFirstCompatibleFallback(t *testing.T) {
	lib := mustLibrary(t)
	a := NewAnalyzer()

	// Five milestones exceed the timeline but fit the process flow.
	block := model.ContentBlock{
		Title:   "Milestone plan",
		Bullets: []string{"One", "Two", "Three", "Four", "Five"},
	}
	cls := a.Classify(&block)

	got := lib.Select(cls, &block, "")
	if got.ID != "process_flow" {
		t.Errorf("Select() = %q, want process_flow", got.ID)
	}
}
