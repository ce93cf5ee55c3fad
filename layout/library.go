package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/joonbary/slidefit/model"
)

//go:embed builtin.yaml
var builtinYAML []byte

// ErrUnknownTemplate is returned by Get for an ID the library does not
// hold.
var ErrUnknownTemplate = errors.New("layout: unknown template")

// CompatibilityThreshold is the minimum compatibility score at which a
// template is accepted without falling back.
const CompatibilityThreshold = 0.6

// ConfigError reports an invalid template definition detected while
// loading a catalog. Catalog problems are construction-time failures,
// never runtime ones: a library that loads successfully can bind any
// block.
type ConfigError struct {
	TemplateID string
	Reason     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: template %q: %s", e.TemplateID, e.Reason)
}

// Library holds an immutable template catalog. It is safe for
// concurrent use after construction.
type Library struct {
	templates  map[string]*model.LayoutTemplate
	order      []string
	byCategory map[string]*model.LayoutTemplate
	generic    *model.LayoutTemplate
}

// NewLibrary loads the built-in template catalog.
func NewLibrary() (*Library, error) {
	return LoadLibrary(builtinYAML)
}

// LoadLibrary parses a YAML catalog and validates every template. The
// catalog must define exactly one generic template, and every fallback
// chain must be acyclic and terminate in it.
func LoadLibrary(data []byte) (*Library, error) {
	var catalog struct {
		Templates []*model.LayoutTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("layout: parsing catalog: %w", err)
	}
	if len(catalog.Templates) == 0 {
		return nil, &ConfigError{Reason: "catalog defines no templates"}
	}

	lib := &Library{
		templates:  make(map[string]*model.LayoutTemplate, len(catalog.Templates)),
		byCategory: make(map[string]*model.LayoutTemplate),
	}

	for _, t := range catalog.Templates {
		if t.ID == "" {
			return nil, &ConfigError{Reason: "template with empty id"}
		}
		if _, dup := lib.templates[t.ID]; dup {
			return nil, &ConfigError{TemplateID: t.ID, Reason: "duplicate id"}
		}
		if err := validateSlots(t); err != nil {
			return nil, err
		}
		if t.Generic {
			if lib.generic != nil {
				return nil, &ConfigError{TemplateID: t.ID, Reason: "second generic template (already " + lib.generic.ID + ")"}
			}
			lib.generic = t
		}
		lib.templates[t.ID] = t
		lib.order = append(lib.order, t.ID)
		if t.Category != "" {
			if _, taken := lib.byCategory[t.Category]; !taken {
				lib.byCategory[t.Category] = t
			}
		}
	}

	if lib.generic == nil {
		return nil, &ConfigError{Reason: "catalog has no generic template"}
	}
	for _, t := range lib.templates {
		if err := lib.validateFallbacks(t); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func validateSlots(t *model.LayoutTemplate) error {
	if len(t.Slots) == 0 {
		return &ConfigError{TemplateID: t.ID, Reason: "no slots"}
	}
	for i, s := range t.Slots {
		if s.Role == "" {
			return &ConfigError{TemplateID: t.ID, Reason: fmt.Sprintf("slot %d has no role", i)}
		}
		if s.Rect.Width <= 0 || s.Rect.Height <= 0 {
			return &ConfigError{TemplateID: t.ID, Reason: fmt.Sprintf("slot %q has non-positive geometry", s.Role)}
		}
		if s.FontMin < 1 || s.FontMax < s.FontMin {
			return &ConfigError{TemplateID: t.ID, Reason: fmt.Sprintf("slot %q has invalid font range [%d, %d]", s.Role, s.FontMin, s.FontMax)}
		}
	}
	return nil
}

// validateFallbacks checks that every fallback ID exists, the chain has
// no repeats, and it ends at the generic template. The generic template
// itself carries no fallbacks.
func (l *Library) validateFallbacks(t *model.LayoutTemplate) error {
	if t.Generic {
		if len(t.Fallbacks) > 0 {
			return &ConfigError{TemplateID: t.ID, Reason: "generic template must not have fallbacks"}
		}
		return nil
	}
	seen := map[string]bool{t.ID: true}
	for _, id := range t.Fallbacks {
		next, ok := l.templates[id]
		if !ok {
			return &ConfigError{TemplateID: t.ID, Reason: fmt.Sprintf("fallback %q does not exist", id)}
		}
		if seen[id] {
			return &ConfigError{TemplateID: t.ID, Reason: fmt.Sprintf("fallback chain revisits %q", id)}
		}
		seen[id] = true
		if id == t.Fallbacks[len(t.Fallbacks)-1] && !next.Generic {
			return &ConfigError{TemplateID: t.ID, Reason: "fallback chain does not end at the generic template"}
		}
	}
	if len(t.Fallbacks) == 0 {
		return &ConfigError{TemplateID: t.ID, Reason: "non-generic template needs a fallback chain"}
	}
	return nil
}

// Get returns the template with the given ID.
func (l *Library) Get(id string) (*model.LayoutTemplate, error) {
	t, ok := l.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return t, nil
}

// Generic returns the designated always-compatible template.
func (l *Library) Generic() *model.LayoutTemplate {
	return l.generic
}

// IDs returns all template IDs in catalog order.
func (l *Library) IDs() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Select chooses the template for a classified block. The hint, when it
// names a known template, overrides the category mapping; an unknown
// hint is ignored. The candidate's fallback chain is walked until a
// template scores at or above the compatibility threshold. Select is
// total: the generic template is the final resort, so it always returns
// a template.
func (l *Library) Select(cls Classification, block *model.ContentBlock, hint string) *model.LayoutTemplate {
	start := l.byCategory[cls.Category.String()]
	if hint != "" {
		if t, ok := l.templates[hint]; ok {
			start = t
		}
	}
	if start == nil {
		return l.generic
	}

	candidate := start
	visited := map[string]bool{}
	for {
		if l.Compatibility(candidate, block) >= CompatibilityThreshold {
			return candidate
		}
		visited[candidate.ID] = true
		advanced := false
		for _, id := range candidate.Fallbacks {
			if next, ok := l.templates[id]; ok && !visited[id] {
				candidate = next
				advanced = true
				break
			}
		}
		if !advanced {
			return l.generic
		}
	}
}

// Compatibility scores how well a block's content fills a template, in
// [0,1]. The base is the fraction of slots that resolve to text
// (optional slots count as satisfied either way). Content that exceeds
// a template's item or bullet capacity costs a flat 0.5: overflowing a
// fixed-slot layout misrepresents the content, so capacity is close to
// a hard constraint. Fields that exceed a slot's length budget by more
// than half cost 0.15 each. The generic template always scores 1.
func (l *Library) Compatibility(t *model.LayoutTemplate, block *model.ContentBlock) float64 {
	if t.Generic {
		return 1
	}

	matched := 0
	score := 0.0
	for i := range t.Slots {
		slot := &t.Slots[i]
		text := resolveSlot(block, slot)
		if text != "" || slot.Optional {
			matched++
		}
		if slot.MaxLength > 0 && text != "" {
			if utf8.RuneCountInString(text) > slot.MaxLength*3/2 {
				score -= 0.15
			}
		}
		if slot.MaxBullets > 0 && slot.Role == model.RoleBullets && len(block.Bullets) > slot.MaxBullets {
			score -= 0.5
		}
	}
	score += float64(matched) / float64(len(t.Slots))

	if n := itemCapacity(t, model.RoleItem+"_"); n > 0 && len(block.Bullets) > n {
		score -= 0.5
	}
	if n := itemCapacity(t, model.RoleKPI+"_"); n > 0 && len(block.KPIs) > n {
		score -= 0.5
	}

	return lo.Clamp(score, 0, 1)
}

// itemCapacity counts the template's indexed slots with the prefix.
func itemCapacity(t *model.LayoutTemplate, prefix string) int {
	n := 0
	for i := range t.Slots {
		if _, ok := indexedRole(t.Slots[i].Role, prefix); ok {
			n++
		}
	}
	return n
}
