package model

// Alignment controls horizontal text alignment within a box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// UnmarshalYAML decodes an alignment from its string form.
func (a *Alignment) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		*a = AlignLeft
	}
	return nil
}

// ElementSlot is one named region within a layout template, with its
// geometry and text constraints. Slots are immutable once the template
// catalog is loaded.
type ElementSlot struct {
	// Role names the content field that feeds this slot (see Role
	// constants). Indexed roles such as "item_2" bind to the matching
	// bullet or KPI.
	Role string `yaml:"role"`

	// Rect is the slot geometry in canvas points.
	Rect Rect `yaml:"rect"`

	// MaxLength caps the resolved text length in runes. Zero means
	// unlimited.
	MaxLength int `yaml:"max_length,omitempty"`

	// FontFamilies lists candidate families in preference order. Empty
	// means the style default.
	FontFamilies []string `yaml:"fonts,omitempty"`

	// FontMin and FontMax bound the font size search in points.
	FontMin int `yaml:"font_min"`
	FontMax int `yaml:"font_max"`

	// MaxBullets caps the number of list items this slot accepts.
	// Zero means unlimited.
	MaxBullets int `yaml:"max_bullets,omitempty"`

	// LineSpacing is the line height multiplier. Zero means 1.2.
	LineSpacing float64 `yaml:"line_spacing,omitempty"`

	Bold      bool      `yaml:"bold,omitempty"`
	Italic    bool      `yaml:"italic,omitempty"`
	Alignment Alignment `yaml:"align,omitempty"`

	// Optional indicates the slot may stay empty without a binding
	// warning when its source field is absent.
	Optional bool `yaml:"optional,omitempty"`
}

// EffectiveLineSpacing returns the line spacing multiplier, defaulting
// to 1.2 when unset.
func (s ElementSlot) EffectiveLineSpacing() float64 {
	if s.LineSpacing <= 0 {
		return 1.2
	}
	return s.LineSpacing
}

// LayoutTemplate is an immutable geometric/role definition a slide can be
// bound to. Templates are loaded once at library construction and shared
// read-only across all slides.
type LayoutTemplate struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Category names the content category this template is registered
	// for ("timeline", "process", ...). Several templates may share a
	// category; the first declared wins.
	Category string `yaml:"category,omitempty"`

	// UseCases are keyword hints describing when the template applies.
	UseCases []string `yaml:"use_cases,omitempty"`

	// Slots in document order. Every slot yields exactly one FittedBox.
	Slots []ElementSlot `yaml:"slots"`

	// Complexity is the template's base complexity score in [0,1].
	Complexity float64 `yaml:"complexity"`

	// Fallbacks is the ordered chain of template IDs tried when this
	// template scores below the compatibility threshold. Chains are
	// finite, acyclic, and always end in the generic template.
	Fallbacks []string `yaml:"fallbacks,omitempty"`

	// Generic marks the designated always-compatible template with no
	// slot-count ceiling.
	Generic bool `yaml:"generic,omitempty"`
}

// SlotByRole returns the first slot with the given role, or nil.
func (t *LayoutTemplate) SlotByRole(role string) *ElementSlot {
	for i := range t.Slots {
		if t.Slots[i].Role == role {
			return &t.Slots[i]
		}
	}
	return nil
}
