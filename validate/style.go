package validate

// StyleConfig holds the thresholds and style rules a slide is checked
// against. Zero values are not meaningful; start from
// DefaultStyleConfig and adjust, or unmarshal a YAML style guide over
// the defaults.
type StyleConfig struct {
	// Epsilon is the geometric tolerance in points. Violations smaller
	// than this are measurement noise, not findings.
	Epsilon float64 `yaml:"epsilon"`

	// Margin is the comfort clearance from the canvas edges in points.
	// Boxes inside the canvas but closer than this raise a margin
	// warning.
	Margin float64 `yaml:"margin"`

	// MinSpacing is the minimum comfortable gap between neighboring
	// boxes in points.
	MinSpacing float64 `yaml:"min_spacing"`

	// MinFontSize is the smallest readable body size in points;
	// MinTitleFontSize is the floor for title boxes.
	MinFontSize      int `yaml:"min_font_size"`
	MinTitleFontSize int `yaml:"min_title_font_size"`

	// MaxLineRunes caps the comfortable line length in display units
	// (wide runes count as more than one).
	MaxLineRunes int `yaml:"max_line_runes"`

	// MaxCapsRun is the longest acceptable run of consecutive capital
	// letters before text reads as shouting.
	MaxCapsRun int `yaml:"max_caps_run"`

	// MaxBullets is the recommended bullet count per list box and
	// MaxChars the recommended total rune count per slide.
	MaxBullets int `yaml:"max_bullets"`
	MaxChars   int `yaml:"max_chars"`

	// MaxBoxes caps the element count per slide.
	MaxBoxes int `yaml:"max_boxes"`

	// ApprovedFonts lists the families the style guide allows. Empty
	// disables the check.
	ApprovedFonts []string `yaml:"approved_fonts"`

	// OverlapCritical and OverlapWarning are the overlap ratio
	// thresholds (overlap area over the smaller box's area).
	OverlapCritical float64 `yaml:"overlap_critical"`
	OverlapWarning  float64 `yaml:"overlap_warning"`

	// OverflowCriticalRatio is the fraction of the box height past
	// which vertical overflow escalates from warning to critical.
	OverflowCriticalRatio float64 `yaml:"overflow_critical_ratio"`
}

// DefaultStyleConfig returns conservative presentation defaults for a
// 960 x 540 canvas.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Epsilon:               0.5,
		Margin:                36,
		MinSpacing:            7.2,
		MinFontSize:           11,
		MinTitleFontSize:      20,
		MaxLineRunes:          90,
		MaxCapsRun:            12,
		MaxBullets:            5,
		MaxChars:              700,
		MaxBoxes:              12,
		ApprovedFonts:         []string{"Arial", "Calibri", "Helvetica"},
		OverlapCritical:       0.30,
		OverlapWarning:        0.10,
		OverflowCriticalRatio: 0.10,
	}
}
