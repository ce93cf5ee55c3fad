package model

import "time"

// FixMethodNone marks a repair attempt that found no applicable
// strategy and left the slide untouched.
const FixMethodNone = "none"

// FixResult records one repair attempt against one issue: the strategy
// used, before/after snapshots of the affected box, and whether the
// specific issue was resolved on re-check.
type FixResult struct {
	Issue  Issue
	Method string

	// Before and After snapshot the primary affected box around the
	// repair. For slide-level issues both are zero values.
	Before FittedBox
	After  FittedBox

	Fixed    bool
	Duration time.Duration
}

// FixSummary aggregates all repair attempts across the fix loop.
type FixSummary struct {
	Results    []FixResult
	Iterations int

	Fixed  int
	Failed int
}

// Total returns the number of repair attempts.
func (s *FixSummary) Total() int {
	return len(s.Results)
}

// SuccessRate returns fixed/total, or 1 when nothing needed fixing.
func (s *FixSummary) SuccessRate() float64 {
	if len(s.Results) == 0 {
		return 1
	}
	return float64(s.Fixed) / float64(len(s.Results))
}

// Changed reports whether any repair modified the slide. Attempts
// that found no applicable strategy do not count.
func (s *FixSummary) Changed() bool {
	for _, r := range s.Results {
		if r.Method != "" && r.Method != FixMethodNone {
			return true
		}
	}
	return false
}
