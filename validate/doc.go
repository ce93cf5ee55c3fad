// Package validate checks fitted slides against geometric and style
// rules: overflow, overlap, canvas bounds, margins, readability, font
// hierarchy, density, and style-guide conformance.
//
// The validator is strictly read-only and works from the slide's own
// state; it never re-measures text. Findings are categorized and
// severity-ranked, and only critical findings make a slide invalid.
package validate
