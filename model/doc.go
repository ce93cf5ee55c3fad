// Package model provides the shared data model for the slide layout
// engine.
//
// This package defines the types that flow between the engine stages:
// the caller supplies a [ContentBlock], the layout stage binds it to a
// [LayoutTemplate] producing a [Slide] full of [FittedBox] values, the
// validator reports [Issue] findings in a [Result], and the fixer
// records its work in [FixResult] and [FixSummary].
//
// # Coordinates
//
// All geometry uses typographic points (1/72 inch) with the origin at
// the top-left corner of the canvas. The default 16:9 canvas is
// 960 x 540 points. [Rect] provides the intersection and containment
// math the validator and fixer are built on.
//
// # Ownership
//
// ContentBlock and LayoutTemplate are immutable: the block is owned by
// the caller and the template catalog is loaded once and shared
// read-only across slides. A Slide and its boxes are owned by the
// pipeline processing that slide; concurrent work on independent
// slides is safe.
package model
