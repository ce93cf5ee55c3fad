package model

import "math"

// Point represents a 2D point in slide coordinates (points, top-left origin).
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle in slide coordinates.
// The origin is the top-left corner of the canvas; all values are in
// typographic points (1/72 inch). A standard 16:9 slide canvas is
// 960 x 540 points.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns the rectangle area in square points.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect checks if another rectangle is fully inside this one.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Intersects checks if two rectangles intersect with positive area.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() <= other.Left() ||
		r.Left() >= other.Right() ||
		r.Bottom() <= other.Top() ||
		r.Top() >= other.Bottom())
}

// Intersection returns the intersection of two rectangles, or a zero
// rectangle if they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	left := math.Max(r.Left(), other.Left())
	top := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IntersectionArea returns the overlap area with another rectangle in
// square points. Zero when the rectangles do not overlap.
func (r Rect) IntersectionArea(other Rect) float64 {
	return r.Intersection(other).Area()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	left := math.Min(r.Left(), other.Left())
	top := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Translate returns a copy of the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns a copy of the rectangle shrunk by the given amount on
// every side. A negative amount grows the rectangle.
func (r Rect) Inset(amount float64) Rect {
	return Rect{
		X:      r.X + amount,
		Y:      r.Y + amount,
		Width:  math.Max(0, r.Width-2*amount),
		Height: math.Max(0, r.Height-2*amount),
	}
}

// Inches converts a length in inches to points.
func Inches(in float64) float64 {
	return in * 72
}
