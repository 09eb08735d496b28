// Package ui holds the resolution-independent geometry of the menu shell:
// rectangles, the per-frame layout, contain-fit scaling and text wrapping.
package ui

import "math"

// Point is a position in canvas pixels
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CenterX returns the horizontal center of r
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of r
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Inset shrinks r by dx on the left/right and dy on the top/bottom
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Clamp bounds v to [lo, hi].
// Evaluated as min(hi, max(lo, v)) so results match the layout table exactly.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// ContainFit scales a srcW x srcH image to fit inside box without cropping,
// keeping its aspect ratio and centering it. A degenerate source yields a zero Rect.
func ContainFit(srcW, srcH float64, box Rect) Rect {
	if srcW <= 0 || srcH <= 0 {
		return Rect{}
	}
	scale := math.Min(box.W/srcW, box.H/srcH)
	dw := srcW * scale
	dh := srcH * scale
	return Rect{
		X: box.X + (box.W-dw)/2,
		Y: box.Y + (box.H-dh)/2,
		W: dw,
		H: dh,
	}
}
