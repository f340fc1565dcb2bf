// Package tooltip places tooltip boxes next to chart elements or the
// pointer while keeping them fully inside the viewport.
package tooltip

import "math"

// Bounds is an element's on-screen box in the current frame.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Height float64
}

// Valid reports whether b describes real geometry.
func (b Bounds) Valid() bool {
	return finite(b.Left, b.Right, b.Top, b.Height) && b.Right >= b.Left && b.Height >= 0
}

// Size is a width and height.
type Size struct {
	W float64
	H float64
}

func (s Size) valid() bool { return finite(s.W, s.H) && s.W > 0 && s.H > 0 }

// Point is the top-left corner of a placed tooltip.
type Point struct {
	Left float64
	Top  float64
}

// Options are the placement distances in pixels.
type Options struct {
	Margin  float64 // Minimum gap to the viewport edges
	Padding float64 // Gap between an element and its tooltip
	Offset  float64 // Gap between the pointer and its tooltip
}

// DefaultOptions matches the chart defaults.
var DefaultOptions = Options{Margin: 4, Padding: 8, Offset: 12}

// ForElement centers the tooltip under the element, or above it when there
// is no room below. ok is false when there is no frame to place against.
func ForElement(b Bounds, viewport, tip Size, o Options) (Point, bool) {
	if !b.Valid() || !viewport.valid() || !tip.valid() {
		return Point{}, false
	}
	mid := (b.Left + b.Right) / 2
	left := clampAxis(mid-tip.W/2, tip.W, viewport.W, o.Margin)

	top := b.Top + b.Height + o.Padding
	if top+tip.H > viewport.H-margin(tip.H, viewport.H, o.Margin) {
		top = b.Top - o.Padding - tip.H
	}
	top = clampAxis(top, tip.H, viewport.H, o.Margin)
	return Point{Left: left, Top: top}, true
}

// ForPointer places the tooltip above the pointer, or below it when the top
// would leave the viewport.
func ForPointer(px, py float64, viewport, tip Size, o Options) (Point, bool) {
	if !finite(px, py) || !viewport.valid() || !tip.valid() {
		return Point{}, false
	}
	left := clampAxis(px-tip.W/2, tip.W, viewport.W, o.Margin)

	top := py - o.Offset - tip.H
	if top < 0 {
		top = py + o.Offset
	}
	top = clampAxis(top, tip.H, viewport.H, o.Margin)
	return Point{Left: left, Top: top}, true
}

// margin shrinks the configured margin when the tooltip barely fits.
func margin(size, extent, m float64) float64 {
	return math.Max(0, math.Min(m, (extent-size)/2))
}

// clampAxis keeps [v, v+size] inside [m, extent-m]. A tooltip larger than
// the viewport is pinned to the start.
func clampAxis(v, size, extent, m float64) float64 {
	m = margin(size, extent, m)
	hi := extent - size - m
	if hi < m {
		return m
	}
	return math.Max(m, math.Min(hi, v))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
