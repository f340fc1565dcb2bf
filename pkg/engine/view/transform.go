// Package view owns the zoom/pan transform applied on top of the base scales.
package view

import (
	"math"

	"chronoscope/pkg/engine/chrono"
)

// Transform is a uniform scale K followed by a translation (X, Y), mapping
// base pixel coordinates to screen coordinates: screen = base*K + offset.
type Transform struct {
	K float64
	X float64
	Y float64
}

// Identity is the untransformed view.
var Identity = Transform{K: 1}

// ApplyX maps a base x coordinate to the screen.
func (t Transform) ApplyX(x float64) float64 { return x*t.K + t.X }

// ApplyY maps a base y coordinate to the screen.
func (t Transform) ApplyY(y float64) float64 { return y*t.K + t.Y }

// InvertX maps a screen x coordinate back to base pixels.
func (t Transform) InvertX(x float64) float64 { return (x - t.X) / t.K }

// InvertY maps a screen y coordinate back to base pixels.
func (t Transform) InvertY(y float64) float64 { return (y - t.Y) / t.K }

// RescaleX returns the horizontal scale seen through this transform: same
// range as base, domain shifted and narrowed to what is visible.
func (t Transform) RescaleX(base chrono.LinearScale) chrono.LinearScale {
	r0, r1 := base.Range()
	return base.WithDomain(base.Invert(t.InvertX(r0)), base.Invert(t.InvertX(r1)))
}

// RescaleY is RescaleX for the vertical axis.
func (t Transform) RescaleY(base chrono.LinearScale) chrono.LinearScale {
	r0, r1 := base.Range()
	return base.WithDomain(base.Invert(t.InvertY(r0)), base.Invert(t.InvertY(r1)))
}

// Extent bounds a transform: the zoom factor range and the world rectangle
// [0,Width]x[0,Height] the visible window must stay inside.
type Extent struct {
	Width  float64
	Height float64
	KMin   float64
	KMax   float64
}

// ClampK limits k to [KMin, KMax].
func (e Extent) ClampK(k float64) float64 {
	if math.IsNaN(k) {
		return e.KMin
	}
	return math.Max(e.KMin, math.Min(e.KMax, k))
}

// Constrain clamps the zoom factor and translation so that the visible
// window never leaves the world rectangle.
func (e Extent) Constrain(t Transform) Transform {
	t.K = e.ClampK(t.K)
	t.X = clampAxis(t.X, t.K, e.Width)
	t.Y = clampAxis(t.Y, t.K, e.Height)
	return t
}

// clampAxis keeps the scaled span [offset, offset+size*k] covering [0,size].
// When the span is smaller than the viewport it is centered instead.
func clampAxis(offset, k, size float64) float64 {
	span := size * k
	if span <= size {
		return (size - span) / 2
	}
	if math.IsNaN(offset) {
		offset = 0
	}
	return math.Min(0, math.Max(size-span, offset))
}

// VisibleWindow returns the part of the world rectangle currently on screen,
// in base pixel coordinates.
func (e Extent) VisibleWindow(t Transform) (x0, y0, x1, y1 float64) {
	return t.InvertX(0), t.InvertY(0), t.InvertX(e.Width), t.InvertY(e.Height)
}

// ZoomAt multiplies the zoom factor by factor while keeping the screen point
// (px, py) fixed, then constrains the result.
func ZoomAt(t Transform, factor, px, py float64, e Extent) Transform {
	return ScaleTo(t, t.K*factor, px, py, e)
}

// ScaleTo sets the zoom factor to k around the screen point (px, py).
func ScaleTo(t Transform, k, px, py float64, e Extent) Transform {
	k = e.ClampK(k)
	bx, by := t.InvertX(px), t.InvertY(py)
	return e.Constrain(Transform{K: k, X: px - bx*k, Y: py - by*k})
}

// PanBy translates the view by (dx, dy) screen pixels.
func PanBy(t Transform, dx, dy float64, e Extent) Transform {
	t.X += dx
	t.Y += dy
	return e.Constrain(t)
}
