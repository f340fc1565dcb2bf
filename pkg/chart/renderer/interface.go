// Package renderer turns the timeline model into drawable scene elements.
//
// The Driver computes geometry for every frame from the zoomed scales and
// pushes it into a SceneLayer. Backends (ebiten, tui) only paint whatever
// the layer holds, so they never see entities, years or zoom.
package renderer

import (
	"chronoscope/pkg/chart/state"
)

// Layer orders elements for painting, bottom first.
type Layer int

const (
	LayerGrid Layer = iota
	LayerBands
	LayerSegments
	LayerLabels
	LayerSpans
	LayerInstants
)

// Shape tells a backend how to interpret an element's geometry.
type Shape int

const (
	// ShapeRect covers X..X+W, Y..Y+H.
	ShapeRect Shape = iota
	// ShapeCircle is centered on X,Y with radius R.
	ShapeCircle
	// ShapeLine runs from X,Y to X+W,Y+H. R is half the hit thickness.
	ShapeLine
	// ShapeText is a label whose top-left corner is X,Y.
	ShapeText
)

// Attrs are the style attributes that change with interaction state.
type Attrs struct {
	Opacity     float64
	Stroke      string // "#rrggbb", empty for none
	StrokeWidth float64
}

// Element is one drawable item in screen coordinates.
type Element struct {
	ID    string
	Kind  state.Kind // Target kind for hit-testing, KindNone for decoration
	Ref   string     // Entity ID behind the element
	Owner string     // Band of a segment or label, owning segment of a mark
	Layer Layer
	Shape Shape

	X, Y, W, H, R float64

	Label string
	Fill  string
	Attrs Attrs

	// Interactive elements receive pointer events in the current mode.
	Interactive bool
}

// SceneLayer is the drawing surface the driver writes to. Implementations
// keep elements between frames; Upsert replaces an element with the same ID.
type SceneLayer interface {
	// Upsert adds or replaces elements.
	Upsert(elements ...Element)

	// Remove deletes elements by ID. Unknown IDs are ignored.
	Remove(ids ...string)

	// SetAttributes restyles an existing element in place.
	SetAttributes(id string, attrs Attrs)
}

// ElementID is the scene ID of an entity of kind k.
func ElementID(k state.Kind, id string) string {
	return k.String() + ":" + id
}
