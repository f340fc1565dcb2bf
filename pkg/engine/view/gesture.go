package view

// GestureKind identifies what a Gesture does to the transform.
type GestureKind int

const (
	GestureZoom GestureKind = iota
	GesturePan
	GestureReset
)

// Gesture is a single tick of a continuous zoom/pan interaction, emitted by
// input backends in the order the user produced them.
type Gesture struct {
	Kind GestureKind

	// Factor multiplies the zoom factor around (PX, PY) for GestureZoom.
	Factor float64
	PX, PY float64

	// DX, DY translate the view for GesturePan.
	DX, DY float64
}

// Zoom builds a zoom gesture centered on a screen point.
func Zoom(factor, px, py float64) Gesture {
	return Gesture{Kind: GestureZoom, Factor: factor, PX: px, PY: py}
}

// Pan builds a pan gesture.
func Pan(dx, dy float64) Gesture {
	return Gesture{Kind: GesturePan, DX: dx, DY: dy}
}

// Reset builds a gesture returning to the identity view.
func Reset() Gesture {
	return Gesture{Kind: GestureReset}
}

// Apply runs a gesture against t within extent e.
func Apply(t Transform, g Gesture, e Extent) Transform {
	switch g.Kind {
	case GestureZoom:
		if g.Factor <= 0 {
			return e.Constrain(t)
		}
		return ZoomAt(t, g.Factor, g.PX, g.PY, e)
	case GesturePan:
		return PanBy(t, g.DX, g.DY, e)
	case GestureReset:
		return e.Constrain(Identity)
	}
	return e.Constrain(t)
}
