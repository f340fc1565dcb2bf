package input

import "math"

// DefaultDragDeadZone is how far, in pixels, a pressed pointer must travel
// before the press turns into a drag instead of a click.
const DefaultDragDeadZone = 4.0

// PointerSample is the pointer state polled once per frame.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	// Inside is false when the pointer is outside the window.
	Inside bool
	// Wheel is the vertical wheel delta since the last sample.
	Wheel float64
}

// PointerEventKind identifies a PointerEvent.
type PointerEventKind int

const (
	PointerMove PointerEventKind = iota
	PointerLeave
	PointerClick
	PointerDrag
	PointerWheel
)

// PointerEvent is one interpreted pointer action. DX, DY carry the drag
// delta since the previous frame; Wheel the wheel delta.
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   float64
	DX, DY float64
	Wheel  float64
}

// PointerTracker turns per-frame pointer samples into moves, clicks, drags
// and wheel steps. A press that travels further than DeadZone becomes a drag
// and does not click.
type PointerTracker struct {
	DeadZone float64

	inside       bool
	down         bool
	dragging     bool
	startX       float64
	startY       float64
	lastX, lastY float64
	seen         bool
}

// NewPointerTracker creates a tracker with the default dead zone.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{DeadZone: DefaultDragDeadZone}
}

// Dragging reports whether a drag is in progress.
func (p *PointerTracker) Dragging() bool { return p.dragging }

// Update consumes one sample and returns the resulting events in order.
func (p *PointerTracker) Update(s PointerSample) []PointerEvent {
	var out []PointerEvent

	if !s.Inside {
		if p.inside {
			out = append(out, PointerEvent{Kind: PointerLeave, X: s.X, Y: s.Y})
		}
		p.inside = false
		p.down, p.dragging = false, false
		p.lastX, p.lastY = s.X, s.Y
		return out
	}

	moved := !p.seen || !p.inside || s.X != p.lastX || s.Y != p.lastY
	p.inside, p.seen = true, true

	switch {
	case s.Pressed && !p.down:
		p.down, p.dragging = true, false
		p.startX, p.startY = s.X, s.Y
		if moved {
			out = append(out, PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y})
		}
	case s.Pressed && p.down:
		if moved {
			if !p.dragging && math.Hypot(s.X-p.startX, s.Y-p.startY) > p.DeadZone {
				p.dragging = true
				// The first drag step covers the dead zone too.
				out = append(out, PointerEvent{Kind: PointerDrag, X: s.X, Y: s.Y, DX: s.X - p.startX, DY: s.Y - p.startY})
			} else if p.dragging {
				out = append(out, PointerEvent{Kind: PointerDrag, X: s.X, Y: s.Y, DX: s.X - p.lastX, DY: s.Y - p.lastY})
			}
		}
	case !s.Pressed && p.down:
		if !p.dragging {
			out = append(out, PointerEvent{Kind: PointerClick, X: s.X, Y: s.Y})
		} else if moved {
			out = append(out, PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y})
		}
		p.down, p.dragging = false, false
	default:
		if moved {
			out = append(out, PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y})
		}
	}

	if s.Wheel != 0 {
		out = append(out, PointerEvent{Kind: PointerWheel, X: s.X, Y: s.Y, Wheel: s.Wheel})
	}
	p.lastX, p.lastY = s.X, s.Y
	return out
}
