// Package state is the hover/selection state machine of the chart.
//
// Two tracks run side by side and never overlap in time. The band track
// is live in overview mode and the segment/mark track in detail mode; the
// zoom factor decides which one receives pointer events. Apply is a pure
// transition function so the backends and tests can drive it the same way.
package state

import "chronoscope/pkg/engine/view"

// Kind identifies what a pointer target is.
type Kind int

const (
	KindNone Kind = iota
	KindBand
	KindSegment
	KindSpan
	KindInstant
)

var kindNames = map[Kind]string{
	KindNone:    "none",
	KindBand:    "band",
	KindSegment: "segment",
	KindSpan:    "author",
	KindInstant: "text",
}

func (k Kind) String() string { return kindNames[k] }

// IsMark reports whether k is one of the point-like mark kinds.
func (k Kind) IsMark() bool { return k == KindSpan || k == KindInstant }

// Point is a screen position.
type Point struct {
	X, Y float64
}

// Target is the element under the pointer.
type Target struct {
	Kind Kind
	ID   string
	// Parent is the band of a segment.
	Parent string
	// Owner is the owning segment of a mark, empty when none contains it.
	Owner string
	At    Point
}

// Ref names an element without position.
type Ref struct {
	Kind Kind
	ID   string
}

// Is reports whether r names the element k/id.
func (r Ref) Is(k Kind, id string) bool { return r.Kind == k && r.ID == id }

// Empty reports whether r names nothing.
func (r Ref) Empty() bool { return r.Kind == KindNone }

// Tooltip is the single visible tooltip slot. Kind is KindNone when hidden.
type Tooltip struct {
	Ref
	PointerAnchored bool
}

// State is the full interaction state. The zero value is idle in overview.
type State struct {
	Mode view.Mode

	HoveredBand string
	ActiveBand  string
	// AwaitClose is armed when a band opens; the next click anywhere only
	// closes it.
	AwaitClose bool

	HoveredSegment       string
	HoveredSegmentParent string
	ActiveSegment        string
	ActiveSegmentParent  string

	HoveredMark      Ref
	HoveredMarkOwner string
	ActiveMark       Ref
	ActiveMarkOwner  string
	// PreviewSegment is the segment whose border is emphasized on behalf of
	// the hovered or active mark.
	PreviewSegment string

	Tooltip Tooltip
}

// Idle reports whether nothing is hovered, active or shown.
func (s State) Idle() bool {
	return s.HoveredBand == "" && s.ActiveBand == "" && !s.AwaitClose &&
		s.HoveredSegment == "" && s.ActiveSegment == "" &&
		s.HoveredMark.Empty() && s.ActiveMark.Empty() &&
		s.PreviewSegment == "" && s.Tooltip.Empty()
}
