package state

// Event is an input to Apply.
type Event interface{ event() }

// Enter is sent when the pointer moves onto an interactive element.
type Enter struct{ Target Target }

// Leave is sent when the pointer moves off an interactive element.
type Leave struct{ Target Target }

// Click is a click on an interactive element.
type Click struct{ Target Target }

// CanvasClick is a click that hit no interactive element.
type CanvasClick struct{}

// ZoomChanged reports the zoom factor after a gesture.
type ZoomChanged struct{ K, Threshold float64 }

// PointerGone is sent when the pointer leaves the chart entirely.
type PointerGone struct{}

func (Enter) event()       {}
func (Leave) event()       {}
func (Click) event()       {}
func (CanvasClick) event() {}
func (ZoomChanged) event() {}
func (PointerGone) event() {}

// Effect is an output of Apply for the session to carry out.
type Effect interface{ effect() }

// ShowTooltip replaces any visible tooltip with the one for ID.
type ShowTooltip struct {
	Kind            Kind
	ID              string
	At              Point
	PointerAnchored bool
}

// HideTooltips removes the visible tooltip.
type HideTooltips struct{}

// OpenDetail asks the detail panel to show a mark.
type OpenDetail struct {
	Kind Kind
	ID   string
	At   Point
}

// CloseDetail hides the detail panel.
type CloseDetail struct{}

// Restyle asks the driver to recompute emphasis.
type Restyle struct{}

func (ShowTooltip) effect()  {}
func (HideTooltips) effect() {}
func (OpenDetail) effect()   {}
func (CloseDetail) effect()  {}
func (Restyle) effect()      {}
