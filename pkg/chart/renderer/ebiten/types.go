// Package ebiten paints the chart's retained scene in a desktop window.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/engine/input"
)

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// palette holds the config colors parsed once.
type palette struct {
	background color.RGBA
	text       color.RGBA
	muted      color.RGBA
	axis       color.RGBA
	highlight  color.RGBA
	tooltip    color.RGBA
}

// faceKey identifies a cached font face.
type faceKey struct {
	bold bool
	mono bool
	size float64
}

// Renderer is the Ebiten-based graphical backend. It implements
// ebiten.Game and session.DetailPanel.
type Renderer struct {
	sess *session.Session
	cfg  config.Config

	// Window dimensions, updated by Layout
	windowWidth  int
	windowHeight int

	windowOpenedLogged bool

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	monoFontSource     *text.GoTextFaceSource
	faces              map[faceKey]*text.GoTextFace

	colors palette

	pointer        *input.PointerTracker
	cursor         ebiten.CursorShape
	keyRepeatState map[string]keyRepeatInfo

	// Detail panel entrance animation
	panelID       string
	panelOpenedAt int64
}
