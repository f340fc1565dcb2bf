package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/chart/tooltip"
	"chronoscope/pkg/engine/input"
)

// New creates the renderer and loads its fonts. Attach a session before Run.
func New(cfg config.Config) (*Renderer, error) {
	e := &Renderer{
		cfg:            cfg,
		windowWidth:    cfg.Layout.Width,
		windowHeight:   cfg.Layout.Height,
		pointer:        input.NewPointerTracker(),
		keyRepeatState: make(map[string]keyRepeatInfo),
		colors: palette{
			background: config.MustHex(cfg.Colors.Background, colorBackground),
			text:       config.MustHex(cfg.Colors.Text, colorText),
			muted:      config.MustHex(cfg.Colors.Muted, colorSubtle),
			axis:       config.MustHex(cfg.Colors.Axis, colorSubtle),
			highlight:  config.MustHex(cfg.Colors.Highlight, colorAction),
			tooltip:    config.MustHex(cfg.Colors.Tooltip, colorPanel),
		},
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}
	return e, nil
}

// Attach sets the session the renderer drives.
func (e *Renderer) Attach(s *session.Session) {
	e.sess = s
	s.Resize(float64(e.windowWidth), float64(e.windowHeight))
}

// Open starts the detail panel animation. The panel content itself is read
// from the session on every frame.
func (e *Renderer) Open(sel session.Selection, _ tooltip.Point) {
	e.panelID = sel.ID
	e.panelOpenedAt = time.Now().UnixMilli()
}

// Close forgets the open panel.
func (e *Renderer) Close() {
	e.panelID = ""
}

// Run opens the window and blocks until it is closed or the user quits.
func (e *Renderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Chronoscope"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Printf("Opening window (%dx%d)", e.windowWidth, e.windowHeight)
	if err := ebiten.RunGame(e); err != nil {
		return err
	}
	log.Printf("Window closed")
	return nil
}
