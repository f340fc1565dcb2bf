// Package session wires the chart together: it owns the model, the zoom
// transform, the interaction state and the retained scene, and is driven by
// a backend's event loop one call at a time.
package session

import (
	"log"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/entities"
	"chronoscope/pkg/chart/layout"
	"chronoscope/pkg/chart/records"
	"chronoscope/pkg/chart/renderer"
	"chronoscope/pkg/chart/state"
	"chronoscope/pkg/chart/tooltip"
	"chronoscope/pkg/engine/chrono"
	"chronoscope/pkg/engine/view"
)

// Debug enables verbose per-gesture logging.
var Debug bool

func debugf(format string, args ...any) {
	if Debug {
		log.Printf("[debug] "+format, args...)
	}
}

// fallbackDomain is used when neither the config nor the data give a range.
var fallbackDomain = [2]float64{-1000, 1000}

// Selection is what the detail panel shows for a mark.
type Selection struct {
	Kind  state.Kind
	ID    string
	Lines []string // First line is the title
	Size  tooltip.Size
	Pad   float64 // Inner padding Size includes on every side
}

// DetailPanel is the collaborator that presents a selected mark.
type DetailPanel interface {
	Open(sel Selection, at tooltip.Point)
	Close()
}

// TooltipView is the visible tooltip, ready to paint.
type TooltipView struct {
	Visible         bool
	Kind            state.Kind
	ID              string
	Lines           []string
	At              tooltip.Point
	Size            tooltip.Size
	Pad             float64
	PointerAnchored bool
}

// Session is a chart instance. It is not safe for concurrent use.
type Session struct {
	cfg   config.Config
	recs  records.Set
	model *entities.Model
	panel DetailPanel

	scene  *renderer.Retained
	driver *renderer.Driver

	width, height  float64
	innerW, innerH float64
	domain         [2]float64
	baseX, baseY   chrono.LinearScale
	transform      view.Transform

	st      state.State
	tip     TooltipView
	detail  *Selection
	detAt   tooltip.Point
	help    bool
	focusID string

	pointerX, pointerY float64
	pointerIn          bool
	hover              *renderer.Element
}

// New creates a session over recs. The first Resize builds the model.
func New(cfg config.Config, recs records.Set, panel DetailPanel) *Session {
	scene := renderer.NewRetained()
	return &Session{
		cfg:       cfg,
		recs:      recs,
		panel:     panel,
		scene:     scene,
		driver:    renderer.NewDriver(scene, styleFrom(cfg)),
		transform: view.Identity,
		st:        state.State{Mode: view.ModeFor(view.Identity.K, cfg.Zoom.Threshold)},
	}
}

func styleFrom(cfg config.Config) renderer.Style {
	return renderer.Style{
		Text:      cfg.Colors.Text,
		Muted:     cfg.Colors.Muted,
		Axis:      cfg.Colors.Axis,
		Highlight: cfg.Colors.Highlight,
		Preview:   cfg.Colors.Preview,
		Author:    cfg.Colors.Author,
		Work:      cfg.Colors.Work,
	}
}

// Config returns the session's settings.
func (s *Session) Config() config.Config { return s.cfg }

// Scene is the retained scene backends paint from.
func (s *Session) Scene() *renderer.Retained { return s.scene }

// State is the current interaction state.
func (s *Session) State() state.State { return s.st }

// Transform is the current zoom/pan transform.
func (s *Session) Transform() view.Transform { return s.transform }

// Model is the current entity model, nil before the first Resize.
func (s *Session) Model() *entities.Model { return s.model }

// Tooltip is the visible tooltip.
func (s *Session) Tooltip() TooltipView { return s.tip }

// Detail returns the open detail selection and where it is anchored.
func (s *Session) Detail() (Selection, tooltip.Point, bool) {
	if s.detail == nil {
		return Selection{}, tooltip.Point{}, false
	}
	return *s.detail, s.detAt, true
}

// HelpVisible reports whether the key help overlay is toggled on.
func (s *Session) HelpVisible() bool { return s.help }

// Viewport returns the window size.
func (s *Session) Viewport() (w, h float64) { return s.width, s.height }

// PlotRect is the plot area inside the margins, in window coordinates.
func (s *Session) PlotRect() (left, top, w, h float64) {
	return s.cfg.Layout.MarginLeft, s.cfg.Layout.MarginTop, s.innerW, s.innerH
}

func (s *Session) extent() view.Extent {
	return view.Extent{Width: s.innerW, Height: s.innerH, KMin: s.cfg.Zoom.KMin, KMax: s.cfg.Zoom.KMax}
}

// Resize sets the window size. Entities are rebuilt since relative slots
// depend on the plot height; the zoom transform is kept and re-constrained.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.model != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.innerW, s.innerH = s.cfg.InnerSize(width, height)
	s.rebuild()
	s.transform = s.extent().Constrain(s.transform)
	s.refresh()
}

// SetRecords replaces the data and rebuilds.
func (s *Session) SetRecords(recs records.Set) {
	s.recs = recs
	if s.width > 0 {
		s.rebuild()
		s.refresh()
	}
}

func (s *Session) rebuild() {
	first := s.model == nil
	s.model = entities.Build(s.recs, s.innerH, entities.Options{
		BarHeight: s.cfg.Layout.BarHeight,
		BandGap:   s.cfg.Layout.BandGap,
		BandPad:   s.cfg.Layout.BandPad,
		Palette:   s.cfg.Colors.Bands,
	})
	if first {
		log.Printf("Loaded %d bands, %d authors, %d texts", len(s.model.Bands), len(s.model.Spans), len(s.model.Instants))
		if d := s.model.Dropped; d.Total() > 0 {
			log.Printf("Dropped %d malformed records (bands %d, segments %d, authors %d, texts %d)",
				d.Total(), d.Bands, d.Segments, d.Spans, d.Instants)
		}
	}
	debugf("rebuilt model for %vx%v plot", s.innerW, s.innerH)

	s.domain = fallbackDomain
	if lo, hi, ok := s.model.DomainExtent(); ok && lo < hi {
		s.domain = [2]float64{lo, hi}
	}
	if s.cfg.Domain.Min != nil && s.cfg.Domain.Max != nil && *s.cfg.Domain.Min < *s.cfg.Domain.Max {
		s.domain = [2]float64{*s.cfg.Domain.Min, *s.cfg.Domain.Max}
	}
	s.baseX = chrono.BaseX(s.domain[0], s.domain[1], s.innerW)
	s.baseY = chrono.BaseY(s.innerH)
}

// Gesture applies a zoom or pan. Points and deltas are in window pixels.
func (s *Session) Gesture(g view.Gesture) {
	if s.model == nil {
		return
	}
	g.PX -= s.cfg.Layout.MarginLeft
	g.PY -= s.cfg.Layout.MarginTop
	next := view.Apply(s.transform, g, s.extent())
	if next == s.transform {
		return
	}
	s.transform = next
	debugf("transform k=%.3f x=%.1f y=%.1f", next.K, next.X, next.Y)
	s.refresh()
}

// refresh runs after geometry changed: switch mode if needed, re-render,
// then re-derive hover from the live pointer and move the tooltip along.
func (s *Session) refresh() {
	s.dispatch(state.ZoomChanged{K: s.transform.K, Threshold: s.cfg.Zoom.Threshold})
	s.render()
	if s.hover != nil {
		if el, ok := s.driver.Element(s.hover.ID); ok {
			s.hover = &el
		}
	}
	switch el, ok := s.driver.Element(s.focusID); {
	case s.focusID != "" && ok && el.Interactive:
		s.focus(el)
	case s.pointerIn:
		s.focusID = ""
		s.syncHover()
	}
	s.placeTooltip()
}

func (s *Session) render() {
	k := s.transform.K
	s.driver.Restyle(s.st)
	s.driver.Render(renderer.Frame{
		Model:        s.model,
		ZX:           s.transform.RescaleX(s.baseX),
		ZY:           s.transform.RescaleY(s.baseY),
		K:            k,
		Mode:         s.st.Mode,
		Left:         s.cfg.Layout.MarginLeft,
		Top:          s.cfg.Layout.MarginTop,
		Width:        s.innerW,
		Height:       s.innerH,
		DomainMin:    s.domain[0],
		DomainMax:    s.domain[1],
		TickInterval: int(s.cfg.Ticks.Interval),
		Lanes: layout.ParamsForZoom(k, layout.Tuning{
			BaseRadius: s.cfg.Lanes.BaseRadius,
			MaxRadius:  s.cfg.Lanes.MaxRadius,
			SepX:       s.cfg.Lanes.SepX,
			SepY:       s.cfg.Lanes.SepY,
		}),
		BandPad:   s.cfg.Layout.BandPad,
		LabelSize: s.cfg.Layout.LabelSize,
	})
	debugf("rendered %d elements, %d interactive", s.scene.Len(), s.scene.Interactive())
}
