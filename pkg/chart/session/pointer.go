package session

import (
	"chronoscope/pkg/chart/renderer"
	"chronoscope/pkg/chart/state"
	"chronoscope/pkg/chart/tooltip"
)

// PointerMove reports the pointer position in window pixels.
func (s *Session) PointerMove(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.pointerIn = true
	s.focusID = ""
	if s.model == nil {
		return
	}
	s.syncHover()
}

// PointerLeave reports that the pointer left the window.
func (s *Session) PointerLeave() {
	s.pointerIn = false
	s.hover = nil
	s.focusID = ""
	s.dispatch(state.PointerGone{})
}

// Click reports a completed click (press and release without a drag).
func (s *Session) Click(x, y float64) {
	s.PointerMove(x, y)
	s.activate()
}

func (s *Session) activate() {
	if s.hover != nil {
		s.dispatch(state.Click{Target: s.target(*s.hover)})
	} else {
		s.dispatch(state.CanvasClick{})
	}
}

// syncHover hit-tests the live pointer and sends leave/enter on change.
func (s *Session) syncHover() {
	if hit, ok := s.scene.HitTest(s.pointerX, s.pointerY); ok {
		s.setHover(&hit)
		return
	}
	s.setHover(nil)
}

func (s *Session) setHover(next *renderer.Element) {
	var prevID, nextID string
	if s.hover != nil {
		prevID = s.hover.ID
	}
	if next != nil {
		nextID = next.ID
	}
	if prevID == nextID {
		if s.tip.PointerAnchored {
			s.placeTooltip()
		}
		return
	}
	if s.hover != nil {
		s.dispatch(state.Leave{Target: s.target(*s.hover)})
	}
	s.hover = next
	if next != nil {
		s.dispatch(state.Enter{Target: s.target(*next)})
	}
}

func (s *Session) target(el renderer.Element) state.Target {
	t := state.Target{
		Kind: el.Kind,
		ID:   el.Ref,
		At:   state.Point{X: s.pointerX, Y: s.pointerY},
	}
	switch {
	case el.Kind == state.KindSegment:
		t.Parent = el.Owner
	case el.Kind.IsMark():
		t.Owner = el.Owner
	}
	return t
}

// dispatch runs ev through the state machine and carries out its effects.
func (s *Session) dispatch(ev state.Event) {
	var fx []state.Effect
	s.st, fx = state.Apply(s.st, ev)
	for _, f := range fx {
		switch e := f.(type) {
		case state.ShowTooltip:
			s.showTooltip(e.Kind, e.ID, e.PointerAnchored)
		case state.HideTooltips:
			s.tip = TooltipView{}
		case state.OpenDetail:
			s.openDetail(e.Kind, e.ID)
		case state.CloseDetail:
			s.closeDetail()
		case state.Restyle:
			s.driver.Restyle(s.st)
		}
	}
}

func (s *Session) tooltipOptions() tooltip.Options {
	return tooltip.Options{
		Margin:  s.cfg.Tooltip.Margin,
		Padding: s.cfg.Tooltip.Padding,
		Offset:  s.cfg.Tooltip.Offset,
	}
}

// textOptions sizes tooltip and detail text. Backends draw the lines
// inset by the same Padding.
func (s *Session) textOptions(maxWidth float64) tooltip.TextOptions {
	return tooltip.TextOptions{
		FontSize: s.cfg.Tooltip.FontSize,
		MaxWidth: maxWidth,
		Padding:  s.cfg.Tooltip.FontSize / 2,
	}
}

func (s *Session) showTooltip(k state.Kind, id string, pointer bool) {
	text := s.textOptions(s.cfg.Tooltip.MaxWidth)
	lines, size := tooltip.EstimateSize(s.describe(k, id), text)
	s.tip = TooltipView{Kind: k, ID: id, Lines: lines, Size: size, Pad: text.Padding, PointerAnchored: pointer}
	s.placeTooltip()
}

// placeTooltip anchors the tooltip against the current frame. It stays
// hidden while its element is off screen.
func (s *Session) placeTooltip() {
	if s.tip.Kind == state.KindNone {
		return
	}
	vp := tooltip.Size{W: s.width, H: s.height}
	var (
		p  tooltip.Point
		ok bool
	)
	if s.tip.PointerAnchored {
		p, ok = tooltip.ForPointer(s.pointerX, s.pointerY, vp, s.tip.Size, s.tooltipOptions())
	} else if b, found := s.driver.Locate(renderer.ElementID(s.tip.Kind, s.tip.ID)); found {
		p, ok = tooltip.ForElement(b, vp, s.tip.Size, s.tooltipOptions())
	}
	s.tip.At, s.tip.Visible = p, ok
}

func (s *Session) openDetail(k state.Kind, id string) {
	text := s.textOptions(s.cfg.Tooltip.MaxWidth * 1.25)
	lines, size := tooltip.EstimateSize(s.describe(k, id), text)
	sel := Selection{Kind: k, ID: id, Lines: lines, Size: size, Pad: text.Padding}
	vp := tooltip.Size{W: s.width, H: s.height}
	at, ok := tooltip.Point{}, false
	if b, found := s.driver.Locate(renderer.ElementID(k, id)); found {
		at, ok = tooltip.ForElement(b, vp, size, s.tooltipOptions())
	}
	if !ok {
		at, _ = tooltip.ForPointer(s.pointerX, s.pointerY, vp, size, s.tooltipOptions())
	}
	s.detail, s.detAt = &sel, at
	debugf("open detail %s %s", k, id)
	if s.panel != nil {
		s.panel.Open(sel, at)
	}
}

func (s *Session) closeDetail() {
	if s.detail == nil {
		return
	}
	s.detail = nil
	if s.panel != nil {
		s.panel.Close()
	}
}
