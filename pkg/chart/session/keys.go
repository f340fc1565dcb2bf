package session

import (
	"cmp"
	"math"
	"slices"

	"chronoscope/pkg/chart/renderer"
	"chronoscope/pkg/chart/state"
	"chronoscope/pkg/engine/input"
	"chronoscope/pkg/engine/view"
)

// HandleIntent carries out a keyboard action. It returns true for quit.
func (s *Session) HandleIntent(in input.Intent) bool {
	step := s.cfg.Zoom.WheelStep
	pan := s.cfg.Zoom.PanStep
	cx, cy := s.zoomCenter()

	switch in.Action {
	case input.ActionQuit:
		return true
	case input.ActionZoomIn:
		s.Gesture(view.Zoom(step, cx, cy))
	case input.ActionZoomOut:
		s.Gesture(view.Zoom(1/step, cx, cy))
	case input.ActionZoomReset:
		s.Gesture(view.Reset())
	case input.ActionPanLeft:
		s.Gesture(view.Pan(pan, 0))
	case input.ActionPanRight:
		s.Gesture(view.Pan(-pan, 0))
	case input.ActionPanUp:
		s.Gesture(view.Pan(0, pan))
	case input.ActionPanDown:
		s.Gesture(view.Pan(0, -pan))
	case input.ActionFocusNext:
		s.cycleFocus(1)
	case input.ActionFocusPrev:
		s.cycleFocus(-1)
	case input.ActionActivate:
		s.activate()
	case input.ActionDismiss:
		if s.help {
			s.help = false
			break
		}
		if !s.st.Idle() {
			s.dispatch(state.CanvasClick{})
		}
	case input.ActionHelp:
		s.help = !s.help
	}
	return false
}

// HandlePointer feeds an interpreted pointer event into the session.
func (s *Session) HandlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerMove:
		s.PointerMove(ev.X, ev.Y)
	case input.PointerLeave:
		s.PointerLeave()
	case input.PointerClick:
		s.Click(ev.X, ev.Y)
	case input.PointerDrag:
		s.pointerX, s.pointerY = ev.X, ev.Y
		s.Gesture(view.Pan(ev.DX, ev.DY))
	case input.PointerWheel:
		s.pointerX, s.pointerY, s.pointerIn = ev.X, ev.Y, true
		s.Gesture(view.Zoom(math.Pow(s.cfg.Zoom.WheelStep, ev.Wheel), ev.X, ev.Y))
	}
}

// zoomCenter is the pointer when it is over the plot, else the plot center.
func (s *Session) zoomCenter() (float64, float64) {
	left, top, w, h := s.PlotRect()
	if s.pointerIn && s.focusID == "" &&
		s.pointerX >= left && s.pointerX <= left+w && s.pointerY >= top && s.pointerY <= top+h {
		return s.pointerX, s.pointerY
	}
	return left + w/2, top + h/2
}

// Focusable lists the interactive elements left to right.
func (s *Session) Focusable() []renderer.Element {
	var out []renderer.Element
	s.scene.Each(func(el renderer.Element) {
		if el.Interactive {
			out = append(out, el)
		}
	})
	slices.SortStableFunc(out, func(a, b renderer.Element) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return out
}

// Focused is the ID of the keyboard-focused element, if any.
func (s *Session) Focused() string { return s.focusID }

// cycleFocus moves a keyboard hover cursor through the interactive elements
// so the chart is usable without a pointer.
func (s *Session) cycleFocus(dir int) {
	els := s.Focusable()
	if len(els) == 0 {
		return
	}
	i := slices.IndexFunc(els, func(el renderer.Element) bool { return el.ID == s.focusID })
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = len(els) - 1
	default:
		i = (i + dir + len(els)) % len(els)
	}
	s.focus(els[i])
}

func (s *Session) focus(el renderer.Element) {
	b := renderer.Bounds(el)
	s.pointerX, s.pointerY = (b.Left+b.Right)/2, b.Top+b.Height/2
	s.pointerIn = true
	s.focusID = el.ID
	s.setHover(&el)
}
