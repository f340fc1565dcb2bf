package session

import (
	"math"
	"strings"

	"github.com/leonelquinteros/gotext"

	"chronoscope/pkg/chart/state"
	"chronoscope/pkg/engine/chrono"
	"chronoscope/pkg/engine/input"
	"chronoscope/pkg/engine/view"
)

// describe returns the text lines shown for an element, title first.
func (s *Session) describe(k state.Kind, id string) []string {
	if s.model == nil {
		return []string{id}
	}
	switch k {
	case state.KindBand:
		b, ok := s.model.Band(id)
		if !ok {
			break
		}
		lines := []string{b.Name, chrono.FormatRange(b.Start, b.End)}
		if b.Note != "" {
			lines = append(lines, b.Note)
		}
		authors, texts := len(s.model.SpansByBand(id)), len(s.model.InstantsByBand(id))
		lines = append(lines,
			gotext.GetN("%d author", "%d authors", authors, authors)+" · "+
				gotext.GetN("%d text", "%d texts", texts, texts))
		return lines
	case state.KindSegment:
		seg, ok := s.model.Segment(id)
		if !ok {
			break
		}
		title := seg.Label
		if b, ok := s.model.Band(seg.BandID); ok {
			if title == "" {
				title = b.Name
			} else {
				title = b.Name + ": " + title
			}
		}
		lines := []string{title, chrono.FormatRange(seg.Start, seg.End)}
		if seg.Note != "" {
			lines = append(lines, seg.Note)
		}
		return lines
	case state.KindSpan:
		sp, ok := s.model.Span(id)
		if !ok {
			break
		}
		lines := []string{sp.Name, chrono.FormatRange(sp.Start, sp.End)}
		if sp.Note != "" {
			lines = append(lines, sp.Note)
		}
		if owner, ok := s.model.SpanOwner(id); ok && owner.Label != "" {
			lines = append(lines, gotext.Get("Period: %s", owner.Label))
		}
		return lines
	case state.KindInstant:
		in, ok := s.model.Instant(id)
		if !ok {
			break
		}
		lines := []string{in.Title, chrono.FormatYear(in.When)}
		if in.Note != "" {
			lines = append(lines, in.Note)
		}
		if owner, ok := s.model.InstantOwner(id); ok && owner.Label != "" {
			lines = append(lines, gotext.Get("Period: %s", owner.Label))
		}
		return lines
	}
	return []string{id}
}

// Status is the one-line summary of zoom, mode and the year under the
// pointer.
func (s *Session) Status() string {
	mode := gotext.Get("overview")
	if s.st.Mode == view.Detail {
		mode = gotext.Get("detail")
	}
	line := gotext.Get("Zoom ×%.1f (%s)", s.transform.K, mode)
	if lo, hi, ok := s.VisibleYears(); ok {
		line += " · " + chrono.FormatRange(lo, hi)
	}
	if y, ok := s.YearAt(s.pointerX); ok && s.pointerIn {
		line += " · " + chrono.FormatYear(y)
	}
	return line
}

// HelpLines lists the pointer gestures and the current key bindings for
// the help overlay.
func HelpLines() []string {
	lines := []string{gotext.Get("Wheel: zoom"), gotext.Get("Drag: pan")}
	byAction := input.GetBindingsByAction()
	for _, a := range input.Actions() {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		keys := make([]string, len(codes))
		for i, c := range codes {
			keys[i] = input.KeyLabel(c)
		}
		lines = append(lines, input.ActionName(a)+": "+strings.Join(keys, " "))
	}
	return lines
}

// YearAt converts a window x coordinate to the calendar year under it.
// Years are centered on their astronomical number, so the era boundary at
// 0.5 separates 1 BCE from 1 CE.
func (s *Session) YearAt(x float64) (float64, bool) {
	a, ok := s.astroAt(x)
	if !ok {
		return 0, false
	}
	return chrono.FromAstro(math.Round(a)), true
}

// VisibleYears is the calendar range currently on screen.
func (s *Session) VisibleYears() (lo, hi float64, ok bool) {
	if s.model == nil || s.innerW <= 0 {
		return 0, 0, false
	}
	x0, _, x1, _ := s.extent().VisibleWindow(s.transform)
	lo = chrono.FromAstro(math.Round(s.baseX.Invert(x0)))
	hi = chrono.FromAstro(math.Round(s.baseX.Invert(x1)))
	return lo, hi, true
}

// astroAt is the continuous astronomical year at window x.
func (s *Session) astroAt(x float64) (float64, bool) {
	if s.model == nil || s.innerW <= 0 {
		return 0, false
	}
	px := x - s.cfg.Layout.MarginLeft
	if px < 0 || px > s.innerW {
		return 0, false
	}
	return s.transform.RescaleX(s.baseX).Invert(px), true
}
