package state

import "chronoscope/pkg/engine/view"

// Apply returns the state after ev and the effects the caller must carry
// out, in order. Events aimed at the track of the inactive mode are ignored.
func Apply(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Enter:
		return enter(s, e.Target)
	case Leave:
		return leave(s, e.Target)
	case Click:
		return click(s, e.Target)
	case CanvasClick:
		return canvasClick(s)
	case ZoomChanged:
		return zoomChanged(s, view.ModeFor(e.K, e.Threshold))
	case PointerGone:
		return pointerGone(s)
	}
	return s, nil
}

// accepts reports whether the current mode routes events for kind k.
func (s State) accepts(k Kind) bool {
	switch k {
	case KindBand:
		return s.Mode == view.Overview
	case KindSegment, KindSpan, KindInstant:
		return s.Mode == view.Detail
	}
	return false
}

func enter(s State, t Target) (State, []Effect) {
	if !s.accepts(t.Kind) || t.ID == "" {
		return s, nil
	}
	var fx []Effect
	switch t.Kind {
	case KindBand:
		s.HoveredBand = t.ID
		// An open band keeps its tooltip while other bands are hovered.
		if s.ActiveBand == "" {
			s, fx = show(s, t, false)
		}
	case KindSegment:
		s.HoveredSegment = t.ID
		s.HoveredSegmentParent = t.Parent
		if s.ActiveSegment == "" {
			s, fx = show(s, t, false)
		}
	case KindSpan, KindInstant:
		s.HoveredMark = Ref{t.Kind, t.ID}
		s.HoveredMarkOwner = t.Owner
		s.PreviewSegment = preview(s)
		s, fx = show(s, t, true)
	}
	return s, append(fx, Restyle{})
}

func leave(s State, t Target) (State, []Effect) {
	if !s.accepts(t.Kind) {
		return s, nil
	}
	switch t.Kind {
	case KindBand:
		if s.HoveredBand != t.ID {
			return s, nil
		}
		s.HoveredBand = ""
	case KindSegment:
		if s.HoveredSegment != t.ID {
			return s, nil
		}
		s.HoveredSegment = ""
		s.HoveredSegmentParent = ""
	case KindSpan, KindInstant:
		if !s.HoveredMark.Is(t.Kind, t.ID) {
			return s, nil
		}
		s.HoveredMark = Ref{}
		s.HoveredMarkOwner = ""
		s.PreviewSegment = preview(s)
	}
	var fx []Effect
	if s.Tooltip.Is(t.Kind, t.ID) && !s.holdsTooltip(t.Kind, t.ID) {
		s, fx = restore(s, t.At)
	}
	return s, append(fx, Restyle{})
}

func click(s State, t Target) (State, []Effect) {
	if !s.accepts(t.Kind) || t.ID == "" {
		return s, nil
	}
	switch t.Kind {
	case KindBand:
		return clickBand(s, t)
	case KindSegment:
		return clickSegment(s, t)
	default:
		return clickMark(s, t)
	}
}

// clickBand implements click-to-open, click-anywhere-to-close.
func clickBand(s State, t Target) (State, []Effect) {
	if s.AwaitClose {
		s.AwaitClose = false
		s.ActiveBand = ""
		s.Tooltip = Tooltip{}
		return s, []Effect{HideTooltips{}, Restyle{}}
	}
	s.ActiveBand = t.ID
	s.AwaitClose = true
	s, fx := show(s, t, false)
	return s, append(fx, Restyle{})
}

// clickSegment toggles the clicked segment.
func clickSegment(s State, t Target) (State, []Effect) {
	var fx []Effect
	if !s.ActiveMark.Empty() {
		s.ActiveMark = Ref{}
		s.ActiveMarkOwner = ""
		s.PreviewSegment = preview(s)
		fx = append(fx, CloseDetail{})
	}
	if s.ActiveSegment == t.ID {
		s.ActiveSegment = ""
		s.ActiveSegmentParent = ""
		s.Tooltip = Tooltip{}
		return s, append(fx, HideTooltips{}, Restyle{})
	}
	s.ActiveSegment = t.ID
	s.ActiveSegmentParent = t.Parent
	s, shown := show(s, t, false)
	fx = append(fx, shown...)
	return s, append(fx, Restyle{})
}

// clickMark opens the detail panel for a mark. The mark never becomes the
// active segment; any active segment is released instead.
func clickMark(s State, t Target) (State, []Effect) {
	s.ActiveSegment = ""
	s.ActiveSegmentParent = ""
	s.ActiveMark = Ref{t.Kind, t.ID}
	s.ActiveMarkOwner = t.Owner
	s.PreviewSegment = preview(s)
	s.Tooltip = Tooltip{}
	return s, []Effect{
		HideTooltips{},
		OpenDetail{Kind: t.Kind, ID: t.ID, At: t.At},
		Restyle{},
	}
}

func canvasClick(s State) (State, []Effect) {
	hadDetail := !s.ActiveMark.Empty()
	s.AwaitClose = false
	s.ActiveBand = ""
	s.ActiveSegment = ""
	s.ActiveSegmentParent = ""
	s.ActiveMark = Ref{}
	s.ActiveMarkOwner = ""
	s.PreviewSegment = preview(s)
	s.Tooltip = Tooltip{}
	fx := []Effect{HideTooltips{}}
	if hadDetail {
		fx = append(fx, CloseDetail{})
	}
	return s, append(fx, Restyle{})
}

// zoomChanged switches mode and drops everything owned by the mode left.
func zoomChanged(s State, m view.Mode) (State, []Effect) {
	if m == s.Mode {
		return s, nil
	}
	s.Mode = m
	var fx []Effect
	switch m {
	case view.Detail:
		s.HoveredBand = ""
		s.ActiveBand = ""
		s.AwaitClose = false
	case view.Overview:
		if !s.ActiveMark.Empty() {
			fx = append(fx, CloseDetail{})
		}
		s.HoveredSegment = ""
		s.HoveredSegmentParent = ""
		s.ActiveSegment = ""
		s.ActiveSegmentParent = ""
		s.HoveredMark = Ref{}
		s.HoveredMarkOwner = ""
		s.ActiveMark = Ref{}
		s.ActiveMarkOwner = ""
		s.PreviewSegment = ""
	}
	if !s.Tooltip.Empty() {
		s.Tooltip = Tooltip{}
		fx = append([]Effect{HideTooltips{}}, fx...)
	}
	return s, append(fx, Restyle{})
}

func pointerGone(s State) (State, []Effect) {
	s.HoveredBand = ""
	s.HoveredSegment = ""
	s.HoveredSegmentParent = ""
	s.HoveredMark = Ref{}
	s.HoveredMarkOwner = ""
	s.PreviewSegment = preview(s)
	var fx []Effect
	if !s.Tooltip.Empty() && !s.holdsTooltip(s.Tooltip.Kind, s.Tooltip.ID) {
		s.Tooltip = Tooltip{}
		fx = append(fx, HideTooltips{})
	}
	return s, append(fx, Restyle{})
}

// holdsTooltip reports whether the element is active and so keeps its
// tooltip after the pointer leaves it.
func (s State) holdsTooltip(k Kind, id string) bool {
	switch k {
	case KindBand:
		return s.ActiveBand == id
	case KindSegment:
		return s.ActiveSegment == id
	}
	return false
}

func show(s State, t Target, pointer bool) (State, []Effect) {
	s.Tooltip = Tooltip{Ref: Ref{t.Kind, t.ID}, PointerAnchored: pointer}
	return s, []Effect{ShowTooltip{Kind: t.Kind, ID: t.ID, At: t.At, PointerAnchored: pointer}}
}

// restore hands the tooltip slot back to the active element of the current
// mode, or empties it.
func restore(s State, at Point) (State, []Effect) {
	switch {
	case s.Mode == view.Overview && s.ActiveBand != "":
		return show(s, Target{Kind: KindBand, ID: s.ActiveBand, At: at}, false)
	case s.Mode == view.Detail && s.ActiveSegment != "":
		return show(s, Target{Kind: KindSegment, ID: s.ActiveSegment, At: at}, false)
	}
	s.Tooltip = Tooltip{}
	return s, []Effect{HideTooltips{}}
}

// preview is the owning segment of the hovered mark, falling back to the
// active mark's.
func preview(s State) string {
	if !s.HoveredMark.Empty() {
		return s.HoveredMarkOwner
	}
	if !s.ActiveMark.Empty() {
		return s.ActiveMarkOwner
	}
	return ""
}
