package input

import "testing"

func kinds(evs []PointerEvent) []PointerEventKind {
	out := make([]PointerEventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func equalKinds(a, b []PointerEventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPointerClick(t *testing.T) {
	p := NewPointerTracker()
	steps := []struct {
		s    PointerSample
		want []PointerEventKind
	}{
		{PointerSample{X: 10, Y: 10, Inside: true}, []PointerEventKind{PointerMove}},
		{PointerSample{X: 10, Y: 10, Inside: true, Pressed: true}, nil},
		{PointerSample{X: 12, Y: 11, Inside: true, Pressed: true}, nil},
		{PointerSample{X: 12, Y: 11, Inside: true}, []PointerEventKind{PointerClick}},
	}
	for i, st := range steps {
		if got := kinds(p.Update(st.s)); !equalKinds(got, st.want) {
			t.Errorf("step %d: events = %v, want %v", i, got, st.want)
		}
	}
}

func TestPointerDrag(t *testing.T) {
	p := NewPointerTracker()
	p.Update(PointerSample{X: 0, Y: 0, Inside: true})
	p.Update(PointerSample{X: 0, Y: 0, Inside: true, Pressed: true})
	evs := p.Update(PointerSample{X: 10, Y: 0, Inside: true, Pressed: true})
	if len(evs) != 1 || evs[0].Kind != PointerDrag || evs[0].DX != 10 {
		t.Fatalf("first drag = %+v, want one drag of 10", evs)
	}
	evs = p.Update(PointerSample{X: 15, Y: 2, Inside: true, Pressed: true})
	if len(evs) != 1 || evs[0].DX != 5 || evs[0].DY != 2 {
		t.Errorf("second drag = %+v, want delta (5,2)", evs)
	}
	if !p.Dragging() {
		t.Error("Dragging() = false during drag")
	}
	evs = p.Update(PointerSample{X: 15, Y: 2, Inside: true})
	for _, e := range evs {
		if e.Kind == PointerClick {
			t.Error("drag release produced a click")
		}
	}
}

func TestPointerLeaveAndWheel(t *testing.T) {
	p := NewPointerTracker()
	p.Update(PointerSample{X: 5, Y: 5, Inside: true})
	evs := p.Update(PointerSample{X: 5, Y: 5, Inside: true, Wheel: -1})
	if got := kinds(evs); !equalKinds(got, []PointerEventKind{PointerWheel}) {
		t.Errorf("wheel events = %v, want [wheel]", got)
	}
	if got := kinds(p.Update(PointerSample{X: -1, Y: 5})); !equalKinds(got, []PointerEventKind{PointerLeave}) {
		t.Errorf("leave events = %v, want [leave]", got)
	}
	if got := p.Update(PointerSample{X: -2, Y: 5}); len(got) != 0 {
		t.Errorf("second outside sample = %v, want nothing", got)
	}
	if got := kinds(p.Update(PointerSample{X: -2, Y: 5, Inside: true})); !equalKinds(got, []PointerEventKind{PointerMove}) {
		t.Errorf("re-entry = %v, want [move]", got)
	}
}
