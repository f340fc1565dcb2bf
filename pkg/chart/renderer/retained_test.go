package renderer

import "testing"

func TestHitTestTopmost(t *testing.T) {
	r := NewRetained()
	r.Upsert(
		Element{ID: "seg", Layer: LayerSegments, Shape: ShapeRect, X: 0, Y: 0, W: 100, H: 50, Interactive: true},
		Element{ID: "band", Layer: LayerBands, Shape: ShapeRect, X: 0, Y: 0, W: 100, H: 50, Interactive: true},
		Element{ID: "dot", Layer: LayerInstants, Shape: ShapeCircle, X: 50, Y: 25, R: 5, Interactive: true},
	)
	if el, ok := r.HitTest(50, 25); !ok || el.ID != "dot" {
		t.Errorf("HitTest(50,25) = %q, %v, want dot", el.ID, ok)
	}
	if el, ok := r.HitTest(10, 10); !ok || el.ID != "seg" {
		t.Errorf("HitTest(10,10) = %q, %v, want seg", el.ID, ok)
	}
	if _, ok := r.HitTest(200, 10); ok {
		t.Error("HitTest outside everything hit something")
	}
}

func TestHitTestSkipsDecoration(t *testing.T) {
	r := NewRetained()
	r.Upsert(
		Element{ID: "band", Layer: LayerBands, Shape: ShapeRect, W: 100, H: 50, Interactive: true},
		Element{ID: "label", Layer: LayerLabels, Shape: ShapeText, W: 100, H: 50},
	)
	if el, _ := r.HitTest(5, 5); el.ID != "band" {
		t.Errorf("HitTest = %q, want band under the label", el.ID)
	}
	r.Upsert(Element{ID: "band", Layer: LayerBands, Shape: ShapeRect, W: 100, H: 50})
	if _, ok := r.HitTest(5, 5); ok {
		t.Error("non-interactive band still hit")
	}
	if r.Interactive() != 0 {
		t.Errorf("Interactive() = %d, want 0", r.Interactive())
	}
}

func TestPainterOrder(t *testing.T) {
	r := NewRetained()
	r.Upsert(Element{ID: "c", Layer: LayerInstants}, Element{ID: "a", Layer: LayerBands}, Element{ID: "b", Layer: LayerBands})
	var got []string
	r.Each(func(el Element) { got = append(got, el.ID) })
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Each = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each = %v, want %v", got, want)
		}
	}
}

func TestRemoveAndSetAttributes(t *testing.T) {
	r := NewRetained()
	r.Upsert(Element{ID: "a", Interactive: true, W: 10, H: 10}, Element{ID: "b"})
	r.SetAttributes("a", Attrs{Opacity: 0.5, Stroke: "#ffffff", StrokeWidth: 2})
	if el, _ := r.Get("a"); el.Attrs.Opacity != 0.5 || el.Attrs.Stroke != "#ffffff" {
		t.Errorf("attrs = %+v, want updated", el.Attrs)
	}
	r.SetAttributes("missing", Attrs{Opacity: 1})
	r.Remove("a", "missing")
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if _, ok := r.HitTest(5, 5); ok {
		t.Error("removed element still hit")
	}
}

func TestContainsLine(t *testing.T) {
	el := Element{Shape: ShapeLine, X: 0, Y: 10, W: 100, R: 3}
	if !Contains(el, 50, 12) {
		t.Error("point near the line missed")
	}
	if Contains(el, 50, 20) {
		t.Error("point far from the line hit")
	}
	if Contains(el, 110, 10) {
		t.Error("point past the end hit")
	}
}
