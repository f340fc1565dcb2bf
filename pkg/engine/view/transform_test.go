package view

import (
	"math"
	"testing"

	"chronoscope/pkg/engine/chrono"
)

var testExtent = Extent{Width: 800, Height: 400, KMin: 1, KMax: 40}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestConstrainClampsZoom(t *testing.T) {
	tr := testExtent.Constrain(Transform{K: 0.2})
	if tr.K != 1 {
		t.Errorf("K = %v, want 1", tr.K)
	}
	tr = testExtent.Constrain(Transform{K: 500})
	if tr.K != 40 {
		t.Errorf("K = %v, want 40", tr.K)
	}
}

func TestZoomSequenceStaysInBounds(t *testing.T) {
	factors := []float64{1.5, 3, 0.1, 9, 9, 9, 0.5, 2, 0.01, 100, 0.7}
	tr := Identity
	for i, f := range factors {
		tr = ZoomAt(tr, f, float64(i*70%800), float64(i*35%400), testExtent)
		if tr.K < testExtent.KMin || tr.K > testExtent.KMax {
			t.Fatalf("step %d: K = %v outside [%v,%v]", i, tr.K, testExtent.KMin, testExtent.KMax)
		}
		x0, y0, x1, y1 := testExtent.VisibleWindow(tr)
		if x0 < -1e-9 || y0 < -1e-9 || x1 > testExtent.Width+1e-9 || y1 > testExtent.Height+1e-9 {
			t.Fatalf("step %d: window (%v,%v)-(%v,%v) leaves world", i, x0, y0, x1, y1)
		}
	}
}

func TestZoomAtKeepsCursorFixed(t *testing.T) {
	tr := ZoomAt(Identity, 2, 400, 200, testExtent)
	// A centered zoom needs no clamping, so the base point under the cursor stays put.
	if !near(tr.InvertX(400), 400) || !near(tr.InvertY(200), 200) {
		t.Errorf("cursor moved: base (%v,%v), want (400,200)", tr.InvertX(400), tr.InvertY(200))
	}
	if tr.K != 2 {
		t.Errorf("K = %v, want 2", tr.K)
	}
}

func TestPanContainment(t *testing.T) {
	tr := ZoomAt(Identity, 4, 0, 0, testExtent)
	tr = PanBy(tr, 10000, 10000, testExtent)
	if tr.X != 0 || tr.Y != 0 {
		t.Errorf("pan past origin = (%v,%v), want (0,0)", tr.X, tr.Y)
	}
	tr = PanBy(tr, -1e6, -1e6, testExtent)
	if !near(tr.X, 800-800*4) || !near(tr.Y, 400-400*4) {
		t.Errorf("pan past far edge = (%v,%v), want (%v,%v)", tr.X, tr.Y, 800-800*4.0, 400-400*4.0)
	}
}

func TestPanAtUnitZoomIsNoop(t *testing.T) {
	tr := PanBy(Identity, 50, -20, testExtent)
	if tr != Identity {
		t.Errorf("PanBy at k=1 = %+v, want identity", tr)
	}
}

func TestRescaleX(t *testing.T) {
	base := chrono.BaseX(-1000, 1000, 800)
	tr := ZoomAt(Identity, 2, 400, 0, testExtent)
	s := tr.RescaleX(base)
	lo, hi := s.Domain()
	// Half the astronomical span, centered on the middle of [-999, 1000].
	mid := (chrono.ToAstro(-1000) + chrono.ToAstro(1000)) / 2
	span := chrono.ToAstro(1000) - chrono.ToAstro(-1000)
	if !near(lo, mid-span/4) || !near(hi, mid+span/4) {
		t.Errorf("RescaleX domain = [%v,%v], want [%v,%v]", lo, hi, mid-span/4, mid+span/4)
	}
}

func TestModeFor(t *testing.T) {
	cases := []struct {
		k    float64
		want Mode
	}{{1, Overview}, {2.99, Overview}, {3, Detail}, {10, Detail}}
	for _, c := range cases {
		if got := ModeFor(c.k, 3); got != c.want {
			t.Errorf("ModeFor(%v, 3) = %v, want %v", c.k, got, c.want)
		}
	}
}

func TestApplyGestures(t *testing.T) {
	tr := Apply(Identity, Zoom(3, 100, 100), testExtent)
	if tr.K != 3 {
		t.Errorf("zoom K = %v, want 3", tr.K)
	}
	tr = Apply(tr, Zoom(0, 0, 0), testExtent)
	if tr.K != 3 {
		t.Errorf("non-positive factor changed K to %v", tr.K)
	}
	tr = Apply(tr, Reset(), testExtent)
	if tr != Identity {
		t.Errorf("reset = %+v, want identity", tr)
	}
}
