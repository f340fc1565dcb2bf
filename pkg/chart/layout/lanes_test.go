package layout

import (
	"fmt"
	"math"
	"testing"
)

func TestParamsForZoom(t *testing.T) {
	tune := Tuning{BaseRadius: 2, MaxRadius: 6, SepX: 2, SepY: 3}
	p := ParamsForZoom(4, tune)
	if p.Radius != 4 || p.MinDX != 8 || p.MinDY != 12 || p.Step != 12 {
		t.Errorf("ParamsForZoom(4) = %+v, want radius 4, minDX 8, minDY 12, step 12", p)
	}
	if p := ParamsForZoom(100, tune); p.Radius != 6 {
		t.Errorf("ParamsForZoom(100).Radius = %v, want cap 6", p.Radius)
	}
	if p := ParamsForZoom(0.1, tune); p.Radius != 2 {
		t.Errorf("ParamsForZoom(0.1).Radius = %v, want 2", p.Radius)
	}
}

func TestLaneOrder(t *testing.T) {
	want := []int{0, 1, -1, 2, -2, 3, -3}
	for j, w := range want {
		if got := laneAt(j); got != w {
			t.Errorf("laneAt(%d) = %d, want %d", j, got, w)
		}
	}
}

func TestAssignNoCollisionKeepsBase(t *testing.T) {
	p := Params{Radius: 2, MinDX: 4, MinDY: 4, Step: 4}
	band := Extent{Top: 0, Bottom: 100, Pad: 5}
	out := Assign([]Mark{{ID: "b", X: 50, BaseY: 30}, {ID: "a", X: 10, BaseY: 30}}, band, p)
	if out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("order = %s,%s, want a,b", out[0].ID, out[1].ID)
	}
	for _, pl := range out {
		if pl.Y != 30 || pl.Lane != 0 || pl.BestEffort {
			t.Errorf("%s = %+v, want y 30 on lane 0", pl.ID, pl)
		}
	}
}

func TestAssignTwentyIdenticalMarks(t *testing.T) {
	p := Params{Radius: 2, MinDX: 4, MinDY: 4, Step: 4}
	band := Extent{Top: 0, Bottom: 200, Pad: 5}
	marks := make([]Mark, 20)
	for i := range marks {
		marks[i] = Mark{ID: fmt.Sprintf("m%02d", i), X: 100, BaseY: 100}
	}
	out := Assign(marks, band, p)
	if len(out) != 20 {
		t.Fatalf("len = %d, want 20", len(out))
	}
	for i := range out {
		if out[i].BestEffort {
			t.Errorf("%s fell back to best effort", out[i].ID)
		}
		if out[i].Y < 5 || out[i].Y > 195 {
			t.Errorf("%s y = %v outside padded band", out[i].ID, out[i].Y)
		}
		for j := i + 1; j < len(out); j++ {
			if d := math.Abs(out[i].Y - out[j].Y); d < p.MinDY-epsilon {
				t.Errorf("%s and %s are %v apart, want >= %v", out[i].ID, out[j].ID, d, p.MinDY)
			}
		}
	}
	if out[0].Lane != 0 || out[1].Lane != 1 || out[2].Lane != -1 {
		t.Errorf("first lanes = %d,%d,%d, want 0,1,-1", out[0].Lane, out[1].Lane, out[2].Lane)
	}
}

func TestAssignBestEffortWhenFull(t *testing.T) {
	p := Params{Radius: 2, MinDX: 4, MinDY: 4, Step: 4}
	band := Extent{Top: 0, Bottom: 20, Pad: 5}
	marks := make([]Mark, 10)
	for i := range marks {
		marks[i] = Mark{ID: fmt.Sprintf("m%d", i), X: 0, BaseY: 10}
	}
	out := Assign(marks, band, p)
	var best int
	for _, pl := range out {
		if pl.Y < 5 || pl.Y > 15 {
			t.Errorf("%s y = %v, want inside [5,15]", pl.ID, pl.Y)
		}
		if pl.BestEffort {
			best++
			if pl.Y != 10 {
				t.Errorf("best effort %s y = %v, want base 10", pl.ID, pl.Y)
			}
		}
	}
	// Lanes at 6, 10, 14 fit the padded band, so seven marks overflow.
	if best != 7 {
		t.Errorf("best effort count = %d, want 7", best)
	}
}

func TestAssignDistantMarksShareLane(t *testing.T) {
	p := Params{Radius: 2, MinDX: 4, MinDY: 4, Step: 4}
	band := Extent{Top: 0, Bottom: 100, Pad: 5}
	out := Assign([]Mark{{ID: "a", X: 0, BaseY: 50}, {ID: "b", X: 3, BaseY: 50}, {ID: "c", X: 8, BaseY: 50}}, band, p)
	if out[1].Lane == 0 {
		t.Errorf("b lane = 0, want moved off a")
	}
	if out[2].Lane != 0 {
		t.Errorf("c lane = %d, want 0 since a is far enough and b moved", out[2].Lane)
	}
}

func TestAssignEmpty(t *testing.T) {
	if out := Assign(nil, Extent{Bottom: 10}, Params{Step: 1, MinDX: 1, MinDY: 1}); len(out) != 0 {
		t.Errorf("Assign(nil) = %v, want empty", out)
	}
}
