// Package layout spreads the text marks of a band across vertical lanes so
// marks that sit close together in time do not paint over each other.
package layout

import (
	"cmp"
	"math"
	"slices"
)

// epsilon absorbs float noise when comparing lane distances.
const epsilon = 1e-9

// Tuning is the zoom-independent part of the lane settings.
type Tuning struct {
	BaseRadius float64 // Mark radius at k=1
	MaxRadius  float64
	SepX       float64 // Horizontal separation in radii
	SepY       float64 // Vertical separation in radii
}

// Params are the lane settings for one zoom level.
type Params struct {
	Radius float64
	MinDX  float64
	MinDY  float64
	Step   float64
}

// ParamsForZoom grows the mark radius with the square root of the zoom
// factor, capped at MaxRadius, and derives the separations from it.
func ParamsForZoom(k float64, t Tuning) Params {
	if k < 1 || math.IsNaN(k) {
		k = 1
	}
	r := t.BaseRadius * math.Sqrt(k)
	if t.MaxRadius > 0 {
		r = math.Min(r, t.MaxRadius)
	}
	p := Params{Radius: r, MinDX: t.SepX * r, MinDY: t.SepY * r}
	p.Step = p.MinDY
	return p
}

// Mark is one text mark at its current screen x and preferred y.
type Mark struct {
	ID    string
	X     float64
	BaseY float64
}

// Extent is the band's vertical slot in the same coordinates as Mark.BaseY.
type Extent struct {
	Top    float64
	Bottom float64
	Pad    float64
}

func (e Extent) bounds() (lo, hi float64) {
	lo, hi = e.Top+e.Pad, e.Bottom-e.Pad
	if hi < lo {
		mid := (e.Top + e.Bottom) / 2
		return mid, mid
	}
	return lo, hi
}

// MaxLanes is how many steps fit in the padded band.
func (e Extent) MaxLanes(step float64) int {
	if step <= 0 {
		return 0
	}
	lo, hi := e.bounds()
	return int(math.Floor((hi - lo) / step))
}

// Placement is the resolved position of a mark. Lane is the signed number of
// steps away from the preferred y. BestEffort is set when no free lane was
// found and the mark may overlap another.
type Placement struct {
	ID         string
	X          float64
	Y          float64
	Lane       int
	BestEffort bool
}

// Assign places marks left to right, moving each to the nearest free lane
// around its preferred y: 0, +1, -1, +2, -2 and so on. The result is sorted
// by X, ties broken by ID.
func Assign(marks []Mark, band Extent, p Params) []Placement {
	sorted := slices.Clone(marks)
	slices.SortStableFunc(sorted, func(a, b Mark) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	lo, hi := band.bounds()
	lanes := band.MaxLanes(p.Step)
	placed := make([]Placement, 0, len(sorted))

	for _, m := range sorted {
		pl := Placement{ID: m.ID, X: m.X, BestEffort: true, Y: clamp(m.BaseY, lo, hi)}
		for j := 0; j <= 2*lanes; j++ {
			lane := laneAt(j)
			y := m.BaseY + float64(lane)*p.Step
			if y < lo-epsilon || y > hi+epsilon {
				continue
			}
			if collides(placed, m.X, y, p) {
				continue
			}
			pl.Y, pl.Lane, pl.BestEffort = y, lane, false
			break
		}
		placed = append(placed, pl)
	}
	return placed
}

// laneAt maps the j-th attempt to 0, +1, -1, +2, -2, ...
func laneAt(j int) int {
	if j == 0 {
		return 0
	}
	n := (j + 1) / 2
	if j%2 == 1 {
		return n
	}
	return -n
}

// collides scans placed marks from the right and stops at the first one far
// enough to the left, since placed is ordered by x.
func collides(placed []Placement, x, y float64, p Params) bool {
	for i := len(placed) - 1; i >= 0; i-- {
		q := placed[i]
		if x-q.X >= p.MinDX-epsilon {
			return false
		}
		if math.Abs(y-q.Y) < p.MinDY-epsilon {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
