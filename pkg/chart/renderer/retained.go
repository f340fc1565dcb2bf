package renderer

import (
	"cmp"
	"math"
	"slices"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Retained is an in-memory SceneLayer. It remembers insertion order within
// each layer so painting and hit-testing agree on what is on top.
type Retained struct {
	mu sync.RWMutex

	elems map[string]Element
	seq   map[string]int
	next  int

	// hit holds the IDs of interactive elements.
	hit mapset.Set[string]

	order []string
	dirty bool
}

// NewRetained creates an empty scene.
func NewRetained() *Retained {
	return &Retained{
		elems: make(map[string]Element),
		seq:   make(map[string]int),
		hit:   mapset.New[string](),
	}
}

// Upsert implements SceneLayer.
func (r *Retained) Upsert(elements ...Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, el := range elements {
		old, exists := r.elems[el.ID]
		if !exists {
			r.seq[el.ID] = r.next
			r.next++
			r.dirty = true
		} else if old.Layer != el.Layer {
			r.dirty = true
		}
		r.elems[el.ID] = el
		if el.Interactive {
			r.hit.Put(el.ID)
		} else {
			r.hit.Remove(el.ID)
		}
	}
}

// Remove implements SceneLayer.
func (r *Retained) Remove(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.elems[id]; !ok {
			continue
		}
		delete(r.elems, id)
		delete(r.seq, id)
		r.hit.Remove(id)
		r.dirty = true
	}
}

// SetAttributes implements SceneLayer.
func (r *Retained) SetAttributes(id string, attrs Attrs) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if el, ok := r.elems[id]; ok {
		el.Attrs = attrs
		r.elems[id] = el
	}
}

// Get returns the element with the given ID.
func (r *Retained) Get(id string) (Element, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	el, ok := r.elems[id]
	return el, ok
}

// Len is the number of elements in the scene.
func (r *Retained) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}

// Interactive is the number of elements that accept pointer events.
func (r *Retained) Interactive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hit.Size()
}

// Each calls fn for every element in painter order, bottom first.
func (r *Retained) Each(fn func(Element)) {
	for _, el := range r.snapshot() {
		fn(el)
	}
}

// HitTest returns the topmost interactive element containing (x, y).
func (r *Retained) HitTest(x, y float64) (Element, bool) {
	els := r.snapshot()
	for i := len(els) - 1; i >= 0; i-- {
		el := els[i]
		if el.Interactive && Contains(el, x, y) {
			return el, true
		}
	}
	return Element{}, false
}

// snapshot copies the elements in painter order so callers can iterate
// without holding the lock.
func (r *Retained) snapshot() []Element {
	r.mu.Lock()
	if r.dirty {
		r.order = r.order[:0]
		for id := range r.elems {
			r.order = append(r.order, id)
		}
		slices.SortFunc(r.order, func(a, b string) int {
			if c := cmp.Compare(r.elems[a].Layer, r.elems[b].Layer); c != 0 {
				return c
			}
			return cmp.Compare(r.seq[a], r.seq[b])
		})
		r.dirty = false
	}
	out := make([]Element, len(r.order))
	for i, id := range r.order {
		out[i] = r.elems[id]
	}
	r.mu.Unlock()
	return out
}

// Contains reports whether (x, y) falls on the element's hit area.
func Contains(el Element, x, y float64) bool {
	switch el.Shape {
	case ShapeRect, ShapeText:
		return x >= el.X && x <= el.X+el.W && y >= el.Y && y <= el.Y+el.H
	case ShapeCircle:
		return math.Hypot(x-el.X, y-el.Y) <= el.R
	case ShapeLine:
		return segmentDistance(x, y, el.X, el.Y, el.X+el.W, el.Y+el.H) <= math.Max(el.R, 1)
	}
	return false
}

func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
