package renderer

import (
	"math"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"chronoscope/pkg/chart/entities"
	"chronoscope/pkg/chart/layout"
	"chronoscope/pkg/chart/state"
	"chronoscope/pkg/chart/tooltip"
	"chronoscope/pkg/engine/chrono"
	"chronoscope/pkg/engine/view"
)

// Style holds the colors the driver assigns to elements.
type Style struct {
	Text      string
	Muted     string
	Axis      string
	Highlight string
	Preview   string
	Author    string
	Work      string
}

// Frame is everything needed to lay out one frame. ZX and ZY are the zoomed
// scales; nothing else is used to compute positions.
type Frame struct {
	Model *entities.Model
	ZX    chrono.LinearScale
	ZY    chrono.LinearScale
	K     float64
	Mode  view.Mode

	// Plot rectangle in screen coordinates.
	Left, Top, Width, Height float64

	DomainMin, DomainMax float64
	TickInterval         int

	Lanes     layout.Params
	BandPad   float64
	LabelSize float64
}

func (f Frame) x(year float64) float64 { return f.Left + f.ZX.Apply(chrono.ToAstro(year)) }
func (f Frame) y(base float64) float64 { return f.Top + f.ZY.Apply(base) }

// Driver writes frames into a SceneLayer and keeps their styling in sync
// with the interaction state.
type Driver struct {
	layer SceneLayer
	style Style
	state state.State

	visible mapset.Set[string]
	current map[string]Element
}

// NewDriver creates a driver drawing into layer.
func NewDriver(layer SceneLayer, style Style) *Driver {
	return &Driver{
		layer:   layer,
		style:   style,
		visible: mapset.New[string](),
		current: make(map[string]Element),
	}
}

// Render lays out every band, segment, label, mark and tick for f, then
// removes whatever the previous frame showed that is now gone or culled.
func (d *Driver) Render(f Frame) {
	var out []Element
	next := mapset.New[string]()
	add := func(el Element) {
		if !f.shows(el) {
			return
		}
		el.Attrs = d.attrs(el)
		out = append(out, el)
		next.Put(el.ID)
	}

	for _, t := range chrono.Ticks(f.DomainMin, f.DomainMax, f.TickInterval) {
		x := f.Left + f.ZX.Apply(t.Astro)
		add(Element{
			ID:    "tick:" + strconv.FormatFloat(t.Astro, 'f', -1, 64),
			Layer: LayerGrid,
			Shape: ShapeLine,
			X:     x,
			Y:     f.Top,
			H:     f.Height,
			Label: t.Label,
			Fill:  d.style.Axis,
		})
	}

	if f.Model != nil {
		for _, b := range f.Model.Bands {
			d.band(f, b, add)
		}
	}

	d.layer.Upsert(out...)

	var gone []string
	d.visible.Each(func(id string) {
		if !next.Has(id) {
			gone = append(gone, id)
		}
	})
	for _, id := range gone {
		delete(d.current, id)
	}
	d.layer.Remove(gone...)
	for _, el := range out {
		d.current[el.ID] = el
	}
	d.visible = next
}

func (d *Driver) band(f Frame, b entities.Band, add func(Element)) {
	x0, x1 := f.x(b.Start), f.x(b.End)
	y0, y1 := f.y(b.Y), f.y(b.Y+b.H)
	add(Element{
		ID:          ElementID(state.KindBand, b.ID),
		Kind:        state.KindBand,
		Ref:         b.ID,
		Layer:       LayerBands,
		Shape:       ShapeRect,
		X:           x0,
		Y:           y0,
		W:           x1 - x0,
		H:           y1 - y0,
		Label:       b.Name,
		Fill:        b.Color,
		Interactive: f.Mode == view.Overview,
	})

	for _, s := range b.Segments {
		sx0, sx1 := f.x(s.Start), f.x(s.End)
		sy0, sy1 := f.y(s.Y), f.y(s.Y+s.H)
		add(Element{
			ID:          ElementID(state.KindSegment, s.ID),
			Kind:        state.KindSegment,
			Ref:         s.ID,
			Owner:       b.ID,
			Layer:       LayerSegments,
			Shape:       ShapeRect,
			X:           sx0,
			Y:           sy0,
			W:           sx1 - sx0,
			H:           sy1 - sy0,
			Label:       s.Label,
			Fill:        b.Color,
			Interactive: f.Mode == view.Detail,
		})
	}

	// The label follows the band's left edge but stays on screen while any
	// part of the band is.
	size := f.LabelSize
	if size <= 0 {
		size = 12
	}
	lx := math.Max(x0, f.Left) + 4
	if lx < x1 {
		add(Element{
			ID:    "label:" + b.ID,
			Ref:   b.ID,
			Owner: b.ID,
			Layer: LayerLabels,
			Shape: ShapeText,
			X:     lx,
			Y:     y0 + 2,
			W:     tooltip.TextWidth(b.Name, size),
			H:     size,
			Label: b.Name,
			Fill:  d.style.Text,
		})
	}

	r := f.Lanes.Radius
	for _, sp := range f.Model.SpansByBand(b.ID) {
		sx0, sx1 := f.x(sp.Start), f.x(sp.End)
		owner, _ := f.Model.SpanOwner(sp.ID)
		add(Element{
			ID:          ElementID(state.KindSpan, sp.ID),
			Kind:        state.KindSpan,
			Ref:         sp.ID,
			Owner:       owner.ID,
			Layer:       LayerSpans,
			Shape:       ShapeLine,
			X:           sx0,
			Y:           f.y(sp.Y),
			W:           sx1 - sx0,
			R:           r,
			Label:       sp.Name,
			Fill:        d.style.Author,
			Interactive: f.Mode == view.Detail,
		})
	}

	instants := f.Model.InstantsByBand(b.ID)
	if len(instants) == 0 {
		return
	}
	marks := make([]layout.Mark, len(instants))
	byID := make(map[string]entities.Instant, len(instants))
	for i, in := range instants {
		marks[i] = layout.Mark{ID: in.ID, X: f.x(in.When), BaseY: f.y(in.BaseY)}
		byID[in.ID] = in
	}
	extent := layout.Extent{Top: y0, Bottom: y1, Pad: f.BandPad * f.K}
	for _, p := range layout.Assign(marks, extent, f.Lanes) {
		in := byID[p.ID]
		owner, _ := f.Model.InstantOwner(in.ID)
		add(Element{
			ID:          ElementID(state.KindInstant, in.ID),
			Kind:        state.KindInstant,
			Ref:         in.ID,
			Owner:       owner.ID,
			Layer:       LayerInstants,
			Shape:       ShapeCircle,
			X:           p.X,
			Y:           p.Y,
			R:           r,
			Label:       in.Title,
			Fill:        d.style.Work,
			Interactive: f.Mode == view.Detail,
		})
	}
}

// shows reports whether any part of el falls inside the plot rectangle.
func (f Frame) shows(el Element) bool {
	b := Bounds(el)
	return b.Right >= f.Left && b.Left <= f.Left+f.Width &&
		b.Top+b.Height >= f.Top && b.Top <= f.Top+f.Height
}

// Restyle updates the attributes of elements whose emphasis changed under
// s and returns how many were touched.
func (d *Driver) Restyle(s state.State) int {
	d.state = s
	n := 0
	for id, el := range d.current {
		a := d.attrs(el)
		if a == el.Attrs {
			continue
		}
		el.Attrs = a
		d.current[id] = el
		d.layer.SetAttributes(id, a)
		n++
	}
	return n
}

// Locate returns the current on-screen bounds of a rendered element.
func (d *Driver) Locate(id string) (tooltip.Bounds, bool) {
	el, ok := d.current[id]
	if !ok {
		return tooltip.Bounds{}, false
	}
	return Bounds(el), true
}

// Element returns the element as last rendered.
func (d *Driver) Element(id string) (Element, bool) {
	el, ok := d.current[id]
	return el, ok
}

// Bounds is the axis-aligned box around an element.
func Bounds(el Element) tooltip.Bounds {
	switch el.Shape {
	case ShapeCircle:
		return tooltip.Bounds{Left: el.X - el.R, Right: el.X + el.R, Top: el.Y - el.R, Height: 2 * el.R}
	case ShapeLine:
		x0, x1 := math.Min(el.X, el.X+el.W), math.Max(el.X, el.X+el.W)
		y0, y1 := math.Min(el.Y, el.Y+el.H), math.Max(el.Y, el.Y+el.H)
		return tooltip.Bounds{Left: x0, Right: x1, Top: y0 - el.R, Height: y1 - y0 + 2*el.R}
	}
	return tooltip.Bounds{Left: el.X, Right: el.X + el.W, Top: el.Y, Height: el.H}
}
