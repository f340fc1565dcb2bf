package renderer

import "chronoscope/pkg/chart/state"

var (
	bandOpacity  = [...]float64{state.EmphasisBase: 0.35, state.EmphasisHover: 0.55, state.EmphasisPreview: 0.55, state.EmphasisActive: 0.75}
	labelOpacity = [...]float64{state.EmphasisBase: 0.6, state.EmphasisHover: 0.85, state.EmphasisPreview: 0.85, state.EmphasisActive: 1}
	markOpacity  = [...]float64{state.EmphasisBase: 0.8, state.EmphasisHover: 1, state.EmphasisPreview: 1, state.EmphasisActive: 1}
)

// attrs derives an element's style from the current interaction state.
func (d *Driver) attrs(el Element) Attrs {
	s := d.state
	switch el.Layer {
	case LayerBands:
		e := state.BandEmphasis(s, el.Ref)
		a := Attrs{Opacity: bandOpacity[e]}
		if e == state.EmphasisActive {
			a.Stroke, a.StrokeWidth = d.style.Highlight, 2
		}
		return a
	case LayerSegments:
		a := Attrs{Opacity: 0.5, Stroke: d.style.Muted, StrokeWidth: 0.5}
		switch state.SegmentEmphasis(s, el.Ref) {
		case state.EmphasisHover:
			a.Opacity, a.Stroke, a.StrokeWidth = 0.65, d.style.Text, 1.5
		case state.EmphasisPreview:
			a.Stroke, a.StrokeWidth = d.style.Preview, 2
		case state.EmphasisActive:
			a.Opacity, a.Stroke, a.StrokeWidth = 0.8, d.style.Highlight, 2.5
		}
		return a
	case LayerLabels:
		return Attrs{Opacity: labelOpacity[state.LabelEmphasis(s, el.Ref)]}
	case LayerSpans, LayerInstants:
		e := state.MarkEmphasis(s, el.Kind, el.Ref)
		a := Attrs{Opacity: markOpacity[e], StrokeWidth: 2}
		if el.Layer == LayerInstants {
			a.StrokeWidth = 0
		}
		switch e {
		case state.EmphasisHover:
			a.Stroke, a.StrokeWidth = d.style.Text, 1.5
		case state.EmphasisActive:
			a.Stroke, a.StrokeWidth = d.style.Highlight, 2
		}
		return a
	}
	return Attrs{Opacity: 1}
}
