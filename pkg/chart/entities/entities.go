// Package entities turns raw records into the immutable timeline model:
// bands with their segments, and the author and text marks drawn over them.
// Vertical geometry is resolved here in base pixels; horizontal geometry
// stays in years until the render driver maps it through the zoomed scale.
package entities

import (
	"hash/fnv"

	"chronoscope/pkg/chart/records"
	"chronoscope/pkg/engine/chrono"
)

// Band is a resolved duration row.
type Band struct {
	ID       string
	Index    int
	Name     string
	Color    string
	Note     string
	Start    float64
	End      float64
	Y        float64
	H        float64
	Segments []Segment
}

// PaddedExtent is the vertical range marks may occupy inside the band.
func (b Band) PaddedExtent(pad float64) (top, bottom float64) {
	top, bottom = b.Y+pad, b.Y+b.H-pad
	if bottom < top {
		mid := b.Y + b.H/2
		return mid, mid
	}
	return top, bottom
}

// Segment is a resolved sub-interval of a band.
type Segment struct {
	ID     string
	BandID string
	Index  int
	Start  float64
	End    float64
	Label  string
	Note   string
	Y      float64
	H      float64
}

// Contains reports whether year and y fall inside the segment.
func (s Segment) Contains(year, y float64) bool {
	return year >= s.Start && year <= s.End && y >= s.Y && y <= s.Y+s.H
}

// Span is an author lifespan mark.
type Span struct {
	ID     string
	BandID string
	Name   string
	Note   string
	Start  float64
	End    float64
	Y      float64
}

// Instant is a dated work mark. BaseY is the preferred vertical position
// before lane assignment.
type Instant struct {
	ID     string
	BandID string
	Title  string
	Note   string
	When   float64
	BaseY  float64
}

// Dropped counts records left out of the model, per kind.
type Dropped struct {
	Bands    int
	Segments int
	Spans    int
	Instants int
}

// Total is the sum over all kinds.
func (d Dropped) Total() int { return d.Bands + d.Segments + d.Spans + d.Instants }

// Options controls slot resolution.
type Options struct {
	BarHeight float64 // Band thickness when a record gives none
	BandGap   float64 // Gap between index-stacked bands
	BandPad   float64 // Vertical padding marks keep from band edges
	Palette   []string
}

// Model is the built timeline. It is read-only after Build.
type Model struct {
	Bands    []Band
	Spans    []Span
	Instants []Instant
	Dropped  Dropped

	opts     Options
	bandIdx  map[string]int
	segIdx   map[string][2]int
	spanIdx  map[string]int
	instIdx  map[string]int
	instBand map[string][]int
	spanBand map[string][]int
}

// HashString maps seed to a stable value in [0,1) using 32-bit FNV-1a.
func HashString(seed string) float64 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return float64(h.Sum32()) / (1 << 32)
}

// Build resolves recs against a plot of the given inner height. Malformed
// records are skipped and counted in Model.Dropped.
func Build(recs records.Set, innerHeight float64, opts Options) *Model {
	if opts.BarHeight <= 0 {
		opts.BarHeight = 40
	}
	m := &Model{
		opts:     opts,
		bandIdx:  make(map[string]int),
		segIdx:   make(map[string][2]int),
		spanIdx:  make(map[string]int),
		instIdx:  make(map[string]int),
		instBand: make(map[string][]int),
		spanBand: make(map[string][]int),
	}

	for _, rec := range recs.Bands {
		b, ok := m.buildBand(rec, innerHeight)
		if !ok {
			m.Dropped.Bands++
			continue
		}
		m.bandIdx[b.ID] = len(m.Bands)
		for si, s := range b.Segments {
			m.segIdx[s.ID] = [2]int{len(m.Bands), si}
		}
		m.Bands = append(m.Bands, b)
	}

	for _, rec := range recs.Authors {
		s, ok := m.buildSpan(rec)
		if !ok {
			m.Dropped.Spans++
			continue
		}
		m.spanIdx[s.ID] = len(m.Spans)
		m.spanBand[s.BandID] = append(m.spanBand[s.BandID], len(m.Spans))
		m.Spans = append(m.Spans, s)
	}

	for _, rec := range recs.Texts {
		in, ok := m.buildInstant(rec)
		if !ok {
			m.Dropped.Instants++
			continue
		}
		m.instIdx[in.ID] = len(m.Instants)
		m.instBand[in.BandID] = append(m.instBand[in.BandID], len(m.Instants))
		m.Instants = append(m.Instants, in)
	}
	return m
}

func (m *Model) buildBand(rec records.Band, innerHeight float64) (Band, bool) {
	if rec.ID == "" {
		return Band{}, false
	}
	if _, dup := m.bandIdx[rec.ID]; dup {
		return Band{}, false
	}
	index := len(m.Bands)
	b := Band{
		ID:    rec.ID,
		Index: index,
		Name:  rec.Name,
		Color: rec.Color,
		Note:  rec.Note,
	}
	if b.Name == "" {
		b.Name = b.ID
	}
	if b.Color == "" && len(m.opts.Palette) > 0 {
		b.Color = m.opts.Palette[index%len(m.opts.Palette)]
	}
	b.H = height(rec.H, rec.HRel, innerHeight, m.opts.BarHeight)
	b.Y = resolve(rec.Y, rec.YRel, innerHeight, float64(index)*(m.opts.BarHeight+m.opts.BandGap))

	var bounds []float64
	for i, srec := range rec.Segments {
		s, ok := buildSegment(b, i, srec, innerHeight)
		if !ok {
			m.Dropped.Segments++
			continue
		}
		b.Segments = append(b.Segments, s)
		bounds = append(bounds, s.Start, s.End)
	}
	if len(bounds) == 0 {
		if !year(rec.Start) || !year(rec.End) {
			return Band{}, false
		}
		bounds = []float64{*rec.Start, *rec.End}
	}
	b.Start, b.End, _ = chrono.Extent(bounds...)
	if len(b.Segments) == 0 && *rec.Start > *rec.End {
		return Band{}, false
	}
	return b, true
}

func buildSegment(b Band, i int, rec records.Segment, innerHeight float64) (Segment, bool) {
	if !year(rec.Start) || !year(rec.End) || *rec.Start > *rec.End {
		return Segment{}, false
	}
	return Segment{
		ID:     SegmentID(b.ID, i),
		BandID: b.ID,
		Index:  i,
		Start:  *rec.Start,
		End:    *rec.End,
		Label:  rec.Label,
		Note:   rec.Note,
		Y:      resolve(rec.Y, rec.YRel, innerHeight, b.Y),
		H:      height(rec.H, rec.HRel, innerHeight, b.H),
	}, true
}

func (m *Model) buildSpan(rec records.Author) (Span, bool) {
	if rec.ID == "" || !year(rec.Start) || !year(rec.End) || *rec.Start > *rec.End {
		return Span{}, false
	}
	if _, dup := m.spanIdx[rec.ID]; dup {
		return Span{}, false
	}
	b, ok := m.Band(rec.DurationID)
	if !ok || *rec.End < b.Start || *rec.Start > b.End {
		return Span{}, false
	}
	name := rec.Name
	if name == "" {
		name = rec.ID
	}
	return Span{
		ID:     rec.ID,
		BandID: b.ID,
		Name:   name,
		Note:   rec.Note,
		Start:  *rec.Start,
		End:    *rec.End,
		Y:      m.hashedY(b, name),
	}, true
}

func (m *Model) buildInstant(rec records.Text) (Instant, bool) {
	if rec.ID == "" || !year(rec.Year) {
		return Instant{}, false
	}
	if _, dup := m.instIdx[rec.ID]; dup {
		return Instant{}, false
	}
	b, ok := m.Band(rec.DurationID)
	if !ok || *rec.Year < b.Start || *rec.Year > b.End {
		return Instant{}, false
	}
	title := rec.Title
	if title == "" {
		title = rec.ID
	}
	return Instant{
		ID:     rec.ID,
		BandID: b.ID,
		Title:  title,
		Note:   rec.Note,
		When:   *rec.Year,
		BaseY:  m.hashedY(b, title),
	}, true
}

// hashedY places a mark inside the band's padded extent from a hash of the
// band and mark name, so the position survives reloads.
func (m *Model) hashedY(b Band, name string) float64 {
	top, bottom := b.PaddedExtent(m.opts.BandPad)
	return top + HashString(b.ID+"|"+name)*(bottom-top)
}

// resolve picks an absolute value, then a height-relative one, then def.
func resolve(abs, rel *float64, innerHeight, def float64) float64 {
	if abs != nil && chrono.IsFinite(*abs) {
		return *abs
	}
	if rel != nil && chrono.IsFinite(*rel) {
		return *rel * innerHeight
	}
	return def
}

// height is resolve for thicknesses, which must be positive. A zero or
// negative value falls back to def.
func height(abs, rel *float64, innerHeight, def float64) float64 {
	if h := resolve(abs, rel, innerHeight, def); h > 0 {
		return h
	}
	return def
}

func year(v *float64) bool { return v != nil && chrono.IsFinite(*v) }
