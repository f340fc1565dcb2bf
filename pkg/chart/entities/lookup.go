package entities

import (
	"strconv"

	"chronoscope/pkg/engine/chrono"
)

// SegmentID is the identifier of the i-th segment of a band.
func SegmentID(bandID string, i int) string {
	return bandID + "/" + strconv.Itoa(i)
}

// Band looks up a band by ID.
func (m *Model) Band(id string) (Band, bool) {
	i, ok := m.bandIdx[id]
	if !ok {
		return Band{}, false
	}
	return m.Bands[i], true
}

// Segment looks up a segment by ID.
func (m *Model) Segment(id string) (Segment, bool) {
	at, ok := m.segIdx[id]
	if !ok {
		return Segment{}, false
	}
	return m.Bands[at[0]].Segments[at[1]], true
}

// Span looks up an author mark by ID.
func (m *Model) Span(id string) (Span, bool) {
	i, ok := m.spanIdx[id]
	if !ok {
		return Span{}, false
	}
	return m.Spans[i], true
}

// Instant looks up a text mark by ID.
func (m *Model) Instant(id string) (Instant, bool) {
	i, ok := m.instIdx[id]
	if !ok {
		return Instant{}, false
	}
	return m.Instants[i], true
}

// InstantsByBand returns the text marks of a band in source order.
func (m *Model) InstantsByBand(bandID string) []Instant {
	idx := m.instBand[bandID]
	out := make([]Instant, len(idx))
	for i, j := range idx {
		out[i] = m.Instants[j]
	}
	return out
}

// SpansByBand returns the author marks of a band in source order.
func (m *Model) SpansByBand(bandID string) []Span {
	idx := m.spanBand[bandID]
	out := make([]Span, len(idx))
	for i, j := range idx {
		out[i] = m.Spans[j]
	}
	return out
}

// DomainExtent is the year range covered by all bands.
func (m *Model) DomainExtent() (lo, hi float64, ok bool) {
	vals := make([]float64, 0, 2*len(m.Bands))
	for _, b := range m.Bands {
		vals = append(vals, b.Start, b.End)
	}
	return chrono.Extent(vals...)
}

// OwningSegment returns the first segment of the band containing both the
// year and the vertical position y.
func (m *Model) OwningSegment(bandID string, year, y float64) (Segment, bool) {
	b, ok := m.Band(bandID)
	if !ok {
		return Segment{}, false
	}
	for _, s := range b.Segments {
		if s.Contains(year, y) {
			return s, true
		}
	}
	return Segment{}, false
}

// SpanOwner is the owning segment of an author mark, located by its start year.
func (m *Model) SpanOwner(id string) (Segment, bool) {
	s, ok := m.Span(id)
	if !ok {
		return Segment{}, false
	}
	return m.OwningSegment(s.BandID, s.Start, s.Y)
}

// InstantOwner is the owning segment of a text mark.
func (m *Model) InstantOwner(id string) (Segment, bool) {
	in, ok := m.Instant(id)
	if !ok {
		return Segment{}, false
	}
	return m.OwningSegment(in.BandID, in.When, in.BaseY)
}
