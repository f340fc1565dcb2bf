package entities

import (
	"path/filepath"
	"testing"

	"chronoscope/pkg/chart/records"
)

var y = records.Year

func testOptions() Options {
	return Options{BarHeight: 40, BandGap: 10, BandPad: 5, Palette: []string{"#111111", "#222222"}}
}

func testSet() records.Set {
	return records.Set{
		Bands: []records.Band{
			{
				ID:   "a",
				Name: "Alpha",
				Segments: []records.Segment{
					{Start: y(-500), End: y(-100), Label: "early"},
					{Start: y(-100), End: y(200), Label: "late"},
				},
			},
			{ID: "b", Start: y(0), End: y(1000), Slot: records.Slot{YRel: y(0.5), HRel: y(0.25)}},
		},
		Authors: []records.Author{
			{ID: "p", DurationID: "a", Name: "P", Start: y(-300), End: y(-250)},
			{ID: "q", DurationID: "b", Name: "Q", Start: y(-50), End: y(20)},
		},
		Texts: []records.Text{
			{ID: "t1", DurationID: "a", Title: "One", Year: y(-400)},
			{ID: "t2", DurationID: "b", Title: "Two", Year: y(500)},
		},
	}
}

func TestBuildBandExtentFromSegments(t *testing.T) {
	m := Build(testSet(), 400, testOptions())
	b, ok := m.Band("a")
	if !ok {
		t.Fatal("band a missing")
	}
	if b.Start != -500 || b.End != 200 {
		t.Errorf("band a extent = [%v,%v], want [-500,200]", b.Start, b.End)
	}
	if len(b.Segments) != 2 || b.Segments[1].ID != "a/1" {
		t.Errorf("segments = %+v, want two with second a/1", b.Segments)
	}
	if b.Color != "#111111" {
		t.Errorf("palette color = %q, want #111111", b.Color)
	}
}

func TestBuildSlots(t *testing.T) {
	m := Build(testSet(), 400, testOptions())
	a, _ := m.Band("a")
	if a.Y != 0 || a.H != 40 {
		t.Errorf("band a slot = (%v,%v), want (0,40)", a.Y, a.H)
	}
	b, _ := m.Band("b")
	if b.Y != 200 || b.H != 100 {
		t.Errorf("band b slot = (%v,%v), want (200,100)", b.Y, b.H)
	}
	s, _ := m.Segment("a/0")
	if s.Y != a.Y || s.H != a.H {
		t.Errorf("segment slot = (%v,%v), want inherited (%v,%v)", s.Y, s.H, a.Y, a.H)
	}

	// Relative slots follow the inner height.
	m2 := Build(testSet(), 800, testOptions())
	b2, _ := m2.Band("b")
	if b2.Y != 400 || b2.H != 200 {
		t.Errorf("band b slot at 800 = (%v,%v), want (400,200)", b2.Y, b2.H)
	}
}

func TestBuildDropsMalformed(t *testing.T) {
	set := testSet()
	set.Bands = append(set.Bands,
		records.Band{ID: "", Start: y(0), End: y(1)},
		records.Band{ID: "inverted", Start: y(10), End: y(1)},
		records.Band{ID: "a", Start: y(0), End: y(1)},
		records.Band{ID: "c", Start: y(0), End: y(10), Segments: []records.Segment{{Start: y(5)}}},
	)
	set.Authors = append(set.Authors,
		records.Author{ID: "nostart", DurationID: "a", End: y(1)},
		records.Author{ID: "outside", DurationID: "a", Start: y(500), End: y(600)},
		records.Author{ID: "orphan", DurationID: "zzz", Start: y(0), End: y(1)},
	)
	set.Texts = append(set.Texts,
		records.Text{ID: "noyear", DurationID: "a"},
		records.Text{ID: "outside", DurationID: "a", Year: y(201)},
		records.Text{ID: "t1", DurationID: "a", Year: y(0)},
	)
	m := Build(set, 400, testOptions())
	want := Dropped{Bands: 3, Segments: 1, Spans: 3, Instants: 3}
	if m.Dropped != want {
		t.Errorf("Dropped = %+v, want %+v", m.Dropped, want)
	}
	if _, ok := m.Band("c"); !ok {
		t.Error("band c with only a broken segment should fall back to its own bounds")
	}
}

func TestBuildNonPositiveHeightFallsBack(t *testing.T) {
	set := records.Set{Bands: []records.Band{
		{ID: "zero", Start: y(0), End: y(10), Slot: records.Slot{H: y(0)}},
		{ID: "neg", Start: y(0), End: y(10), Slot: records.Slot{HRel: y(-0.2)}},
		{
			ID:   "seg",
			Slot: records.Slot{H: y(30)},
			Segments: []records.Segment{
				{Start: y(0), End: y(5), Slot: records.Slot{H: y(-5)}},
				{Start: y(5), End: y(10), Slot: records.Slot{HRel: y(0)}},
			},
		},
	}}
	m := Build(set, 500, testOptions())
	if m.Dropped.Total() != 0 {
		t.Errorf("Dropped = %+v, want none", m.Dropped)
	}
	for _, id := range []string{"zero", "neg"} {
		b, ok := m.Band(id)
		if !ok {
			t.Fatalf("band %s missing", id)
		}
		if b.H != 40 {
			t.Errorf("band %s H = %v, want bar height 40", id, b.H)
		}
		if top, bottom := b.PaddedExtent(5); bottom <= top {
			t.Errorf("band %s padded extent [%v, %v] collapsed", id, top, bottom)
		}
	}
	b, _ := m.Band("seg")
	for _, s := range b.Segments {
		if s.H != 30 {
			t.Errorf("segment %s H = %v, want band height 30", s.ID, s.H)
		}
	}
}

func TestBuildDropsRecordWithUnreadableYear(t *testing.T) {
	set, err := records.Parse([]byte(`
bands: [{id: a, start: 0, end: 100}]
texts:
  - {id: t1, durationId: a, year: 10}
  - {id: t2, durationId: a, year: "c. 300 BCE"}
`))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	m := Build(set, 400, testOptions())
	if _, ok := m.Instant("t1"); !ok {
		t.Error("t1 dropped")
	}
	if _, ok := m.Instant("t2"); ok || m.Dropped.Instants != 1 {
		t.Errorf("t2 kept or not counted: Dropped = %+v", m.Dropped)
	}
}

func TestSpanOverlappingBandEdgeIsKept(t *testing.T) {
	m := Build(testSet(), 400, testOptions())
	if _, ok := m.Span("q"); !ok {
		t.Error("span q crossing the band start should be kept")
	}
}

func TestHashString(t *testing.T) {
	for _, seed := range []string{"", "a", "greek|Homer", "latin|Virgil"} {
		h := HashString(seed)
		if h < 0 || h >= 1 {
			t.Errorf("HashString(%q) = %v, want [0,1)", seed, h)
		}
		if h != HashString(seed) {
			t.Errorf("HashString(%q) is not deterministic", seed)
		}
	}
	// FNV-1a offset basis for the empty string.
	if got, want := HashString(""), 2166136261.0/4294967296.0; got != want {
		t.Errorf("HashString(\"\") = %v, want %v", got, want)
	}
}

func TestMarksInsidePaddedExtent(t *testing.T) {
	opts := testOptions()
	m := Build(testSet(), 400, opts)
	for _, s := range m.Spans {
		b, _ := m.Band(s.BandID)
		top, bottom := b.PaddedExtent(opts.BandPad)
		if s.Y < top || s.Y > bottom {
			t.Errorf("span %s y = %v, want within [%v,%v]", s.ID, s.Y, top, bottom)
		}
	}
	for _, in := range m.Instants {
		b, _ := m.Band(in.BandID)
		top, bottom := b.PaddedExtent(opts.BandPad)
		if in.BaseY < top || in.BaseY > bottom {
			t.Errorf("instant %s y = %v, want within [%v,%v]", in.ID, in.BaseY, top, bottom)
		}
	}
}

func TestOwningSegment(t *testing.T) {
	m := Build(testSet(), 400, testOptions())
	s, ok := m.InstantOwner("t1")
	if !ok || s.ID != "a/0" {
		t.Errorf("InstantOwner(t1) = %q, %v, want a/0", s.ID, ok)
	}
	s, ok = m.SpanOwner("p")
	if !ok || s.ID != "a/0" {
		t.Errorf("SpanOwner(p) = %q, %v, want a/0", s.ID, ok)
	}
	// The shared boundary year belongs to the first segment.
	s, ok = m.OwningSegment("a", -100, 20)
	if !ok || s.ID != "a/0" {
		t.Errorf("OwningSegment(a, -100) = %q, %v, want a/0", s.ID, ok)
	}
	if _, ok := m.OwningSegment("a", -100, 400); ok {
		t.Error("OwningSegment below the band should not match")
	}
	if _, ok := m.InstantOwner("t2"); ok {
		t.Error("band without segments has no owner")
	}
}

func TestDomainExtent(t *testing.T) {
	m := Build(testSet(), 400, testOptions())
	lo, hi, ok := m.DomainExtent()
	if !ok || lo != -500 || hi != 1000 {
		t.Errorf("DomainExtent = %v, %v, %v, want -500, 1000, true", lo, hi, ok)
	}
	empty := Build(records.Set{}, 400, testOptions())
	if _, _, ok := empty.DomainExtent(); ok {
		t.Error("empty model has a domain")
	}
}

func TestBuildSample(t *testing.T) {
	set, err := records.Load(filepath.Join("..", "..", "..", "testdata", "sample.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	m := Build(set, 600, testOptions())
	if m.Dropped.Instants != 2 {
		t.Errorf("sample dropped %d instants, want 2", m.Dropped.Instants)
	}
	if got := len(m.InstantsByBand("greek")); got != 7 {
		t.Errorf("greek instants = %d, want 7", got)
	}
}
