package chrono

import (
	"math"
	"testing"
)

func TestToAstro_RoundTrip(t *testing.T) {
	for y := -5000; y <= 5000; y++ {
		if y == 0 {
			continue
		}
		got := FromAstro(ToAstro(float64(y)))
		if got != float64(y) {
			t.Fatalf("FromAstro(ToAstro(%d)) = %v, want %d", y, got, y)
		}
		if got == 0 {
			t.Fatalf("round trip of %d produced year zero", y)
		}
	}
}

func TestToAstro_NoYearZero(t *testing.T) {
	cases := []struct {
		human, astro float64
	}{
		{1, 1},
		{-1, 0},
		{-2, -1},
		{-3100, -3099},
		{2025, 2025},
	}
	for _, c := range cases {
		if got := ToAstro(c.human); got != c.astro {
			t.Errorf("ToAstro(%v) = %v, want %v", c.human, got, c.astro)
		}
		if got := FromAstro(c.astro); got != c.human {
			t.Errorf("FromAstro(%v) = %v, want %v", c.astro, got, c.human)
		}
	}
	// Astronomical zero is 1 BCE, never human zero.
	if got := FromAstro(0); got != -1 {
		t.Errorf("FromAstro(0) = %v, want -1", got)
	}
}

func TestFormatYear(t *testing.T) {
	cases := map[float64]string{
		-3100: "3100 BCE",
		2025:  "2025 CE",
		0:     "—",
		-1:    "1 BCE",
		1:     "1 CE",
		1.4:   "1 CE",
	}
	for in, want := range cases {
		if got := FormatYear(in); got != want {
			t.Errorf("FormatYear(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestExtent_SkipsNonFinite(t *testing.T) {
	lo, hi, ok := Extent(math.NaN(), 10, -5, math.Inf(1), 3)
	if !ok || lo != -5 || hi != 10 {
		t.Errorf("Extent = (%v, %v, %v), want (-5, 10, true)", lo, hi, ok)
	}
	if _, _, ok := Extent(math.NaN()); ok {
		t.Error("Extent(NaN) ok = true, want false")
	}
}

func TestTicks_SpansEraBoundary(t *testing.T) {
	ticks := Ticks(-1200, 1100, 500)
	want := []Tick{
		{-999, "1000 BCE"},
		{-499, "500 BCE"},
		{EraBoundary, "0"},
		{500, "500 CE"},
		{1000, "1000 CE"},
	}
	if len(ticks) != len(want) {
		t.Fatalf("Ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("Ticks[%d] = %v, want %v", i, ticks[i], want[i])
		}
	}
}

func TestTicks_NoBoundaryWhenAllCE(t *testing.T) {
	for _, tk := range Ticks(100, 2100, 500) {
		if tk.Label == "0" {
			t.Errorf("Ticks(100, 2100) contains era boundary tick")
		}
	}
}

func TestTicks_SortedAscending(t *testing.T) {
	ticks := Ticks(-3000, 2000, 500)
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Astro <= ticks[i-1].Astro {
			t.Fatalf("ticks not ascending at %d: %v then %v", i, ticks[i-1], ticks[i])
		}
	}
}

func TestLinearScale_ApplyInvert(t *testing.T) {
	s := BaseX(-3000, 2000, 1000)
	if got := s.Apply(ToAstro(-3000)); got != 0 {
		t.Errorf("Apply(min) = %v, want 0", got)
	}
	if got := s.Apply(ToAstro(2000)); got != 1000 {
		t.Errorf("Apply(max) = %v, want 1000", got)
	}
	for _, px := range []float64{0, 123.5, 999} {
		if got := s.Apply(s.Invert(px)); math.Abs(got-px) > 1e-9 {
			t.Errorf("Apply(Invert(%v)) = %v", px, got)
		}
	}
}

func TestBaseY_Identity(t *testing.T) {
	s := BaseY(480)
	for _, v := range []float64{0, 12, 480} {
		if got := s.Apply(v); got != v {
			t.Errorf("BaseY.Apply(%v) = %v, want %v", v, got, v)
		}
	}
}
