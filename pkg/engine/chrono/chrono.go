// Package chrono maps calendar years onto a continuous numeric line and from
// there onto pixels.
//
// Human years have no year zero: 1 BCE is followed directly by 1 CE. The
// astronomical numbering used internally inserts that missing zero so that
// date arithmetic stays linear (1 BCE = 0, 2 BCE = -1, ...).
package chrono

import (
	"math"
	"strconv"
)

// EraBoundary is the astronomical position of the synthetic "0" tick, halfway
// between 1 BCE and 1 CE.
const EraBoundary = 0.5

// DefaultTickInterval is the spacing of axis ticks in human years.
const DefaultTickInterval = 500

// ToAstro converts a human year to its astronomical equivalent.
func ToAstro(y float64) float64 {
	if y <= 0 {
		return y + 1
	}
	return y
}

// FromAstro converts an astronomical year back to human numbering.
func FromAstro(a float64) float64 {
	if a <= 0 {
		return a - 1
	}
	return a
}

// FormatYear renders a human year for display: "3100 BCE", "2025 CE", or an
// em-dash for zero, which is never a real year.
func FormatYear(y float64) string {
	r := math.Round(y)
	switch {
	case r < 0:
		return strconv.FormatInt(int64(-r), 10) + " BCE"
	case r > 0:
		return strconv.FormatInt(int64(r), 10) + " CE"
	default:
		return "—"
	}
}

// FormatRange renders "start – end" using FormatYear for both ends.
func FormatRange(start, end float64) string {
	return FormatYear(start) + " – " + FormatYear(end)
}

// IsFinite reports whether v is usable as a year.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Extent returns the minimum and maximum of the finite values. ok is false
// when there are none.
func Extent(values ...float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if !IsFinite(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// Tick is one labeled position on the time axis, in astronomical units.
type Tick struct {
	Astro float64
	Label string
}

// Ticks returns axis ticks every interval human years within [min, max], plus
// the synthetic era-boundary tick labeled "0" when the domain crosses it.
// Year zero itself is skipped since it does not exist.
func Ticks(min, max float64, interval int) []Tick {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if min > max {
		min, max = max, min
	}
	step := float64(interval)
	var ticks []Tick
	boundaryAdded := false
	addBoundary := func() {
		if boundaryAdded {
			return
		}
		boundaryAdded = true
		if ToAstro(min) <= EraBoundary && EraBoundary <= ToAstro(max) {
			ticks = append(ticks, Tick{Astro: EraBoundary, Label: "0"})
		}
	}
	for y := math.Ceil(min/step) * step; y <= max; y += step {
		if y == 0 {
			addBoundary()
			continue
		}
		if y > 0 {
			addBoundary()
		}
		ticks = append(ticks, Tick{Astro: ToAstro(y), Label: FormatYear(y)})
	}
	addBoundary()
	return ticks
}
