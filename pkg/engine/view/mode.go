package view

// Mode is the interaction mode selected by the zoom factor.
type Mode int

const (
	// Overview selects whole bands.
	Overview Mode = iota
	// Detail selects segments and marks.
	Detail
)

// ModeFor returns Detail when k has reached threshold.
func ModeFor(k, threshold float64) Mode {
	if k >= threshold {
		return Detail
	}
	return Overview
}

func (m Mode) String() string {
	if m == Detail {
		return "detail"
	}
	return "overview"
}
