package chrono

// LinearScale is a continuous linear map from a domain interval to a range
// interval. The zero value maps everything to 0.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns the scale mapping [d0,d1] onto [r0,r1].
func NewLinear(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{D0: d0, D1: d1, R0: r0, R1: r1}
}

// BaseX builds the horizontal base scale for a human-year domain spread over
// innerWidth pixels.
func BaseX(domainMin, domainMax, innerWidth float64) LinearScale {
	return NewLinear(ToAstro(domainMin), ToAstro(domainMax), 0, innerWidth)
}

// BaseY is the vertical identity scale. It exists so zoom can rescale it the
// same way as the horizontal one.
func BaseY(innerHeight float64) LinearScale {
	return NewLinear(0, innerHeight, 0, innerHeight)
}

// Apply maps a domain value to the range.
func (s LinearScale) Apply(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)*(s.R1-s.R0)/(s.D1-s.D0)
}

// Invert maps a range value back to the domain.
func (s LinearScale) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (px-s.R0)*(s.D1-s.D0)/(s.R1-s.R0)
}

// WithDomain returns a copy of the scale with a new domain.
func (s LinearScale) WithDomain(d0, d1 float64) LinearScale {
	s.D0, s.D1 = d0, d1
	return s
}

// Domain returns the domain bounds.
func (s LinearScale) Domain() (float64, float64) { return s.D0, s.D1 }

// Range returns the range bounds.
func (s LinearScale) Range() (float64, float64) { return s.R0, s.R1 }
