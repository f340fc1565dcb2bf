package tooltip

import (
	"strings"
	"unicode/utf8"
)

// Text metrics used when no font backend is available to measure with.
const (
	charWidthRatio  = 0.6
	lineHeightRatio = 1.4
)

// TextOptions controls EstimateSize.
type TextOptions struct {
	FontSize float64
	MaxWidth float64 // Wrap width of the text, without padding
	Padding  float64 // Inner padding on every side
}

// TextWidth is the estimated width of a single line.
func TextWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * charWidthRatio
}

// Wrap breaks lines on spaces so that none is estimated wider than maxWidth.
// A single word longer than maxWidth stays on its own line.
func Wrap(lines []string, fontSize, maxWidth float64) []string {
	if maxWidth <= 0 {
		return lines
	}
	var out []string
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if TextWidth(cur+" "+w, fontSize) > maxWidth {
				out = append(out, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		out = append(out, cur)
	}
	return out
}

// EstimateSize returns the wrapped lines and the box they need.
func EstimateSize(lines []string, o TextOptions) ([]string, Size) {
	wrapped := Wrap(lines, o.FontSize, o.MaxWidth)
	var w float64
	for _, l := range wrapped {
		w = max(w, TextWidth(l, o.FontSize))
	}
	h := float64(len(wrapped)) * o.FontSize * lineHeightRatio
	return wrapped, Size{W: w + 2*o.Padding, H: h + 2*o.Padding}
}
