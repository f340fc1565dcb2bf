package tui

import (
	stdcolor "image/color"
	"math"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/renderer"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/chart/tooltip"
)

// clip is the plot rectangle in pixels.
type clip struct {
	left, top, right, bottom float64
}

// Frame sizes the session to a cols x rows terminal and paints one frame.
// The last row is the status line.
func (t *TUIRenderer) Frame(cols, rows int) *Canvas {
	t.cols, t.rows = cols, rows
	plotRows := max(rows-1, 1)
	t.sess.Resize(float64(cols)*cellW, float64(plotRows)*cellH)

	cv := NewCanvas(cols, rows, cellW, cellH, t.colors.background)
	left, top, w, h := t.sess.PlotRect()
	c := clip{left: left, top: top, right: left + w, bottom: top + h}
	t.sess.Scene().Each(func(el renderer.Element) {
		t.paintElement(cv, el, c)
	})

	if tip := t.sess.Tooltip(); tip.Visible {
		t.paintBox(cv, tip.Lines, tip.At, tip.Size, t.colors.muted)
	}
	if sel, at, ok := t.sess.Detail(); ok {
		t.paintBox(cv, sel.Lines, at, sel.Size, t.colors.highlight)
	}
	t.paintStatus(cv)
	if t.sess.HelpVisible() {
		t.paintHelp(cv)
	}
	return cv
}

func (t *TUIRenderer) paintElement(cv *Canvas, el renderer.Element, c clip) {
	bg := t.colors.background
	fill := blend(config.MustHex(el.Fill, t.colors.text), bg, el.Attrs.Opacity)
	stroked := el.Attrs.Stroke != "" && el.Attrs.StrokeWidth > 0
	stroke := config.MustHex(el.Attrs.Stroke, t.colors.highlight)

	switch el.Shape {
	case renderer.ShapeRect:
		x0, x1 := math.Max(el.X, c.left), math.Min(el.X+el.W, c.right)
		y0, y1 := math.Max(el.Y, c.top), math.Min(el.Y+el.H, c.bottom)
		if x1 <= x0 || y1 <= y0 {
			return
		}
		cv.FillRect(x0, y0, x1, y1, fill)
		// Thin default outlines would fill every cell of a small terminal.
		if stroked && el.Attrs.StrokeWidth >= 1.5 {
			cv.BorderRect(x0, y0, x1, y1, stroke)
		}
		if el.Layer == renderer.LayerSegments && el.Label != "" {
			c0, c1 := span(x0, x1, cellW)
			_, r1 := span(y0, y1, cellH)
			if utf8.RuneCountInString(el.Label)+2 <= c1-c0 {
				cv.Text(c0+1, r1, el.Label, blend(t.colors.text, bg, 0.7), c1)
			}
		}

	case renderer.ShapeLine:
		if el.Layer == renderer.LayerGrid {
			if el.X < c.left || el.X > c.right {
				return
			}
			cv.VLine(el.X, el.Y, el.Y+el.H, '│', blend(t.colors.axis, bg, 0.5))
			col := cv.Col(el.X) - utf8.RuneCountInString(el.Label)/2
			cv.Text(col, cv.Row(c.bottom+4), el.Label, t.colors.muted, cv.Cols)
			return
		}
		x0, x1 := math.Max(el.X, c.left), math.Min(el.X+el.W, c.right)
		if x1 < x0 {
			return
		}
		ch, fg := '─', fill
		if stroked {
			ch, fg = '━', stroke
		}
		cv.HLine(x0, x1, el.Y, ch, fg)

	case renderer.ShapeCircle:
		if stroked {
			cv.Put(el.X, el.Y, '◉', stroke)
			return
		}
		cv.Put(el.X, el.Y, '●', fill)

	case renderer.ShapeText:
		if el.X >= c.right {
			return
		}
		cv.Text(cv.Col(el.X), cv.Row(el.Y), el.Label, fill, cv.Col(c.right))
	}
}

// paintBox converts a pixel-placed tooltip to cells. Cells are coarser than
// the estimate, so the box grows to fit its lines and is pulled back on
// screen.
func (t *TUIRenderer) paintBox(cv *Canvas, lines []string, at tooltip.Point, size tooltip.Size, border stdcolor.RGBA) {
	w := int(math.Ceil(size.W / cellW))
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l)+2)
	}
	h := max(int(math.Ceil(size.H/cellH)), len(lines)+2)
	w, h = min(w, cv.Cols), min(h, cv.Rows-1)
	col := max(0, min(cv.Col(at.Left), cv.Cols-w))
	row := max(0, min(cv.Row(at.Top), cv.Rows-1-h))
	cv.Box(col, row, w, h, lines, t.colors.text, border, t.colors.tooltip)
}

func (t *TUIRenderer) paintStatus(cv *Canvas) {
	row := cv.Rows - 1
	status := t.sess.Status()
	if t.selected != "" {
		status += " · " + t.selected
	}
	cv.Text(1, row, status, t.colors.muted, cv.Cols)
	hint := gotext.Get("? help")
	cv.Text(cv.Cols-utf8.RuneCountInString(hint)-1, row, hint, t.colors.muted, cv.Cols)
}

func (t *TUIRenderer) paintHelp(cv *Canvas) {
	lines := session.HelpLines()
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l)+4)
	}
	h := len(lines) + 2
	col := max(0, (cv.Cols-w)/2)
	row := max(0, (cv.Rows-1-h)/2)
	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = " " + l
	}
	cv.Box(col, row, w, h, padded, t.colors.text, t.colors.highlight, t.colors.tooltip)
}
