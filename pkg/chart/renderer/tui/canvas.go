package tui

import (
	"fmt"
	stdcolor "image/color"
	"io"
	"math"
	"strings"

	"github.com/gookit/color"
)

// cell is one terminal character with its colors.
type cell struct {
	ch     rune
	fg, bg stdcolor.RGBA
}

// Canvas is a grid of terminal cells. Drawing calls take pixel coordinates
// and map them through a fixed cell size, so scene geometry computed for a
// pixel viewport can be painted unchanged.
type Canvas struct {
	Cols, Rows   int
	CellW, CellH float64

	cells []cell
}

// NewCanvas returns a cols x rows canvas cleared to bg.
func NewCanvas(cols, rows int, cellW, cellH float64, bg stdcolor.RGBA) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH, cells: make([]cell, cols*rows)}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: bg, bg: bg}
	}
	return c
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return nil
	}
	return &c.cells[row*c.Cols+col]
}

// Rune returns the character at a cell, 0 outside the canvas.
func (c *Canvas) Rune(col, row int) rune {
	if p := c.at(col, row); p != nil {
		return p.ch
	}
	return 0
}

// Background returns the background color at a cell.
func (c *Canvas) Background(col, row int) stdcolor.RGBA {
	if p := c.at(col, row); p != nil {
		return p.bg
	}
	return stdcolor.RGBA{}
}

// Col is the cell column containing pixel x.
func (c *Canvas) Col(x float64) int { return int(math.Floor(x / c.CellW)) }

// Row is the cell row containing pixel y.
func (c *Canvas) Row(y float64) int { return int(math.Floor(y / c.CellH)) }

// span returns the cells whose centers fall in [a, b]. A range thinner than
// a cell still covers the cell under its midpoint.
func span(a, b, size float64) (lo, hi int) {
	lo = int(math.Ceil(a/size - 0.5))
	hi = int(math.Floor(b/size - 0.5))
	if hi < lo {
		lo = int(math.Floor((a + b) / 2 / size))
		hi = lo
	}
	return lo, hi
}

// FillRect sets the background of every cell covered by the rectangle,
// keeping characters already drawn there.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, bg stdcolor.RGBA) {
	c0, c1 := span(x0, x1, c.CellW)
	r0, r1 := span(y0, y1, c.CellH)
	for r := r0; r <= r1; r++ {
		for col := c0; col <= c1; col++ {
			if p := c.at(col, r); p != nil {
				p.bg = bg
			}
		}
	}
}

// BorderRect outlines the rectangle with box-drawing characters.
func (c *Canvas) BorderRect(x0, y0, x1, y1 float64, fg stdcolor.RGBA) {
	c0, c1 := span(x0, x1, c.CellW)
	r0, r1 := span(y0, y1, c.CellH)
	c.border(c0, r0, c1, r1, fg, '┌', '┐', '└', '┘')
}

func (c *Canvas) border(c0, r0, c1, r1 int, fg stdcolor.RGBA, tl, tr, bl, br rune) {
	for col := c0; col <= c1; col++ {
		c.set(col, r0, '─', fg)
		c.set(col, r1, '─', fg)
	}
	for r := r0; r <= r1; r++ {
		c.set(c0, r, '│', fg)
		c.set(c1, r, '│', fg)
	}
	if c1 > c0 && r1 > r0 {
		c.set(c0, r0, tl, fg)
		c.set(c1, r0, tr, fg)
		c.set(c0, r1, bl, fg)
		c.set(c1, r1, br, fg)
	}
}

func (c *Canvas) set(col, row int, ch rune, fg stdcolor.RGBA) {
	if p := c.at(col, row); p != nil {
		p.ch, p.fg = ch, fg
	}
}

// HLine draws ch across [x0, x1] on the row holding y.
func (c *Canvas) HLine(x0, x1, y float64, ch rune, fg stdcolor.RGBA) {
	c0, c1 := span(x0, x1, c.CellW)
	r := c.Row(y)
	for col := c0; col <= c1; col++ {
		c.set(col, r, ch, fg)
	}
}

// VLine draws ch down [y0, y1] on the column holding x.
func (c *Canvas) VLine(x, y0, y1 float64, ch rune, fg stdcolor.RGBA) {
	r0, r1 := span(y0, y1, c.CellH)
	col := c.Col(x)
	for r := r0; r <= r1; r++ {
		c.set(col, r, ch, fg)
	}
}

// Put draws a single character at the cell holding x, y.
func (c *Canvas) Put(x, y float64, ch rune, fg stdcolor.RGBA) {
	c.set(c.Col(x), c.Row(y), ch, fg)
}

// Text writes s from a cell, stopping before column limit.
func (c *Canvas) Text(col, row int, s string, fg stdcolor.RGBA, limit int) {
	for _, ch := range s {
		if col >= limit {
			return
		}
		c.set(col, row, ch, fg)
		col++
	}
}

// Box draws a filled, rounded frame over cells and writes lines inside it,
// truncated to the frame width.
func (c *Canvas) Box(col, row, w, h int, lines []string, fg, border, bg stdcolor.RGBA) {
	if w < 2 || h < 2 {
		return
	}
	for r := row; r < row+h; r++ {
		for cc := col; cc < col+w; cc++ {
			if p := c.at(cc, r); p != nil {
				p.ch, p.fg, p.bg = ' ', fg, bg
			}
		}
	}
	c.border(col, row, col+w-1, row+h-1, border, '╭', '╮', '╰', '╯')
	for i, line := range lines {
		if i >= h-2 {
			break
		}
		c.Text(col+1, row+1+i, line, fg, col+w-1)
	}
}

// Line returns a row's characters without colors.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.Rows {
		return ""
	}
	var b strings.Builder
	for _, p := range c.cells[row*c.Cols : (row+1)*c.Cols] {
		b.WriteRune(p.ch)
	}
	return b.String()
}

// Render writes the canvas with 24-bit colors, one run per style change.
func (c *Canvas) Render(w io.Writer) error {
	var b strings.Builder
	for r := 0; r < c.Rows; r++ {
		row := c.cells[r*c.Cols : (r+1)*c.Cols]
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
				continue
			}
			var run strings.Builder
			for _, p := range row[start:i] {
				run.WriteRune(p.ch)
			}
			b.WriteString(color.HEXStyle(hex(row[start].fg), hex(row[start].bg)).Sprint(run.String()))
			start = i
		}
		if r < c.Rows-1 {
			b.WriteString("\r\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func hex(c stdcolor.RGBA) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// blend mixes fg over bg with the given opacity.
func blend(fg, bg stdcolor.RGBA, alpha float64) stdcolor.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	mix := func(a, b uint8) uint8 { return uint8(math.Round(float64(a)*alpha + float64(b)*(1-alpha))) }
	return stdcolor.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 255}
}
