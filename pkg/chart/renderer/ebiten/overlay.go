package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/chart/tooltip"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawBox draws a rounded box with a soft shadow ring, fill and border.
// alpha scales everything for fades.
func drawBox(screen *ebiten.Image, x, y, w, h float32, bg, border color.Color, alpha float64) {
	const shadowSpread = 6
	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		path.Reset()
		appendRoundedRect(&path, x-float32(i), y-float32(i), w+float32(2*i), h+float32(2*i), cornerRadius+float32(i))
		appendRoundedRectDir(&path, x-float32(i-1), y-float32(i-1), w+float32(2*(i-1)), h+float32(2*(i-1)),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		ring := min(12+i*8, 55)
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(applyAlpha(color.RGBA{8, 8, 12, uint8(ring)}, alpha))
		vector.FillPath(screen, &path, nil, op)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(applyAlpha(bg, alpha))
	vector.FillPath(screen, &path, nil, op)

	op = &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(applyAlpha(border, alpha))
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: 1, MiterLimit: 10}, op)
}

// drawLines writes a title line in bold followed by body lines, spaced the
// way tooltip.EstimateSize assumes.
func (e *Renderer) drawLines(screen *ebiten.Image, lines []string, x, y float64, alpha float64) {
	size := e.cfg.Tooltip.FontSize
	lineHeight := size * 1.4
	for i, line := range lines {
		face, col := e.sansFace(size), applyAlpha(e.colors.text, alpha)
		if i == 0 {
			face = e.boldFace(size)
		}
		drawText(screen, line, x, y+float64(i)*lineHeight, col, face)
	}
}

func (e *Renderer) drawTooltip(screen *ebiten.Image) {
	tip := e.sess.Tooltip()
	if !tip.Visible {
		return
	}
	e.drawPanel(screen, tip.Lines, tip.At, tip.Size, tip.Pad, e.colors.muted, 1, 0)
}

func (e *Renderer) drawDetailPanel(screen *ebiten.Image) {
	sel, at, ok := e.sess.Detail()
	if !ok {
		return
	}
	alpha, slide := 1.0, 0.0
	if sel.ID == e.panelID {
		if age := time.Now().UnixMilli() - e.panelOpenedAt; age < panelEntranceMs {
			progress := float64(age) / panelEntranceMs
			alpha, slide = progress, -12*(1-progress)
		}
	}
	e.drawPanel(screen, sel.Lines, at, sel.Size, sel.Pad, e.colors.highlight, alpha, slide)
}

// drawPanel draws a sized text box. pad is the inset its size was
// estimated with.
func (e *Renderer) drawPanel(screen *ebiten.Image, lines []string, at tooltip.Point, size tooltip.Size, pad float64, border color.Color, alpha, slide float64) {
	y := at.Top + slide
	drawBox(screen, float32(at.Left), float32(y), float32(size.W), float32(size.H), e.colors.tooltip, border, alpha)
	e.drawLines(screen, lines, at.Left+pad, y+pad, alpha)
}

// drawStatusBar shows zoom, mode and the year under the pointer.
func (e *Renderer) drawStatusBar(screen *ebiten.Image) {
	face := e.monoFace(statusFontSize)
	y := float64(e.windowHeight) - statusFontSize - 6
	drawText(screen, e.sess.Status(), 8, y, e.colors.muted, face)
}

func (e *Renderer) drawHelp(screen *ebiten.Image) {
	lines := session.HelpLines()
	face := e.sansFace(statusFontSize + 1)
	lineHeight := (statusFontSize + 1) * 1.5
	var w float64
	for _, l := range lines {
		lw, _ := text.Measure(l, face, 0)
		w = math.Max(w, lw)
	}
	const pad = 14
	boxW, boxH := w+2*pad, float64(len(lines))*lineHeight+2*pad
	x := (float64(e.windowWidth) - boxW) / 2
	y := (float64(e.windowHeight) - boxH) / 2
	drawBox(screen, float32(x), float32(y), float32(boxW), float32(boxH), e.colors.tooltip, e.colors.highlight, 1)
	for i, l := range lines {
		drawText(screen, l, x+pad, y+pad+float64(i)*lineHeight, e.colors.text, face)
	}
}
