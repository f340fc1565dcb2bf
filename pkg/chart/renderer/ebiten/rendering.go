package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/renderer"
)

// clip is the plot rectangle scene geometry is cut to.
type clip struct {
	left, top, right, bottom float64
}

// Draw renders the chart to the screen (Ebiten interface)
func (e *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(e.colors.background)
	if e.sess == nil {
		return
	}

	left, top, w, h := e.sess.PlotRect()
	c := clip{left: left, top: top, right: left + w, bottom: top + h}
	e.sess.Scene().Each(func(el renderer.Element) {
		e.drawElement(screen, el, c)
	})

	e.drawTooltip(screen)
	e.drawDetailPanel(screen)
	e.drawStatusBar(screen)
	if e.sess.HelpVisible() {
		e.drawHelp(screen)
	}
}

func (e *Renderer) drawElement(screen *ebiten.Image, el renderer.Element, c clip) {
	fill := applyAlpha(config.MustHex(el.Fill, e.colors.text), el.Attrs.Opacity)
	var stroke color.Color
	if el.Attrs.Stroke != "" && el.Attrs.StrokeWidth > 0 {
		stroke = config.MustHex(el.Attrs.Stroke, e.colors.highlight)
	}

	switch el.Shape {
	case renderer.ShapeRect:
		x0, x1 := math.Max(el.X, c.left), math.Min(el.X+el.W, c.right)
		y0, y1 := math.Max(el.Y, c.top), math.Min(el.Y+el.H, c.bottom)
		if x1 <= x0 || y1 <= y0 {
			return
		}
		vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), fill, false)
		if stroke != nil {
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), float32(el.Attrs.StrokeWidth), stroke, true)
		}
		if el.Layer == renderer.LayerSegments {
			e.drawSegmentLabel(screen, el, x0, x1, y1)
		}

	case renderer.ShapeLine:
		if el.Layer == renderer.LayerGrid {
			e.drawTick(screen, el, c)
			return
		}
		x0, x1 := math.Max(el.X, c.left), math.Min(el.X+el.W, c.right)
		if x1 < x0 {
			return
		}
		width := float32(math.Max(2, el.R*0.8))
		if stroke != nil {
			vector.StrokeLine(screen, float32(x0), float32(el.Y), float32(x1), float32(el.Y+el.H),
				width+2*float32(el.Attrs.StrokeWidth), stroke, true)
		}
		vector.StrokeLine(screen, float32(x0), float32(el.Y), float32(x1), float32(el.Y+el.H), width, fill, true)

	case renderer.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(el.X), float32(el.Y), float32(el.R), fill, true)
		if stroke != nil {
			vector.StrokeCircle(screen, float32(el.X), float32(el.Y), float32(el.R), float32(el.Attrs.StrokeWidth), stroke, true)
		}

	case renderer.ShapeText:
		if el.X >= c.right {
			return
		}
		drawText(screen, el.Label, el.X, el.Y, fill, e.boldFace(el.H))
	}
}

// drawTick draws a vertical grid line with its year label under the plot.
func (e *Renderer) drawTick(screen *ebiten.Image, el renderer.Element, c clip) {
	if el.X < c.left || el.X > c.right {
		return
	}
	vector.StrokeLine(screen, float32(el.X), float32(el.Y), float32(el.X), float32(el.Y+el.H), 1, applyAlpha(e.colors.axis, 0.35), false)
	if el.Label == "" {
		return
	}
	face := e.sansFace(statusFontSize - 1)
	w, _ := text.Measure(el.Label, face, 0)
	drawText(screen, el.Label, el.X-w/2, c.bottom+4, e.colors.muted, face)
}

// drawSegmentLabel writes a segment's label along its bottom edge when it fits.
func (e *Renderer) drawSegmentLabel(screen *ebiten.Image, el renderer.Element, x0, x1, bottom float64) {
	if el.Label == "" || el.H < 2*statusFontSize {
		return
	}
	face := e.sansFace(statusFontSize - 1)
	w, h := text.Measure(el.Label, face, 0)
	if w+8 > x1-x0 {
		return
	}
	drawText(screen, el.Label, x0+4, bottom-h-2, applyAlpha(e.colors.text, 0.7), face)
}

// drawText draws str with its top-left corner at x, y.
func drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// applyAlpha scales a color by alpha, premultiplied so it fades to
// transparent black.
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}
