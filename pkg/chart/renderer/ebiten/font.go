package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *Renderer) loadFonts() error {
	var err error
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("cannot load regular font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("cannot load bold font: %w", err)
	}
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("cannot load mono font: %w", err)
	}
	e.faces = make(map[faceKey]*text.GoTextFace)
	return nil
}

// face returns a cached face. Sizes are few (label, tooltip, status), so
// the cache stays small.
func (e *Renderer) face(size float64, bold, mono bool) *text.GoTextFace {
	k := faceKey{bold: bold, mono: mono, size: size}
	if f, ok := e.faces[k]; ok {
		return f
	}
	src := e.sansFontSource
	switch {
	case mono:
		src = e.monoFontSource
	case bold:
		src = e.sansBoldFontSource
	}
	f := &text.GoTextFace{Source: src, Size: size}
	e.faces[k] = f
	return f
}

func (e *Renderer) sansFace(size float64) *text.GoTextFace { return e.face(size, false, false) }

func (e *Renderer) boldFace(size float64) *text.GoTextFace { return e.face(size, true, false) }

func (e *Renderer) monoFace(size float64) *text.GoTextFace { return e.face(size, false, true) }
