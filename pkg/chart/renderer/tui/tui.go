// Package tui paints the chart's retained scene as colored terminal cells
// and drives it from the keyboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	stdcolor "image/color"
	"io"
	"time"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/chart/tooltip"
	"chronoscope/pkg/engine/input"
	"chronoscope/pkg/engine/terminal"
)

// Pixel size of one terminal cell. Scene geometry is computed for a pixel
// viewport of cols*cellW by rows*cellH.
const (
	cellW = 8.0
	cellH = 16.0
)

// resizePoll is how often the terminal size is checked between key presses.
const resizePoll = 250 * time.Millisecond

// Fallbacks for config colors that fail to parse.
var (
	colorBackground = stdcolor.RGBA{20, 22, 27, 255}
	colorText       = stdcolor.RGBA{220, 223, 228, 255}
	colorSubtle     = stdcolor.RGBA{139, 146, 158, 255}
	colorAction     = stdcolor.RGBA{255, 216, 102, 255}
	colorPanel      = stdcolor.RGBA{35, 38, 46, 255}
)

type palette struct {
	background stdcolor.RGBA
	text       stdcolor.RGBA
	muted      stdcolor.RGBA
	axis       stdcolor.RGBA
	highlight  stdcolor.RGBA
	tooltip    stdcolor.RGBA
}

// TUIRenderer is the terminal backend. It implements session.DetailPanel.
type TUIRenderer struct {
	sess   *session.Session
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	colors palette

	debouncer  input.Debouncer
	cols, rows int
	selected   string // Title of the open detail selection
}

// New creates a terminal renderer reading keys from in and drawing to out.
func New(cfg config.Config, in io.Reader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		cfg:       cfg,
		in:        in,
		out:       out,
		debouncer: input.Debouncer{Window: 15 * time.Millisecond},
		colors: palette{
			background: config.MustHex(cfg.Colors.Background, colorBackground),
			text:       config.MustHex(cfg.Colors.Text, colorText),
			muted:      config.MustHex(cfg.Colors.Muted, colorSubtle),
			axis:       config.MustHex(cfg.Colors.Axis, colorSubtle),
			highlight:  config.MustHex(cfg.Colors.Highlight, colorAction),
			tooltip:    config.MustHex(cfg.Colors.Tooltip, colorPanel),
		},
	}
}

// Attach sets the session the renderer drives.
func (t *TUIRenderer) Attach(s *session.Session) {
	t.sess = s
}

// Open remembers the selection for the status row; the panel box itself
// is painted from the session.
func (t *TUIRenderer) Open(sel session.Selection, _ tooltip.Point) {
	if len(sel.Lines) > 0 {
		t.selected = sel.Lines[0]
	}
}

// Close clears the remembered selection.
func (t *TUIRenderer) Close() {
	t.selected = ""
}

// Run takes over the terminal until the user quits, in is exhausted or ctx
// is cancelled.
func (t *TUIRenderer) Run(ctx context.Context) error {
	if t.sess == nil {
		return errors.New("no session attached")
	}
	restore, err := input.RawTerminal()
	if err != nil {
		return err
	}
	defer restore()
	terminal.Enter(t.out)
	defer terminal.Leave(t.out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keys, errs := readKeys(ctx, t.in)

	ticker := time.NewTicker(resizePoll)
	defer ticker.Stop()

	if err := t.draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("cannot read key: %w", err)
		case raw, open := <-keys:
			if !open {
				keys = nil
				continue
			}
			ev, ok := t.debouncer.Accept(raw)
			if !ok {
				continue
			}
			intent := input.MapToIntent(ev)
			if intent.Action == input.ActionNone {
				continue
			}
			if t.sess.HandleIntent(intent) {
				return nil
			}
		case <-ticker.C:
			if w, h := terminal.GetSize(); w == t.cols && h == t.rows {
				continue
			}
		}
		if err := t.draw(); err != nil {
			return err
		}
	}
}

// readKeys decodes keys from in until ctx is done or reading fails, then
// closes the key channel. A read already blocked in the terminal returns
// with the next key press.
func readKeys(ctx context.Context, in io.Reader) (<-chan input.RawInput, <-chan error) {
	keys := make(chan input.RawInput, 16)
	errs := make(chan error, 1)
	go func() {
		defer close(keys)
		for {
			raw, err := input.ReadKey(in)
			if err != nil {
				errs <- err
				return
			}
			raw.Timestamp = time.Now()
			select {
			case keys <- raw:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys, errs
}

func (t *TUIRenderer) draw() error {
	cols, rows := terminal.GetSize()
	cv := t.Frame(cols, rows)
	if _, err := io.WriteString(t.out, terminal.CursorHome); err != nil {
		return err
	}
	return cv.Render(t.out)
}
