package tui

import (
	"context"
	stdcolor "image/color"
	"io"
	"strings"
	"testing"
	"time"

	"chronoscope/pkg/chart/config"
	"chronoscope/pkg/chart/records"
	"chronoscope/pkg/chart/session"
	"chronoscope/pkg/engine/input"
)

var y = records.Year

func TestSpan(t *testing.T) {
	tests := []struct {
		a, b   float64
		lo, hi int
	}{
		{0, 16, 0, 1},
		{4, 12, 0, 1},
		{3, 4, 0, 0},
		{20, 22, 2, 2},
		{8, 40, 1, 4},
	}
	for _, tt := range tests {
		lo, hi := span(tt.a, tt.b, 8)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("span(%v, %v) = %d..%d, want %d..%d", tt.a, tt.b, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestCanvasBox(t *testing.T) {
	bg := stdcolor.RGBA{A: 255}
	fg := stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}
	cv := NewCanvas(12, 4, 8, 16, bg)
	cv.Box(1, 0, 8, 3, []string{"Alexandria"}, fg, fg, bg)

	if got := cv.Line(0); got != " ╭──────╮   " {
		t.Errorf("top = %q", got)
	}
	if got := cv.Line(1); got != " │Alexan│   " {
		t.Errorf("body = %q, want truncated text", got)
	}
	if got := cv.Line(2); got != " ╰──────╯   " {
		t.Errorf("bottom = %q", got)
	}
}

func TestFillKeepsCharacters(t *testing.T) {
	bg := stdcolor.RGBA{A: 255}
	red := stdcolor.RGBA{R: 255, A: 255}
	cv := NewCanvas(4, 2, 8, 16, bg)
	cv.VLine(12, 0, 32, '│', red)
	cv.FillRect(0, 0, 32, 32, red)

	if cv.Rune(1, 0) != '│' || cv.Rune(1, 1) != '│' {
		t.Errorf("fill overwrote the grid line: %q %q", cv.Line(0), cv.Line(1))
	}
	if cv.Background(3, 1) != red {
		t.Errorf("background = %v, want filled", cv.Background(3, 1))
	}
}

func TestRenderWritesEveryRow(t *testing.T) {
	cv := NewCanvas(3, 2, 8, 16, stdcolor.RGBA{A: 255})
	cv.Text(0, 0, "ab", stdcolor.RGBA{R: 200, A: 255}, 3)
	var b strings.Builder
	if err := cv.Render(&b); err != nil {
		t.Fatal(err)
	}
	if strings.Count(b.String(), "\r\n") != 1 {
		t.Errorf("output %q should have one row break", b.String())
	}
	if !strings.Contains(b.String(), "ab") {
		t.Errorf("output %q lost the text", b.String())
	}
}

func TestBlend(t *testing.T) {
	got := blend(stdcolor.RGBA{R: 200, A: 255}, stdcolor.RGBA{B: 100, A: 255}, 0.5)
	if got != (stdcolor.RGBA{R: 100, B: 50, A: 255}) {
		t.Errorf("blend = %v", got)
	}
}

func newRenderer(t *testing.T) (*TUIRenderer, *session.Session) {
	t.Helper()
	cfg := config.Default()
	recs := records.Set{
		Bands: []records.Band{{ID: "a", Name: "Alpha", Start: y(-1000), End: y(1000)}},
	}
	r := New(cfg, strings.NewReader(""), io.Discard)
	s := session.New(cfg, recs, r)
	r.Attach(s)
	return r, s
}

func TestFramePaintsBands(t *testing.T) {
	r, s := newRenderer(t)
	cv := r.Frame(100, 30)

	if w, h := s.Viewport(); w != 800 || h != 29*16 {
		t.Errorf("session viewport = %vx%v, want 800x464", w, h)
	}
	// Band a covers plot y 24..80, rows 1..4.
	if cv.Background(50, 3) == r.colors.background {
		t.Error("band cell was not filled")
	}
	if cv.Background(50, 10) != r.colors.background {
		t.Error("cell below the band was filled")
	}
	if !strings.Contains(cv.Line(1), "Alpha") {
		t.Errorf("row 1 = %q, want band label", cv.Line(1))
	}
	if !strings.Contains(cv.Line(29), "Zoom") {
		t.Errorf("status row = %q", cv.Line(29))
	}
}

func TestFrameShowsFocusedTooltip(t *testing.T) {
	r, s := newRenderer(t)
	r.Frame(100, 30)
	s.HandleIntent(input.Intent{Action: input.ActionFocusNext})
	if !s.Tooltip().Visible {
		t.Fatal("focusing the band did not show its tooltip")
	}

	cv := r.Frame(100, 30)
	var found bool
	for row := 0; row < cv.Rows-1; row++ {
		if strings.Contains(cv.Line(row), "╭") {
			found = true
		}
	}
	if !found {
		t.Error("tooltip box not painted")
	}
}

func TestFrameHelpOverlay(t *testing.T) {
	r, s := newRenderer(t)
	s.HandleIntent(input.Intent{Action: input.ActionHelp})
	cv := r.Frame(100, 30)
	var text string
	for row := 0; row < cv.Rows; row++ {
		text += cv.Line(row) + "\n"
	}
	if !strings.Contains(text, session.HelpLines()[0]) {
		t.Error("help overlay missing")
	}
}

// endlessKeys yields a "+" on every read.
type endlessKeys struct{}

func (endlessKeys) Read(p []byte) (int, error) {
	p[0] = '+'
	return 1, nil
}

func TestReadKeysStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	keys, errs := readKeys(ctx, endlessKeys{})
	if raw := <-keys; raw.Code != "+" {
		t.Fatalf("first key = %q, want +", raw.Code)
	}
	cancel()

	done := make(chan struct{})
	go func() {
		for range keys {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("key reader still running after cancel")
	}
	select {
	case err := <-errs:
		t.Errorf("unexpected read error %v", err)
	default:
	}
}

func TestReadKeysReportsEOF(t *testing.T) {
	_, errs := readKeys(context.Background(), strings.NewReader(""))
	select {
	case err := <-errs:
		if err != io.EOF {
			t.Errorf("error = %v, want EOF", err)
		}
	case <-time.After(time.Second):
		t.Fatal("no error for exhausted input")
	}
}
