package ebiten

import (
	"log"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/zyedidia/generic/mapset"

	"chronoscope/pkg/engine/input"
)

// keyBinding maps an Ebiten key to a binding code. Held keys with repeat
// set fire again after keyRepeatInitialDelay.
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyEqual, "=", true},
	{ebiten.KeyKPAdd, "numpad_add", true},
	{ebiten.KeyMinus, "-", true},
	{ebiten.KeyKPSubtract, "numpad_subtract", true},
	{ebiten.KeyDigit0, "0", false},
	{ebiten.KeyHome, "home", false},
	{ebiten.KeyN, "n", false},
	{ebiten.KeyP, "p", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyKPEnter, "enter", false},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyQ, "q", false},
}

// physicalCodes are emitted from key state by pressedCodes. Typed
// characters with one of these codes are skipped so a key fires once.
var physicalCodes = func() mapset.Set[string] {
	codes := mapset.New[string]()
	for _, b := range keyBindings {
		codes.Put(b.code)
	}
	for _, c := range []string{"+", "_", "?", "tab", "shift_tab", "ctrl_c", " "} {
		codes.Put(c)
	}
	return codes
}()

// Update handles input (Ebiten interface)
func (e *Renderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}
	if e.sess == nil {
		return nil
	}

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	for _, ev := range e.pointer.Update(input.PointerSample{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Inside:  x >= 0 && y >= 0 && x < e.windowWidth && y < e.windowHeight,
		Wheel:   wheel,
	}) {
		e.sess.HandlePointer(ev)
	}
	e.updateCursor(float64(x), float64(y))

	for _, code := range e.pressedCodes() {
		intent := input.MapToIntent(input.NewDebouncedInput(input.RawInput{
			Device:    input.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}))
		if intent.Action == input.ActionNone {
			continue
		}
		if e.sess.HandleIntent(intent) {
			return ebiten.Termination
		}
	}
	return nil
}

// pressedCodes returns the binding codes triggered this tick.
func (e *Renderer) pressedCodes() []string {
	var codes []string
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if shift {
			codes = append(codes, "shift_tab")
		} else {
			codes = append(codes, "tab")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && shift {
		codes = append(codes, "?")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		codes = append(codes, "ctrl_c")
	}

	// Remaining keys arrive as typed characters, which covers letters
	// rebound through the config.
	for _, r := range ebiten.AppendInputChars(nil) {
		if code := string(unicode.ToLower(r)); !physicalCodes.Has(code) {
			codes = append(codes, code)
		}
	}

	for _, b := range keyBindings {
		key := b.key
		if b.repeat {
			if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, b.code) {
				codes = append(codes, b.code)
			}
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			codes = append(codes, b.code)
		}
	}
	return codes
}

// updateCursor shows a move cursor while dragging and a pointer over
// clickable elements.
func (e *Renderer) updateCursor(x, y float64) {
	shape := ebiten.CursorShapeDefault
	if e.pointer.Dragging() {
		shape = ebiten.CursorShapeMove
	} else if _, ok := e.sess.Scene().HitTest(x, y); ok {
		shape = ebiten.CursorShapePointer
	}
	if shape != e.cursor {
		e.cursor = shape
		ebiten.SetCursorShape(shape)
	}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *Renderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !isPressed() {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// Layout returns the logical screen size (Ebiten interface)
func (e *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		if e.sess != nil {
			e.sess.Resize(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}
