package input

import (
	"sort"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent on the chart.
type Action int

const (
	ActionNone Action = iota

	// View
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown

	// Selection
	ActionFocusNext // Move the keyboard hover to the next interactive element
	ActionFocusPrev
	ActionActivate // Click the focused element
	ActionDismiss  // Close tooltips, selection and detail panel

	// Meta / UI
	ActionHelp
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "+", "tab").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code that arrive within Window.
// The zero value passes everything through.
type Debouncer struct {
	Window time.Duration

	lastCode string
	lastAt   time.Time
}

// Accept converts a raw event to a debounced one. ok is false for repeats
// inside the window.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if d.Window > 0 && raw.Code == d.lastCode && raw.Timestamp.Sub(d.lastAt) < d.Window {
		return DebouncedInput{}, false
	}
	d.lastCode, d.lastAt = raw.Code, raw.Timestamp
	return NewDebouncedInput(raw), true
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Zoom
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"_":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
	"home":            ActionZoomReset,

	// Pan (arrows and Vim)
	"arrow_left":  ActionPanLeft,
	"h":           ActionPanLeft,
	"arrow_right": ActionPanRight,
	"l":           ActionPanRight,
	"arrow_up":    ActionPanUp,
	"k":           ActionPanUp,
	"arrow_down":  ActionPanDown,
	"j":           ActionPanDown,

	// Selection
	"tab":       ActionFocusNext,
	"n":         ActionFocusNext,
	"shift_tab": ActionFocusPrev,
	"p":         ActionFocusPrev,
	"enter":     ActionActivate,
	"space":     ActionActivate,
	"escape":    ActionDismiss,

	// Help / quit
	"?":      ActionHelp,
	"q":      ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns the translated, human-friendly name of an action.
func ActionName(a Action) string {
	switch a {
	case ActionZoomIn:
		return gotext.Get("Zoom In")
	case ActionZoomOut:
		return gotext.Get("Zoom Out")
	case ActionZoomReset:
		return gotext.Get("Reset Zoom")
	case ActionPanLeft:
		return gotext.Get("Pan Left")
	case ActionPanRight:
		return gotext.Get("Pan Right")
	case ActionPanUp:
		return gotext.Get("Pan Up")
	case ActionPanDown:
		return gotext.Get("Pan Down")
	case ActionFocusNext:
		return gotext.Get("Next Element")
	case ActionFocusPrev:
		return gotext.Get("Previous Element")
	case ActionActivate:
		return gotext.Get("Select")
	case ActionDismiss:
		return gotext.Get("Dismiss")
	case ActionHelp:
		return gotext.Get("Help")
	case ActionQuit:
		return gotext.Get("Quit")
	default:
		return gotext.Get("None")
	}
}

// Actions lists the bindable actions in help order.
func Actions() []Action {
	out := make([]Action, 0, int(ActionQuit))
	for a := ActionZoomIn; a <= ActionQuit; a++ {
		out = append(out, a)
	}
	return out
}

// actionIDs are the stable names used in config files.
var actionIDs = map[Action]string{
	ActionZoomIn:    "zoom_in",
	ActionZoomOut:   "zoom_out",
	ActionZoomReset: "zoom_reset",
	ActionPanLeft:   "pan_left",
	ActionPanRight:  "pan_right",
	ActionPanUp:     "pan_up",
	ActionPanDown:   "pan_down",
	ActionFocusNext: "focus_next",
	ActionFocusPrev: "focus_prev",
	ActionActivate:  "activate",
	ActionDismiss:   "dismiss",
	ActionHelp:      "help",
	ActionQuit:      "quit",
}

// ActionID is the config name of an action, empty for ActionNone.
func ActionID(a Action) string { return actionIDs[a] }

// ParseAction finds an action by its config name, ignoring case and
// treating dashes as underscores ("zoom_in", "Zoom-In").
func ParseAction(name string) (Action, bool) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, a := range Actions() {
		if actionIDs[a] == want {
			return a, true
		}
	}
	return ActionNone, false
}

// KeyLabel is the short display form of a binding code.
func KeyLabel(code string) string {
	switch code {
	case "arrow_left":
		return "←"
	case "arrow_right":
		return "→"
	case "arrow_up":
		return "↑"
	case "arrow_down":
		return "↓"
	case "numpad_add":
		return "Num+"
	case "numpad_subtract":
		return "Num-"
	case "shift_tab":
		return "Shift+Tab"
	case "ctrl_c":
		return "Ctrl+C"
	case "escape":
		return "Esc"
	case "tab", "enter", "space", "home":
		return strings.ToUpper(code[:1]) + code[1:]
	}
	return code
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Arrow keys and Escape are reserved and stay bound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved(code) {
		bindings[code] = action
	}
}

func reserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape", "ctrl_c":
		return true
	}
	return false
}
