package input

import (
	"bytes"
	"testing"
	"time"
)

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x1b}, "escape"},
		{[]byte{0x1b, '[', 'A'}, "arrow_up"},
		{[]byte{0x1b, 'O', 'D'}, "arrow_left"},
		{[]byte{0x1b, '[', 'Z'}, "shift_tab"},
		{[]byte{0x1b, '[', 'H'}, "home"},
		{[]byte{0x1b, 'x'}, ""},
		{[]byte{'\t'}, "tab"},
		{[]byte{'\r'}, "enter"},
		{[]byte{' '}, "space"},
		{[]byte{3}, "ctrl_c"},
		{[]byte{'Q'}, "q"},
		{[]byte{'+'}, "+"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := DecodeKey(c.in); got != c.want {
			t.Errorf("DecodeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReadKey(t *testing.T) {
	raw, err := ReadKey(bytes.NewReader([]byte{0x1b, '[', 'C'}))
	if err != nil {
		t.Fatalf("ReadKey error = %v", err)
	}
	if raw.Code != "arrow_right" || raw.Device != DeviceTerminal {
		t.Errorf("ReadKey = %+v, want arrow_right from terminal", raw)
	}
	if _, err := ReadKey(bytes.NewReader(nil)); err == nil {
		t.Error("ReadKey on empty reader succeeded, want error")
	}
}

func TestMapToIntent(t *testing.T) {
	cases := map[string]Action{
		"+":          ActionZoomIn,
		"-":          ActionZoomOut,
		"0":          ActionZoomReset,
		"arrow_left": ActionPanLeft,
		"tab":        ActionFocusNext,
		"shift_tab":  ActionFocusPrev,
		"enter":      ActionActivate,
		"escape":     ActionDismiss,
		"q":          ActionQuit,
		"not-a-key":  ActionNone,
	}
	for code, want := range cases {
		if got := MapToIntent(DebouncedInput{Code: code}).Action; got != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionID(got), ActionID(want))
		}
	}
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Window: 50 * time.Millisecond}
	t0 := time.Unix(0, 0)
	if _, ok := d.Accept(RawInput{Code: "+", Timestamp: t0}); !ok {
		t.Error("first press dropped")
	}
	if _, ok := d.Accept(RawInput{Code: "+", Timestamp: t0.Add(10 * time.Millisecond)}); ok {
		t.Error("repeat inside window accepted")
	}
	if _, ok := d.Accept(RawInput{Code: "-", Timestamp: t0.Add(20 * time.Millisecond)}); !ok {
		t.Error("different key dropped")
	}
	if _, ok := d.Accept(RawInput{Code: "-", Timestamp: t0.Add(100 * time.Millisecond)}); !ok {
		t.Error("repeat after window dropped")
	}
}

func TestSetSingleBindingKeepsReserved(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	SetSingleBinding(ActionPanLeft, "a")
	if MapToIntent(DebouncedInput{Code: "a"}).Action != ActionPanLeft {
		t.Error("new binding not applied")
	}
	if MapToIntent(DebouncedInput{Code: "h"}).Action != ActionNone {
		t.Error("old binding kept")
	}
	if MapToIntent(DebouncedInput{Code: "arrow_left"}).Action != ActionPanLeft {
		t.Error("reserved arrow binding removed")
	}
	SetSingleBinding(ActionQuit, "escape")
	if MapToIntent(DebouncedInput{Code: "escape"}).Action != ActionDismiss {
		t.Error("reserved escape rebound")
	}
}

func TestGetBindingsByActionSorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionZoomIn]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(ActionID(a))
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v, want %v", ActionID(a), got, ok, a)
		}
	}
	if got, ok := ParseAction(" Zoom-In "); !ok || got != ActionZoomIn {
		t.Errorf("ParseAction(Zoom-In) = %v, %v, want zoom in", got, ok)
	}
	if _, ok := ParseAction("teleport"); ok {
		t.Error("ParseAction(teleport) succeeded")
	}
}

func TestKeyLabel(t *testing.T) {
	cases := map[string]string{
		"arrow_left": "←",
		"shift_tab":  "Shift+Tab",
		"escape":     "Esc",
		"enter":      "Enter",
		"q":          "q",
	}
	for code, want := range cases {
		if got := KeyLabel(code); got != want {
			t.Errorf("KeyLabel(%q) = %q, want %q", code, got, want)
		}
	}
}
