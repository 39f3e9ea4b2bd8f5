package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyPageUp, "PageUp"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyRune, false},
		{KeyEscape, true},
		{KeyEnter, true},
		{KeyUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsSpecial(); got != tt.want {
				t.Errorf("Key.IsSpecial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyIsNavigationKey(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyUp, true},
		{KeyDown, true},
		{KeyLeft, true},
		{KeyRight, true},
		{KeyHome, true},
		{KeyEnd, true},
		{KeyPageUp, true},
		{KeyPageDown, true},
		{KeyEscape, false},
		{KeyEnter, false},
		{KeyDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsNavigationKey(); got != tt.want {
				t.Errorf("Key.IsNavigationKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"ENTER", KeyEnter},
		{"cr", KeyEnter},
		{"bs", KeyBackspace},
		{"pgdn", KeyPageDown},
		{" home ", KeyHome},
		{"unknown", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromName(tt.name); got != tt.want {
				t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCtrlKey(t *testing.T) {
	if got := CtrlKey('q'); got != 0x11 {
		t.Errorf("CtrlKey('q') = %#x, want 0x11", got)
	}
	if got := CtrlKey('s'); got != 0x13 {
		t.Errorf("CtrlKey('s') = %#x, want 0x13", got)
	}
	if got := CtrlKey('Q'); got != 0x11 {
		t.Errorf("CtrlKey('Q') = %#x, want 0x11", got)
	}
}
