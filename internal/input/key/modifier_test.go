package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModCtrl.With(ModAlt)

	if !m.HasCtrl() {
		t.Error("expected Ctrl")
	}
	if !m.HasAlt() {
		t.Error("expected Alt")
	}
	if m.HasShift() {
		t.Error("unexpected Shift")
	}

	m = m.Without(ModCtrl)
	if m.HasCtrl() {
		t.Error("Ctrl should be removed")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"C", ModCtrl},
		{"alt", ModAlt},
		{"meta", ModAlt},
		{"shift", ModShift},
		{"hyper", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
