package keymap

// DefaultBindings returns the built-in bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: "Ctrl+Q", Action: ActionQuit, Description: "quit"},
		{Keys: "Ctrl+S", Action: ActionSave, Description: "save"},
		{Keys: "Ctrl+L", Action: ActionRedraw, Description: "redraw"},
		{Keys: "Escape", Action: ActionNone},

		{Keys: "Up", Action: ActionMoveUp},
		{Keys: "Down", Action: ActionMoveDown},
		{Keys: "Left", Action: ActionMoveLeft},
		{Keys: "Right", Action: ActionMoveRight},
		{Keys: "Home", Action: ActionLineStart},
		{Keys: "End", Action: ActionLineEnd},
		{Keys: "PageUp", Action: ActionPageUp},
		{Keys: "PageDown", Action: ActionPageDown},

		{Keys: "Enter", Action: ActionNewline},
		{Keys: "Backspace", Action: ActionDeleteBack},
		{Keys: "Ctrl+H", Action: ActionDeleteBack},
		{Keys: "Delete", Action: ActionDeleteForward},
	}
}

// Default returns a keymap holding the built-in bindings.
func Default() *Keymap {
	km, err := New("default", DefaultBindings()...)
	if err != nil {
		// The built-in table only uses valid specifications.
		panic(err)
	}
	return km
}
