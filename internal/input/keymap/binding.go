package keymap

// Action names dispatched by the input loop.
const (
	ActionQuit          = "editor.quit"
	ActionSave          = "editor.save"
	ActionRedraw        = "editor.redraw"
	ActionNewline       = "editor.newline"
	ActionDeleteBack    = "editor.backspace"
	ActionDeleteForward = "editor.delete"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionLineStart     = "cursor.moveLineStart"
	ActionLineEnd       = "cursor.moveLineEnd"
	ActionPageUp        = "cursor.pageUp"
	ActionPageDown      = "cursor.pageDown"
	ActionNone          = "editor.none"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "a", "<C-s>", "Ctrl+S", "PageDown"
	Keys string

	// Action is the command to execute.
	// Examples: "cursor.moveDown", "editor.save"
	Action string

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}
