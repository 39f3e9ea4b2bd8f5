package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/scribe/internal/input/key"
)

// ErrUnknownAction is returned when rebinding an action that does not exist.
var ErrUnknownAction = errors.New("unknown action")

// knownActions is the set of actions the input loop can dispatch.
var knownActions = map[string]bool{
	ActionQuit:          true,
	ActionSave:          true,
	ActionRedraw:        true,
	ActionNewline:       true,
	ActionDeleteBack:    true,
	ActionDeleteForward: true,
	ActionMoveUp:        true,
	ActionMoveDown:      true,
	ActionMoveLeft:      true,
	ActionMoveRight:     true,
	ActionLineStart:     true,
	ActionLineEnd:       true,
	ActionPageUp:        true,
	ActionPageDown:      true,
	ActionNone:          true,
}

// IsKnownAction reports whether action can be bound.
func IsKnownAction(action string) bool {
	return knownActions[action]
}

// Keymap holds key bindings indexed by decoded key event.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	bindings []Binding
	index    map[key.Event]int
}

// New creates a keymap from the given bindings. Later bindings for the same
// key replace earlier ones.
func New(name string, bindings ...Binding) (*Keymap, error) {
	km := &Keymap{
		Name:  name,
		index: make(map[key.Event]int, len(bindings)),
	}
	for _, b := range bindings {
		if err := km.Add(b); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// Add parses and adds a binding.
func (k *Keymap) Add(b Binding) error {
	if !IsKnownAction(b.Action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, b.Action)
	}
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q for %s: %w", b.Keys, b.Action, err)
	}

	if i, ok := k.index[ev]; ok {
		k.bindings[i] = b
		return nil
	}
	k.index[ev] = len(k.bindings)
	k.bindings = append(k.bindings, b)
	return nil
}

// Rebind moves action to the given key specification. Every existing key
// bound to action is released first.
func (k *Keymap) Rebind(action, keys string) error {
	if !IsKnownAction(action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if _, err := key.Parse(keys); err != nil {
		return fmt.Errorf("binding %q for %s: %w", keys, action, err)
	}

	kept := make([]Binding, 0, len(k.bindings)+1)
	for _, b := range k.bindings {
		if b.Action != action {
			kept = append(kept, b)
		}
	}
	k.bindings = k.bindings[:0]
	k.index = make(map[key.Event]int, len(kept)+1)
	for _, b := range kept {
		if err := k.Add(b); err != nil {
			return err
		}
	}
	return k.Add(NewBinding(keys, action))
}

// Apply rebinds every action in overrides (action -> key specification).
// Actions are applied in sorted order so conflicting overrides resolve the
// same way on every run.
func (k *Keymap) Apply(overrides map[string]string) error {
	actions := make([]string, 0, len(overrides))
	for a := range overrides {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, a := range actions {
		if err := k.Rebind(a, overrides[a]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	i, ok := k.index[ev]
	if !ok {
		return "", false
	}
	return k.bindings[i].Action, true
}

// KeysFor returns the key specification bound to action, or "" if unbound.
// When several keys trigger the action the first binding wins.
func (k *Keymap) KeysFor(action string) string {
	for _, b := range k.bindings {
		if b.Action == action {
			return b.Keys
		}
	}
	return ""
}

// Bindings returns a copy of all bindings.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, len(k.bindings))
	copy(out, k.bindings)
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// HelpText returns a short summary like "Ctrl-S = save | Ctrl-Q = quit".
func (k *Keymap) HelpText() string {
	var parts []string
	for _, action := range []string{ActionSave, ActionQuit} {
		spec := k.KeysFor(action)
		if spec == "" {
			continue
		}
		name := strings.TrimPrefix(action, "editor.")
		parts = append(parts, strings.ReplaceAll(spec, "+", "-")+" = "+name)
	}
	return strings.Join(parts, " | ")
}
