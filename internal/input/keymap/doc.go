// Package keymap provides key binding management for the editor.
//
// A Keymap maps decoded key events to named actions. The default keymap
// binds the classic bindings (Ctrl+Q quit, Ctrl+S save, arrows and the
// Home/End/PageUp/PageDown navigation keys); user configuration can rebind
// any action.
//
// # Key Specifications
//
// Bindings are written as key specifications understood by key.Parse:
//
//	"a"        - Single character
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"PageDown" - Named key
//
// Events that match no binding are not an error: the input loop inserts
// printable bytes and ignores everything else.
package keymap
