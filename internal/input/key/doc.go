// Package key provides key event types and raw input decoding for the editor.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (navigation keys, editing keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single logical key press
//   - Decoder: Turns a raw terminal byte stream into Events
//
// # Key Specifications
//
// Key specifications are used by the keymap configuration and can be
// written in multiple formats:
//
//   - Simple keys: "a", "1", "Enter", "Escape", "PageUp"
//   - With modifiers: "Ctrl+S", "Ctrl+Q"
//   - Vim-style: "<C-s>", "<CR>", "<Esc>", "<BS>"
//
// # Raw Decoding
//
// The Decoder reads one byte at a time. An escape byte starts a small state
// machine that recognizes the VT100 cursor and editing-key sequences
// (ESC [ A, ESC [ 3 ~, ESC O H, ...). When a follow-up byte is not available
// within the terminal's read timeout, the pending input resolves to a bare
// Escape event. The decoder never returns a partial sequence.
package key
