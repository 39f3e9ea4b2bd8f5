// Package config provides the configuration system for the editor.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (SCRIBE_*)  │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/scribe/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file is TOML, or YAML when its extension is .yaml or .yml.
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	_ = cfg.Set("editor.tab_stop", 4) // from a flag
//
//	editor := cfg.Editor()
//	fmt.Println(editor.TabStop)
//
// # Configuration Files
//
//	# ~/.config/scribe/config.toml
//	[editor]
//	tab_stop = 8
//	message_timeout = "5s"
//	welcome = true
//
//	[log]
//	level = "info"
//	file = "/tmp/scribe.log"
//
//	[terminal]
//	term = "xterm"
//
//	[keymap]
//	"editor.save" = "Ctrl+S"
//	"editor.quit" = "<C-q>"
//
// # Environment Variables
//
// SCRIBE_TAB_STOP, SCRIBE_MESSAGE_TIMEOUT, SCRIBE_LOG_LEVEL, SCRIBE_LOG_FILE
// and SCRIBE_TERM map to the settings above. Any other SCRIBE_SECTION_KEY
// variable sets section.key.
//
// Validation errors are joined and reported together; every one wraps
// ErrValidationFailed.
package config
