package config

import (
	"time"
)

// Defaults for the editor section.
const (
	DefaultTabStop        = 8
	MaxTabStop            = 32
	DefaultMessageTimeout = 5 * time.Second
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// TabStop is the width of a tab stop in columns.
	TabStop int

	// MessageTimeout is how long status messages stay visible.
	MessageTimeout time.Duration

	// Welcome shows the welcome caption on an empty buffer.
	Welcome bool
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string

	// File is the log file path (empty disables logging).
	File string
}

// TerminalConfig provides type-safe access to terminal settings.
type TerminalConfig struct {
	// Term overrides $TERM for the terminfo lookup.
	Term string
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		TabStop:        c.getIntOr("editor.tab_stop", DefaultTabStop),
		MessageTimeout: c.getDurationOr("editor.message_timeout", DefaultMessageTimeout),
		Welcome:        c.getBoolOr("editor.welcome", true),
	}
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("log.level", "info"),
		File:  c.getStringOr("log.file", ""),
	}
}

// Terminal returns type-safe access to terminal settings.
func (c *Config) Terminal() TerminalConfig {
	return TerminalConfig{
		Term: c.getStringOr("terminal.term", ""),
	}
}

// Keymap returns the action to key spec overrides.
func (c *Config) Keymap() map[string]string {
	m, err := c.GetStringMap("keymap")
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError("keymap", err)
		}
		return map[string]string{}
	}
	return m
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !isNotFound(err) {
			// Record type/parse errors - these indicate config problems
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getDurationOr(path string, defaultValue time.Duration) time.Duration {
	v, err := c.GetDuration(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}
