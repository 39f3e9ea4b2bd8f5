package loader

import (
	"testing"
	"time"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("SCRIBE_TAB_STOP", "4")
	t.Setenv("SCRIBE_LOG_LEVEL", "debug")
	t.Setenv("SCRIBE_TERM", "vt100")
	t.Setenv("SCRIBE_MESSAGE_TIMEOUT", "2s")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "editor.tab_stop"); !ok || val != int64(4) {
		t.Errorf("editor.tab_stop = %v (%T), want 4", val, val)
	}
	if val, ok := getByPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want debug", val)
	}
	if val, ok := getByPath(config, "terminal.term"); !ok || val != "vt100" {
		t.Errorf("terminal.term = %v, want vt100", val)
	}
	if val, ok := getByPath(config, "editor.message_timeout"); !ok || val != 2*time.Second {
		t.Errorf("editor.message_timeout = %v, want 2s", val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("SCRIBE_EDITOR_WELCOME", "off")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "editor.welcome"); !ok || val != false {
		t.Errorf("editor.welcome = %v, want false", val)
	}
}

func TestEnvLoader_LoadKeymapJSON(t *testing.T) {
	t.Setenv("SCRIBE_KEYMAP", `{"editor.save":"Ctrl+W"}`)

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	keymap, ok := config["keymap"].(map[string]any)
	if !ok {
		t.Fatalf("keymap = %T, want map", config["keymap"])
	}
	if keymap["editor.save"] != "Ctrl+W" {
		t.Errorf("editor.save = %v", keymap["editor.save"])
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env      string
		expected string
	}{
		{"SCRIBE_EDITOR_TAB_STOP", "editor.tab_stop"},
		{"SCRIBE_LOG_FILE", "log.file"},
		{"SCRIBE_TERMINAL_TERM", "terminal.term"},
		{"SCRIBE_SIMPLE", ""},
		{"SCRIBE__X", ""},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	loader := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		input    string
		expected any
	}{
		// Booleans
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"no", false},
		{"off", false},

		// Integers, including 0 and 1
		{"1", int64(1)},
		{"0", int64(0)},
		{"8", int64(8)},
		{"-10", int64(-10)},

		// Floats (only with decimal point)
		{"2.5", 2.5},

		// Durations
		{"500ms", 500 * time.Millisecond},
		{"5s", 5 * time.Second},

		// Strings (default)
		{"xterm-256color", "xterm-256color"},
		{"/var/log/scribe.log", "/var/log/scribe.log"},
		{"", ""},
	}

	for _, tt := range tests {
		got := loader.parseValue(tt.input)
		if got != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)",
				tt.input, got, got, tt.expected, tt.expected)
		}
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	t.Setenv("SCRIBE_TS", "3")

	loader := NewEnvLoaderWithMapping(DefaultEnvPrefix, nil)
	loader.AddMapping("SCRIBE_TS", "editor.tab_stop")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := getByPath(config, "editor.tab_stop"); !ok || val != int64(3) {
		t.Errorf("editor.tab_stop = %v, want 3", val)
	}
}
