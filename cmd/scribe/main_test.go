package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		filename string
		tabStop  int
		set      []string
		wantErr  bool
	}{
		{name: "no args", args: nil, tabStop: 8},
		{name: "file", args: []string{"notes.txt"}, filename: "notes.txt", tabStop: 8},
		{name: "tab stop", args: []string{"--tab-stop", "4", "a.c"}, filename: "a.c", tabStop: 4, set: []string{"tab-stop"}},
		{name: "log flags", args: []string{"--log-file=/tmp/x.log", "--log-level=debug"}, tabStop: 8, set: []string{"log-file", "log-level"}},
		{name: "two files", args: []string{"a", "b"}, wantErr: true},
		{name: "bad number", args: []string{"--tab-stop", "wide"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			opts, err := parseFlags(tt.args, &stderr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if opts.filename != tt.filename {
				t.Errorf("filename = %q, want %q", opts.filename, tt.filename)
			}
			if opts.tabStop != tt.tabStop {
				t.Errorf("tabStop = %d, want %d", opts.tabStop, tt.tabStop)
			}
			if len(opts.set) != len(tt.set) {
				t.Errorf("set = %v, want %v", opts.set, tt.set)
			}
			for _, name := range tt.set {
				if !opts.set[name] {
					t.Errorf("flag %q not recorded as set", name)
				}
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"--help"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseFlags() error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "Usage: scribe [options] [file]") {
		t.Errorf("usage not printed: %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "Scribe "+version+"\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("run(-h) = %d, want 0", code)
	}
}

func TestRunRejectsBadTabStop(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--tab-stop", "0"}, &stdout, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "--tab-stop") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunMissingConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "nope.toml")
	if code := run([]string{"--config", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "configuration") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[editor]\ntab_stop = 2\n\n[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"--config", path, "--tab-stop", "6"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if got := cfg.Editor().TabStop; got != 6 {
		t.Errorf("tab stop = %d, want flag value 6", got)
	}
	if got := cfg.Logging().Level; got != "warn" {
		t.Errorf("log level = %q, want file value warn", got)
	}
	if cfg.LoadedFile() != path {
		t.Errorf("LoadedFile() = %q, want %q", cfg.LoadedFile(), path)
	}
}
