package config

import (
	"errors"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// validate checks the merged configuration. The caller holds c.mu.
func (c *Config) validate() error {
	var errs []error

	if n, err := getInt(c.merged, "editor.tab_stop"); err != nil {
		errs = append(errs, typeFailure("editor.tab_stop", err))
	} else if n < 1 || n > MaxTabStop {
		errs = append(errs, &ValidationError{
			Path:    "editor.tab_stop",
			Message: "must be between 1 and 32",
			Value:   n,
			Code:    ErrCodeOutOfRange,
		})
	}

	if d, err := getDuration(c.merged, "editor.message_timeout"); err != nil {
		errs = append(errs, typeFailure("editor.message_timeout", err))
	} else if d <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "editor.message_timeout",
			Message: "must be positive",
			Value:   d,
			Code:    ErrCodeOutOfRange,
		})
	}

	if _, err := getBool(c.merged, "editor.welcome"); err != nil {
		errs = append(errs, typeFailure("editor.welcome", err))
	}

	if level, err := getString(c.merged, "log.level"); err != nil {
		errs = append(errs, typeFailure("log.level", err))
	} else if !validLogLevel(level) {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   level,
			Code:    ErrCodeInvalidEnum,
		})
	}

	for _, path := range []string{"log.file", "terminal.term"} {
		if _, err := getString(c.merged, path); err != nil {
			errs = append(errs, typeFailure(path, err))
		}
	}

	if _, err := getStringMap(c.merged, "keymap"); err != nil {
		errs = append(errs, typeFailure("keymap", err))
	}

	return errors.Join(errs...)
}

func validLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// typeFailure turns an accessor error into a ValidationError.
func typeFailure(path string, err error) error {
	if isNotFound(err) {
		return nil
	}
	var te *TypeError
	if errors.As(err, &te) {
		return &ValidationError{
			Path:    te.Path,
			Message: "expected " + te.Expected,
			Value:   te.Actual,
			Code:    ErrCodeTypeMismatch,
		}
	}
	return &ValidationError{Path: path, Message: err.Error(), Code: ErrCodeTypeMismatch}
}
