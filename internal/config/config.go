package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dshills/scribe/internal/config/loader"
)

// Layer names, lowest priority first.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "environment"
	LayerFlags    = "flags"
)

// layer is one named configuration source.
type layer struct {
	name string
	data map[string]any
}

// Config provides unified access to the editor configuration.
// Built-in defaults are overridden by the config file, then by SCRIBE_*
// environment variables, then by values set from command-line flags.
type Config struct {
	mu sync.RWMutex

	layers []layer
	merged map[string]any

	// Sources
	fs            loader.FileSystem
	configFile    string
	userConfigDir string
	envPrefix     string
	loadedFile    string

	// configErrors stores errors encountered during configuration access.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigFile sets an explicit configuration file. Unlike the default
// location, an explicit file must exist.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithUserConfigDir sets the directory searched for config.toml.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithFileSystem sets the file system configuration files are read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvPrefix sets the environment variable prefix ("" disables the
// environment layer).
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		fs:           loader.DefaultFS(),
		envPrefix:    loader.DefaultEnvPrefix,
		configErrors: make(map[string]error),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}

	c.setLayer(LayerDefaults, defaultConfig())
	return c
}

// Load reads the config file and the environment, then validates the
// merged result.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadFile(); err != nil {
		return err
	}
	if err := c.loadEnvironment(); err != nil {
		return err
	}

	return c.validate()
}

// LoadedFile returns the path of the config file that was read, or "".
func (c *Config) LoadedFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedFile
}

// Layers returns the names of the active layers, lowest priority first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.layers))
	for i, l := range c.layers {
		names[i] = l.name
	}
	return names
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getString(c.merged, path)
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getInt(c.merged, path)
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getBool(c.merged, path)
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getDuration(c.merged, path)
}

// GetStringMap returns a string-to-string table at the given path.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getStringMap(c.merged, path)
}

// Set overrides a value in the flags layer, the highest priority layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var flags map[string]any
	for _, l := range c.layers {
		if l.name == LayerFlags {
			flags = l.data
		}
	}
	if flags == nil {
		flags = make(map[string]any)
	}
	if err := setPath(flags, path, value); err != nil {
		return err
	}
	c.setLayer(LayerFlags, flags)

	return c.validate()
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Clone(c.merged)
}

// Errors returns the problems recorded while reading settings through the
// typed section accessors.
func (c *Config) Errors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		out[k] = v
	}
	return out
}

// loadFile loads the explicit config file, or config.toml from the user
// config directory when it exists.
func (c *Config) loadFile() error {
	path := c.configFile
	if path == "" {
		path = filepath.Join(c.userConfigDir, "config.toml")
	}

	fl, err := loader.ForPath(c.fs, path)
	if err != nil {
		return err
	}
	data, err := fl.LoadFrom(path)
	if err != nil {
		return err
	}
	if data == nil {
		if c.configFile != "" {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil
	}

	c.loadedFile = path
	c.setLayer(LayerFile, data)
	return nil
}

// loadEnvironment loads configuration from environment variables.
func (c *Config) loadEnvironment() error {
	if c.envPrefix == "" {
		return nil
	}

	data, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return err
	}
	if len(data) > 0 {
		c.setLayer(LayerEnv, data)
	}
	return nil
}

// setLayer replaces or inserts a layer, keeping priority order, and
// rebuilds the merged view.
func (c *Config) setLayer(name string, data map[string]any) {
	order := map[string]int{LayerDefaults: 0, LayerFile: 1, LayerEnv: 2, LayerFlags: 3}

	replaced := false
	for i := range c.layers {
		if c.layers[i].name == name {
			c.layers[i].data = data
			replaced = true
		}
	}
	if !replaced {
		c.layers = append(c.layers, layer{name: name, data: data})
		for i := len(c.layers) - 1; i > 0 && order[c.layers[i].name] < order[c.layers[i-1].name]; i-- {
			c.layers[i], c.layers[i-1] = c.layers[i-1], c.layers[i]
		}
	}

	merged := make(map[string]any)
	for _, l := range c.layers {
		merged = loader.DeepMerge(merged, l.data)
	}
	c.merged = merged
}

// recordConfigError stores an access error for later reporting.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configErrors[path] = err
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scribe")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "scribe")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tab_stop":        DefaultTabStop,
			"message_timeout": DefaultMessageTimeout.String(),
			"welcome":         true,
		},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"terminal": map[string]any{
			"term": "",
		},
		"keymap": map[string]any{},
	}
}

func getString(m map[string]any, path string) (string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func getInt(m map[string]any, path string) (int, error) {
	v, ok := getPath(m, path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, &TypeError{Path: path, Expected: "int", Actual: "float64"}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

func getBool(m map[string]any, path string) (bool, error) {
	v, ok := getPath(m, path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func getDuration(m map[string]any, path string) (time.Duration, error) {
	v, ok := getPath(m, path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("%q", val)}
		}
		return d, nil
	default:
		return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
}

func getStringMap(m map[string]any, path string) (map[string]string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return nil, ErrSettingNotFound
	}

	switch val := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			out[k] = s
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(val))
		for k, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path + "." + k, Expected: "string", Actual: typeName(item)}
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, &TypeError{Path: path, Expected: "table", Actual: typeName(v)}
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits "section.key" into its two parts. Only the first dot
// separates, so keymap actions such as "keymap.editor.save" address the
// "editor.save" entry of the keymap table.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	section, key, ok := strings.Cut(path, ".")
	if !ok {
		return []string{section}
	}
	if section == "" || key == "" {
		return nil
	}
	return []string{section, key}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// isNotFound reports whether err means the setting is absent.
func isNotFound(err error) bool {
	return errors.Is(err, ErrSettingNotFound)
}
