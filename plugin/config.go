package plugin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Editor is the read-only view of a live editor's plugin configuration.
//
// PluginType returns the node type configured for a plugin key. The boolean is
// false when the plugin is not registered or currently disabled.
type Editor interface {
	PluginType(key string) (string, bool)
}

// PluginOptions is the per-plugin part of a configuration snapshot.
type PluginOptions struct {
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Config is an immutable snapshot of an editor's plugin configuration.
type Config struct {
	plugins map[string]PluginOptions
}

type configFile struct {
	Plugins map[string]PluginOptions `yaml:"plugins"`
}

// NewConfig creates a snapshot from the given plugin options. The map is copied.
func NewConfig(plugins map[string]PluginOptions) (Config, error) {
	for key, opts := range plugins {
		if strings.TrimSpace(key) == "" {
			return Config{}, errors.New("plugin keys must be non-empty")
		}
		if opts.Type != "" && strings.TrimSpace(opts.Type) == "" {
			return Config{}, fmt.Errorf("plugin %q has a blank type", key)
		}
	}

	cloned := make(map[string]PluginOptions, len(plugins))
	for key, opts := range plugins {
		cloned[key] = opts
	}
	return Config{plugins: cloned}, nil
}

// DefaultConfig registers every known plugin under its own key.
func DefaultConfig() Config {
	plugins := make(map[string]PluginOptions)
	for _, key := range Keys() {
		plugins[key] = PluginOptions{}
	}
	return Config{plugins: plugins}
}

// LoadConfig reads a YAML snapshot of the form
//
//	plugins:
//	  p: {type: paragraph}
//	  h2: {disabled: true}
//
// Keys listed without options are registered under their own key.
func LoadConfig(r io.Reader) (Config, error) {
	var file configFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return NewConfig(nil)
		}
		return Config{}, fmt.Errorf("failed to parse editor config: %w", err)
	}
	return NewConfig(file.Plugins)
}

// With returns a copy of the snapshot with one plugin replaced.
func (c Config) With(key string, opts PluginOptions) Config {
	cloned := make(map[string]PluginOptions, len(c.plugins)+1)
	for k, v := range c.plugins {
		cloned[k] = v
	}
	cloned[key] = opts
	return Config{plugins: cloned}
}

// Without returns a copy of the snapshot with the plugin unregistered.
func (c Config) Without(key string) Config {
	cloned := make(map[string]PluginOptions, len(c.plugins))
	for k, v := range c.plugins {
		if k != key {
			cloned[k] = v
		}
	}
	return Config{plugins: cloned}
}

// PluginType implements Editor.
func (c Config) PluginType(key string) (string, bool) {
	opts, ok := c.plugins[key]
	if !ok || opts.Disabled {
		return "", false
	}
	if opts.Type == "" {
		return key, true
	}
	return opts.Type, true
}

// EditorFunc adapts a lookup function to the Editor interface.
type EditorFunc func(key string) (string, bool)

// PluginType implements Editor.
func (f EditorFunc) PluginType(key string) (string, bool) {
	return f(key)
}
