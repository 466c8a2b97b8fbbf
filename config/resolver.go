package config

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolverConfig configures the layered config resolver.
type ResolverConfig struct {
	// EnvPrefix is prepended to key names for environment variable lookup.
	// With EnvPrefix "NOTIFYKIT_", key "log_level" maps to NOTIFYKIT_LOG_LEVEL.
	EnvPrefix string

	// GlobalConfigDir is the directory under ~/.config/ holding the global
	// config file.
	GlobalConfigDir string

	// GlobalConfigFile is the global config filename.
	// Defaults to "config.yaml" if empty.
	GlobalConfigFile string

	// LocalDir is searched for LocalConfigName. Defaults to ".".
	LocalDir string

	// LocalConfigName is the local config filename, e.g. ".notifykit.yaml".
	LocalConfigName string

	// Defaults provides the default values for configuration keys.
	Defaults map[string]string

	// ValidKeys lists keys accepted from config files.
	// If nil, all keys are valid.
	ValidKeys []string

	// ErrWriter is where warnings are written.
	// Defaults to os.Stderr if nil.
	ErrWriter io.Writer
}

// DefaultResolverConfig returns the resolver settings notifykit uses.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: "notifykit",
		LocalConfigName: ".notifykit.yaml",
		Defaults:        Defaults(),
		ValidKeys:       Keys(),
	}
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// Resolver handles layered configuration resolution.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a resolver with paths derived from cfg.
func NewResolver(cfg ResolverConfig) *Resolver {
	var globalPath, localPath string

	if cfg.GlobalConfigDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			globalPath = filepath.Join(home, ".config", cfg.GlobalConfigDir, cfg.globalConfigFile())
		}
	}

	if cfg.LocalConfigName != "" {
		dir := cfg.LocalDir
		if dir == "" {
			dir = "."
		}
		localPath = filepath.Join(dir, cfg.LocalConfigName)
	}

	return NewResolverWithPaths(cfg, globalPath, localPath)
}

// NewResolverWithPaths creates a resolver with explicit global and local
// paths. Either may be empty to skip that layer.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
	return &Resolver{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	fmt.Fprintf(r.config.ErrWriter, "Warning: %s\n", msg)
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// All returns a copy of all key-value pairs.
func (c *Resolved) All() map[string]string {
	return maps.Clone(c.values)
}

// Keys returns all configuration keys, sorted.
func (c *Resolved) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Resolve builds the final config by merging all sources.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.applyDefaults(cfg)
	r.applyFile(cfg, r.globalPath, SourceGlobal)
	r.applyFile(cfg, r.localPath, SourceLocal)
	r.applyEnv(cfg)

	return cfg
}

// ResolveWithFlags resolves config and applies flag overrides. Empty flag
// values are ignored.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Resolved {
	cfg := r.Resolve()

	for key, value := range flags {
		if value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceFlag
		}
	}

	return cfg
}

func (r *Resolver) applyDefaults(cfg *Resolved) {
	for key, value := range r.config.Defaults {
		cfg.values[key] = value
		cfg.sources[key] = SourceDefault
	}
}

func (r *Resolver) applyFile(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	for key, value := range parsed {
		if len(r.config.ValidKeys) > 0 && !slices.Contains(r.config.ValidKeys, key) {
			r.warn(fmt.Sprintf("ignoring unknown key %q in %s", key, path))
			continue
		}
		if strVal := toString(value); strVal != "" {
			cfg.values[key] = strVal
			cfg.sources[key] = source
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	if r.config.EnvPrefix == "" {
		return
	}

	allKeys := make(map[string]bool)
	for k := range r.config.Defaults {
		allKeys[k] = true
	}
	for k := range cfg.values {
		allKeys[k] = true
	}

	for key := range allKeys {
		envKey := r.config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceEnv
		}
	}
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
