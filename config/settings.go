package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/randalmurphal/notifykit/group"
)

// EnvPrefix is the environment variable prefix for notifykit keys.
const EnvPrefix = "NOTIFYKIT_"

// Configuration keys.
const (
	KeyDuplicateKeys = "duplicate_keys"
	KeyStrictStates  = "strict_states"
	KeyLogLevel      = "log_level"
)

// Keys returns every recognized configuration key.
func Keys() []string {
	return []string{KeyDuplicateKeys, KeyStrictStates, KeyLogLevel}
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]string {
	return map[string]string{
		KeyDuplicateKeys: group.Reject.String(),
		KeyStrictStates:  "false",
		KeyLogLevel:      "info",
	}
}

// Settings is the typed form of a resolved configuration.
type Settings struct {
	// DuplicateKeys is the policy for repeated group keys.
	DuplicateKeys group.Policy

	// StrictStates makes custom channels drop undeclared statuses.
	StrictStates bool

	// LogLevel is the minimum level for notifykit's own logging.
	LogLevel string
}

// DefaultSettings returns Settings built from Defaults.
func DefaultSettings() Settings {
	return Settings{
		DuplicateKeys: group.Reject,
		LogLevel:      "info",
	}
}

// Settings converts the resolved values. Unset keys keep their defaults.
func (c *Resolved) Settings() (Settings, error) {
	s := DefaultSettings()

	if v := c.Get(KeyDuplicateKeys); v != "" {
		policy, err := group.ParsePolicy(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s (from %s): %w", KeyDuplicateKeys, c.Source(KeyDuplicateKeys), err)
		}
		s.DuplicateKeys = policy
	}

	if v := c.Get(KeyStrictStates); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s (from %s): %w", KeyStrictStates, c.Source(KeyStrictStates), err)
		}
		s.StrictStates = strict
	}

	if v := c.Get(KeyLogLevel); v != "" {
		if _, err := parseLevel(v); err != nil {
			return Settings{}, fmt.Errorf("%s (from %s): %w", KeyLogLevel, c.Source(KeyLogLevel), err)
		}
		s.LogLevel = strings.ToLower(v)
	}

	return s, nil
}

// Level returns LogLevel as a slog.Level, defaulting to info.
func (s Settings) Level() slog.Level {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", v)
	}
}
