package broadcast

import (
	"log/slog"

	"github.com/randalmurphal/notifykit/telemetry"
)

// Config holds the settings shared by every channel flavor.
type Config struct {
	// Name identifies the channel in logs and metrics.
	// Defaults to the Subject's UUID.
	Name string

	// Logger receives debug and warning records.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Recorder receives metrics. Nil disables metrics.
	Recorder *telemetry.Recorder
}

// Option configures a Config.
type Option func(*Config)

// WithName sets the channel name.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(c *Config) { c.Recorder = rec }
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
