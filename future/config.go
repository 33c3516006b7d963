package future

import "github.com/everyday-items/asyncx/telemetry"

// Config controls Promise construction.
type Config struct {
	recorder *telemetry.Recorder
}

// Option configures a Promise at construction time.
type Option func(*Config)

// WithTelemetry records future resolutions and programming errors through
// r. Without this option a Promise records nothing.
func WithTelemetry(r *telemetry.Recorder) Option {
	return func(c *Config) {
		c.recorder = r
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
