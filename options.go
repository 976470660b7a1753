package vigil

import "context"

// DefaultName is the observer name carried in signal fields when WithName
// is not supplied.
const DefaultName = "observer"

// config holds configuration options for an Observer.
type config struct {
	name    string
	ctx     context.Context
	metrics MetricsProvider
}

// Option configures an Observer.
type Option func(*config)

// WithName labels the Observer in emitted signals.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithContext sets the context passed to capitan when signals are emitted.
// Notifications themselves are never canceled by it. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMetrics registers a MetricsProvider for subscription events.
// A nil provider is ignored.
func WithMetrics(m MetricsProvider) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}
