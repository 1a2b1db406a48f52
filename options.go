package zplraster

import "go.uber.org/zap"

// Option configures a Render call.
type Option func(*renderConfig)

type renderConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a structured logger to a Render call (spec.md §4.6 /
// SPEC_FULL.md §4.6). Omitting it is equivalent to passing a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *renderConfig) { c.logger = l }
}

func newRenderConfig(opts []Option) renderConfig {
	var c renderConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
