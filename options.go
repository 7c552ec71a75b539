package docvirt

import "log/slog"

// Option configures a [Controller].
type Option func(*Controller)

// WithLogger sets a logger for the controller.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}
