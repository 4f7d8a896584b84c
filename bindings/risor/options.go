package risor

import (
	"fmt"
	"log/slog"

	"github.com/bruplint/brutil/internal/helpers"
)

// Option configures a Runner.
type Option func(*Runner) error

// WithLogHandler sets the slog handler used by the runner.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		r.logHandler = handler
		r.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		r.logger = logger
		r.logHandler = nil
		return nil
	}
}

// WithGlobal makes an extra Go value available to scripts under name.
func WithGlobal(name string, value any) Option {
	return func(r *Runner) error {
		if name == "" {
			return fmt.Errorf("global name cannot be empty")
		}
		if r.extraGlobals == nil {
			r.extraGlobals = make(map[string]any)
		}
		r.extraGlobals[name] = value
		return nil
	}
}

func (r *Runner) setupLogger() {
	if r.logger != nil {
		r.logHandler = r.logger.Handler()
		return
	}
	r.logHandler, r.logger = helpers.SetupLogger(r.logHandler, "risor", "Runner")
}
