package starlark

import (
	"fmt"
	"log/slog"

	"github.com/bruplint/brutil/internal/helpers"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Option configures a Runner.
type Option func(*Runner) error

// WithLogHandler sets the slog handler used by the runner and by script print() calls.
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

// WithLogger sets a specific logger. The logger's handler is reused as-is,
// without the default "starlark" grouping.
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

// WithGlobals adds predeclared values on top of the default universe.
// Entries override defaults with the same name.
func WithGlobals(globals starlarkLib.StringDict) Option {
	return func(r *Runner) error {
		if r.extraGlobals == nil {
			r.extraGlobals = make(starlarkLib.StringDict, len(globals))
		}
		for k, v := range globals {
			r.extraGlobals[k] = v
		}
		return nil
	}
}

// WithFileOptions replaces the dialect options used to parse scripts.
func WithFileOptions(opts *syntax.FileOptions) Option {
	return func(r *Runner) error {
		if opts == nil {
			return fmt.Errorf("file options cannot be nil")
		}
		r.fileOpts = opts
		return nil
	}
}

func (r *Runner) applyDefaults() {
	if r.fileOpts == nil {
		r.fileOpts = &syntax.FileOptions{
			GlobalReassign:  true,
			TopLevelControl: true,
			While:           true,
			Set:             true,
		}
	}
}

func (r *Runner) setupLogger() {
	if r.logger != nil {
		r.logHandler = r.logger.Handler()
		return
	}
	r.logHandler, r.logger = helpers.SetupLogger(r.logHandler, "starlark", "Runner")
}
