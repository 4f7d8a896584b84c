package wasm

import (
	"fmt"
	"log/slog"

	"github.com/bruplint/brutil/internal/helpers"
)

type config struct {
	settings   *Settings
	cacheDir   string
	logHandler slog.Handler
	logger     *slog.Logger
}

// Option configures a Module.
type Option func(*config) error

// WithLogHandler sets the slog handler used by the module.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// WithSettings replaces the compile settings.
func WithSettings(settings *Settings) Option {
	return func(c *config) error {
		if settings == nil {
			return fmt.Errorf("settings cannot be nil")
		}
		c.settings = settings
		return nil
	}
}

// WithCompilationCacheDir persists wazero's compiled code in dir, so later
// processes loading the same plugin skip compilation.
func WithCompilationCacheDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return fmt.Errorf("cache directory cannot be empty")
		}
		c.cacheDir = dir
		return nil
	}
}

func (c *config) applyDefaults() {
	if c.settings == nil {
		c.settings = DefaultSettings()
	}
}

func (c *config) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
		return
	}
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "wasm", "Module")
}
