// Package wasm loads the brutil Extism plugin (built from the wasm/ module)
// and calls its exports from Go.
package wasm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	extismSDK "github.com/extism/go-sdk"
	"github.com/tetratelabs/wazero"

	"github.com/bruplint/brutil/internal/loader"
)

// Exports of the brutil plugin.
const (
	ExportGreet     = "greet_rs"
	ExportAllocator = "allocator"
)

// Module is a compiled brutil plugin. Every call runs in a fresh plugin
// instance, so calls share no state and may run concurrently. Close waits
// for calls in flight.
type Module struct {
	id     string
	plugin CompiledPlugin
	cache  wazero.CompilationCache
	logger *slog.Logger

	mu     sync.RWMutex // held for reading by calls, for writing by Close
	closed bool
}

// New reads a plugin binary from l and compiles it.
func New(ctx context.Context, l loader.Loader, opts ...Option) (*Module, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	cfg.applyDefaults()
	cfg.setupLogger()

	wasmBytes, err := loader.ReadAll(l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}

	settings := *cfg.settings
	var cache wazero.CompilationCache
	if cfg.cacheDir != "" {
		cache, err = wazero.NewCompilationCacheWithDir(cfg.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open compilation cache: %w", err)
		}
		runtimeConfig := settings.RuntimeConfig
		if runtimeConfig == nil {
			runtimeConfig = wazero.NewRuntimeConfig()
		}
		settings.RuntimeConfig = runtimeConfig.WithCompilationCache(cache)
	}

	plugin, err := Compile(ctx, wasmBytes, &settings)
	if err != nil {
		if cache != nil {
			_ = cache.Close(ctx)
		}
		return nil, err
	}

	id := "wasm://inline"
	if u := l.GetSourceURL(); u != nil {
		id = u.String()
	}
	m := newModule(id, plugin, cfg.logger)
	m.cache = cache
	return m, nil
}

func newModule(id string, plugin CompiledPlugin, logger *slog.Logger) *Module {
	return &Module{
		id:     id,
		plugin: plugin,
		logger: logger.With("moduleID", id),
	}
}

func (m *Module) String() string {
	return "wasm.Module{" + m.id + "}"
}

// Greet calls the plugin's greet_rs export.
func (m *Module) Greet(ctx context.Context, name string) (string, error) {
	input, err := encodeString(name)
	if err != nil {
		return "", err
	}
	output, err := m.call(ctx, ExportGreet, input)
	if err != nil {
		return "", err
	}
	return decodeString(output)
}

// Allocator reports which allocator the plugin was built with.
func (m *Module) Allocator(ctx context.Context) (string, error) {
	output, err := m.call(ctx, ExportAllocator, nil)
	if err != nil {
		return "", err
	}
	return decodeString(output)
}

func (m *Module) call(ctx context.Context, export string, input []byte) ([]byte, error) {
	logger := m.logger.WithGroup("call")

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	instance, err := m.plugin.Instance(ctx, extismSDK.PluginInstanceConfig{
		ModuleConfig: wazero.NewModuleConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create plugin instance: %w", ErrCallFailed, err)
	}
	defer func() {
		if err := instance.Close(ctx); err != nil {
			logger.WarnContext(ctx, "failed to close plugin instance", "error", err)
		}
	}()

	if !instance.FunctionExists(export) {
		return nil, fmt.Errorf("%w: %s", ErrExportMissing, export)
	}

	start := time.Now()
	exit, output, err := instance.CallWithContext(ctx, export, input)
	execTime := time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s cancelled: %w", ErrCallFailed, export, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCallFailed, export, err)
	}
	if exit != 0 {
		return nil, fmt.Errorf("%w: %s returned exit code %d", ErrCallFailed, export, exit)
	}

	logger.DebugContext(ctx, "call complete", "export", export, "execTime", execTime)
	return output, nil
}

// Close releases the compiled plugin and any compilation cache. It is safe to call more than once.
func (m *Module) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	err := m.plugin.Close(ctx)
	if m.cache != nil {
		if cacheErr := m.cache.Close(ctx); cacheErr != nil && err == nil {
			err = cacheErr
		}
	}
	return err
}
