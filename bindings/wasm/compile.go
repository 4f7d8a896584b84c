package wasm

import (
	"context"
	"fmt"

	extismSDK "github.com/extism/go-sdk"
	"github.com/tetratelabs/wazero"
)

// Settings controls how a plugin binary is compiled.
type Settings struct {
	// EnableWASI must stay on for plugins built with the Extism Go PDK.
	EnableWASI bool
	// RuntimeConfig is the wazero configuration the plugin is compiled with.
	RuntimeConfig wazero.RuntimeConfig
	// HostFunctions are imports offered to the plugin. The brutil plugin needs none.
	HostFunctions []extismSDK.HostFunction
}

// DefaultSettings returns WASI enabled with a default wazero runtime.
func DefaultSettings() *Settings {
	return &Settings{
		EnableWASI:    true,
		RuntimeConfig: wazero.NewRuntimeConfig(),
	}
}

// Compile turns a wasm binary into a CompiledPlugin that can be instantiated many times.
func Compile(ctx context.Context, wasmBytes []byte, settings *Settings) (CompiledPlugin, error) {
	if len(wasmBytes) == 0 {
		return nil, ErrContentNil
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	manifest := extismSDK.Manifest{
		Wasm: []extismSDK.Wasm{
			extismSDK.WasmData{Data: wasmBytes},
		},
	}
	config := extismSDK.PluginConfig{
		EnableWasi:    settings.EnableWASI,
		RuntimeConfig: settings.RuntimeConfig,
	}

	plugin, err := extismSDK.NewCompiledPlugin(ctx, manifest, config, settings.HostFunctions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	return NewCompiledPluginAdapter(plugin), nil
}
