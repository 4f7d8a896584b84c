package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PluginFileName is the file produced by "make plugin" in the wasm/ module.
const PluginFileName = "brutil.wasm"

// wasmSearchPaths are checked in order, relative to the working directory.
// Tests run from their package directory, so the list covers both the
// repository root and the nested binding packages.
var wasmSearchPaths = []string{
	PluginFileName,
	filepath.Join("wasm", "build", PluginFileName),
	filepath.Join("..", "wasm", "build", PluginFileName),
	filepath.Join("..", "..", "wasm", "build", PluginFileName),
}

// FindWasmFile returns the absolute path of the compiled brutil plugin.
// The error lists every location that was checked.
func FindWasmFile(logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	checked := make([]string, 0, len(wasmSearchPaths))
	for _, path := range wasmSearchPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
			logger.Debug("found wasm plugin", "path", absPath)
			return absPath, nil
		}
		checked = append(checked, absPath)
	}

	return "", fmt.Errorf(
		"WASM file not found, run 'make plugin' in the wasm directory; checked:\n  - %s",
		strings.Join(checked, "\n  - "),
	)
}
