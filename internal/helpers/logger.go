package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns the handler and logger a binding should use.
//
// When handler is nil a text handler writing to stderr is created and grouped
// under the host name (e.g. "starlark", "risor", "wasm"). When groupName is set
// the returned logger is additionally grouped under it, so log lines read
// "starlark.Runner.Run ...".
func SetupLogger(handler slog.Handler, hostName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(hostName)
		slog.New(handler).Debug("no log handler provided, using default text handler")
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
