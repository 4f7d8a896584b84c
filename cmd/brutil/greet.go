package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	starlarkLib "go.starlark.net/starlark"

	"github.com/bruplint/brutil/bindings/risor"
	"github.com/bruplint/brutil/bindings/starlark"
	"github.com/bruplint/brutil/bindings/wasm"
	"github.com/bruplint/brutil/internal/helpers"
	"github.com/bruplint/brutil/internal/loader"
)

const (
	hostPython = "python"
	hostRisor  = "risor"
	hostWasm   = "wasm"
)

func newGreetCmd(a *app) *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "greet NAME",
		Short: "Greet NAME through one of the bindings",
		Long: `Greet NAME through one of the bindings.

  python  calls brutil_py.greet_rs from a Starlark script
  risor   calls brutil.greet_rs from a Risor script
  wasm    calls the greet_rs export of the compiled Extism plugin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			greeting, err := a.greet(cmd.Context(), host, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", hostPython, "Binding to call: python, risor, wasm")
	return cmd
}

func (a *app) greet(ctx context.Context, host, name string) (string, error) {
	switch strings.ToLower(host) {
	case hostPython:
		return a.greetStarlark(ctx, name)
	case hostRisor:
		return a.greetRisor(ctx, name)
	case hostWasm:
		return a.greetWasm(ctx, name)
	default:
		return "", fmt.Errorf("unknown host %q: want python, risor or wasm", host)
	}
}

func (a *app) greetStarlark(ctx context.Context, name string) (string, error) {
	r, err := starlark.NewRunner(
		starlark.WithLogHandler(a.logHandler),
		starlark.WithGlobals(starlarkLib.StringDict{"name": starlarkLib.String(name)}),
	)
	if err != nil {
		return "", err
	}
	prog, err := r.Compile("greet.star", []byte(`result = brutil_py.greet_rs(name)`))
	if err != nil {
		return "", err
	}
	res, err := r.Exec(ctx, prog)
	if err != nil {
		return "", err
	}
	greeting, ok := starlarkLib.AsString(res.Value)
	if !ok {
		return "", fmt.Errorf("unexpected result type %s", res.Value.Type())
	}
	return greeting, nil
}

func (a *app) greetRisor(ctx context.Context, name string) (string, error) {
	r, err := risor.NewRunner(
		risor.WithLogHandler(a.logHandler),
		risor.WithGlobal("name", name),
	)
	if err != nil {
		return "", err
	}
	code, err := r.Compile(ctx, `brutil.greet_rs(name)`)
	if err != nil {
		return "", err
	}
	res, err := r.Exec(ctx, code)
	if err != nil {
		return "", err
	}
	greeting, ok := res.Interface().(string)
	if !ok {
		return "", fmt.Errorf("unexpected result %v", res.Interface())
	}
	return greeting, nil
}

func (a *app) greetWasm(ctx context.Context, name string) (string, error) {
	m, err := a.openWasm(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = m.Close(ctx) }()
	return m.Greet(ctx, name)
}

// openWasm compiles the configured plugin, falling back to the default build locations.
func (a *app) openWasm(ctx context.Context) (*wasm.Module, error) {
	path := a.cfg.Wasm.Path
	if path == "" {
		found, err := helpers.FindWasmFile(nil)
		if err != nil {
			return nil, err
		}
		path = found
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wasm path: %w", err)
	}

	l, err := loader.NewFromDisk(absPath)
	if err != nil {
		return nil, err
	}

	opts := []wasm.Option{wasm.WithLogHandler(a.logHandler)}
	if a.cfg.Wasm.CacheDir != "" {
		opts = append(opts, wasm.WithCompilationCacheDir(a.cfg.Wasm.CacheDir))
	}
	return wasm.New(ctx, l, opts...)
}
