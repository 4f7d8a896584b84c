package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bruplint/brutil/bindings/risor"
	"github.com/bruplint/brutil/bindings/starlark"
	"github.com/bruplint/brutil/internal/loader"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a Starlark (.star, .py) or Risor (.risor) script with the brutil module loaded",
		Long: `Run a script with the brutil module loaded and print its result.

Starlark scripts reach the module as brutil_py or via load("brutil_py", ...),
and return a value by assigning the "result" global. Risor scripts reach it as
brutil and return the value of their last expression.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve script path: %w", err)
			}
			l, err := loader.NewFromDisk(absPath)
			if err != nil {
				return err
			}

			var result any
			switch ext := strings.ToLower(filepath.Ext(absPath)); ext {
			case ".star", ".py":
				r, err := starlark.NewRunner(starlark.WithLogHandler(a.logHandler))
				if err != nil {
					return err
				}
				res, err := r.Run(cmd.Context(), l)
				if err != nil {
					return err
				}
				if result, err = res.Interface(); err != nil {
					return err
				}
			case ".risor":
				r, err := risor.NewRunner(risor.WithLogHandler(a.logHandler))
				if err != nil {
					return err
				}
				res, err := r.Run(cmd.Context(), l)
				if err != nil {
					return err
				}
				result = res.Interface()
			default:
				return fmt.Errorf("unsupported script extension %q: want .star, .py or .risor", ext)
			}

			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
}
