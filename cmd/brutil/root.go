package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what subcommands share once the root command has loaded the config.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *Config
	logHandler slog.Handler
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	cmd := &cobra.Command{
		Use:   "brutil",
		Short: "Call the brutil greeting library through its bindings",
		Long: `brutil - run the brutil greeting and sum functions through each binding.

The same library is exposed to Starlark (as the Python-flavoured brutil_py
module), to Risor (as the brutil module) and to WebAssembly hosts (as the
greet_rs export of the Extism plugin built in the wasm directory).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, a.configPath)
			if err != nil {
				return err
			}
			handler, err := newLogHandler(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logHandler = handler
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (yaml, json or toml)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.String("wasm", "", "Path to the compiled brutil.wasm plugin")
	flags.String("wasm-cache-dir", "", "Directory for the wazero compilation cache")

	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("wasm.path", flags.Lookup("wasm"))
	_ = a.v.BindPFlag("wasm.cache_dir", flags.Lookup("wasm-cache-dir"))

	cmd.AddCommand(
		newSumCmd(),
		newGreetCmd(a),
		newRunCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return cmd
}
