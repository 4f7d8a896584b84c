package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from flags, BRUTIL_* environment
// variables and an optional config file, in that order of precedence.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Wasm  WasmConfig  `mapstructure:"wasm"`
	Serve ServeConfig `mapstructure:"serve"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type WasmConfig struct {
	// Path to the compiled plugin. Empty means search the default build locations.
	Path string `mapstructure:"path"`
	// CacheDir persists wazero compilation results between runs when set.
	CacheDir string `mapstructure:"cache_dir"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("wasm.path", "")
	v.SetDefault("wasm.cache_dir", "")
	v.SetDefault("serve.addr", ":8000")

	v.SetEnvPrefix("BRUTIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// newLogHandler builds the slog handler every binding logs through.
func newLogHandler(cfg LogConfig, w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "text", "":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", cfg.Format)
	}
}
