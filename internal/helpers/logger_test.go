package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("nil handler uses default", func(t *testing.T) {
		t.Parallel()
		handler, logger := SetupLogger(nil, "starlark", "Runner")
		require.NotNil(t, handler)
		require.NotNil(t, logger)
	})

	t.Run("custom handler with group", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		handler, logger := SetupLogger(h, "risor", "Runner")
		assert.Equal(t, h, handler)

		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "Runner.key=value")
	})

	t.Run("custom handler without group", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(h, "wasm", "")
		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), " key=value")
	})
}
