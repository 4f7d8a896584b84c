package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bruplint/brutil"
)

func TestGreetRS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "ascii", input: "Ada"},
		{name: "empty", input: ""},
		{name: "multibyte", input: "世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := greetRS([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, brutil.Greet("via WebAssembly, "+tt.input), string(got))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		first, err := greetRS([]byte("Ada"))
		require.NoError(t, err)
		second, err := greetRS([]byte("Ada"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, "Hello, via WebAssembly, Ada!", string(first))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()
		_, err := greetRS([]byte{0xff, 0xfe})
		require.ErrorIs(t, err, errInvalidText)
	})
}
