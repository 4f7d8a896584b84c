package brutil

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello, world!", Greet("world"))
	assert.Equal(t, "Hello, !", Greet(""))
	assert.Equal(t, "Hello, 世界!", Greet("世界"))
}

func TestSumAsString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b uint64
		want string
	}{
		{name: "small values", a: 2, b: 3, want: "5"},
		{name: "zeros", a: 0, b: 0, want: "0"},
		{name: "one side zero", a: 0, b: 42, want: "42"},
		{name: "max value", a: math.MaxUint64 - 1, b: 1, want: strconv.FormatUint(math.MaxUint64, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SumAsString(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("overflow", func(t *testing.T) {
		t.Parallel()
		got, err := SumAsString(math.MaxUint64, 1)
		require.ErrorIs(t, err, ErrOverflow)
		assert.Empty(t, got)
	})
}

func TestVia(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{host: HostPython, want: "Hello, via Python, Ada!"},
		{host: HostWebAssembly, want: "Hello, via WebAssembly, Ada!"},
		{host: HostRisor, want: "Hello, via Risor, Ada!"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()
			greet := Via(tt.host)
			assert.Equal(t, tt.want, greet("Ada"))
			assert.Equal(t, Greet(Prefix(tt.host)+"Ada"), greet("Ada"))
			// repeated calls return the same greeting
			assert.Equal(t, greet("Ada"), greet("Ada"))
		})
	}
}
