package risor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bruplint/brutil/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	opts = append([]Option{WithLogHandler(slog.NewTextHandler(&bytes.Buffer{}, nil))}, opts...)
	r, err := NewRunner(opts...)
	require.NoError(t, err)
	return r
}

func runScript(t *testing.T, r *Runner, src string) (any, error) {
	t.Helper()
	l, err := loader.NewFromString(src)
	require.NoError(t, err)
	res, err := r.Run(t.Context(), l)
	if err != nil {
		return nil, err
	}
	return res.Interface(), nil
}

func TestRunnerScripts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		want   any
	}{
		{name: "module attribute", script: `brutil.sum_as_string(2, 3)`, want: "5"},
		{name: "top level function", script: `sum_as_string(0, 0)`, want: "0"},
		{name: "greet", script: `brutil.greet_rs("Ada")`, want: "Hello, via Risor, Ada!"},
		{
			name: "assigned then returned",
			script: `
name := "Ada"
greet(name)
`,
			want: "Hello, via Risor, Ada!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := runScript(t, newTestRunner(t), tt.script)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunnerErrors(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := runScript(t, newTestRunner(t), `brutil.greet_rs(`)
		require.ErrorIs(t, err, ErrCompileFailed)
	})

	t.Run("type error from binding", func(t *testing.T) {
		t.Parallel()
		_, err := runScript(t, newTestRunner(t), `brutil.sum_as_string("2", 3)`)
		require.ErrorIs(t, err, ErrExecFailed)
		assert.Contains(t, err.Error(), "type error")
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		_, err := newTestRunner(t).Compile(t.Context(), "")
		require.ErrorIs(t, err, ErrContentNil)
	})

	t.Run("nil code", func(t *testing.T) {
		t.Parallel()
		_, err := newTestRunner(t).Exec(t.Context(), nil)
		require.ErrorIs(t, err, ErrContentNil)
	})
}

func TestRunnerCompileOnceRunMany(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t)
	code, err := r.Compile(t.Context(), `greet_rs("Ada")`)
	require.NoError(t, err)

	for range 3 {
		res, err := r.Exec(t.Context(), code)
		require.NoError(t, err)
		assert.Equal(t, "Hello, via Risor, Ada!", res.Interface())
	}
}

func TestRunnerWithGlobal(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t, WithGlobal("who", "Grace"))
	got, err := runScript(t, r, `greet(who)`)
	require.NoError(t, err)
	assert.Equal(t, "Hello, via Risor, Grace!", got)

	_, err = NewRunner(WithGlobal("", 1))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(WithLogHandler(nil))
	require.Error(t, err)

	_, err = NewRunner(WithLogger(nil))
	require.Error(t, err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r, err := NewRunner(WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, logger.Handler(), r.logHandler)
	assert.Equal(t, "risor.Runner", r.String())
}
