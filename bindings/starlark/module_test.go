package starlark

import (
	"testing"

	"github.com/bruplint/brutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	starlarkLib "go.starlark.net/starlark"
)

func callMember(t *testing.T, name string, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
	t.Helper()
	fn, ok := Members()[name]
	require.True(t, ok, "member %s not found", name)
	thread := &starlarkLib.Thread{Name: t.Name()}
	return starlarkLib.Call(thread, fn, args, kwargs)
}

func TestModule(t *testing.T) {
	t.Parallel()

	m := Module()
	assert.Equal(t, ModuleName, m.Name)
	for _, name := range []string{"sum_as_string", "greet_rs", "greet"} {
		_, err := m.Attr(name)
		assert.NoError(t, err, name)
	}
}

func TestSumAsString(t *testing.T) {
	t.Parallel()

	maxUint := starlarkLib.MakeUint64(^uint64(0))

	tests := []struct {
		name    string
		args    starlarkLib.Tuple
		want    string
		wantErr error
		errText string
	}{
		{name: "two plus three", args: starlarkLib.Tuple{starlarkLib.MakeInt(2), starlarkLib.MakeInt(3)}, want: "5"},
		{name: "zeros", args: starlarkLib.Tuple{starlarkLib.MakeInt(0), starlarkLib.MakeInt(0)}, want: "0"},
		{name: "max uint64", args: starlarkLib.Tuple{maxUint, starlarkLib.MakeInt(0)}, want: "18446744073709551615"},
		{
			name:    "negative",
			args:    starlarkLib.Tuple{starlarkLib.MakeInt(-1), starlarkLib.MakeInt(3)},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "too large",
			args:    starlarkLib.Tuple{maxUint.Add(starlarkLib.MakeInt(1)), starlarkLib.MakeInt(0)},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "sum overflows",
			args:    starlarkLib.Tuple{maxUint, starlarkLib.MakeInt(1)},
			wantErr: brutil.ErrOverflow,
		},
		{
			name:    "string argument",
			args:    starlarkLib.Tuple{starlarkLib.String("2"), starlarkLib.MakeInt(3)},
			errText: "for parameter a: got string, want int",
		},
		{
			name:    "missing argument",
			args:    starlarkLib.Tuple{starlarkLib.MakeInt(2)},
			errText: "missing argument for b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := callMember(t, "sum_as_string", tt.args, nil)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, starlarkLib.String(tt.want), got)
			}
		})
	}

	t.Run("keyword arguments", func(t *testing.T) {
		t.Parallel()
		kwargs := []starlarkLib.Tuple{
			{starlarkLib.String("b"), starlarkLib.MakeInt(40)},
			{starlarkLib.String("a"), starlarkLib.MakeInt(2)},
		}
		got, err := callMember(t, "sum_as_string", nil, kwargs)
		require.NoError(t, err)
		assert.Equal(t, starlarkLib.String("42"), got)
	})
}

func TestGreet(t *testing.T) {
	t.Parallel()

	for _, member := range []string{"greet_rs", "greet"} {
		t.Run(member, func(t *testing.T) {
			t.Parallel()

			got, err := callMember(t, member, starlarkLib.Tuple{starlarkLib.String("Ada")}, nil)
			require.NoError(t, err)
			assert.Equal(t, starlarkLib.String(brutil.Greet("via Python, Ada")), got)

			again, err := callMember(t, member, starlarkLib.Tuple{starlarkLib.String("Ada")}, nil)
			require.NoError(t, err)
			assert.Equal(t, got, again)

			empty, err := callMember(t, member, starlarkLib.Tuple{starlarkLib.String("")}, nil)
			require.NoError(t, err)
			assert.Equal(t, starlarkLib.String("Hello, via Python, !"), empty)

			_, err = callMember(t, member, starlarkLib.Tuple{starlarkLib.MakeInt(1)}, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "for parameter name: got int, want string")
		})
	}
}
