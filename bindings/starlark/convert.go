package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"
)

// decodeUint converts a Starlark argument into the uint64 the library expects.
func decodeUint(param string, v starlarkLib.Value) (uint64, error) {
	i, ok := v.(starlarkLib.Int)
	if !ok {
		return 0, fmt.Errorf("for parameter %s: got %s, want int", param, v.Type())
	}
	u, ok := i.Uint64()
	if !ok {
		if i.Sign() < 0 {
			return 0, fmt.Errorf("for parameter %s: %w: %s", param, ErrNegativeValue, i)
		}
		return 0, fmt.Errorf("for parameter %s: %w: %s", param, ErrOutOfRange, i)
	}
	return u, nil
}

// decodeString borrows the text of a Starlark string argument.
func decodeString(param string, v starlarkLib.Value) (string, error) {
	s, ok := starlarkLib.AsString(v)
	if !ok {
		return "", fmt.Errorf("for parameter %s: got %s, want string", param, v.Type())
	}
	return s, nil
}

// encodeString hands a library result back to the interpreter as a new Starlark string.
func encodeString(s string) starlarkLib.Value {
	return starlarkLib.String(s)
}

// toGoValue converts a script result into plain Go values.
func toGoValue(v starlarkLib.Value) (any, error) {
	switch v := v.(type) {
	case nil, starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		if u, ok := v.Uint64(); ok {
			return u, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, v)
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *starlarkLib.List:
		return toGoSlice(v)
	case starlarkLib.Tuple:
		return toGoSlice(v)
	case *starlarkLib.Dict:
		out := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := starlarkLib.AsString(item[0])
			if !ok {
				key = item[0].String()
			}
			val, err := toGoValue(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict value %q: %w", key, err)
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported Starlark type %s", v.Type())
	}
}

func toGoSlice(seq starlarkLib.Indexable) ([]any, error) {
	out := make([]any, 0, seq.Len())
	for i := range seq.Len() {
		val, err := toGoValue(seq.Index(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, val)
	}
	return out, nil
}
