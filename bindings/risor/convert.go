package risor

import (
	"github.com/risor-io/risor/object"
)

// decodeUint converts a Risor int argument into the uint64 the library expects.
func decodeUint(fn, param string, obj object.Object) (uint64, *object.Error) {
	i, err := object.AsInt(obj)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, object.Errorf("value error: %s() parameter %s must be non-negative (got %d)", fn, param, i)
	}
	return uint64(i), nil
}

// decodeString borrows the text of a Risor string argument.
func decodeString(obj object.Object) (string, *object.Error) {
	return object.AsString(obj)
}

// encodeString hands a library result back to the VM as a new Risor string.
func encodeString(s string) object.Object {
	return object.NewString(s)
}
