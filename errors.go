package brutil

import "errors"

// ErrOverflow is returned when a sum does not fit in an unsigned 64-bit integer.
var ErrOverflow = errors.New("integer overflow")
