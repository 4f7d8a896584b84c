package starlark

import "errors"

var (
	ErrNegativeValue  = errors.New("value must be non-negative")
	ErrOutOfRange     = errors.New("value out of range for an unsigned 64-bit integer")
	ErrModuleNotFound = errors.New("module not found")
	ErrContentNil     = errors.New("script content is nil")
	ErrCompileFailed  = errors.New("starlark compilation failed")
	ErrExecFailed     = errors.New("starlark execution failed")
)
