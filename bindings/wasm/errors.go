package wasm

import "errors"

var (
	ErrContentNil    = errors.New("wasm content is nil")
	ErrCompileFailed = errors.New("wasm compilation failed")
	ErrExportMissing = errors.New("wasm export not found")
	ErrCallFailed    = errors.New("wasm call failed")
	ErrClosed        = errors.New("wasm module is closed")
)

// ErrInvalidText is returned when a string crossing the boundary is not valid UTF-8.
var ErrInvalidText = errors.New("text is not valid UTF-8")
