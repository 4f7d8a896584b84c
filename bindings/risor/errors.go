package risor

import "errors"

var (
	ErrContentNil    = errors.New("script content is nil")
	ErrCompileFailed = errors.New("risor compilation failed")
	ErrExecFailed    = errors.New("risor execution failed")
)
