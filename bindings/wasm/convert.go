package wasm

import (
	"fmt"
	"unicode/utf8"
)

// encodeString copies a Go string into the byte buffer handed to the plugin as input.
func encodeString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: input", ErrInvalidText)
	}
	return []byte(s), nil
}

// decodeString copies plugin output into a string owned by the caller.
func decodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: output", ErrInvalidText)
	}
	return string(b), nil
}
