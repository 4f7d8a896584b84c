// Command plugin is the brutil Extism plugin. It exports:
//
//	greet_rs   input: UTF-8 name, output: the greeting "via WebAssembly"
//	allocator  output: the allocator the plugin was built with
//
// Build it with "make plugin" (Go, GOOS=wasip1) or "make plugin-small"
// (TinyGo with the leaking allocator) from the wasm directory.
package main

import (
	"errors"
	"unicode/utf8"

	"github.com/bruplint/brutil"
)

var errInvalidText = errors.New("greet_rs: input is not valid UTF-8")

var greetViaWebAssembly = brutil.Via(brutil.HostWebAssembly)

// greetRS decodes the raw input buffer, greets it, and encodes the result
// into a new buffer owned by the host.
func greetRS(input []byte) ([]byte, error) {
	if !utf8.Valid(input) {
		return nil, errInvalidText
	}
	return []byte(greetViaWebAssembly(string(input))), nil
}

func main() {}
