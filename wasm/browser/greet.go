// Command browser is the brutil module for browsers. Built with GOOS=js
// GOARCH=wasm it registers a global greet_rs(name) function with the page's
// JavaScript runtime and then stays resident to serve calls.
package main

import (
	"errors"

	"github.com/bruplint/brutil"
)

// ExportName is the global JavaScript function name.
const ExportName = "greet_rs"

var errNotString = errors.New("greet_rs: name must be a string")

var greetViaWebAssembly = brutil.Via(brutil.HostWebAssembly)

// argument is the slice of a JavaScript value the binding needs.
type argument interface {
	IsString() bool
	String() string
}

// greetRS checks the single argument, greets it, and returns the new string.
func greetRS(args []argument) (string, error) {
	if len(args) != 1 || !args[0].IsString() {
		return "", errNotString
	}
	return greetViaWebAssembly(args[0].String()), nil
}
