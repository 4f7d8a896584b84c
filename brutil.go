package brutil

import (
	"math/bits"
	"strconv"
)

// Host names used to build the greeting prefix of each binding.
const (
	HostPython      = "Python"
	HostWebAssembly = "WebAssembly"
	HostRisor       = "Risor"
)

// GreetFunc greets a name on behalf of a specific host.
type GreetFunc func(name string) string

// Greet returns the greeting for message. It has no side effects and never fails.
func Greet(message string) string {
	return "Hello, " + message + "!"
}

// SumAsString returns the decimal representation of a + b.
func SumAsString(a, b uint64) (string, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return "", ErrOverflow
	}
	return strconv.FormatUint(sum, 10), nil
}

// Prefix returns the descriptive phrase a binding prepends to names, e.g. "via Python, ".
func Prefix(host string) string {
	return "via " + host + ", "
}

// Via returns a GreetFunc that prefixes every name with Prefix(host) before
// calling Greet. Bindings build their greet entry point from it.
func Via(host string) GreetFunc {
	prefix := Prefix(host)
	return func(name string) string {
		return Greet(prefix + name)
	}
}
