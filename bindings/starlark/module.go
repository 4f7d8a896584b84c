// Package starlark exposes the brutil library to the Starlark interpreter as
// the "brutil_py" module. Starlark is the Python dialect embedded in Go, so the
// greeting entry point identifies itself as coming "via Python".
package starlark

import (
	"fmt"

	"github.com/bruplint/brutil"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// ModuleName is the name scripts use to reach the module, both as a
// predeclared global and in load("brutil_py", ...).
const ModuleName = "brutil_py"

var greetViaPython = brutil.Via(brutil.HostPython)

// Module returns the frozen brutil_py module.
func Module() *starlarkstruct.Module {
	m := &starlarkstruct.Module{
		Name:    ModuleName,
		Members: Members(),
	}
	m.Freeze()
	return m
}

// Members returns the callable entry points of the module, keyed by their script names.
func Members() starlarkLib.StringDict {
	return starlarkLib.StringDict{
		"sum_as_string": starlarkLib.NewBuiltin("sum_as_string", sumAsString),
		"greet_rs":      starlarkLib.NewBuiltin("greet_rs", greet),
		"greet":         starlarkLib.NewBuiltin("greet", greet),
	}
}

// sumAsString implements sum_as_string(a, b).
func sumAsString(
	_ *starlarkLib.Thread,
	b *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var rawA, rawB starlarkLib.Value
	if err := starlarkLib.UnpackArgs(b.Name(), args, kwargs, "a", &rawA, "b", &rawB); err != nil {
		return nil, err
	}

	a, err := decodeUint("a", rawA)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	bVal, err := decodeUint("b", rawB)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	sum, err := brutil.SumAsString(a, bVal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return encodeString(sum), nil
}

// greet implements greet_rs(name) and its greet(name) alias.
func greet(
	_ *starlarkLib.Thread,
	b *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var rawName starlarkLib.Value
	if err := starlarkLib.UnpackArgs(b.Name(), args, kwargs, "name", &rawName); err != nil {
		return nil, err
	}

	name, err := decodeString("name", rawName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return encodeString(greetViaPython(name)), nil
}
