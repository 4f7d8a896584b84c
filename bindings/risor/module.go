// Package risor exposes the brutil library to the Risor VM as the "brutil"
// module. Greetings produced here identify themselves as coming "via Risor".
package risor

import (
	"context"

	"github.com/bruplint/brutil"
	"github.com/risor-io/risor/object"
)

// ModuleName is the global name of the module inside scripts.
const ModuleName = "brutil"

var greetViaRisor = brutil.Via(brutil.HostRisor)

// Module returns the brutil builtins module.
func Module() *object.Module {
	return object.NewBuiltinsModule(ModuleName, Members())
}

// Members returns the module's builtins keyed by their script names.
func Members() map[string]object.Object {
	return map[string]object.Object{
		"sum_as_string": object.NewBuiltin("sum_as_string", sumAsString),
		"greet_rs":      object.NewBuiltin("greet_rs", greet),
		"greet":         object.NewBuiltin("greet", greet),
	}
}

func sumAsString(_ context.Context, args ...object.Object) object.Object {
	const fn = ModuleName + ".sum_as_string"
	if len(args) != 2 {
		return object.NewArgsError(fn, 2, len(args))
	}
	a, err := decodeUint(fn, "a", args[0])
	if err != nil {
		return err
	}
	b, err := decodeUint(fn, "b", args[1])
	if err != nil {
		return err
	}

	sum, sumErr := brutil.SumAsString(a, b)
	if sumErr != nil {
		return object.Errorf("%s: %v", fn, sumErr)
	}
	return encodeString(sum)
}

func greet(_ context.Context, args ...object.Object) object.Object {
	const fn = ModuleName + ".greet"
	if len(args) != 1 {
		return object.NewArgsError(fn, 1, len(args))
	}
	name, err := decodeString(args[0])
	if err != nil {
		return err
	}
	return encodeString(greetViaRisor(name))
}
