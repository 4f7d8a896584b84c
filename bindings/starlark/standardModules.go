package starlark

import (
	"maps"

	starlarkJSON "go.starlark.net/lib/json"
	starlarkMath "go.starlark.net/lib/math"
	starlarkTime "go.starlark.net/lib/time"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// standardModules are loadable by name and predeclared next to brutil_py.
var standardModules = map[string]*starlarkstruct.Module{
	"json": starlarkJSON.Module,
	"math": starlarkMath.Module,
	"time": starlarkTime.Module,
}

// universe returns the predeclared names every script sees: the Starlark
// universe, the standard modules, the brutil_py module and its members.
func universe() starlarkLib.StringDict {
	u := maps.Clone(starlarkLib.Universe)
	for name, mod := range standardModules {
		u[name] = mod
	}
	u[ModuleName] = Module()
	maps.Copy(u, Members())
	return u
}
