/*
Package brutil is the shared greeting and formatting library behind the brutil
bindings.

The library itself is tiny: Greet formats a greeting and SumAsString renders the
sum of two unsigned integers as decimal text. The interesting part of this
repository is how those two functions are exposed to other runtimes:

  - bindings/starlark exposes the "brutil_py" module to the Starlark (Python
    dialect) interpreter.
  - bindings/risor exposes the "brutil" module to the Risor VM.
  - the wasm/ module builds an Extism plugin and a browser module exporting
    "greet_rs", and bindings/wasm loads that plugin from Go.

Every binding prefixes the name it is given with the phrase returned by Prefix
before delegating to Greet, so callers can tell which host produced a greeting:

	greet := brutil.Via(brutil.HostPython)
	greet("Ada") // "Hello, via Python, Ada!"
*/
package brutil
