//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/bruplint/brutil/wasm/internal/alloc"
)

// throwOnError wraps a Go callback so an Error it returns is thrown in JS.
// A Go panic inside a js.FuncOf callback would terminate the module instead.
const throwOnError = `return function greet_rs() {
	const r = impl.apply(this, arguments);
	if (r instanceof Error) throw r;
	return r;
}`

type jsArgument struct {
	js.Value
}

func (a jsArgument) IsString() bool {
	return a.Type() == js.TypeString
}

func greetFunc(_ js.Value, args []js.Value) any {
	wrapped := make([]argument, len(args))
	for i, arg := range args {
		wrapped[i] = jsArgument{arg}
	}

	greeting, err := greetRS(wrapped)
	if err != nil {
		return js.Global().Get("TypeError").New(err.Error())
	}
	return greeting
}

// register installs the module's globals.
func register() {
	wrap := js.Global().Get("Function").New("impl", throwOnError)
	js.Global().Set(ExportName, wrap.Invoke(js.FuncOf(greetFunc)))
	js.Global().Set("brutil_allocator", alloc.Name())
}

func main() {
	register()
	select {}
}
