//go:build wasip1

package main

import (
	"github.com/extism/go-pdk"

	"github.com/bruplint/brutil/wasm/internal/alloc"
)

//go:wasmexport greet_rs
func greetRSExport() int32 {
	output, err := greetRS(pdk.Input())
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	pdk.Output(output)
	return 0
}

//go:wasmexport allocator
func allocatorExport() int32 {
	pdk.OutputString(alloc.Name())
	return 0
}
