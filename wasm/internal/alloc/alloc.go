// Package alloc reports which memory allocator the wasm module was built with.
//
// TinyGo sets the gc.leaking build tag when building with -gc=leaking, which
// replaces the garbage collector with a bump allocator that never frees. The
// result is a noticeably smaller binary, which suits short-lived plugin
// instances. Greeting results are identical under either allocator.
package alloc

const (
	Default = "default"
	Leaking = "leaking"
)

// Name returns the allocator selected at build time.
func Name() string {
	return name
}
