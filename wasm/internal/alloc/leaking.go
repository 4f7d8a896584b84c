//go:build gc.leaking

package alloc

const name = Leaking
