//go:build !(386 || arm || mips || mipsle)

package abi

// PointerSize is the pointer width of the build target in bytes.
const PointerSize = 8

// NativePtr is the pointer-width reference type of the build target.
type NativePtr = Ptr64
