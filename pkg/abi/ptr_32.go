//go:build 386 || arm || mips || mipsle

package abi

// PointerSize is the pointer width of the build target in bytes.
const PointerSize = 4

// NativePtr is the pointer-width reference type of the build target.
// On 32-bit targets it is the same type as Ptr32.
type NativePtr = Ptr32
