// Package abi provides the pointer-width reference types and the C layout
// encoder shared by every request structure in this module.
//
// Structures that carry a pointer, or an offset sized like a pointer, are
// declared once as a generic type over Ref and instantiated twice: with
// NativePtr for callers of the same bitness as the driver, and with Ptr32 for
// the WOW64 form a 64-bit driver receives from a 32-bit process.
package abi

import "unsafe"

// Ref is the set of types a pointer or pointer-sized offset field can take.
type Ref interface {
	~uint32 | ~uint64
}

// Ptr32 is a 32-bit pointer or buffer offset (POINTER_32, ULONG32).
type Ptr32 uint32

// Ptr64 is a 64-bit pointer or buffer offset (POINTER_64, ULONG_PTR on 64-bit).
type Ptr64 uint64

// SizeOfRef returns the wire size of R in bytes.
func SizeOfRef[R Ref]() int {
	var r R
	return int(unsafe.Sizeof(r))
}

// IsCompat reports whether R is the 32-bit form while the build target is
// 64-bit, i.e. whether a structure instantiated with R is a thunked layout.
func IsCompat[R Ref]() bool {
	return SizeOfRef[R]() < PointerSize
}

// AlignUp rounds n up to a multiple of align. align must be a power of two.
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}
