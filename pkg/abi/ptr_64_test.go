//go:build !(386 || arm || mips || mipsle)

package abi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNativePtrWidth(t *testing.T) {
	require.Equal(t, int(unsafe.Sizeof(uintptr(0))), SizeOfRef[NativePtr]())
	require.Equal(t, 8, PointerSize)
	require.False(t, IsCompat[NativePtr]())
	require.True(t, IsCompat[Ptr32]())
}
