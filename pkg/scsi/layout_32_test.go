//go:build 386 || arm || mips || mipsle

package scsi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// On 32-bit targets the native and *32 forms coincide.
func TestGoLayoutNative32(t *testing.T) {
	var p PassThrough
	assert.Equal(t, uintptr(20), unsafe.Offsetof(p.DataBufferOffset))
	assert.Equal(t, uintptr(44), unsafe.Sizeof(p))
	assert.Equal(t, abi.LayoutOf(PassThrough32{}), abi.LayoutOf(p))

	var a AtaPassThroughEx
	assert.Equal(t, uintptr(20), unsafe.Offsetof(a.DataBufferOffset))
	assert.Equal(t, uintptr(40), unsafe.Sizeof(a))
	assert.Equal(t, 40, AtaPassThroughSize[abi.NativePtr]())
}
