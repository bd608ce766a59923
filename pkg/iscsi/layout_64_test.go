//go:build !(386 || arm || mips || mipsle)

package iscsi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGoLayoutNative64(t *testing.T) {
	var o LoginOptions
	assert.Equal(t, uintptr(48), unsafe.Offsetof(o.Username))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(o.Password))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(o))

	var o32 LoginOptions32
	assert.Equal(t, uintptr(44), unsafe.Offsetof(o32.Username))
	assert.Equal(t, uintptr(52), unsafe.Sizeof(o32))

	assert.Equal(t, uintptr(PortalSize), unsafe.Sizeof(Portal{}))
	assert.Equal(t, uintptr(UniqueSessionIDSize), unsafe.Sizeof(UniqueSessionID{}))
}
