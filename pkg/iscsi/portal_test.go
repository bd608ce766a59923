package iscsi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

func TestPortalLayout(t *testing.T) {
	l := abi.LayoutOf(Portal{})
	assert.Equal(t, PortalSize, l.Size)
	assert.Equal(t, 1026, l.Size)

	f, ok := l.Field("Address")
	require.True(t, ok)
	assert.Equal(t, 512, f.Offset)
	assert.Equal(t, 512, f.Size)

	f, ok = l.Field("Socket")
	require.True(t, ok)
	assert.Equal(t, 1024, f.Offset)
}

func TestNewPortal(t *testing.T) {
	p, err := NewPortal(TargetPortal{Address: "10.0.0.5"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPortalPort, p.Socket)

	buf, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, PortalSize)
	assert.Equal(t, byte('1'), buf[512])
	assert.Equal(t, byte(0), buf[513])

	var back Portal
	require.NoError(t, back.UnmarshalBinary(buf))
	tp := back.TargetPortal()
	assert.Equal(t, "10.0.0.5", tp.Address)
	assert.Equal(t, "", tp.SymbolicName)
	require.NotNil(t, tp.Socket)
	assert.Equal(t, uint16(3260), *tp.Socket)
}

func TestNewPortalExplicitSocket(t *testing.T) {
	port := uint16(3261)
	p, err := NewPortal(TargetPortal{SymbolicName: "célula", Address: "san.local", Socket: &port})
	require.NoError(t, err)
	assert.Equal(t, port, p.Socket)
	assert.Equal(t, "célula", p.TargetPortal().SymbolicName)
}

func TestNewPortalTooLong(t *testing.T) {
	_, err := NewPortal(TargetPortal{Address: strings.Repeat("a", MAX_ISCSI_PORTAL_ADDRESS_LEN)})
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = NewPortal(TargetPortal{Address: strings.Repeat("a", MAX_ISCSI_PORTAL_ADDRESS_LEN-1)})
	assert.NoError(t, err)
}

func TestPortalShortBuffer(t *testing.T) {
	var p Portal
	assert.Error(t, p.UnmarshalBinary(make([]byte, PortalSize-1)))
}

func TestUniqueSessionID(t *testing.T) {
	id := UniqueSessionID{AdapterUnique: 0xffffe000_12345678, AdapterSpecific: 0x4000013700000002}
	buf, err := id.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, UniqueSessionIDSize)

	var back UniqueSessionID
	require.NoError(t, back.UnmarshalBinary(buf))
	assert.Equal(t, id, back)
	assert.Equal(t, "ffffe00012345678-4000013700000002", id.String())
}
