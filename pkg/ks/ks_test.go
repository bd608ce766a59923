package ks

import (
	"io"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

func TestIdentifierLayout(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Pin, KSPROPERTY_PIN_DATARANGES, KSPROPERTY_TYPE_GET)

	b, err := id.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x60, 0x49, 0x13, 0x8c, 0xad, 0x51, 0xcf, 0x11,
		0x87, 0x8a, 0x94, 0xf8, 0x01, 0xc1, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}, b)

	l := abi.LayoutOf(id)
	assert.Equal(t, IdentifierSize, l.Size)
	assert.Equal(t, []abi.Field{
		{Name: "Set", Offset: 0, Size: 16},
		{Name: "Id", Offset: 16, Size: 4},
		{Name: "Flags", Offset: 20, Size: 4},
	}, l.Fields)
}

func TestIdentifierRoundTrip(t *testing.T) {
	f := func(d1 uint32, d2, d3 uint16, d4 [8]byte, id, flags uint32) bool {
		set := guid.GUID{Data1: d1, Data2: d2, Data3: d3, Data4: d4}
		b, err := NewIdentifier(set, id, flags).MarshalBinary()
		if err != nil {
			return false
		}
		var got Identifier
		if err := got.UnmarshalBinary(b); err != nil {
			return false
		}
		return got.Set == set && got.ID == id && got.Flags == flags
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestIdentifierShortBuffer(t *testing.T) {
	var id Identifier
	require.ErrorIs(t, id.UnmarshalBinary(make([]byte, IdentifierSize-1)), io.ErrShortBuffer)
}

func TestMatchesIgnoresFlags(t *testing.T) {
	get := NewIdentifier(PROPSETID_VIDCAP_CAMERACONTROL, KSPROPERTY_CAMERACONTROL_ZOOM, KSPROPERTY_TYPE_GET)
	set := get.WithFlags(KSPROPERTY_TYPE_SET)

	require.True(t, Matches(get, set))
	require.True(t, get.Matches(set))
	require.Equal(t, KSPROPERTY_TYPE_GET, get.Flags)

	require.False(t, Matches(get, NewIdentifier(PROPSETID_VIDCAP_VIDEOPROCAMP, KSPROPERTY_CAMERACONTROL_ZOOM, KSPROPERTY_TYPE_GET)))
	require.False(t, Matches(get, NewIdentifier(PROPSETID_VIDCAP_CAMERACONTROL, KSPROPERTY_CAMERACONTROL_FOCUS, KSPROPERTY_TYPE_GET)))
}

func TestHeaderLiterals(t *testing.T) {
	assert.Equal(t, uint32(1), KSPROPERTY_TYPE_GET)
	assert.Equal(t, uint32(2), KSPROPERTY_TYPE_SET)
	assert.Equal(t, uint32(0x200), KSPROPERTY_TYPE_BASICSUPPORT)
	assert.Equal(t, State(3), KSSTATE_RUN)
	assert.Equal(t, "KSSTATE_RUN", KSSTATE_RUN.String())
	assert.Equal(t, uint64(36028797018963968), KSCAMERA_EXTENDEDPROP_ISO_MANUAL)
	assert.Equal(t, uint64(1)<<55, KSCAMERA_EXTENDEDPROP_ISO_MANUAL)
	assert.Equal(t, uint32(40), KSPROPERTY_AUDIO_PREFERRED_STATUS)
	assert.Equal(t, uint32(19), KSPROPERTY_CAMERACONTROL_AUTO_EXPOSURE_PRIORITY)
	assert.Equal(t, uint32(13), KSPROPERTY_VIDEOPROCAMP_POWERLINE_FREQUENCY)
	assert.Equal(t, uint32(16), KSPROPERTY_PIN_MODEDATAFORMATS)
	assert.Equal(t, uint32(14), KSPROPERTY_CAMERACONTROL_EXTENDED_ISO)

	assert.Equal(t, "{8C134960-51AD-11CF-878A-94F801C10000}", KSPROPSETID_Pin.String())
	assert.Equal(t, guid.MustParse("c6e13370-30ac-11d0-a18c-00a0c9118956"), PROPSETID_VIDCAP_CAMERACONTROL)
	assert.Equal(t, guid.MustParse("1CB79112-C0D2-4213-9CA6-CD4FDB927972"), KSPROPERTYSETID_ExtendedCameraControl)
	assert.True(t, KSDATAFORMAT_TYPE_WILDCARD.IsNull())
}

func TestCodesAreDistinct(t *testing.T) {
	require.NoError(t, Codes.Validate())
	n, ok := Codes.Lookup(0x002F0003)
	require.True(t, ok)
	require.Equal(t, "IOCTL_KS_PROPERTY", n.Name)
}
