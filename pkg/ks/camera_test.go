package ks

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

func TestExtendedLayouts(t *testing.T) {
	h := abi.LayoutOf(ExtendedHeader{})
	require.Equal(t, ExtendedHeaderSize, h.Size)
	f, _ := h.Field("Flags")
	assert.Equal(t, 16, f.Offset)
	f, _ = h.Field("Capability")
	assert.Equal(t, 24, f.Offset)

	s := abi.LayoutOf(VideoProcSetting{})
	require.Equal(t, VideoProcSettingSize, s.Size)
	f, _ = s.Field("VideoProc")
	assert.Equal(t, 16, f.Offset)
	assert.Equal(t, ExtendedValueSize, f.Size)
	f, _ = s.Field("Reserved")
	assert.Equal(t, 24, f.Offset)
}

func TestExtendedValueVariants(t *testing.T) {
	tests := []struct {
		value ExtendedValue
		want  []byte
	}{
		{Float64Value(1.5), []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}},
		{Uint32Value(7), []byte{7, 0, 0, 0, 0, 0, 0, 0}},
		{Int32Value(-2), []byte{0xfe, 0xff, 0xff, 0xff, 0, 0, 0, 0}},
		{Int64Value(-2), []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{Uint64Value(KSCAMERA_EXTENDEDPROP_ISO_MANUAL), []byte{0, 0, 0, 0, 0, 0, 0x80, 0}},
	}

	for _, tt := range tests {
		p := ExtendedProperty{Value: tt.value}
		b, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, b, ExtendedHeaderSize+ExtendedValueSize)
		assert.Equal(t, tt.want, b[ExtendedHeaderSize:], "%T", tt.value)

		got, err := ParseExtendedProperty(tt.value.Kind(), b)
		require.NoError(t, err)
		assert.Equal(t, tt.value, got.Value)
		assert.Equal(t, uint32(ExtendedHeaderSize+ExtendedValueSize), got.Header.Size)
	}

	_, err := DecodeExtendedValue(ValueKind(0), make([]byte, 8))
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestBuildExtendedPropertyRequest(t *testing.T) {
	setting := VideoProcSetting{
		Mode:      KSCAMERA_EXTENDEDPROP_VIDEOPROCFLAG_MANUAL,
		Min:       100,
		Max:       3200,
		Step:      100,
		VideoProc: Uint32Value(400),
	}
	r := BuildExtendedPropertyRequest(KSPROPERTY_CAMERACONTROL_EXTENDED_ISO_ADVANCED, KSPROPERTY_TYPE_SET,
		ExtendedHeader{Flags: KSCAMERA_EXTENDEDPROP_ISO_MANUAL}, setting)

	require.Equal(t, IOCTL_KS_PROPERTY, r.ControlCode())
	require.Equal(t, KSPROPERTYSETID_ExtendedCameraControl, r.Identifier.Set)
	require.Len(t, r.Payload, ExtendedHeaderSize+VideoProcSettingSize)

	var h ExtendedHeader
	require.NoError(t, h.UnmarshalBinary(r.Payload))
	assert.Equal(t, KSCAMERA_EXTENDEDPROP_VERSION, h.Version)
	assert.Equal(t, uint32(len(r.Payload)), h.Size)
	assert.Equal(t, KSCAMERA_EXTENDEDPROP_ISO_MANUAL, h.Flags)

	got, err := DecodeVideoProcSetting(KindUint32, r.Payload[ExtendedHeaderSize:])
	require.NoError(t, err)
	assert.Equal(t, setting, got)
	assert.Equal(t, uint32(400), binary.LittleEndian.Uint32(r.Payload[ExtendedHeaderSize+16:]))
}

func TestControlValue(t *testing.T) {
	v := NewCameraControlRequest(KSPROPERTY_CAMERACONTROL_EXPOSURE, KSPROPERTY_TYPE_SET, -6, KSPROPERTY_CAMERACONTROL_FLAGS_MANUAL)

	l := abi.LayoutOf(v)
	require.Equal(t, ControlValueSize, l.Size)
	f, _ := l.Field("Value")
	assert.Equal(t, IdentifierSize, f.Offset)
	f, _ = l.Field("Capabilities")
	assert.Equal(t, 32, f.Offset)

	b, err := v.MarshalBinary()
	require.NoError(t, err)

	var got ControlValue
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, v, got)
	assert.Equal(t, PROPSETID_VIDCAP_VIDEOPROCAMP, NewVideoProcAmpRequest(KSPROPERTY_VIDEOPROCAMP_GAIN, KSPROPERTY_TYPE_GET, 0, 0).Property.Set)
}

func TestControlValueRequest(t *testing.T) {
	v := NewVideoProcAmpRequest(KSPROPERTY_VIDEOPROCAMP_BRIGHTNESS, KSPROPERTY_TYPE_SET, 77, KSPROPERTY_VIDEOPROCAMP_FLAGS_MANUAL)
	r := v.Request()
	require.Equal(t, IOCTL_KS_PROPERTY, r.ControlCode())

	in, out := r.Split()
	require.Len(t, in, ControlValueSize)
	require.Len(t, out, ControlValueSize)
	assert.Equal(t, uint32(77), binary.LittleEndian.Uint32(out[24:28]))
	assert.Equal(t, KSPROPERTY_VIDEOPROCAMP_FLAGS_MANUAL, binary.LittleEndian.Uint32(out[28:32]))

	want, _ := v.MarshalBinary()
	assert.Equal(t, want, in)
	whole, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, want, whole)
}
