package ks

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScalarRequest(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Connection, KSPROPERTY_CONNECTION_STATE, KSPROPERTY_TYPE_SET)

	b, err := BuildScalarRequest(id, KSSTATE_RUN)
	require.NoError(t, err)
	require.Len(t, b, IdentifierSize+4)

	want, _ := id.MarshalBinary()
	require.Equal(t, want, b[:IdentifierSize])
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00}, b[IdentifierSize:])
}

func TestBuildScalarRequestValues(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Audio, KSPROPERTY_AUDIO_MUTE, KSPROPERTY_TYPE_SET)

	tests := []struct {
		name  string
		value any
		want  []byte
	}{
		{"BOOL", uint32(1), []byte{0x01, 0x00, 0x00, 0x00}},
		{"BOOLEAN", uint8(1), []byte{0x01}},
		{"int32", int32(-1), []byte{0xff, 0xff, 0xff, 0xff}},
		{"uint64", uint64(0x0102030405060708), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"array", [2]uint16{1, 2}, []byte{0x01, 0x00, 0x02, 0x00}},
		{"marshaler", TopologyConnection{FromNode: 1, ToNode: 2}, []byte{
			0x01, 0, 0, 0, 0, 0, 0, 0, 0x02, 0, 0, 0, 0, 0, 0, 0,
		}},
		{"layout", AllocatorFraming{Frames: 4}, []byte{
			0, 0, 0, 0, 0, 0, 0, 0, 0x04, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		}},
	}

	for _, tt := range tests {
		b, err := BuildScalarRequest(id, tt.value)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, b[IdentifierSize:], tt.name)
	}
}

func TestBuildScalarRequestUnsupported(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Audio, KSPROPERTY_AUDIO_MUTE, KSPROPERTY_TYPE_SET)

	for _, v := range []any{nil, true, [2]bool{}, []uint32{1}, "x", struct{ A uint32 }{1}, map[int]int{}} {
		_, err := BuildScalarRequest(id, v)
		require.ErrorIs(t, err, ErrUnsupportedValue, "%T", v)
	}
}

func TestBuildMultipleItemRequest(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Pin, KSPROPERTY_PIN_PROPOSEDATAFORMAT, KSPROPERTY_TYPE_SET)
	items := []Item{RawItem{1, 2, 3}, RawItem{4, 5}, RawItem{}}

	b, err := BuildMultipleItemRequest(id, items)
	require.NoError(t, err)

	block := b[IdentifierSize:]
	mi, err := ParseMultipleItem(block)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(items)), mi.Count)
	assert.Equal(t, uint32(MultipleItemHeaderSize+5), mi.Size)
	assert.Equal(t, int(mi.Size), len(block))
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, block[MultipleItemHeaderSize:])

	again, err := BuildMultipleItemRequest(id, items)
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestMarshalMultipleItemAligned(t *testing.T) {
	b, err := MarshalMultipleItem([]Item{RawItem{1, 2, 3}, RawItem{4, 5}}, 8)
	require.NoError(t, err)

	require.Len(t, b, 18)
	assert.Equal(t, uint32(18), binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 4, 5}, b[8:])
}

func TestMarshalMultipleItemEmpty(t *testing.T) {
	b, err := MarshalMultipleItem(nil, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{8, 0, 0, 0, 0, 0, 0, 0}, b)
	require.NoError(t, WalkMultipleItem(b, FixedStride(4), 1, func(int, []byte) error {
		t.Fatal("no entries expected")
		return nil
	}))
}

func TestMarshalMultipleItemSizeMismatch(t *testing.T) {
	bad := NewDataFormat(KSDATAFORMAT_TYPE_VIDEO, KSDATAFORMAT_SUBTYPE_MJPG, KSDATAFORMAT_SPECIFIER_NONE, []byte{1, 2})
	bad.FormatSize = DataFormatSize

	_, err := MarshalMultipleItem([]Item{bad}, 8)
	require.ErrorIs(t, err, ErrItemSizeMismatch)
}

func TestWalkMultipleItemFixedStride(t *testing.T) {
	conns := []Item{
		TopologyConnection{FromNode: KSFILTER_NODE, FromNodePin: 0, ToNode: 0, ToNodePin: 1},
		TopologyConnection{FromNode: 0, FromNodePin: 0, ToNode: KSFILTER_NODE, ToNodePin: 1},
	}
	b, err := MarshalMultipleItem(conns, 1)
	require.NoError(t, err)

	got, err := ParseTopologyConnections(b)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, conns[0], got[0])
	assert.Equal(t, conns[1], got[1])
}

func TestWalkMultipleItemErrors(t *testing.T) {
	header := func(size, count uint32, rest ...byte) []byte {
		b := binary.LittleEndian.AppendUint32(nil, size)
		b = binary.LittleEndian.AppendUint32(b, count)
		return append(b, rest...)
	}
	noop := func(int, []byte) error { return nil }

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"short header", []byte{1, 2, 3}, io.ErrShortBuffer},
		{"size past buffer", header(32, 1, 0, 0, 0, 0), io.ErrShortBuffer},
		{"size under header", header(4, 0), ErrSizeMismatch},
		{"too few entries", header(12, 2, 0, 0, 0, 0), ErrCountMismatch},
		{"entry overruns", header(14, 1, 0, 0, 0, 0, 0, 0), ErrSizeMismatch},
		{"trailing bytes", header(16, 1, 0, 0, 0, 0, 0, 0, 0, 0), ErrSizeMismatch},
	}

	for _, tt := range tests {
		stride := FixedStride(4)
		if tt.name == "entry overruns" {
			stride = FixedStride(8)
		}
		err := WalkMultipleItem(tt.buf, stride, 1, noop)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}
}

func TestPinAndNodeRequests(t *testing.T) {
	p := NewIdentifier(KSPROPSETID_Pin, KSPROPERTY_PIN_CINSTANCES, KSPROPERTY_TYPE_GET)

	b := BuildPinRequest(p, 1, nil)
	require.Len(t, b, ScopedPropertySize)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(b[24:28]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[28:32]))

	n := NewIdentifier(KSPROPSETID_Audio, KSPROPERTY_AUDIO_MUTE, KSPROPERTY_TYPE_SET|KSPROPERTY_TYPE_TOPOLOGY)
	b = BuildNodeRequest(n, 7, []byte{1, 0, 0, 0})
	require.Len(t, b, ScopedPropertySize+4)
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(b[24:28]))
	assert.Equal(t, []byte{1, 0, 0, 0}, b[32:])
}

func TestRequestSplit(t *testing.T) {
	id := NewIdentifier(KSPROPSETID_Connection, KSPROPERTY_CONNECTION_STATE, KSPROPERTY_TYPE_SET)
	r := NewPropertyRequest(id, []byte{3, 0, 0, 0})

	in, out := r.Split()
	require.Len(t, in, IdentifierSize)
	require.Equal(t, []byte{3, 0, 0, 0}, out)
	require.Equal(t, IOCTL_KS_PROPERTY, r.ControlCode())

	whole, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, append(in, out...), whole)
}

func TestScopedRequestSplit(t *testing.T) {
	p := NewIdentifier(KSPROPSETID_Pin, KSPROPERTY_PIN_CINSTANCES, KSPROPERTY_TYPE_SET)

	r := NewPinPropertyRequest(p, 2, []byte{9, 0, 0, 0})
	in, out := r.Split()
	require.Len(t, in, ScopedPropertySize)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(in[24:28]))
	assert.Equal(t, []byte{9, 0, 0, 0}, out)

	whole, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, BuildPinRequest(p, 2, []byte{9, 0, 0, 0}), whole)

	n := NewNodePropertyRequest(p.WithFlags(KSPROPERTY_TYPE_GET|KSPROPERTY_TYPE_TOPOLOGY), 5, nil)
	in, out = n.Split()
	require.Len(t, in, ScopedPropertySize)
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(in[24:28]))
	assert.Empty(t, out)
}
