package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ntioctl/pkg/ks"
)

type sentCall struct {
	code    uint32
	in, out []byte
	inOut   bool
}

// recordingDevice stands in for a driver handle and keeps every buffer it is
// given.
type recordingDevice struct {
	calls  []sentCall
	closed bool
}

func (d *recordingDevice) IoControl(code uint32, in []byte, outSize uint32) ([]byte, error) {
	d.calls = append(d.calls, sentCall{code: code, in: append([]byte(nil), in...)})
	return make([]byte, outSize), nil
}

func (d *recordingDevice) IoControlInOut(code uint32, in, out []byte) (int, error) {
	d.calls = append(d.calls, sentCall{
		code:  code,
		in:    append([]byte(nil), in...),
		out:   append([]byte(nil), out...),
		inOut: true,
	})
	return len(out), nil
}

func (d *recordingDevice) Close() error {
	d.closed = true
	return nil
}

func withDevice(t *testing.T) *recordingDevice {
	t.Helper()

	dev := &recordingDevice{}
	prev := openDevice
	openDevice = func(path string) (device, error) {
		return dev, nil
	}
	t.Cleanup(func() { openDevice = prev })
	return dev
}

func sendDefinition(t *testing.T, definition string) sentCall {
	t.Helper()

	dev := withDevice(t)
	_, err := run(t, "encode", "--device", `\\.\test`, writeDefinition(t, definition))
	require.NoError(t, err)
	require.Len(t, dev.calls, 1)
	assert.True(t, dev.closed)
	return dev.calls[0]
}

func TestSendPropertySetValue(t *testing.T) {
	c := sendDefinition(t, `kind: ks-property
property:
  set: connection
  id: 0
  type: set
  value: 3
  output_size: 4
`)

	require.True(t, c.inOut)
	assert.Equal(t, uint32(ks.IOCTL_KS_PROPERTY), c.code)
	require.Len(t, c.in, ks.IdentifierSize)
	assert.Equal(t, ks.KSPROPERTY_TYPE_SET, binary.LittleEndian.Uint32(c.in[20:24]))
	assert.Equal(t, []byte{3, 0, 0, 0}, c.out)
}

func TestSendPinPropertySetValue(t *testing.T) {
	c := sendDefinition(t, `kind: ks-property
property:
  set: pin
  id: 3
  type: set
  pin: 1
  value: 2
`)

	require.True(t, c.inOut)
	require.Len(t, c.in, ks.ScopedPropertySize)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(c.in[24:28]))
	assert.Equal(t, []byte{2, 0, 0, 0}, c.out)
}

func TestSendNodeProperty(t *testing.T) {
	c := sendDefinition(t, `kind: ks-property
property:
  set: audio
  id: 1
  type: get
  node: 4
  output_size: 4
`)

	require.True(t, c.inOut)
	require.Len(t, c.in, ks.ScopedPropertySize)
	assert.Equal(t, ks.KSPROPERTY_TYPE_GET|ks.KSPROPERTY_TYPE_TOPOLOGY, binary.LittleEndian.Uint32(c.in[20:24]))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(c.in[24:28]))
	assert.Len(t, c.out, 4)
}

func TestSendCameraControl(t *testing.T) {
	c := sendDefinition(t, `kind: ks-camera-control
camera:
  control: procamp
  id: 0
  type: set
  value: 77
`)

	require.True(t, c.inOut)
	require.Len(t, c.in, ks.ControlValueSize)
	require.Len(t, c.out, ks.ControlValueSize)
	assert.Equal(t, c.in, c.out)
	assert.Equal(t, uint32(77), binary.LittleEndian.Uint32(c.out[24:28]))
	assert.Equal(t, ks.KSPROPERTY_VIDEOPROCAMP_FLAGS_MANUAL, binary.LittleEndian.Uint32(c.out[28:32]))
}

func TestSendWithoutControlCode(t *testing.T) {
	dev := withDevice(t)
	_, err := run(t, "encode", "--device", `\\.\test`, writeDefinition(t, "kind: iscsi-login\nlogin:\n  username: iqn.x\n"))
	require.Error(t, err)
	assert.Empty(t, dev.calls)
}
