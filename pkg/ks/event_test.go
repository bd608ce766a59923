package ks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

func TestEventDataLayouts(t *testing.T) {
	tests := []struct {
		name      string
		native    abi.Layout
		compat    abi.Layout
		field     string
		nativeOff int
		compatOff int
		size64    int
		size32    int
	}{
		{
			name:      "event handle",
			native:    abi.LayoutOf(NewEventHandleData[abi.Ptr64](0x1234)),
			compat:    abi.LayoutOf(NewEventHandleData[abi.Ptr32](0x1234)),
			field:     "Event",
			nativeOff: 8,
			compatOff: 4,
			size64:    32,
			size32:    16,
		},
		{
			name:      "semaphore handle",
			native:    abi.LayoutOf(NewSemaphoreHandleData[abi.Ptr64](0x1234, 1)),
			compat:    abi.LayoutOf(NewSemaphoreHandleData[abi.Ptr32](0x1234, 1)),
			field:     "Semaphore",
			nativeOff: 8,
			compatOff: 4,
			size64:    32,
			size32:    16,
		},
	}

	for _, tt := range tests {
		require.NoError(t, abi.SamePrefix(tt.native, tt.compat, tt.field), tt.name)

		f, ok := tt.native.Field(tt.field)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.nativeOff, f.Offset, tt.name)
		assert.Equal(t, 8, f.Size, tt.name)

		f, ok = tt.compat.Field(tt.field)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.compatOff, f.Offset, tt.name)
		assert.Equal(t, 4, f.Size, tt.name)

		assert.Equal(t, tt.size64, tt.native.Size, tt.name)
		assert.Equal(t, tt.size32, tt.compat.Size, tt.name)
	}
}

func TestEventDataBytes(t *testing.T) {
	b, err := NewSemaphoreHandleData[abi.Ptr32](0x44, -1).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x44, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
	}, b)
}

func TestEventDataValidate(t *testing.T) {
	d := EventData32{
		EventDataHeader: EventDataHeader{NotificationType: KSEVENTF_SEMAPHORE_HANDLE},
		Notification:    EventHandleNotification[abi.Ptr32]{Event: 1},
	}
	_, err := d.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidNotification)

	d = EventData32{EventDataHeader: EventDataHeader{NotificationType: KSEVENTF_DPC}}
	_, err = d.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidNotification)
}

func TestBuildEnableEventRequest(t *testing.T) {
	ev := NewIdentifier(KSEVENTSETID_Connection, KSEVENT_CONNECTION_ENDOFSTREAM, 0)

	r, err := BuildEnableEventRequest(ev, NewEventHandleData[abi.Ptr64](0x10))
	require.NoError(t, err)
	require.Equal(t, IOCTL_KS_ENABLE_EVENT, r.ControlCode())
	require.Equal(t, KSEVENT_TYPE_ENABLE, r.Identifier.Flags)

	in, out := r.Split()
	require.Len(t, in, IdentifierSize)
	require.Len(t, out, 32)
}
