package ctlcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchesHeaderLiterals(t *testing.T) {
	tests := []struct {
		name       string
		deviceType DeviceType
		function   uint16
		method     Method
		access     Access
		want       uint32
	}{
		// ntddscsi.h
		{"IOCTL_SCSI_GET_ADDRESS", FILE_DEVICE_CONTROLLER, 0x0406, METHOD_BUFFERED, FILE_ANY_ACCESS, 266264},
		{"IOCTL_SCSI_PASS_THROUGH", FILE_DEVICE_CONTROLLER, 0x0401, METHOD_BUFFERED, FILE_READ_ACCESS | FILE_WRITE_ACCESS, 0x0004D004},
		{"IOCTL_ATA_PASS_THROUGH", FILE_DEVICE_CONTROLLER, 0x040b, METHOD_BUFFERED, FILE_READ_ACCESS | FILE_WRITE_ACCESS, 0x0004D02C},
		// ks.h
		{"IOCTL_KS_PROPERTY", FILE_DEVICE_KS, 0x000, METHOD_NEITHER, FILE_ANY_ACCESS, 0x002F0003},
		{"IOCTL_KS_WRITE_STREAM", FILE_DEVICE_KS, 0x004, METHOD_NEITHER, FILE_WRITE_ACCESS, 0x002F8013},
		{"IOCTL_KS_READ_STREAM", FILE_DEVICE_KS, 0x005, METHOD_NEITHER, FILE_READ_ACCESS, 0x002F4017},
		// winioctl.h
		{"IOCTL_DISK_GET_DRIVE_GEOMETRY_EX", FILE_DEVICE_DISK, 0x0028, METHOD_BUFFERED, FILE_ANY_ACCESS, 0x000700A0},
	}

	for _, tt := range tests {
		got := New(tt.deviceType, tt.function, tt.method, tt.access)
		assert.Equal(t, Code(tt.want), got, tt.name)
		assert.Equal(t, tt.want, CTL_CODE(uint32(tt.deviceType), uint32(tt.function), uint32(tt.method), uint32(tt.access)), tt.name)
	}
}

func TestDecompose(t *testing.T) {
	c := New(FILE_DEVICE_KS, 0x004, METHOD_NEITHER, FILE_WRITE_ACCESS)

	require.Equal(t, FILE_DEVICE_KS, c.DeviceType())
	require.Equal(t, uint16(0x004), c.Function())
	require.Equal(t, METHOD_NEITHER, c.Method())
	require.Equal(t, FILE_WRITE_ACCESS, c.Access())
	require.False(t, c.IsCommon())
	require.False(t, c.IsCustomFunction())
	require.Equal(t, "0x002F8013", c.String())
}

func TestDecomposeRoundTrip(t *testing.T) {
	for _, dt := range []DeviceType{FILE_DEVICE_CONTROLLER, FILE_DEVICE_KS, 0x8000, 0xFFFF} {
		for _, fn := range []uint16{0, 0x406, 0x800, 0xFFF} {
			for m := METHOD_BUFFERED; m <= METHOD_NEITHER; m++ {
				for a := FILE_ANY_ACCESS; a <= FILE_READ_ACCESS|FILE_WRITE_ACCESS; a++ {
					c := New(dt, fn, m, a)
					require.Equal(t, dt, c.DeviceType())
					require.Equal(t, fn, c.Function())
					require.Equal(t, m, c.Method())
					require.Equal(t, a, c.Access())
				}
			}
		}
	}
}

func TestVendorCode(t *testing.T) {
	c := New(0x8000, 0x800, METHOD_BUFFERED, FILE_ANY_ACCESS)
	require.True(t, c.IsCommon())
	require.True(t, c.IsCustomFunction())
	require.Equal(t, Code(0x80002000), c)
}

func TestTable(t *testing.T) {
	table := Table{
		{"A", New(FILE_DEVICE_KS, 1, METHOD_NEITHER, FILE_ANY_ACCESS)},
		{"B", New(FILE_DEVICE_KS, 2, METHOD_NEITHER, FILE_ANY_ACCESS)},
	}
	require.NoError(t, table.Validate())

	n, ok := table.Lookup(New(FILE_DEVICE_KS, 2, METHOD_NEITHER, FILE_ANY_ACCESS))
	require.True(t, ok)
	require.Equal(t, "B", n.Name)

	_, ok = table.Lookup(0)
	require.False(t, ok)

	code, err := table.ByName("A")
	require.NoError(t, err)
	require.Equal(t, table[0].Code, code)

	_, err = table.ByName("C")
	require.ErrorIs(t, err, ErrUnknownName)

	dup := append(Table{}, table...)
	dup = append(dup, Named{"C", table[0].Code})
	require.ErrorIs(t, dup.Validate(), ErrDuplicateCode)

	merged := Merge(Table{table[1]}, Table{table[0]})
	require.Equal(t, "A", merged[0].Name)
}

func TestStrings(t *testing.T) {
	require.Equal(t, "METHOD_NEITHER", METHOD_NEITHER.String())
	require.Equal(t, "FILE_READ_ACCESS|FILE_WRITE_ACCESS", (FILE_READ_ACCESS | FILE_WRITE_ACCESS).String())
}
