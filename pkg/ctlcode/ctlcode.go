// Package ctlcode derives and decodes NT I/O control codes.
//
// A control code packs four fields into 32 bits:
//
//	31        16 15  14 13         2 1    0
//	+-----------+------+------------+------+
//	| DeviceType|Access|  Function  |Method|
//	+-----------+------+------------+------+
//
// see https://learn.microsoft.com/en-us/windows-hardware/drivers/kernel/defining-i-o-control-codes
package ctlcode

import "fmt"

// Code is a 32-bit I/O control code.
type Code uint32

// DeviceType is the FILE_DEVICE_* value in the high word of a code.
type DeviceType uint16

// Method is the buffer transfer method in the low two bits of a code.
type Method uint8

// Access is the required handle access in bits 14 and 15 of a code.
type Access uint8

const (
	METHOD_BUFFERED   Method = 0
	METHOD_IN_DIRECT  Method = 1
	METHOD_OUT_DIRECT Method = 2
	METHOD_NEITHER    Method = 3

	METHOD_DIRECT_TO_HARDWARE   = METHOD_IN_DIRECT
	METHOD_DIRECT_FROM_HARDWARE = METHOD_OUT_DIRECT
)

const (
	FILE_ANY_ACCESS     Access = 0x0000
	FILE_SPECIAL_ACCESS Access = FILE_ANY_ACCESS
	FILE_READ_ACCESS    Access = 0x0001
	FILE_WRITE_ACCESS   Access = 0x0002
)

const (
	FILE_DEVICE_BEEP                DeviceType = 0x00000001
	FILE_DEVICE_CD_ROM              DeviceType = 0x00000002
	FILE_DEVICE_CD_ROM_FILE_SYSTEM  DeviceType = 0x00000003
	FILE_DEVICE_CONTROLLER          DeviceType = 0x00000004
	FILE_DEVICE_DATALINK            DeviceType = 0x00000005
	FILE_DEVICE_DFS                 DeviceType = 0x00000006
	FILE_DEVICE_DISK                DeviceType = 0x00000007
	FILE_DEVICE_DISK_FILE_SYSTEM    DeviceType = 0x00000008
	FILE_DEVICE_FILE_SYSTEM         DeviceType = 0x00000009
	FILE_DEVICE_INPUT_PORT          DeviceType = 0x0000000A
	FILE_DEVICE_KEYBOARD            DeviceType = 0x0000000B
	FILE_DEVICE_MAILSLOT            DeviceType = 0x0000000C
	FILE_DEVICE_MIDI_IN             DeviceType = 0x0000000D
	FILE_DEVICE_MIDI_OUT            DeviceType = 0x0000000E
	FILE_DEVICE_MOUSE               DeviceType = 0x0000000F
	FILE_DEVICE_MULTI_UNC_PROVIDER  DeviceType = 0x00000010
	FILE_DEVICE_NAMED_PIPE          DeviceType = 0x00000011
	FILE_DEVICE_NETWORK             DeviceType = 0x00000012
	FILE_DEVICE_NETWORK_BROWSER     DeviceType = 0x00000013
	FILE_DEVICE_NETWORK_FILE_SYSTEM DeviceType = 0x00000014
	FILE_DEVICE_NULL                DeviceType = 0x00000015
	FILE_DEVICE_PARALLEL_PORT       DeviceType = 0x00000016
	FILE_DEVICE_PHYSICAL_NETCARD    DeviceType = 0x00000017
	FILE_DEVICE_PRINTER             DeviceType = 0x00000018
	FILE_DEVICE_SCANNER             DeviceType = 0x00000019
	FILE_DEVICE_SERIAL_MOUSE_PORT   DeviceType = 0x0000001A
	FILE_DEVICE_SERIAL_PORT         DeviceType = 0x0000001B
	FILE_DEVICE_SCREEN              DeviceType = 0x0000001C
	FILE_DEVICE_SOUND               DeviceType = 0x0000001D
	FILE_DEVICE_STREAMS             DeviceType = 0x0000001E
	FILE_DEVICE_TAPE                DeviceType = 0x0000001F
	FILE_DEVICE_TAPE_FILE_SYSTEM    DeviceType = 0x00000020
	FILE_DEVICE_TRANSPORT           DeviceType = 0x00000021
	FILE_DEVICE_UNKNOWN             DeviceType = 0x00000022
	FILE_DEVICE_VIDEO               DeviceType = 0x00000023
	FILE_DEVICE_VIRTUAL_DISK        DeviceType = 0x00000024
	FILE_DEVICE_WAVE_IN             DeviceType = 0x00000025
	FILE_DEVICE_WAVE_OUT            DeviceType = 0x00000026
	FILE_DEVICE_8042_PORT           DeviceType = 0x00000027
	FILE_DEVICE_NETWORK_REDIRECTOR  DeviceType = 0x00000028
	FILE_DEVICE_BATTERY             DeviceType = 0x00000029
	FILE_DEVICE_BUS_EXTENDER        DeviceType = 0x0000002A
	FILE_DEVICE_MODEM               DeviceType = 0x0000002B
	FILE_DEVICE_VDM                 DeviceType = 0x0000002C
	FILE_DEVICE_MASS_STORAGE        DeviceType = 0x0000002D
	FILE_DEVICE_SMB                 DeviceType = 0x0000002E
	FILE_DEVICE_KS                  DeviceType = 0x0000002F
	FILE_DEVICE_CHANGER             DeviceType = 0x00000030
	FILE_DEVICE_SMARTCARD           DeviceType = 0x00000031
	FILE_DEVICE_ACPI                DeviceType = 0x00000032
	FILE_DEVICE_DVD                 DeviceType = 0x00000033
	FILE_DEVICE_FULLSCREEN_VIDEO    DeviceType = 0x00000034
	FILE_DEVICE_DFS_FILE_SYSTEM     DeviceType = 0x00000035
	FILE_DEVICE_DFS_VOLUME          DeviceType = 0x00000036
	FILE_DEVICE_SERENUM             DeviceType = 0x00000037
	FILE_DEVICE_TERMSRV             DeviceType = 0x00000038
	FILE_DEVICE_KSEC                DeviceType = 0x00000039
	FILE_DEVICE_FIPS                DeviceType = 0x0000003A
	FILE_DEVICE_INFINIBAND          DeviceType = 0x0000003B
)

// New packs the four fields the way the CTL_CODE macro does.
func New(deviceType DeviceType, function uint16, method Method, access Access) Code {
	return Code(uint32(deviceType)<<16 | uint32(access&0x3)<<14 | uint32(function&0xfff)<<2 | uint32(method&0x3))
}

// CTL_CODE is New with the untyped argument order of the C macro.
func CTL_CODE(deviceType, function, method, access uint32) uint32 {
	return (deviceType << 16) | (access << 14) | (function << 2) | method
}

func (c Code) DeviceType() DeviceType {
	return DeviceType(c >> 16)
}

func (c Code) Access() Access {
	return Access((c >> 14) & 0x3)
}

func (c Code) Function() uint16 {
	return uint16((c >> 2) & 0xfff)
}

func (c Code) Method() Method {
	return Method(c & 0x3)
}

// IsCommon reports whether the device type has the "common" bit set, which
// marks vendor-defined device types (0x8000 and above).
func (c Code) IsCommon() bool {
	return c&0x80000000 != 0
}

// IsCustomFunction reports whether the function number is in the
// vendor-defined range (0x800 and above).
func (c Code) IsCustomFunction() bool {
	return c.Function() >= 0x800
}

func (c Code) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func (m Method) String() string {
	switch m {
	case METHOD_BUFFERED:
		return "METHOD_BUFFERED"
	case METHOD_IN_DIRECT:
		return "METHOD_IN_DIRECT"
	case METHOD_OUT_DIRECT:
		return "METHOD_OUT_DIRECT"
	case METHOD_NEITHER:
		return "METHOD_NEITHER"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

func (a Access) String() string {
	switch a {
	case FILE_ANY_ACCESS:
		return "FILE_ANY_ACCESS"
	case FILE_READ_ACCESS:
		return "FILE_READ_ACCESS"
	case FILE_WRITE_ACCESS:
		return "FILE_WRITE_ACCESS"
	case FILE_READ_ACCESS | FILE_WRITE_ACCESS:
		return "FILE_READ_ACCESS|FILE_WRITE_ACCESS"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}
