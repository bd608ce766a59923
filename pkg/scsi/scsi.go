// Package scsi lays out the SCSI and ATA pass-through requests of the
// Windows storage stack (ntddscsi.h).
//
// Each request structure that carries a buffer reference comes in two forms:
// the native one, whose reference is pointer sized, and the *32 one that a
// 64-bit port driver receives from a 32-bit process. Both share a fixed
// prefix so the driver can read it before it knows which form it got.
package scsi

// SCSI_IOCTL_DATA_* transfer directions.
const (
	SCSI_IOCTL_DATA_OUT           uint8 = 0
	SCSI_IOCTL_DATA_IN            uint8 = 1
	SCSI_IOCTL_DATA_UNSPECIFIED   uint8 = 2
	SCSI_IOCTL_DATA_BIDIRECTIONAL uint8 = 3
)

// ATA_FLAGS_* for AtaPassThroughEx.AtaFlags.
const (
	ATA_FLAGS_DRDY_REQUIRED uint16 = 0x0001
	ATA_FLAGS_DATA_IN       uint16 = 0x0002
	ATA_FLAGS_DATA_OUT      uint16 = 0x0004
	ATA_FLAGS_48BIT_COMMAND uint16 = 0x0008
	ATA_FLAGS_USE_DMA       uint16 = 0x0010
	ATA_FLAGS_NO_MULTIPLE   uint16 = 0x0020
)

const (
	// MaxCdbLength is the size of the Cdb array in SCSI_PASS_THROUGH.
	MaxCdbLength = 16
	// MaxSenseLength is the largest sense length SenseInfoLength can hold.
	MaxSenseLength = 255
	// DefaultSenseLength is the sense buffer size requested when a command
	// leaves it unset, enough for fixed format sense data.
	DefaultSenseLength = 32
)

// SCSI operation codes.
const (
	SCSI_TEST_UNIT_READY  = 0x00
	SCSI_REQUEST_SENSE    = 0x03
	SCSI_INQUIRY          = 0x12
	SCSI_MODE_SENSE_6     = 0x1a
	SCSI_READ_CAPACITY_10 = 0x25
	SCSI_ATA_PASSTHRU_16  = 0x85
	SCSI_ATA_PASSTHRU_12  = 0xa1
)

// ATA commands.
const (
	ATA_IDENTIFY_DEVICE = 0xec
	ATA_SMART           = 0xb0
)

// Minimum length of a standard INQUIRY response.
const INQ_REPLY_LEN = 36

// SCSI CDB types.
type CDB6 [6]byte
type CDB10 [10]byte
type CDB16 [16]byte

// Inquiry returns the CDB of a standard INQUIRY asking for allocLen bytes.
func Inquiry(allocLen uint8) CDB6 {
	return CDB6{SCSI_INQUIRY, 0, 0, 0, allocLen, 0}
}

// TestUnitReady returns the CDB of TEST UNIT READY.
func TestUnitReady() CDB6 {
	return CDB6{SCSI_TEST_UNIT_READY}
}

// ReadCapacity10 returns the CDB of READ CAPACITY (10).
func ReadCapacity10() CDB10 {
	return CDB10{SCSI_READ_CAPACITY_10}
}
