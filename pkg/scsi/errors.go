package scsi

import "github.com/pkg/errors"

var (
	ErrCdbTooLong   = errors.New("cdb longer than 16 bytes")
	ErrSenseTooLong = errors.New("sense length does not fit SenseInfoLength")
	// ErrDataTooLarge is returned when a transfer exceeds the adapter's
	// maximum transfer length or the 32-bit length field.
	ErrDataTooLarge = errors.New("data transfer too large")
)

// ErrEmptyCdb is returned for a command without a CDB.
var ErrEmptyCdb = errors.New("empty cdb")
