package scsi

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

const (
	ScsiAddressSize  = 8
	SrbIoControlSize = 28
	CapabilitiesSize = 24
)

// ScsiAddress maps to the `SCSI_ADDRESS` C struct returned by
// IOCTL_SCSI_GET_ADDRESS.
type ScsiAddress struct {
	Length     uint32
	PortNumber uint8
	PathID     uint8
	TargetID   uint8
	Lun        uint8
}

func (a ScsiAddress) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(ScsiAddressSize)
	e.PutUint32(a.Length)
	e.PutUint8(a.PortNumber)
	e.PutUint8(a.PathID)
	e.PutUint8(a.TargetID)
	e.PutUint8(a.Lun)
	return e.Bytes(), nil
}

func (a *ScsiAddress) UnmarshalBinary(buf []byte) error {
	if len(buf) < ScsiAddressSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	a.Length = d.Uint32()
	a.PortNumber = d.Uint8()
	a.PathID = d.Uint8()
	a.TargetID = d.Uint8()
	a.Lun = d.Uint8()
	return d.Err()
}

// SrbIoControl maps to the `SRB_IO_CONTROL` C struct that heads every
// IOCTL_SCSI_MINIPORT request. Length counts the bytes following the header.
type SrbIoControl struct {
	HeaderLength uint32
	Signature    [8]byte
	Timeout      uint32
	ControlCode  uint32
	ReturnCode   uint32
	Length       uint32
}

// NewSrbIoControl returns a header for a miniport request with the given
// signature, such as "SCSIDISK", and payload length.
func NewSrbIoControl(signature string, code, timeout uint32, length int) (SrbIoControl, error) {
	if len(signature) > 8 {
		return SrbIoControl{}, errors.Errorf("signature %q longer than 8 bytes", signature)
	}
	s := SrbIoControl{
		HeaderLength: SrbIoControlSize,
		Timeout:      timeout,
		ControlCode:  code,
		Length:       uint32(length),
	}
	copy(s.Signature[:], signature)
	return s, nil
}

func (s SrbIoControl) MarshalTo(e *abi.Encoder) {
	e.Named("HeaderLength").PutUint32(s.HeaderLength)
	e.Named("Signature").PutBytes(s.Signature[:])
	e.Named("Timeout").PutUint32(s.Timeout)
	e.Named("ControlCode").PutUint32(s.ControlCode)
	e.Named("ReturnCode").PutUint32(s.ReturnCode)
	e.Named("Length").PutUint32(s.Length)
}

func (s SrbIoControl) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(SrbIoControlSize)
	s.MarshalTo(e)
	return e.Finish(), nil
}

// Capabilities maps to the `IO_SCSI_CAPABILITIES` C struct returned by
// IOCTL_SCSI_GET_CAPABILITIES.
type Capabilities struct {
	Length                      uint32
	MaximumTransferLength       uint32
	MaximumPhysicalPages        uint32
	SupportedAsynchronousEvents uint32
	AlignmentMask               uint32
	TaggedQueuing               bool
	AdapterScansDown            bool
	AdapterUsesPio              bool
}

func (c *Capabilities) UnmarshalBinary(buf []byte) error {
	if len(buf) < CapabilitiesSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	c.Length = d.Uint32()
	c.MaximumTransferLength = d.Uint32()
	c.MaximumPhysicalPages = d.Uint32()
	c.SupportedAsynchronousEvents = d.Uint32()
	c.AlignmentMask = d.Uint32()
	c.TaggedQueuing = d.Uint8() != 0
	c.AdapterScansDown = d.Uint8() != 0
	c.AdapterUsesPio = d.Uint8() != 0
	return d.Err()
}
