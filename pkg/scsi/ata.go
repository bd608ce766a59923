package scsi

import (
	"io"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// ataHeaderSize is the unpadded size of AtaPassThroughHeader.
const ataHeaderSize = 20

// TaskFile is the ATA register block in the order of the task file arrays of
// ATA_PASS_THROUGH_EX.
type TaskFile struct {
	Features    uint8
	SectorCount uint8
	LBALow      uint8
	LBAMid      uint8
	LBAHigh     uint8
	Device      uint8
	Command     uint8
	Reserved    uint8
}

func (t TaskFile) Bytes() [8]byte {
	return [8]byte{t.Features, t.SectorCount, t.LBALow, t.LBAMid, t.LBAHigh, t.Device, t.Command, t.Reserved}
}

func taskFileFrom(b []byte) TaskFile {
	return TaskFile{b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7]}
}

// AtaPassThroughHeader is the prefix shared by every form of
// ATA_PASS_THROUGH_EX and ATA_PASS_THROUGH_DIRECT.
type AtaPassThroughHeader struct {
	Length             uint16
	AtaFlags           uint16
	PathID             uint8
	TargetID           uint8
	Lun                uint8
	ReservedAsUchar    uint8
	DataTransferLength uint32
	TimeOutValue       uint32
	ReservedAsUlong    uint32
}

func (h AtaPassThroughHeader) MarshalTo(e *abi.Encoder) {
	e.Named("Length").PutUint16(h.Length)
	e.Named("AtaFlags").PutUint16(h.AtaFlags)
	e.Named("PathId").PutUint8(h.PathID)
	e.Named("TargetId").PutUint8(h.TargetID)
	e.Named("Lun").PutUint8(h.Lun)
	e.Named("ReservedAsUchar").PutUint8(h.ReservedAsUchar)
	e.Named("DataTransferLength").PutUint32(h.DataTransferLength)
	e.Named("TimeOutValue").PutUint32(h.TimeOutValue)
	e.Named("ReservedAsUlong").PutUint32(h.ReservedAsUlong)
}

func (h *AtaPassThroughHeader) decode(d *abi.Decoder) {
	h.Length = d.Uint16()
	h.AtaFlags = d.Uint16()
	h.PathID = d.Uint8()
	h.TargetID = d.Uint8()
	h.Lun = d.Uint8()
	h.ReservedAsUchar = d.Uint8()
	h.DataTransferLength = d.Uint32()
	h.TimeOutValue = d.Uint32()
	h.ReservedAsUlong = d.Uint32()
}

// AtaPassThroughExOf maps to the `ATA_PASS_THROUGH_EX` C struct. The driver
// writes the resulting registers back into CurrentTaskFile.
type AtaPassThroughExOf[R abi.Ref] struct {
	AtaPassThroughHeader
	DataBufferOffset R
	PreviousTaskFile [8]byte
	CurrentTaskFile  [8]byte
}

// AtaPassThroughEx is ATA_PASS_THROUGH_EX as laid out by the current process.
type AtaPassThroughEx = AtaPassThroughExOf[abi.NativePtr]

// AtaPassThroughEx32 maps to the `ATA_PASS_THROUGH_EX32` C struct.
type AtaPassThroughEx32 = AtaPassThroughExOf[abi.Ptr32]

func (a AtaPassThroughExOf[R]) MarshalTo(e *abi.Encoder) {
	a.AtaPassThroughHeader.MarshalTo(e)
	abi.PutRef(e.Named("DataBufferOffset"), a.DataBufferOffset)
	e.Named("PreviousTaskFile").PutBytes(a.PreviousTaskFile[:])
	e.Named("CurrentTaskFile").PutBytes(a.CurrentTaskFile[:])
}

func (a AtaPassThroughExOf[R]) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(AtaPassThroughSize[R]())
	a.MarshalTo(e)
	return e.Finish(), nil
}

func (a *AtaPassThroughExOf[R]) UnmarshalBinary(buf []byte) error {
	if len(buf) < AtaPassThroughSize[R]() {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	a.AtaPassThroughHeader.decode(d)
	a.DataBufferOffset = abi.GetRef[R](d)
	copy(a.PreviousTaskFile[:], d.Bytes(8))
	copy(a.CurrentTaskFile[:], d.Bytes(8))
	return d.Err()
}

// Registers returns the current task file as registers.
func (a AtaPassThroughExOf[R]) Registers() TaskFile {
	return taskFileFrom(a.CurrentTaskFile[:])
}

// AtaPassThroughSize is the wire size of ATA_PASS_THROUGH_EX with references
// of width R: 48 with 8-byte references, 40 with 4-byte ones.
func AtaPassThroughSize[R abi.Ref]() int {
	ref := abi.SizeOfRef[R]()
	return abi.AlignUp(abi.AlignUp(ataHeaderSize, ref)+ref+16, ref)
}

// AtaPassThroughDirectOf maps to the `ATA_PASS_THROUGH_DIRECT` C struct.
type AtaPassThroughDirectOf[R abi.Ref] struct {
	AtaPassThroughHeader
	DataBuffer       R
	PreviousTaskFile [8]byte
	CurrentTaskFile  [8]byte
}

// AtaPassThroughDirect is ATA_PASS_THROUGH_DIRECT as laid out by the current
// process.
type AtaPassThroughDirect = AtaPassThroughDirectOf[abi.NativePtr]

// AtaPassThroughDirect32 maps to the `ATA_PASS_THROUGH_DIRECT32` C struct.
type AtaPassThroughDirect32 = AtaPassThroughDirectOf[abi.Ptr32]

func (a AtaPassThroughDirectOf[R]) MarshalTo(e *abi.Encoder) {
	a.AtaPassThroughHeader.MarshalTo(e)
	abi.PutRef(e.Named("DataBuffer"), a.DataBuffer)
	e.Named("PreviousTaskFile").PutBytes(a.PreviousTaskFile[:])
	e.Named("CurrentTaskFile").PutBytes(a.CurrentTaskFile[:])
}

func (a AtaPassThroughDirectOf[R]) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(AtaPassThroughSize[R]())
	a.MarshalTo(e)
	return e.Finish(), nil
}
