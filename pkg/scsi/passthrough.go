package scsi

import (
	"io"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// passThroughHeaderSize is the unpadded size of PassThroughHeader.
const passThroughHeaderSize = 20

// PassThroughHeader is the prefix shared by every form of SCSI_PASS_THROUGH
// and SCSI_PASS_THROUGH_DIRECT: everything before the data buffer reference.
type PassThroughHeader struct {
	Length             uint16
	ScsiStatus         uint8
	PathID             uint8
	TargetID           uint8
	Lun                uint8
	CdbLength          uint8
	SenseInfoLength    uint8
	DataIn             uint8
	DataTransferLength uint32
	TimeOutValue       uint32
}

func (h PassThroughHeader) MarshalTo(e *abi.Encoder) {
	e.Named("Length").PutUint16(h.Length)
	e.Named("ScsiStatus").PutUint8(h.ScsiStatus)
	e.Named("PathId").PutUint8(h.PathID)
	e.Named("TargetId").PutUint8(h.TargetID)
	e.Named("Lun").PutUint8(h.Lun)
	e.Named("CdbLength").PutUint8(h.CdbLength)
	e.Named("SenseInfoLength").PutUint8(h.SenseInfoLength)
	e.Named("DataIn").PutUint8(h.DataIn)
	e.Named("DataTransferLength").PutUint32(h.DataTransferLength)
	e.Named("TimeOutValue").PutUint32(h.TimeOutValue)
}

func (h *PassThroughHeader) decode(d *abi.Decoder) {
	h.Length = d.Uint16()
	h.ScsiStatus = d.Uint8()
	h.PathID = d.Uint8()
	h.TargetID = d.Uint8()
	h.Lun = d.Uint8()
	h.CdbLength = d.Uint8()
	h.SenseInfoLength = d.Uint8()
	h.DataIn = d.Uint8()
	h.DataTransferLength = d.Uint32()
	h.TimeOutValue = d.Uint32()
}

// PassThroughOf maps to the `SCSI_PASS_THROUGH` C struct. DataBufferOffset
// and SenseInfoOffset are byte offsets from the start of the structure into
// the same buffer.
type PassThroughOf[R abi.Ref] struct {
	PassThroughHeader
	DataBufferOffset R
	SenseInfoOffset  uint32
	Cdb              [MaxCdbLength]byte
}

// PassThrough is SCSI_PASS_THROUGH as laid out by the current process.
type PassThrough = PassThroughOf[abi.NativePtr]

// PassThrough32 maps to the `SCSI_PASS_THROUGH32` C struct.
type PassThrough32 = PassThroughOf[abi.Ptr32]

func (p PassThroughOf[R]) MarshalTo(e *abi.Encoder) {
	p.PassThroughHeader.MarshalTo(e)
	abi.PutRef(e.Named("DataBufferOffset"), p.DataBufferOffset)
	e.Named("SenseInfoOffset").PutUint32(p.SenseInfoOffset)
	e.Named("Cdb").PutBytes(p.Cdb[:])
}

func (p PassThroughOf[R]) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(PassThroughSize[R]())
	p.MarshalTo(e)
	return e.Finish(), nil
}

func (p *PassThroughOf[R]) UnmarshalBinary(buf []byte) error {
	if len(buf) < PassThroughSize[R]() {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	p.PassThroughHeader.decode(d)
	p.DataBufferOffset = abi.GetRef[R](d)
	p.SenseInfoOffset = d.Uint32()
	copy(p.Cdb[:], d.Bytes(MaxCdbLength))
	return d.Err()
}

// PassThroughSize is the wire size of SCSI_PASS_THROUGH with references of
// width R: 56 with 8-byte references, 44 with 4-byte ones.
func PassThroughSize[R abi.Ref]() int {
	ref := abi.SizeOfRef[R]()
	return abi.AlignUp(abi.AlignUp(passThroughHeaderSize, ref)+ref+4+MaxCdbLength, ref)
}

// PassThroughDirectOf maps to the `SCSI_PASS_THROUGH_DIRECT` C struct.
// DataBuffer is the address of a caller buffer instead of an offset.
type PassThroughDirectOf[R abi.Ref] struct {
	PassThroughHeader
	DataBuffer      R
	SenseInfoOffset uint32
	Cdb             [MaxCdbLength]byte
}

// PassThroughDirect is SCSI_PASS_THROUGH_DIRECT as laid out by the current
// process.
type PassThroughDirect = PassThroughDirectOf[abi.NativePtr]

// PassThroughDirect32 maps to the `SCSI_PASS_THROUGH_DIRECT32` C struct.
type PassThroughDirect32 = PassThroughDirectOf[abi.Ptr32]

func (p PassThroughDirectOf[R]) MarshalTo(e *abi.Encoder) {
	p.PassThroughHeader.MarshalTo(e)
	abi.PutRef(e.Named("DataBuffer"), p.DataBuffer)
	e.Named("SenseInfoOffset").PutUint32(p.SenseInfoOffset)
	e.Named("Cdb").PutBytes(p.Cdb[:])
}

func (p PassThroughDirectOf[R]) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(PassThroughSize[R]())
	p.MarshalTo(e)
	return e.Finish(), nil
}

func (p *PassThroughDirectOf[R]) UnmarshalBinary(buf []byte) error {
	if len(buf) < PassThroughSize[R]() {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	p.PassThroughHeader.decode(d)
	p.DataBuffer = abi.GetRef[R](d)
	p.SenseInfoOffset = d.Uint32()
	copy(p.Cdb[:], d.Bytes(MaxCdbLength))
	return d.Err()
}
