package scsi

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/ctlcode"
)

// Command is one SCSI command to send through the port driver.
type Command struct {
	PathID   uint8
	TargetID uint8
	Lun      uint8
	CDB      []byte
	// Direction is one of SCSI_IOCTL_DATA_*.
	Direction uint8
	// Data is sent for DATA_OUT. For DATA_IN its length is the number of
	// bytes to receive.
	Data []byte
	// SenseLength defaults to DefaultSenseLength.
	SenseLength int
	// Timeout is in seconds.
	Timeout uint32
	// MaxTransfer is the adapter's MaximumTransferLength. Zero skips the
	// check.
	MaxTransfer uint32
}

func checkTransfer(n int, max uint32) error {
	if uint64(n) > math.MaxUint32 {
		return errors.Wrapf(ErrDataTooLarge, "%d bytes", n)
	}
	if max != 0 && uint32(n) > max {
		return errors.Wrapf(ErrDataTooLarge, "%d bytes, adapter allows %d", n, max)
	}
	return nil
}

func (c Command) validate() (senseLen int, err error) {
	if len(c.CDB) == 0 {
		return 0, ErrEmptyCdb
	}
	if len(c.CDB) > MaxCdbLength {
		return 0, errors.Wrapf(ErrCdbTooLong, "%d bytes", len(c.CDB))
	}
	senseLen = c.SenseLength
	if senseLen == 0 {
		senseLen = DefaultSenseLength
	}
	if senseLen < 0 || senseLen > MaxSenseLength {
		return 0, errors.Wrapf(ErrSenseTooLong, "%d bytes", c.SenseLength)
	}
	return senseLen, checkTransfer(len(c.Data), c.MaxTransfer)
}

func (c Command) header(structSize, senseLen int) PassThroughHeader {
	return PassThroughHeader{
		Length:             uint16(structSize),
		PathID:             c.PathID,
		TargetID:           c.TargetID,
		Lun:                c.Lun,
		CdbLength:          uint8(len(c.CDB)),
		SenseInfoLength:    uint8(senseLen),
		DataIn:             c.Direction,
		DataTransferLength: uint32(len(c.Data)),
		TimeOutValue:       c.Timeout,
	}
}

// PassThroughRequest is a pass-through structure followed by its sense and
// data buffers. The port driver returns the same layout in the output
// buffer, with the status, lengths and buffers updated.
type PassThroughRequest struct {
	Code        ctlcode.Code
	Buffer      []byte
	SenseOffset int
	DataOffset  int
}

func (r PassThroughRequest) ControlCode() ctlcode.Code {
	return r.Code
}

func (r PassThroughRequest) MarshalBinary() ([]byte, error) {
	return r.Buffer, nil
}

// OutputSize is the output buffer size the reply needs.
func (r PassThroughRequest) OutputSize() uint32 {
	return uint32(len(r.Buffer))
}

// Reply reads the updated header and the returned sense and data bytes from
// the output buffer. Sense and data alias reply.
func (r PassThroughRequest) Reply(reply []byte) (h PassThroughHeader, sense, data []byte, err error) {
	if len(reply) < passThroughHeaderSize || len(reply) < r.SenseOffset {
		return h, nil, nil, io.ErrShortBuffer
	}
	h.decode(abi.NewDecoder(reply))

	if end := r.SenseOffset + int(h.SenseInfoLength); h.SenseInfoLength > 0 && end <= len(reply) {
		sense = reply[r.SenseOffset:end]
	}
	if r.DataOffset > 0 {
		end := r.DataOffset + int(h.DataTransferLength)
		if end > len(reply) {
			return h, sense, nil, errors.Wrapf(io.ErrShortBuffer, "data of %d bytes at offset %d", h.DataTransferLength, r.DataOffset)
		}
		data = reply[r.DataOffset:end]
	}
	return h, sense, data, nil
}

// BuildPassThrough lays out an IOCTL_SCSI_PASS_THROUGH request in the form
// selected by R. The sense buffer follows the structure and the data buffer
// follows the sense buffer at the next quadword.
func BuildPassThrough[R abi.Ref](cmd Command) (PassThroughRequest, error) {
	senseLen, err := cmd.validate()
	if err != nil {
		return PassThroughRequest{}, err
	}

	size := PassThroughSize[R]()
	senseOff := size
	dataOff := abi.AlignUp(senseOff+senseLen, 8)
	if uint64(dataOff)+uint64(len(cmd.Data)) > math.MaxUint32 {
		return PassThroughRequest{}, errors.Wrapf(ErrDataTooLarge, "buffer of %d bytes", dataOff+len(cmd.Data))
	}

	p := PassThroughOf[R]{
		PassThroughHeader: cmd.header(size, senseLen),
		DataBufferOffset:  R(dataOff),
		SenseInfoOffset:   uint32(senseOff),
	}
	copy(p.Cdb[:], cmd.CDB)

	e := abi.NewEncoder(dataOff + len(cmd.Data))
	p.MarshalTo(e)
	e.PutZeros(dataOff - e.Len())
	e.PutBytes(cmd.Data)

	return PassThroughRequest{
		Code:        IOCTL_SCSI_PASS_THROUGH,
		Buffer:      e.Bytes(),
		SenseOffset: senseOff,
		DataOffset:  dataOff,
	}, nil
}

// BuildPassThroughDirect lays out an IOCTL_SCSI_PASS_THROUGH_DIRECT request.
// buffer is the address of cmd.Data as the driver sees it; the data is not
// copied and must stay pinned until the request completes.
func BuildPassThroughDirect[R abi.Ref](cmd Command, buffer R) (PassThroughRequest, error) {
	senseLen, err := cmd.validate()
	if err != nil {
		return PassThroughRequest{}, err
	}

	size := PassThroughSize[R]()
	p := PassThroughDirectOf[R]{
		PassThroughHeader: cmd.header(size, senseLen),
		DataBuffer:        buffer,
		SenseInfoOffset:   uint32(size),
	}
	copy(p.Cdb[:], cmd.CDB)

	e := abi.NewEncoder(size + senseLen)
	p.MarshalTo(e)
	e.PutZeros(size + senseLen - e.Len())

	return PassThroughRequest{
		Code:        IOCTL_SCSI_PASS_THROUGH_DIRECT,
		Buffer:      e.Bytes(),
		SenseOffset: size,
	}, nil
}

// AtaCommand is one ATA command to send through the port driver.
type AtaCommand struct {
	PathID   uint8
	TargetID uint8
	Lun      uint8
	// Flags are ATA_FLAGS_*.
	Flags uint16
	// Registers is the current task file. Previous holds the high order
	// bytes of 48-bit commands.
	Registers TaskFile
	Previous  TaskFile
	// Data is sent with ATA_FLAGS_DATA_OUT. With ATA_FLAGS_DATA_IN its length
	// is the number of bytes to receive.
	Data        []byte
	Timeout     uint32
	MaxTransfer uint32
}

// IdentifyDevice returns the IDENTIFY DEVICE command, which reads one
// 512-byte sector.
func IdentifyDevice() AtaCommand {
	return AtaCommand{
		Flags:     ATA_FLAGS_DRDY_REQUIRED | ATA_FLAGS_DATA_IN,
		Registers: TaskFile{Command: ATA_IDENTIFY_DEVICE},
		Data:      make([]byte, 512),
		Timeout:   10,
	}
}

// AtaPassThroughRequest is an ATA_PASS_THROUGH_EX structure followed by its
// data buffer.
type AtaPassThroughRequest struct {
	Code       ctlcode.Code
	Buffer     []byte
	DataOffset int
	// RegistersOffset locates CurrentTaskFile in the reply.
	RegistersOffset int
}

func (r AtaPassThroughRequest) ControlCode() ctlcode.Code {
	return r.Code
}

func (r AtaPassThroughRequest) MarshalBinary() ([]byte, error) {
	return r.Buffer, nil
}

func (r AtaPassThroughRequest) OutputSize() uint32 {
	return uint32(len(r.Buffer))
}

// Reply reads the resulting registers and the returned data from the output
// buffer.
func (r AtaPassThroughRequest) Reply(reply []byte) (TaskFile, []byte, error) {
	if len(reply) < r.RegistersOffset+8 || len(reply) < ataHeaderSize {
		return TaskFile{}, nil, io.ErrShortBuffer
	}
	regs := taskFileFrom(reply[r.RegistersOffset : r.RegistersOffset+8])
	n := int(binary.LittleEndian.Uint32(reply[8:12]))
	if r.DataOffset+n > len(reply) {
		return regs, nil, errors.Wrapf(io.ErrShortBuffer, "data of %d bytes at offset %d", n, r.DataOffset)
	}
	return regs, reply[r.DataOffset : r.DataOffset+n], nil
}

// BuildAtaPassThrough lays out an IOCTL_ATA_PASS_THROUGH request in the form
// selected by R, with the data buffer at the next quadword after the
// structure.
func BuildAtaPassThrough[R abi.Ref](cmd AtaCommand) (AtaPassThroughRequest, error) {
	if err := checkTransfer(len(cmd.Data), cmd.MaxTransfer); err != nil {
		return AtaPassThroughRequest{}, err
	}

	size := AtaPassThroughSize[R]()
	dataOff := abi.AlignUp(size, 8)
	a := AtaPassThroughExOf[R]{
		AtaPassThroughHeader: AtaPassThroughHeader{
			Length:             uint16(size),
			AtaFlags:           cmd.Flags,
			PathID:             cmd.PathID,
			TargetID:           cmd.TargetID,
			Lun:                cmd.Lun,
			DataTransferLength: uint32(len(cmd.Data)),
			TimeOutValue:       cmd.Timeout,
		},
		DataBufferOffset: R(dataOff),
		PreviousTaskFile: cmd.Previous.Bytes(),
		CurrentTaskFile:  cmd.Registers.Bytes(),
	}

	e := abi.NewEncoder(dataOff + len(cmd.Data))
	a.MarshalTo(e)
	e.PutZeros(dataOff - e.Len())
	e.PutBytes(cmd.Data)

	return AtaPassThroughRequest{
		Code:            IOCTL_ATA_PASS_THROUGH,
		Buffer:          e.Bytes(),
		DataOffset:      dataOff,
		RegistersOffset: size - 8,
	}, nil
}
