package abi

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

// Decoder reads fields laid out by the same rules as Encoder. The first short
// read sticks: later reads return zero values and Err reports
// io.ErrShortBuffer.
type Decoder struct {
	buf []byte
	off int
	err error
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) Offset() int {
	return d.off
}

func (d *Decoder) Align(n int) {
	d.Skip(AlignUp(d.off, n) - d.off)
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.off+n > len(d.buf) {
		d.err = io.ErrShortBuffer
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) Skip(n int) {
	d.take(n)
}

func (d *Decoder) Uint8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *Decoder) Uint16() uint16 {
	d.Align(2)
	b := d.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (d *Decoder) Uint32() uint32 {
	d.Align(4)
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *Decoder) Int32() int32 {
	return int32(d.Uint32())
}

func (d *Decoder) Uint64() uint64 {
	d.Align(8)
	b := d.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *Decoder) Int64() int64 {
	return int64(d.Uint64())
}

func (d *Decoder) Float64() float64 {
	return math.Float64frombits(d.Uint64())
}

// Bytes returns the next n bytes without copying.
func (d *Decoder) Bytes(n int) []byte {
	return d.take(n)
}

func (d *Decoder) GUID() guid.GUID {
	d.Align(4)
	var g guid.GUID
	if b := d.take(guid.Size); b != nil {
		g.UnmarshalBinary(b)
	}
	return g
}

// GetRef reads a value with the width and alignment of R.
func GetRef[R Ref](d *Decoder) R {
	if SizeOfRef[R]() == 4 {
		return R(d.Uint32())
	}
	return R(d.Uint64())
}
