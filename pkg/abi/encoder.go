package abi

import (
	"encoding/binary"
	"math"

	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

// Encoder appends little-endian fields to a buffer using MSVC natural
// alignment: every scalar is aligned to its own size, GUIDs to 4, and the
// finished structure is padded to its largest member alignment.
type Encoder struct {
	buf      []byte
	maxAlign int

	pending string
	layout  *Layout
}

func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: make([]byte, 0, capacity), maxAlign: 1}
}

// Len is the number of bytes written so far, before trailing padding.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Align pads with zeros up to a multiple of n and records n as a member
// alignment of the structure being encoded.
func (e *Encoder) Align(n int) {
	if n > e.maxAlign {
		e.maxAlign = n
	}
	e.PutZeros(AlignUp(len(e.buf), n) - len(e.buf))
}

// Named labels the next field written. It only has an effect when the
// encoder records a layout.
func (e *Encoder) Named(name string) *Encoder {
	if e.layout != nil {
		e.pending = name
	}
	return e
}

func (e *Encoder) record(start, size int) {
	if e.layout == nil || e.pending == "" {
		return
	}
	e.layout.Fields = append(e.layout.Fields, Field{Name: e.pending, Offset: start, Size: size})
	e.pending = ""
}

func (e *Encoder) PutZeros(n int) {
	for i := 0; i < n; i++ {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) PutUint8(v uint8) {
	e.record(len(e.buf), 1)
	e.buf = append(e.buf, v)
}

func (e *Encoder) PutUint16(v uint16) {
	e.Align(2)
	e.record(len(e.buf), 2)
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *Encoder) PutUint32(v uint32) {
	e.Align(4)
	e.record(len(e.buf), 4)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *Encoder) PutInt32(v int32) {
	e.PutUint32(uint32(v))
}

func (e *Encoder) PutUint64(v uint64) {
	e.Align(8)
	e.record(len(e.buf), 8)
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func (e *Encoder) PutInt64(v int64) {
	e.PutUint64(uint64(v))
}

func (e *Encoder) PutFloat64(v float64) {
	e.PutUint64(math.Float64bits(v))
}

// PutBytes appends b without alignment, as for UCHAR arrays.
func (e *Encoder) PutBytes(b []byte) {
	e.record(len(e.buf), len(b))
	e.buf = append(e.buf, b...)
}

func (e *Encoder) PutGUID(g guid.GUID) {
	e.Align(4)
	e.record(len(e.buf), guid.Size)
	e.buf = append(e.buf, g.Bytes()...)
}

// PutUint32At overwrites a previously written 32-bit field, for size and
// offset fields only known once the trailing data has been laid out.
func (e *Encoder) PutUint32At(offset int, v uint32) {
	binary.LittleEndian.PutUint32(e.buf[offset:offset+4], v)
}

// Bytes returns the encoded bytes without trailing structure padding.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Finish pads to the structure alignment and returns the encoded bytes.
func (e *Encoder) Finish() []byte {
	e.PutZeros(AlignUp(len(e.buf), e.maxAlign) - len(e.buf))
	return e.buf
}

// PutRef writes r with the width and alignment of R.
func PutRef[R Ref](e *Encoder, r R) {
	if SizeOfRef[R]() == 4 {
		e.PutUint32(uint32(r))
		return
	}
	e.PutUint64(uint64(r))
}
