package ks

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
	"reflect"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/ctlcode"
)

// MultipleItemHeaderSize is the wire size of KSMULTIPLE_ITEM.
const MultipleItemHeaderSize = 8

// MultipleItem maps to the `KSMULTIPLE_ITEM` C struct. Size counts the header
// itself plus every entry that follows it.
type MultipleItem struct {
	Size  uint32
	Count uint32
}

// Item is one entry of a multiple item block. Entries are not fixed-stride;
// each serializes itself.
type Item interface {
	encoding.BinaryMarshaler
}

// SizedItem is implemented by entries that carry their own length, such as
// KSDATAFORMAT.FormatSize. The declared size must match the encoding.
type SizedItem interface {
	Item
	ItemSize() uint32
}

// RawItem is an entry that is already encoded.
type RawItem []byte

func (r RawItem) MarshalBinary() ([]byte, error) {
	return []byte(r), nil
}

// Request is a KS request ready to be handed to a device: the control code and
// the identifier with its payload.
type Request struct {
	Code       ctlcode.Code
	Identifier Identifier
	// Header, when set, is sent as the input buffer in place of the encoded
	// Identifier, as for KSP_PIN and KSP_NODE.
	Header  []byte
	Payload []byte
	// InPlace marks a Payload that begins with the request header and is sent
	// as both the input and the output buffer.
	InPlace bool
}

func NewPropertyRequest(p Property, payload []byte) Request {
	return Request{Code: IOCTL_KS_PROPERTY, Identifier: p, Payload: payload}
}

// NewPinPropertyRequest returns a property request whose input is a KSP_PIN
// header addressing pinID.
func NewPinPropertyRequest(p Property, pinID uint32, payload []byte) Request {
	e := abi.NewEncoder(ScopedPropertySize)
	PinProperty{Property: p, PinID: pinID}.MarshalTo(e)
	return Request{Code: IOCTL_KS_PROPERTY, Identifier: p, Header: e.Bytes(), Payload: payload}
}

// NewNodePropertyRequest returns a property request whose input is a KSP_NODE
// header addressing nodeID.
func NewNodePropertyRequest(p Property, nodeID uint32, payload []byte) Request {
	e := abi.NewEncoder(ScopedPropertySize)
	NodeProperty{Property: p, NodeID: nodeID}.MarshalTo(e)
	return Request{Code: IOCTL_KS_PROPERTY, Identifier: p, Header: e.Bytes(), Payload: payload}
}

func NewMethodRequest(m Method, payload []byte) Request {
	return Request{Code: IOCTL_KS_METHOD, Identifier: m, Payload: payload}
}

func NewEnableEventRequest(ev Event, payload []byte) Request {
	return Request{Code: IOCTL_KS_ENABLE_EVENT, Identifier: ev, Payload: payload}
}

func (r Request) ControlCode() ctlcode.Code {
	return r.Code
}

func (r Request) header() []byte {
	if r.Header != nil {
		return r.Header
	}
	b, _ := r.Identifier.MarshalBinary()
	return b
}

// Split returns the input and output buffers. KS dispatch uses
// METHOD_NEITHER: the header is read from the input buffer and the member
// data from the output buffer. In-place requests use the whole payload for
// both.
func (r Request) Split() (in, out []byte) {
	if r.InPlace {
		return r.Payload, r.Payload
	}
	return r.header(), r.Payload
}

// MarshalBinary returns the header and payload as one contiguous buffer.
func (r Request) MarshalBinary() ([]byte, error) {
	if r.InPlace {
		return bytes.Clone(r.Payload), nil
	}
	h := r.header()
	b := make([]byte, 0, len(h)+len(r.Payload))
	b = append(b, h...)
	return append(b, r.Payload...), nil
}

// BuildScalarRequest lays out id followed by one fixed-size value. value may be
// a fixed-size number or array of numbers, an abi.Marshaler, or any
// encoding.BinaryMarshaler. Go bools are rejected: pass uint32 for a Win32
// BOOL and uint8 for a BOOLEAN.
func BuildScalarRequest(id Identifier, value any) ([]byte, error) {
	payload, err := encodeValue(value)
	if err != nil {
		return nil, err
	}
	return NewPropertyRequest(id, payload).MarshalBinary()
}

// BuildMultipleItemRequest lays out id followed by a KSMULTIPLE_ITEM header and
// every entry back-to-back.
func BuildMultipleItemRequest(id Identifier, items []Item) ([]byte, error) {
	block, err := MarshalMultipleItem(items, 1)
	if err != nil {
		return nil, err
	}
	return NewPropertyRequest(id, block).MarshalBinary()
}

// MarshalMultipleItem encodes the KSMULTIPLE_ITEM header and entries. When
// align is greater than one each entry starts on an align boundary; KS data
// range lists use 8 (FILE_QUAD_ALIGNMENT + 1).
func MarshalMultipleItem(items []Item, align int) ([]byte, error) {
	e := abi.NewEncoder(MultipleItemHeaderSize)
	e.PutUint32(0)
	e.PutUint32(uint32(len(items)))

	for i, item := range items {
		if align > 1 {
			e.PutZeros(abi.AlignUp(e.Len(), align) - e.Len())
		}
		b, err := item.MarshalBinary()
		if err != nil {
			return nil, errors.Wrapf(err, "encoding entry %d", i)
		}
		if sized, ok := item.(SizedItem); ok && int(sized.ItemSize()) != len(b) {
			return nil, errors.Wrapf(ErrItemSizeMismatch, "entry %d declares %d bytes, encodes to %d", i, sized.ItemSize(), len(b))
		}
		e.PutBytes(b)
	}

	e.PutUint32At(0, uint32(e.Len()))
	return e.Bytes(), nil
}

// ParseMultipleItem reads and checks a KSMULTIPLE_ITEM header.
func ParseMultipleItem(buf []byte) (MultipleItem, error) {
	if len(buf) < MultipleItemHeaderSize {
		return MultipleItem{}, io.ErrShortBuffer
	}
	mi := MultipleItem{
		Size:  binary.LittleEndian.Uint32(buf[0:4]),
		Count: binary.LittleEndian.Uint32(buf[4:8]),
	}
	if mi.Size < MultipleItemHeaderSize {
		return mi, errors.Wrapf(ErrSizeMismatch, "size %d is smaller than the header", mi.Size)
	}
	if int(mi.Size) > len(buf) {
		return mi, errors.Wrapf(io.ErrShortBuffer, "size %d exceeds buffer of %d bytes", mi.Size, len(buf))
	}
	return mi, nil
}

// StrideFunc returns the length of the entry at the start of rest, which holds
// every byte from the entry to the end of the block.
type StrideFunc func(rest []byte) (int, error)

// FixedStride is the stride of arrays of fixed-size entries.
func FixedStride(n int) StrideFunc {
	return func(rest []byte) (int, error) {
		return n, nil
	}
}

// LeadingSizeStride reads the entry length from its first ULONG, as for
// KSDATAFORMAT and KSDATARANGE.
func LeadingSizeStride(rest []byte) (int, error) {
	if len(rest) < 4 {
		return 0, io.ErrShortBuffer
	}
	return int(binary.LittleEndian.Uint32(rest[0:4])), nil
}

// WalkMultipleItem calls fn for every entry of the block in buf, using stride
// to find where each entry ends and align for the padding between entries.
func WalkMultipleItem(buf []byte, stride StrideFunc, align int, fn func(i int, entry []byte) error) error {
	mi, err := ParseMultipleItem(buf)
	if err != nil {
		return err
	}

	end := int(mi.Size)
	off := MultipleItemHeaderSize
	for i := 0; i < int(mi.Count); i++ {
		if align > 1 {
			off = abi.AlignUp(off, align)
		}
		if off >= end {
			return errors.Wrapf(ErrCountMismatch, "header declares %d entries, found %d", mi.Count, i)
		}
		n, err := stride(buf[off:end])
		if err != nil {
			return errors.Wrapf(err, "sizing entry %d", i)
		}
		if n <= 0 || off+n > end {
			return errors.Wrapf(ErrSizeMismatch, "entry %d of %d bytes at offset %d overruns size %d", i, n, off, end)
		}
		if err := fn(i, buf[off:off+n]); err != nil {
			return err
		}
		off += n
	}

	if off != end {
		return errors.Wrapf(ErrSizeMismatch, "%d trailing bytes after %d entries", end-off, mi.Count)
	}
	return nil
}

func encodeValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case abi.Marshaler:
		e := abi.NewEncoder(16)
		v.MarshalTo(e)
		return e.Finish(), nil
	case encoding.BinaryMarshaler:
		return v.MarshalBinary()
	}

	if _, ok := value.(bool); ok {
		return nil, errors.Wrap(ErrUnsupportedValue, "bool has no fixed width, use uint32 (BOOL) or uint8 (BOOLEAN)")
	}
	if value == nil || !isFixedScalar(reflect.TypeOf(value)) {
		return nil, errors.Wrapf(ErrUnsupportedValue, "%T", value)
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, value); err != nil {
		return nil, errors.Wrapf(err, "encoding %T", value)
	}
	return buf.Bytes(), nil
}

// isFixedScalar accepts numbers and arrays of them. Structs are rejected
// because encoding/binary packs them without C alignment.
func isFixedScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return isFixedScalar(t.Elem())
	}
	return false
}

// ScopedPropertySize is the wire size of KSP_PIN and KSP_NODE.
const ScopedPropertySize = 32

// PinProperty maps to the `KSP_PIN` C struct.
type PinProperty struct {
	Property Property
	PinID    uint32
	Reserved uint32
}

func (p PinProperty) MarshalTo(e *abi.Encoder) {
	p.Property.MarshalTo(e)
	e.Named("PinId").PutUint32(p.PinID)
	e.Named("Reserved").PutUint32(p.Reserved)
}

// NodeProperty maps to the `KSP_NODE` C struct.
type NodeProperty struct {
	Property Property
	NodeID   uint32
	Reserved uint32
}

func (n NodeProperty) MarshalTo(e *abi.Encoder) {
	n.Property.MarshalTo(e)
	e.Named("NodeId").PutUint32(n.NodeID)
	e.Named("Reserved").PutUint32(n.Reserved)
}

// BuildPinRequest lays out a KSP_PIN header addressing pinID followed by
// payload, for members of pin-scoped sets such as KSPROPSETID_Pin.
func BuildPinRequest(p Property, pinID uint32, payload []byte) []byte {
	b, _ := NewPinPropertyRequest(p, pinID, payload).MarshalBinary()
	return b
}

// BuildNodeRequest lays out a KSP_NODE header addressing nodeID followed by
// payload. Topology node properties set KSPROPERTY_TYPE_TOPOLOGY in the flags.
func BuildNodeRequest(p Property, nodeID uint32, payload []byte) []byte {
	b, _ := NewNodePropertyRequest(p, nodeID, payload).MarshalBinary()
	return b
}
