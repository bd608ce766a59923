package ks

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// Wire sizes of the basic support structures.
const (
	PropertyDescriptionSize = 40
	MembersHeaderSize       = 16
	BoundsLongSize          = 8
	SteppingLongSize        = 16
)

// KSPROPERTY_MEMBER_* list kinds and KSPROPERTY_MEMBER_FLAG_* flags.
const (
	KSPROPERTY_MEMBER_RANGES        uint32 = 0x00000001
	KSPROPERTY_MEMBER_STEPPEDRANGES uint32 = 0x00000002
	KSPROPERTY_MEMBER_VALUES        uint32 = 0x00000003

	KSPROPERTY_MEMBER_FLAG_DEFAULT                   uint32 = 0x00000001
	KSPROPERTY_MEMBER_FLAG_BASICSUPPORT_MULTICHANNEL uint32 = 0x00000002
	KSPROPERTY_MEMBER_FLAG_BASICSUPPORT_UNIFORM      uint32 = 0x00000004
)

// PropertyDescription maps to the `KSPROPERTY_DESCRIPTION` C struct, the head
// of a KSPROPERTY_TYPE_BASICSUPPORT reply. PropTypeSet names the value type:
// KSPROPTYPESETID_General with a VT_* id.
type PropertyDescription struct {
	AccessFlags      uint32
	DescriptionSize  uint32
	PropTypeSet      Identifier
	MembersListCount uint32
	Reserved         uint32
}

func (p PropertyDescription) MarshalTo(e *abi.Encoder) {
	e.Named("AccessFlags").PutUint32(p.AccessFlags)
	e.Named("DescriptionSize").PutUint32(p.DescriptionSize)
	p.PropTypeSet.MarshalTo(e)
	e.Named("MembersListCount").PutUint32(p.MembersListCount)
	e.Named("Reserved").PutUint32(p.Reserved)
}

func (p *PropertyDescription) UnmarshalBinary(buf []byte) error {
	if len(buf) < PropertyDescriptionSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	p.AccessFlags = d.Uint32()
	p.DescriptionSize = d.Uint32()
	if err := p.PropTypeSet.UnmarshalBinary(d.Bytes(IdentifierSize)); err != nil {
		return err
	}
	p.MembersListCount = d.Uint32()
	p.Reserved = d.Uint32()
	return d.Err()
}

// VariantType is the VT_* id of the described value.
func (p PropertyDescription) VariantType() uint32 {
	return p.PropTypeSet.ID
}

// MembersHeader maps to the `KSPROPERTY_MEMBERSHEADER` C struct. MembersSize
// is the size of one member.
type MembersHeader struct {
	MembersFlags uint32
	MembersSize  uint32
	MembersCount uint32
	Flags        uint32
}

func (h MembersHeader) MarshalTo(e *abi.Encoder) {
	e.PutUint32(h.MembersFlags)
	e.PutUint32(h.MembersSize)
	e.PutUint32(h.MembersCount)
	e.PutUint32(h.Flags)
}

// IsDefault reports whether the list holds the default value.
func (h MembersHeader) IsDefault() bool {
	return h.Flags&KSPROPERTY_MEMBER_FLAG_DEFAULT != 0
}

// MembersList is one header with its members.
type MembersList struct {
	Header  MembersHeader
	Members [][]byte
}

// Bounds is the decoded form of the `KSPROPERTY_BOUNDS_LONG` C union. Which
// arm is valid follows from the variant type of the property.
type Bounds interface {
	isBounds()
}

type SignedBounds struct {
	Minimum int32
	Maximum int32
}

type UnsignedBounds struct {
	Minimum uint32
	Maximum uint32
}

func (SignedBounds) isBounds()   {}
func (UnsignedBounds) isBounds() {}

func isSignedVT(vt uint32) (signed, ok bool) {
	switch vt {
	case VT_I1, VT_I2, VT_I4, VT_INT:
		return true, true
	case VT_UI1, VT_UI2, VT_UI4, VT_UINT, VT_BOOL:
		return false, true
	}
	return false, false
}

// DecodeBounds reads KSPROPERTY_BOUNDS_LONG for the variant type vt.
func DecodeBounds(vt uint32, buf []byte) (Bounds, error) {
	if len(buf) < BoundsLongSize {
		return nil, io.ErrShortBuffer
	}
	signed, ok := isSignedVT(vt)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidBounds, "variant type %d", vt)
	}
	lo := binary.LittleEndian.Uint32(buf[0:4])
	hi := binary.LittleEndian.Uint32(buf[4:8])
	if signed {
		return SignedBounds{Minimum: int32(lo), Maximum: int32(hi)}, nil
	}
	return UnsignedBounds{Minimum: lo, Maximum: hi}, nil
}

func putBounds(e *abi.Encoder, b Bounds) error {
	switch b := b.(type) {
	case SignedBounds:
		e.PutInt32(b.Minimum)
		e.PutInt32(b.Maximum)
	case UnsignedBounds:
		e.PutUint32(b.Minimum)
		e.PutUint32(b.Maximum)
	default:
		return errors.Wrapf(ErrInvalidBounds, "%T", b)
	}
	return nil
}

// SteppingLong maps to the `KSPROPERTY_STEPPING_LONG` C struct.
type SteppingLong struct {
	SteppingDelta uint32
	Reserved      uint32
	Bounds        Bounds
}

func (s SteppingLong) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(SteppingLongSize)
	e.PutUint32(s.SteppingDelta)
	e.PutUint32(s.Reserved)
	if err := putBounds(e, s.Bounds); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// DecodeSteppingLong reads KSPROPERTY_STEPPING_LONG for the variant type vt.
func DecodeSteppingLong(vt uint32, buf []byte) (SteppingLong, error) {
	if len(buf) < SteppingLongSize {
		return SteppingLong{}, io.ErrShortBuffer
	}
	b, err := DecodeBounds(vt, buf[8:16])
	if err != nil {
		return SteppingLong{}, err
	}
	return SteppingLong{
		SteppingDelta: binary.LittleEndian.Uint32(buf[0:4]),
		Reserved:      binary.LittleEndian.Uint32(buf[4:8]),
		Bounds:        b,
	}, nil
}

// BasicSupport is a decoded KSPROPERTY_TYPE_BASICSUPPORT reply.
type BasicSupport struct {
	Description PropertyDescription
	Lists       []MembersList
}

// ParseBasicSupport decodes a description followed by its member lists. A
// reply of exactly PropertyDescriptionSize bytes, which drivers return when
// the caller only asked for the size, yields no lists.
func ParseBasicSupport(buf []byte) (BasicSupport, error) {
	var bs BasicSupport
	if err := bs.Description.UnmarshalBinary(buf); err != nil {
		return bs, err
	}
	if len(buf) == PropertyDescriptionSize {
		return bs, nil
	}
	end := int(bs.Description.DescriptionSize)
	if end < PropertyDescriptionSize || end > len(buf) {
		return bs, errors.Wrapf(ErrSizeMismatch, "description size %d in a %d byte reply", end, len(buf))
	}

	off := PropertyDescriptionSize
	for i := 0; i < int(bs.Description.MembersListCount); i++ {
		if off+MembersHeaderSize > end {
			return bs, errors.Wrapf(ErrInvalidMembers, "list %d header past description size %d", i, end)
		}
		d := abi.NewDecoder(buf[off : off+MembersHeaderSize])
		h := MembersHeader{
			MembersFlags: d.Uint32(),
			MembersSize:  d.Uint32(),
			MembersCount: d.Uint32(),
			Flags:        d.Uint32(),
		}
		off += MembersHeaderSize

		if h.MembersSize == 0 && h.MembersCount > 0 {
			return bs, errors.Wrapf(ErrInvalidMembers, "list %d has %d members of zero size", i, h.MembersCount)
		}
		if uint64(off)+uint64(h.MembersSize)*uint64(h.MembersCount) > uint64(end) {
			return bs, errors.Wrapf(ErrInvalidMembers, "list %d has %d members of %d bytes past description size %d", i, h.MembersCount, h.MembersSize, end)
		}
		n := int(h.MembersSize) * int(h.MembersCount)
		list := MembersList{Header: h}
		for j := 0; j < int(h.MembersCount); j++ {
			start := off + j*int(h.MembersSize)
			list.Members = append(list.Members, buf[start:start+int(h.MembersSize)])
		}
		bs.Lists = append(bs.Lists, list)
		off += n
	}
	return bs, nil
}

// Steppings decodes every stepped range of the reply.
func (bs BasicSupport) Steppings() ([]SteppingLong, error) {
	var out []SteppingLong
	vt := bs.Description.VariantType()
	for _, l := range bs.Lists {
		if l.Header.MembersFlags != KSPROPERTY_MEMBER_STEPPEDRANGES {
			continue
		}
		for _, m := range l.Members {
			s, err := DecodeSteppingLong(vt, m)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// Default returns the raw default value, if the reply carries one.
func (bs BasicSupport) Default() ([]byte, bool) {
	for _, l := range bs.Lists {
		if l.Header.MembersFlags == KSPROPERTY_MEMBER_VALUES && l.Header.IsDefault() && len(l.Members) > 0 {
			return l.Members[0], true
		}
	}
	return nil, false
}

// MarshalBasicSupport encodes a description with its member lists and fills
// in DescriptionSize and MembersListCount.
func MarshalBasicSupport(desc PropertyDescription, lists []MembersList) ([]byte, error) {
	e := abi.NewEncoder(PropertyDescriptionSize)
	desc.MembersListCount = uint32(len(lists))
	desc.MarshalTo(e)
	for i, l := range lists {
		if int(l.Header.MembersCount) != len(l.Members) {
			return nil, errors.Wrapf(ErrCountMismatch, "list %d declares %d members, has %d", i, l.Header.MembersCount, len(l.Members))
		}
		l.Header.MarshalTo(e)
		for j, m := range l.Members {
			if len(m) != int(l.Header.MembersSize) {
				return nil, errors.Wrapf(ErrItemSizeMismatch, "list %d member %d is %d bytes, header says %d", i, j, len(m), l.Header.MembersSize)
			}
			e.PutBytes(m)
		}
	}
	buf := e.Bytes()
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(buf)))
	return buf, nil
}
