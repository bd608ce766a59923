// Package ks builds Kernel Streaming property, event and method requests as
// understood by AVStream minidrivers (ks.h, ksmedia.h).
//
// Every KS request starts with the same 24-byte identifier: the GUID of a
// property, event or method set, a numeric id within that set, and flags
// selecting the operation. The identifier is followed by a payload whose shape
// is defined by the individual set member.
package ks

import (
	"io"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

// IdentifierSize is the wire size of KSIDENTIFIER. The C type is a union with
// a LONGLONG, so it is also 8-byte aligned.
const (
	IdentifierSize  = 24
	IdentifierAlign = 8
)

// Identifier maps to the `KSIDENTIFIER` C struct.
type Identifier struct {
	Set   guid.GUID
	ID    uint32
	Flags uint32
}

// Property, Event and Method are the KSPROPERTY, KSEVENT and KSMETHOD typedefs
// of KSIDENTIFIER.
type (
	Property = Identifier
	Event    = Identifier
	Method   = Identifier
)

func NewIdentifier(set guid.GUID, id, flags uint32) Identifier {
	return Identifier{Set: set, ID: id, Flags: flags}
}

// Matches reports whether a and b name the same set member. Flags select an
// operation on the member and are ignored.
func Matches(a, b Identifier) bool {
	return a.Set == b.Set && a.ID == b.ID
}

func (id Identifier) Matches(other Identifier) bool {
	return Matches(id, other)
}

// WithFlags returns a copy of id with its flags replaced.
func (id Identifier) WithFlags(flags uint32) Identifier {
	id.Flags = flags
	return id
}

func (id Identifier) MarshalTo(e *abi.Encoder) {
	e.Align(IdentifierAlign)
	e.Named("Set").PutGUID(id.Set)
	e.Named("Id").PutUint32(id.ID)
	e.Named("Flags").PutUint32(id.Flags)
}

func (id Identifier) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(IdentifierSize)
	id.MarshalTo(e)
	return e.Finish(), nil
}

func (id *Identifier) UnmarshalBinary(buf []byte) error {
	if len(buf) < IdentifierSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	id.Set = d.GUID()
	id.ID = d.Uint32()
	id.Flags = d.Uint32()
	return d.Err()
}

// KSPROPERTY_TYPE_* flags.
const (
	KSPROPERTY_TYPE_GET            uint32 = 0x00000001
	KSPROPERTY_TYPE_SET            uint32 = 0x00000002
	KSPROPERTY_TYPE_SETSUPPORT     uint32 = 0x00000100
	KSPROPERTY_TYPE_BASICSUPPORT   uint32 = 0x00000200
	KSPROPERTY_TYPE_RELATIONS      uint32 = 0x00000400
	KSPROPERTY_TYPE_SERIALIZESET   uint32 = 0x00000800
	KSPROPERTY_TYPE_UNSERIALIZESET uint32 = 0x00001000
	KSPROPERTY_TYPE_SERIALIZERAW   uint32 = 0x00002000
	KSPROPERTY_TYPE_UNSERIALIZERAW uint32 = 0x00004000
	KSPROPERTY_TYPE_SERIALIZESIZE  uint32 = 0x00008000
	KSPROPERTY_TYPE_DEFAULTVALUES  uint32 = 0x00010000
	KSPROPERTY_TYPE_TOPOLOGY       uint32 = 0x10000000
	KSPROPERTY_TYPE_HIGHPRIORITY   uint32 = 0x08000000
	KSPROPERTY_TYPE_FSFILTERSCOPE  uint32 = 0x40000000
	KSPROPERTY_TYPE_COPYPAYLOAD    uint32 = 0x80000000
)

// KSMETHOD_TYPE_* flags.
const (
	KSMETHOD_TYPE_NONE         uint32 = 0x00000000
	KSMETHOD_TYPE_READ         uint32 = 0x00000001
	KSMETHOD_TYPE_WRITE        uint32 = 0x00000002
	KSMETHOD_TYPE_MODIFY       uint32 = 0x00000003
	KSMETHOD_TYPE_SOURCE       uint32 = 0x00000004
	KSMETHOD_TYPE_SEND         uint32 = 0x00000001
	KSMETHOD_TYPE_SETSUPPORT   uint32 = 0x00000100
	KSMETHOD_TYPE_BASICSUPPORT uint32 = 0x00000200
	KSMETHOD_TYPE_TOPOLOGY     uint32 = 0x10000000
)

// KSEVENT_TYPE_* flags.
const (
	KSEVENT_TYPE_ENABLE         uint32 = 0x00000001
	KSEVENT_TYPE_ONESHOT        uint32 = 0x00000002
	KSEVENT_TYPE_ENABLEBUFFERED uint32 = 0x00000004
	KSEVENT_TYPE_SETSUPPORT     uint32 = 0x00000100
	KSEVENT_TYPE_BASICSUPPORT   uint32 = 0x00000200
	KSEVENT_TYPE_QUERYBUFFER    uint32 = 0x00000400
	KSEVENT_TYPE_TOPOLOGY       uint32 = 0x10000000
)

// State maps to the `KSSTATE` C enum.
type State uint32

const (
	KSSTATE_STOP    State = 0
	KSSTATE_ACQUIRE State = 1
	KSSTATE_PAUSE   State = 2
	KSSTATE_RUN     State = 3
)

func (s State) String() string {
	switch s {
	case KSSTATE_STOP:
		return "KSSTATE_STOP"
	case KSSTATE_ACQUIRE:
		return "KSSTATE_ACQUIRE"
	case KSSTATE_PAUSE:
		return "KSSTATE_PAUSE"
	case KSSTATE_RUN:
		return "KSSTATE_RUN"
	}
	return "KSSTATE_UNKNOWN"
}

// KSFILTER_NODE addresses the filter itself in topology connections.
const KSFILTER_NODE uint32 = 0xFFFFFFFF

// Variant type ids carried in KSPROPERTY_DESCRIPTION.PropTypeSet.Id.
const (
	VT_EMPTY  uint32 = 0
	VT_I2     uint32 = 2
	VT_I4     uint32 = 3
	VT_R4     uint32 = 4
	VT_R8     uint32 = 5
	VT_BOOL   uint32 = 11
	VT_I1     uint32 = 16
	VT_UI1    uint32 = 17
	VT_UI2    uint32 = 18
	VT_UI4    uint32 = 19
	VT_I8     uint32 = 20
	VT_UI8    uint32 = 21
	VT_INT    uint32 = 22
	VT_UINT   uint32 = 23
	VT_LPWSTR uint32 = 31
)
