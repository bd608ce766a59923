// Package guid implements the Windows GUID value type as it appears inside
// driver request buffers: Data1, Data2 and Data3 little-endian, Data4 as-is.
package guid

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Size is the wire size of a GUID in bytes.
const Size = 16

// GUID maps to the `GUID` C struct.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Null is GUID_NULL.
var Null = GUID{}

// Parse accepts the canonical 8-4-4-4-12 form, with or without braces.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, errors.Wrapf(err, "parsing guid %q", s)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constant tables.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromUUID converts an RFC 4122 (big-endian) UUID into a GUID.
func FromUUID(u uuid.UUID) GUID {
	var g GUID
	g.UnmarshalBinary(swapEndian(u[:]))
	return g
}

// UUID returns the RFC 4122 byte order representation of g.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	copy(u[:], swapEndian(g.Bytes()))
	return u
}

func (g GUID) String() string {
	return "{" + strings.ToUpper(g.UUID().String()) + "}"
}

func (g GUID) IsNull() bool {
	return g == Null
}

// Bytes returns the 16-byte wire representation.
func (g GUID) Bytes() []byte {
	buf := make([]byte, Size)
	g.PutBytes(buf)
	return buf
}

// PutBytes writes the wire representation into buf, which must hold Size bytes.
func (g GUID) PutBytes(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], g.Data1)
	binary.LittleEndian.PutUint16(buf[4:6], g.Data2)
	binary.LittleEndian.PutUint16(buf[6:8], g.Data3)
	copy(buf[8:16], g.Data4[:])
}

func (g GUID) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

func (g *GUID) UnmarshalBinary(buf []byte) error {
	if len(buf) < Size {
		return io.ErrShortBuffer
	}
	g.Data1 = binary.LittleEndian.Uint32(buf[0:4])
	g.Data2 = binary.LittleEndian.Uint16(buf[4:6])
	g.Data3 = binary.LittleEndian.Uint16(buf[6:8])
	copy(g.Data4[:], buf[8:16])
	return nil
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// swapEndian flips the first three GUID fields between wire and RFC order.
func swapEndian(src []byte) []byte {
	dst := make([]byte, Size)
	dst[0] = src[3]
	dst[1] = src[2]
	dst[2] = src[1]
	dst[3] = src[0]
	dst[4] = src[5]
	dst[5] = src[4]
	dst[6] = src[7]
	dst[7] = src[6]
	copy(dst[8:], src[8:16])
	return dst
}
