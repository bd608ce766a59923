package iscsi

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

const (
	PortalSize          = 2*MAX_ISCSI_PORTAL_NAME_LEN + 2*MAX_ISCSI_PORTAL_ADDRESS_LEN + 2
	UniqueSessionIDSize = 16
)

// TargetPortal is the caller-facing form of a portal.
type TargetPortal struct {
	// the Windows name
	SymbolicName string
	// IP address or DNS name
	Address string
	// defaults to DefaultPortalPort when nil
	Socket *uint16
}

// Portal maps to the `ISCSI_TARGET_PORTALW` C struct.
type Portal struct {
	SymbolicName [MAX_ISCSI_PORTAL_NAME_LEN]uint16
	Address      [MAX_ISCSI_PORTAL_ADDRESS_LEN]uint16
	Socket       uint16
}

// putWide copies s into dst as a NUL terminated UTF-16 string.
func putWide(dst []uint16, s, field string) error {
	w := utf16.Encode([]rune(s))
	if len(w) >= len(dst) {
		return errors.Wrapf(ErrNameTooLong, "%s has %d UTF-16 units, at most %d fit", field, len(w), len(dst)-1)
	}
	copy(dst, w)
	return nil
}

func wideString(src []uint16) string {
	for i, c := range src {
		if c == 0 {
			return string(utf16.Decode(src[:i]))
		}
	}
	return string(utf16.Decode(src))
}

func wideBytes(src []uint16) []byte {
	b := make([]byte, 0, 2*len(src))
	for _, c := range src {
		b = binary.LittleEndian.AppendUint16(b, c)
	}
	return b
}

func NewPortal(p TargetPortal) (Portal, error) {
	var out Portal
	if err := putWide(out.SymbolicName[:], p.SymbolicName, "SymbolicName"); err != nil {
		return Portal{}, err
	}
	if err := putWide(out.Address[:], p.Address, "Address"); err != nil {
		return Portal{}, err
	}
	out.Socket = DefaultPortalPort
	if p.Socket != nil {
		out.Socket = *p.Socket
	}
	return out, nil
}

// TargetPortal converts back to the caller-facing form.
func (p Portal) TargetPortal() TargetPortal {
	socket := p.Socket
	return TargetPortal{
		SymbolicName: wideString(p.SymbolicName[:]),
		Address:      wideString(p.Address[:]),
		Socket:       &socket,
	}
}

func (p Portal) MarshalTo(e *abi.Encoder) {
	e.Align(2)
	e.Named("SymbolicName").PutBytes(wideBytes(p.SymbolicName[:]))
	e.Named("Address").PutBytes(wideBytes(p.Address[:]))
	e.Named("Socket").PutUint16(p.Socket)
}

func (p Portal) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(PortalSize)
	p.MarshalTo(e)
	return e.Finish(), nil
}

func (p *Portal) UnmarshalBinary(buf []byte) error {
	if len(buf) < PortalSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	for i := range p.SymbolicName {
		p.SymbolicName[i] = d.Uint16()
	}
	for i := range p.Address {
		p.Address[i] = d.Uint16()
	}
	p.Socket = d.Uint16()
	return d.Err()
}

// UniqueSessionID maps to the `ISCSI_UNIQUE_SESSION_ID` C struct.
type UniqueSessionID struct {
	AdapterUnique   uint64
	AdapterSpecific uint64
}

func (id UniqueSessionID) MarshalTo(e *abi.Encoder) {
	e.Named("AdapterUnique").PutUint64(id.AdapterUnique)
	e.Named("AdapterSpecific").PutUint64(id.AdapterSpecific)
}

func (id UniqueSessionID) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(UniqueSessionIDSize)
	id.MarshalTo(e)
	return e.Finish(), nil
}

func (id *UniqueSessionID) UnmarshalBinary(buf []byte) error {
	if len(buf) < UniqueSessionIDSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	id.AdapterUnique = d.Uint64()
	id.AdapterSpecific = d.Uint64()
	return d.Err()
}

// String formats the id the way iscsicli prints session ids.
func (id UniqueSessionID) String() string {
	return fmt.Sprintf("%016x-%016x", id.AdapterUnique, id.AdapterSpecific)
}
