package ks

import (
	"encoding/binary"

	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

// fourccBase is the tail shared by every FOURCC-derived media subtype,
// XXXXXXXX-0000-0010-8000-00AA00389B71.
var fourccBase = guid.MustParse("00000000-0000-0010-8000-00AA00389B71")

// FOURCC subtypes missing from the KSDATAFORMAT_SUBTYPE_* literals in sets.go.
var (
	KSDATAFORMAT_SUBTYPE_M420 = SubtypeFromFourCC("M420")
	KSDATAFORMAT_SUBTYPE_I420 = SubtypeFromFourCC("I420")
	KSDATAFORMAT_SUBTYPE_H264 = SubtypeFromFourCC("H264")
)

// SubtypeFromFourCC returns the media subtype for a four character code such
// as "YUY2". Shorter codes are padded with spaces.
func SubtypeFromFourCC(code string) guid.GUID {
	var b [4]byte
	for i := range b {
		b[i] = ' '
		if i < len(code) {
			b[i] = code[i]
		}
	}
	g := fourccBase
	g.Data1 = binary.LittleEndian.Uint32(b[:])
	return g
}

// FourCC returns the four character code of a FOURCC-derived subtype.
func FourCC(g guid.GUID) (string, bool) {
	base := g
	base.Data1 = 0
	if base != fourccBase || g.Data1 == 0 {
		return "", false
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], g.Data1)
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", false
		}
	}
	return string(b[:]), true
}
