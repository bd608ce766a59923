package ks

import (
	"io"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

const (
	AllocatorFramingSize = 24
	FramingRangeSize     = 12
)

// FILE_*_ALIGNMENT values for AllocatorFraming.FileAlignment. Each is the
// alignment minus one.
const (
	FILE_BYTE_ALIGNMENT     uint32 = 0x00000000
	FILE_WORD_ALIGNMENT     uint32 = 0x00000001
	FILE_LONG_ALIGNMENT     uint32 = 0x00000003
	FILE_QUAD_ALIGNMENT     uint32 = 0x00000007
	FILE_OCTA_ALIGNMENT     uint32 = 0x0000000f
	FILE_32_BYTE_ALIGNMENT  uint32 = 0x0000001f
	FILE_64_BYTE_ALIGNMENT  uint32 = 0x0000003f
	FILE_128_BYTE_ALIGNMENT uint32 = 0x0000007f
	FILE_256_BYTE_ALIGNMENT uint32 = 0x000000ff
	FILE_512_BYTE_ALIGNMENT uint32 = 0x000001ff
)

// KSALLOCATOR_REQUIREMENTF_* and KSALLOCATOR_OPTIONF_* flags.
const (
	KSALLOCATOR_REQUIREMENTF_INPLACE_MODIFIER uint32 = 0x00000001
	KSALLOCATOR_REQUIREMENTF_SYSTEM_MEMORY    uint32 = 0x00000002
	KSALLOCATOR_REQUIREMENTF_FRAME_INTEGRITY  uint32 = 0x00000004
	KSALLOCATOR_REQUIREMENTF_MUST_ALLOCATE    uint32 = 0x00000008
	KSALLOCATOR_REQUIREMENTF_PREFERENCES_ONLY uint32 = 0x80000000

	KSALLOCATOR_OPTIONF_COMPATIBLE    uint32 = 0x00000001
	KSALLOCATOR_OPTIONF_SYSTEM_MEMORY uint32 = 0x00000002
)

// POOL_TYPE values.
const (
	NonPagedPool uint32 = 0
	PagedPool    uint32 = 1
)

// AllocatorFraming maps to the `KSALLOCATOR_FRAMING` C struct, returned by
// KSPROPERTY_CONNECTION_ALLOCATORFRAMING. The first field is a union of
// OptionsFlags and RequirementsFlags.
type AllocatorFraming struct {
	RequirementsFlags uint32
	PoolType          uint32
	Frames            uint32
	FrameSize         uint32
	FileAlignment     uint32
	Reserved          uint32
}

func (f AllocatorFraming) MarshalTo(e *abi.Encoder) {
	e.Named("RequirementsFlags").PutUint32(f.RequirementsFlags)
	e.Named("PoolType").PutUint32(f.PoolType)
	e.Named("Frames").PutUint32(f.Frames)
	e.Named("FrameSize").PutUint32(f.FrameSize)
	e.Named("FileAlignment").PutUint32(f.FileAlignment)
	e.Named("Reserved").PutUint32(f.Reserved)
}

func (f AllocatorFraming) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(AllocatorFramingSize)
	f.MarshalTo(e)
	return e.Finish(), nil
}

func (f *AllocatorFraming) UnmarshalBinary(buf []byte) error {
	if len(buf) < AllocatorFramingSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	f.RequirementsFlags = d.Uint32()
	f.PoolType = d.Uint32()
	f.Frames = d.Uint32()
	f.FrameSize = d.Uint32()
	f.FileAlignment = d.Uint32()
	f.Reserved = d.Uint32()
	return d.Err()
}

// Alignment is the byte alignment FileAlignment encodes.
func (f AllocatorFraming) Alignment() int {
	return int(f.FileAlignment) + 1
}

// FramingRange maps to the `KS_FRAMING_RANGE` C struct.
type FramingRange struct {
	MinFrameSize uint32
	MaxFrameSize uint32
	Stepping     uint32
}

func (r FramingRange) MarshalTo(e *abi.Encoder) {
	e.Named("MinFrameSize").PutUint32(r.MinFrameSize)
	e.Named("MaxFrameSize").PutUint32(r.MaxFrameSize)
	e.Named("Stepping").PutUint32(r.Stepping)
}

func (r *FramingRange) UnmarshalBinary(buf []byte) error {
	if len(buf) < FramingRangeSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	r.MinFrameSize = d.Uint32()
	r.MaxFrameSize = d.Uint32()
	r.Stepping = d.Uint32()
	return d.Err()
}

// Contains reports whether size is a frame size the range admits.
func (r FramingRange) Contains(size uint32) bool {
	if size < r.MinFrameSize || size > r.MaxFrameSize {
		return false
	}
	if r.Stepping == 0 {
		return true
	}
	return (size-r.MinFrameSize)%r.Stepping == 0
}
