package ks

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// Wire sizes of the extended camera control structures.
const (
	ExtendedHeaderSize   = 32
	ExtendedValueSize    = 8
	VideoProcSettingSize = 32
)

// KSCAMERA_EXTENDEDPROP_VERSION is the only header version defined.
const KSCAMERA_EXTENDEDPROP_VERSION uint32 = 1

// KSPROPERTY_CAMERACONTROL_EXTENDED ids.
const (
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOMODE uint32 = iota
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOFRAMERATE
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOMAXFRAMERATE
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOTRIGGERTIME
	KSPROPERTY_CAMERACONTROL_EXTENDED_WARMSTART
	KSPROPERTY_CAMERACONTROL_EXTENDED_MAXVIDFPS_PHOTORES
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOTHUMBNAIL
	KSPROPERTY_CAMERACONTROL_EXTENDED_SCENEMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_TORCHMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_FLASHMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_OPTIMIZATIONHINT
	KSPROPERTY_CAMERACONTROL_EXTENDED_WHITEBALANCEMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_EXPOSUREMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_FOCUSMODE
	KSPROPERTY_CAMERACONTROL_EXTENDED_ISO
	KSPROPERTY_CAMERACONTROL_EXTENDED_FIELDOFVIEW
	KSPROPERTY_CAMERACONTROL_EXTENDED_EVCOMPENSATION
	KSPROPERTY_CAMERACONTROL_EXTENDED_CAMERAANGLEOFFSET
	KSPROPERTY_CAMERACONTROL_EXTENDED_METADATA
	KSPROPERTY_CAMERACONTROL_EXTENDED_FOCUSPRIORITY
	KSPROPERTY_CAMERACONTROL_EXTENDED_FOCUSSTATE
	KSPROPERTY_CAMERACONTROL_EXTENDED_ROI_CONFIGCAPS
	KSPROPERTY_CAMERACONTROL_EXTENDED_ROI_ISPCONTROL
	KSPROPERTY_CAMERACONTROL_EXTENDED_PHOTOCONFIRMATION
	KSPROPERTY_CAMERACONTROL_EXTENDED_ZOOM
	KSPROPERTY_CAMERACONTROL_EXTENDED_MCC
	KSPROPERTY_CAMERACONTROL_EXTENDED_ISO_ADVANCED
	KSPROPERTY_CAMERACONTROL_EXTENDED_VIDEOSTABILIZATION
	KSPROPERTY_CAMERACONTROL_EXTENDED_VFR
	KSPROPERTY_CAMERACONTROL_EXTENDED_FACEDETECTION
	KSPROPERTY_CAMERACONTROL_EXTENDED_VIDEOHDR
)

// Header capability and flag bits shared by every extended property.
const (
	KSCAMERA_EXTENDEDPROP_CAPABILITY_ASYNCCONTROL uint64 = 0x8000000000000000
	KSCAMERA_EXTENDEDPROP_CAPABILITY_CANCELLABLE  uint64 = 0x4000000000000000
	KSCAMERA_EXTENDEDPROP_FLAG_CANCELOPERATION    uint64 = 0x8000000000000000
)

// KSCAMERA_EXTENDEDPROP_ISO_* flags. ISO_MANUAL is bit 55, kept as the
// literal the headers ship.
const (
	KSCAMERA_EXTENDEDPROP_ISO_AUTO   uint64 = 0x0000000000000001
	KSCAMERA_EXTENDEDPROP_ISO_50     uint64 = 0x0000000000000002
	KSCAMERA_EXTENDEDPROP_ISO_80     uint64 = 0x0000000000000004
	KSCAMERA_EXTENDEDPROP_ISO_100    uint64 = 0x0000000000000008
	KSCAMERA_EXTENDEDPROP_ISO_200    uint64 = 0x0000000000000010
	KSCAMERA_EXTENDEDPROP_ISO_400    uint64 = 0x0000000000000020
	KSCAMERA_EXTENDEDPROP_ISO_800    uint64 = 0x0000000000000040
	KSCAMERA_EXTENDEDPROP_ISO_1600   uint64 = 0x0000000000000080
	KSCAMERA_EXTENDEDPROP_ISO_3200   uint64 = 0x0000000000000100
	KSCAMERA_EXTENDEDPROP_ISO_6400   uint64 = 0x0000000000000200
	KSCAMERA_EXTENDEDPROP_ISO_12800  uint64 = 0x0000000000000400
	KSCAMERA_EXTENDEDPROP_ISO_25600  uint64 = 0x0000000000000800
	KSCAMERA_EXTENDEDPROP_ISO_MANUAL uint64 = 36028797018963968
)

// KSCAMERA_EXTENDEDPROP_PHOTOMODE_* values.
const (
	KSCAMERA_EXTENDEDPROP_PHOTOMODE_NORMAL   uint64 = 0x0000000000000000
	KSCAMERA_EXTENDEDPROP_PHOTOMODE_SEQUENCE uint64 = 0x0000000000000001
)

// KSCAMERA_EXTENDEDPROP_VIDEOTORCH_* and KSCAMERA_EXTENDEDPROP_FLASH_* flags.
const (
	KSCAMERA_EXTENDEDPROP_VIDEOTORCH_OFF                uint64 = 0x0000000000000000
	KSCAMERA_EXTENDEDPROP_VIDEOTORCH_ON                 uint64 = 0x0000000000000001
	KSCAMERA_EXTENDEDPROP_VIDEOTORCH_ON_ADJUSTABLEPOWER uint64 = 0x0000000000000002

	KSCAMERA_EXTENDEDPROP_FLASH_OFF                  uint64 = 0x0000000000000000
	KSCAMERA_EXTENDEDPROP_FLASH_ON                   uint64 = 0x0000000000000001
	KSCAMERA_EXTENDEDPROP_FLASH_ON_ADJUSTABLEPOWER   uint64 = 0x0000000000000002
	KSCAMERA_EXTENDEDPROP_FLASH_AUTO                 uint64 = 0x0000000000000004
	KSCAMERA_EXTENDEDPROP_FLASH_AUTO_ADJUSTABLEPOWER uint64 = 0x0000000000000008
	KSCAMERA_EXTENDEDPROP_FLASH_REDEYEREDUCTION      uint64 = 0x0000000000000010
)

// KSCAMERA_EXTENDEDPROP_VIDEOPROCFLAG_* modes of VideoProcSetting.
const (
	KSCAMERA_EXTENDEDPROP_VIDEOPROCFLAG_AUTO   uint32 = 0x00000001
	KSCAMERA_EXTENDEDPROP_VIDEOPROCFLAG_MANUAL uint32 = 0x00000002
	KSCAMERA_EXTENDEDPROP_VIDEOPROCFLAG_LOCK   uint32 = 0x00000004
)

// ExtendedHeader maps to the `KSCAMERA_EXTENDEDPROP_HEADER` C struct. Size
// counts the header and the payload that follows it.
type ExtendedHeader struct {
	Version    uint32
	PinID      uint32
	Size       uint32
	Result     uint32
	Flags      uint64
	Capability uint64
}

func (h ExtendedHeader) MarshalTo(e *abi.Encoder) {
	e.Named("Version").PutUint32(h.Version)
	e.Named("PinId").PutUint32(h.PinID)
	e.Named("Size").PutUint32(h.Size)
	e.Named("Result").PutUint32(h.Result)
	e.Named("Flags").PutUint64(h.Flags)
	e.Named("Capability").PutUint64(h.Capability)
}

func (h *ExtendedHeader) UnmarshalBinary(buf []byte) error {
	if len(buf) < ExtendedHeaderSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	h.Version = d.Uint32()
	h.PinID = d.Uint32()
	h.Size = d.Uint32()
	h.Result = d.Uint32()
	h.Flags = d.Uint64()
	h.Capability = d.Uint64()
	return d.Err()
}

// ExtendedValue is the decoded form of the `KSCAMERA_EXTENDEDPROP_VALUE` C
// union. The property id determines which variant applies.
type ExtendedValue interface {
	Kind() ValueKind
	bits() uint64
}

// ValueKind names an arm of KSCAMERA_EXTENDEDPROP_VALUE.
type ValueKind uint8

const (
	KindFloat64 ValueKind = iota + 1
	KindUint32
	KindUint64
	KindInt32
	KindInt64
)

type (
	Float64Value float64
	Uint32Value  uint32
	Uint64Value  uint64
	Int32Value   int32
	Int64Value   int64
)

func (Float64Value) Kind() ValueKind { return KindFloat64 }
func (Uint32Value) Kind() ValueKind  { return KindUint32 }
func (Uint64Value) Kind() ValueKind  { return KindUint64 }
func (Int32Value) Kind() ValueKind   { return KindInt32 }
func (Int64Value) Kind() ValueKind   { return KindInt64 }

func (v Float64Value) bits() uint64 { return math.Float64bits(float64(v)) }
func (v Uint32Value) bits() uint64  { return uint64(v) }
func (v Uint64Value) bits() uint64  { return uint64(v) }
func (v Int32Value) bits() uint64   { return uint64(uint32(v)) }
func (v Int64Value) bits() uint64   { return uint64(v) }

// DecodeExtendedValue reads the 8-byte union as kind.
func DecodeExtendedValue(kind ValueKind, buf []byte) (ExtendedValue, error) {
	if len(buf) < ExtendedValueSize {
		return nil, io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	raw := d.Uint64()
	switch kind {
	case KindFloat64:
		return Float64Value(math.Float64frombits(raw)), nil
	case KindUint32:
		return Uint32Value(uint32(raw)), nil
	case KindUint64:
		return Uint64Value(raw), nil
	case KindInt32:
		return Int32Value(int32(uint32(raw))), nil
	case KindInt64:
		return Int64Value(int64(raw)), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedValue, "extended value kind %d", kind)
}

func putExtendedValue(e *abi.Encoder, v ExtendedValue) {
	if v == nil {
		e.PutUint64(0)
		return
	}
	e.PutUint64(v.bits())
}

// ValuePayload is a lone KSCAMERA_EXTENDEDPROP_VALUE following a header.
type ValuePayload struct {
	Value ExtendedValue
}

func (p ValuePayload) MarshalTo(e *abi.Encoder) {
	putExtendedValue(e.Named("Value"), p.Value)
}

// ExtendedProperty is a header followed by a single KSCAMERA_EXTENDEDPROP_VALUE,
// the payload of properties such as EVCOMPENSATION and ISO_ADVANCED.
type ExtendedProperty struct {
	Header ExtendedHeader
	Value  ExtendedValue
}

func (p ExtendedProperty) MarshalTo(e *abi.Encoder) {
	h := p.Header
	h.Size = ExtendedHeaderSize + ExtendedValueSize
	h.MarshalTo(e)
	ValuePayload{Value: p.Value}.MarshalTo(e)
}

func (p ExtendedProperty) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(ExtendedHeaderSize + ExtendedValueSize)
	p.MarshalTo(e)
	return e.Finish(), nil
}

// ParseExtendedProperty decodes a header and value returned by the driver.
func ParseExtendedProperty(kind ValueKind, buf []byte) (ExtendedProperty, error) {
	var p ExtendedProperty
	if err := p.Header.UnmarshalBinary(buf); err != nil {
		return p, err
	}
	if int(p.Header.Size) != ExtendedHeaderSize+ExtendedValueSize {
		return p, errors.Wrapf(ErrSizeMismatch, "header size %d", p.Header.Size)
	}
	v, err := DecodeExtendedValue(kind, buf[ExtendedHeaderSize:])
	if err != nil {
		return p, err
	}
	p.Value = v
	return p, nil
}

// VideoProcSetting maps to the `KSCAMERA_EXTENDEDPROP_VIDEOPROCSETTING` C
// struct, the capability and value of a processing control such as ISO or
// exposure.
type VideoProcSetting struct {
	Mode      uint32
	Min       int32
	Max       int32
	Step      int32
	VideoProc ExtendedValue
	Reserved  uint64
}

func (s VideoProcSetting) MarshalTo(e *abi.Encoder) {
	e.Named("Mode").PutUint32(s.Mode)
	e.Named("Min").PutInt32(s.Min)
	e.Named("Max").PutInt32(s.Max)
	e.Named("Step").PutInt32(s.Step)
	putExtendedValue(e.Named("VideoProc"), s.VideoProc)
	e.Named("Reserved").PutUint64(s.Reserved)
}

func (s VideoProcSetting) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(VideoProcSettingSize)
	s.MarshalTo(e)
	return e.Finish(), nil
}

// DecodeVideoProcSetting reads the structure with VideoProc decoded as kind.
func DecodeVideoProcSetting(kind ValueKind, buf []byte) (VideoProcSetting, error) {
	if len(buf) < VideoProcSettingSize {
		return VideoProcSetting{}, io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	s := VideoProcSetting{
		Mode: d.Uint32(),
		Min:  d.Int32(),
		Max:  d.Int32(),
		Step: d.Int32(),
	}
	v, err := DecodeExtendedValue(kind, buf[16:24])
	if err != nil {
		return s, err
	}
	s.VideoProc = v
	d.Skip(ExtendedValueSize)
	s.Reserved = d.Uint64()
	return s, d.Err()
}

// BuildExtendedPropertyRequest lays out a KSPROPERTYSETID_ExtendedCameraControl
// request for id on pin with payload following the header. The header Size is
// filled in.
func BuildExtendedPropertyRequest(id, flags uint32, h ExtendedHeader, payload abi.Marshaler) Request {
	e := abi.NewEncoder(ExtendedHeaderSize)
	h.Version = KSCAMERA_EXTENDEDPROP_VERSION
	h.MarshalTo(e)
	if payload != nil {
		payload.MarshalTo(e)
	}
	buf := e.Finish()
	e.PutUint32At(8, uint32(len(buf)))
	return NewPropertyRequest(NewIdentifier(KSPROPERTYSETID_ExtendedCameraControl, id, flags), buf)
}
