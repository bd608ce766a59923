package ks

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/guid"
)

// DataFormatSize is the size of the fixed KSDATAFORMAT header.
const DataFormatSize = 64

// DataFormat maps to the `KSDATAFORMAT` C struct. KSDATARANGE has the same
// layout. Format specific bytes, such as a KS_VIDEOINFOHEADER, follow the
// header and are counted by FormatSize.
type DataFormat struct {
	FormatSize  uint32
	Flags       uint32
	SampleSize  uint32
	Reserved    uint32
	MajorFormat guid.GUID
	SubFormat   guid.GUID
	Specifier   guid.GUID
	Extra       []byte
}

type DataRange = DataFormat

// KSDATAFORMAT flags.
const (
	KSDATAFORMAT_TEMPORAL_COMPRESSION uint32 = 1 << 0
	KSDATAFORMAT_ATTRIBUTES           uint32 = 1 << 1
)

// NewDataFormat returns a format with FormatSize covering extra.
func NewDataFormat(major, sub, specifier guid.GUID, extra []byte) DataFormat {
	return DataFormat{
		FormatSize:  uint32(DataFormatSize + len(extra)),
		MajorFormat: major,
		SubFormat:   sub,
		Specifier:   specifier,
		Extra:       extra,
	}
}

func (f DataFormat) MarshalTo(e *abi.Encoder) {
	e.Align(8)
	e.Named("FormatSize").PutUint32(f.FormatSize)
	e.Named("Flags").PutUint32(f.Flags)
	e.Named("SampleSize").PutUint32(f.SampleSize)
	e.Named("Reserved").PutUint32(f.Reserved)
	e.Named("MajorFormat").PutGUID(f.MajorFormat)
	e.Named("SubFormat").PutGUID(f.SubFormat)
	e.Named("Specifier").PutGUID(f.Specifier)
	e.PutBytes(f.Extra)
}

func (f DataFormat) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(DataFormatSize + len(f.Extra))
	f.MarshalTo(e)
	return e.Bytes(), nil
}

// ItemSize reports FormatSize so data range lists are checked against it.
func (f DataFormat) ItemSize() uint32 {
	return f.FormatSize
}

func (f *DataFormat) UnmarshalBinary(buf []byte) error {
	if len(buf) < DataFormatSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	f.FormatSize = d.Uint32()
	f.Flags = d.Uint32()
	f.SampleSize = d.Uint32()
	f.Reserved = d.Uint32()
	f.MajorFormat = d.GUID()
	f.SubFormat = d.GUID()
	f.Specifier = d.GUID()
	if f.FormatSize < DataFormatSize || int(f.FormatSize) > len(buf) {
		return errors.Wrapf(ErrSizeMismatch, "format size %d in a %d byte buffer", f.FormatSize, len(buf))
	}
	f.Extra = append([]byte(nil), buf[DataFormatSize:f.FormatSize]...)
	return d.Err()
}

// ParseDataRanges decodes the KSMULTIPLE_ITEM returned by
// KSPROPERTY_PIN_DATARANGES. Ranges are quadword aligned within the list.
func ParseDataRanges(buf []byte) ([]DataRange, error) {
	var ranges []DataRange
	err := WalkMultipleItem(buf, LeadingSizeStride, 8, func(i int, entry []byte) error {
		var r DataRange
		if err := r.UnmarshalBinary(entry); err != nil {
			return errors.Wrapf(err, "data range %d", i)
		}
		ranges = append(ranges, r)
		return nil
	})
	return ranges, err
}

// TopologyConnectionSize is the wire size of KSTOPOLOGY_CONNECTION.
const TopologyConnectionSize = 16

// TopologyConnection maps to the `KSTOPOLOGY_CONNECTION` C struct. A node of
// KSFILTER_NODE refers to a filter pin.
type TopologyConnection struct {
	FromNode    uint32
	FromNodePin uint32
	ToNode      uint32
	ToNodePin   uint32
}

func (c TopologyConnection) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(TopologyConnectionSize)
	e.PutUint32(c.FromNode)
	e.PutUint32(c.FromNodePin)
	e.PutUint32(c.ToNode)
	e.PutUint32(c.ToNodePin)
	return e.Bytes(), nil
}

func (c *TopologyConnection) UnmarshalBinary(buf []byte) error {
	if len(buf) < TopologyConnectionSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	c.FromNode = d.Uint32()
	c.FromNodePin = d.Uint32()
	c.ToNode = d.Uint32()
	c.ToNodePin = d.Uint32()
	return d.Err()
}

// ParseTopologyConnections decodes the KSMULTIPLE_ITEM returned by
// KSPROPERTY_TOPOLOGY_CONNECTIONS.
func ParseTopologyConnections(buf []byte) ([]TopologyConnection, error) {
	var conns []TopologyConnection
	err := WalkMultipleItem(buf, FixedStride(TopologyConnectionSize), 1, func(i int, entry []byte) error {
		var c TopologyConnection
		if err := c.UnmarshalBinary(entry); err != nil {
			return err
		}
		conns = append(conns, c)
		return nil
	})
	return conns, err
}

// ParseGUIDList decodes a KSMULTIPLE_ITEM of GUIDs, as returned by
// KSPROPERTY_TOPOLOGY_CATEGORIES and KSPROPERTY_TOPOLOGY_NODES.
func ParseGUIDList(buf []byte) ([]guid.GUID, error) {
	var ids []guid.GUID
	err := WalkMultipleItem(buf, FixedStride(guid.Size), 1, func(i int, entry []byte) error {
		var g guid.GUID
		if err := g.UnmarshalBinary(entry); err != nil {
			return err
		}
		ids = append(ids, g)
		return nil
	})
	return ids, err
}

// ComponentIDSize is the wire size of KSCOMPONENTID.
const ComponentIDSize = 72

// ComponentID maps to the `KSCOMPONENTID` C struct.
type ComponentID struct {
	Manufacturer guid.GUID
	Product      guid.GUID
	Component    guid.GUID
	Name         guid.GUID
	Version      uint32
	Revision     uint32
}

func (c ComponentID) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(ComponentIDSize)
	e.PutGUID(c.Manufacturer)
	e.PutGUID(c.Product)
	e.PutGUID(c.Component)
	e.PutGUID(c.Name)
	e.PutUint32(c.Version)
	e.PutUint32(c.Revision)
	return e.Finish(), nil
}

func (c *ComponentID) UnmarshalBinary(buf []byte) error {
	if len(buf) < ComponentIDSize {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	c.Manufacturer = d.GUID()
	c.Product = d.GUID()
	c.Component = d.GUID()
	c.Name = d.GUID()
	c.Version = d.Uint32()
	c.Revision = d.Uint32()
	return d.Err()
}

// PinCInstances maps to the `KSPIN_CINSTANCES` C struct.
type PinCInstances struct {
	PossibleCount uint32
	CurrentCount  uint32
}

func (p *PinCInstances) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	p.PossibleCount = d.Uint32()
	p.CurrentCount = d.Uint32()
	return d.Err()
}

// ControlValueSize is the wire size of KSPROPERTY_VIDEOPROCAMP_S and
// KSPROPERTY_CAMERACONTROL_S, including the tail padding the 8-byte aligned
// identifier forces.
const ControlValueSize = 40

// ControlValue maps to the `KSPROPERTY_VIDEOPROCAMP_S` and
// `KSPROPERTY_CAMERACONTROL_S` C structs, which share one layout. The same
// buffer is both the request and the reply.
type ControlValue struct {
	Property     Property
	Value        int32
	Flags        uint32
	Capabilities uint32
}

func (v ControlValue) MarshalTo(e *abi.Encoder) {
	v.Property.MarshalTo(e)
	e.Named("Value").PutInt32(v.Value)
	e.Named("Flags").PutUint32(v.Flags)
	e.Named("Capabilities").PutUint32(v.Capabilities)
}

func (v ControlValue) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(ControlValueSize)
	v.MarshalTo(e)
	return e.Finish(), nil
}

// Request returns v as a property request. The driver reads the whole
// structure from the input buffer and writes it back to the output buffer, so
// both carry all ControlValueSize bytes.
func (v ControlValue) Request() Request {
	b, _ := v.MarshalBinary()
	return Request{Code: IOCTL_KS_PROPERTY, Identifier: v.Property, Payload: b, InPlace: true}
}

func (v *ControlValue) UnmarshalBinary(buf []byte) error {
	if len(buf) < ControlValueSize {
		return io.ErrShortBuffer
	}
	if err := v.Property.UnmarshalBinary(buf); err != nil {
		return err
	}
	d := abi.NewDecoder(buf[IdentifierSize:])
	v.Value = d.Int32()
	v.Flags = d.Uint32()
	v.Capabilities = d.Uint32()
	return d.Err()
}

// NewCameraControlRequest returns a KSPROPERTY_CAMERACONTROL_S for id. Get
// requests carry zero value and flags.
func NewCameraControlRequest(id, propFlags uint32, value int32, flags uint32) ControlValue {
	return ControlValue{
		Property: NewIdentifier(PROPSETID_VIDCAP_CAMERACONTROL, id, propFlags),
		Value:    value,
		Flags:    flags,
	}
}

// NewVideoProcAmpRequest returns a KSPROPERTY_VIDEOPROCAMP_S for id.
func NewVideoProcAmpRequest(id, propFlags uint32, value int32, flags uint32) ControlValue {
	return ControlValue{
		Property: NewIdentifier(PROPSETID_VIDCAP_VIDEOPROCAMP, id, propFlags),
		Value:    value,
		Flags:    flags,
	}
}

// AudioChannelPropertySize is the wire size of KSNODEPROPERTY_AUDIO_CHANNEL.
const AudioChannelPropertySize = 40

// AudioChannelProperty maps to the `KSNODEPROPERTY_AUDIO_CHANNEL` C struct,
// the request header for per-channel audio node properties such as
// KSPROPERTY_AUDIO_VOLUMELEVEL. Channel -1 addresses the master channel.
type AudioChannelProperty struct {
	NodeProperty NodeProperty
	Channel      int32
	Reserved     uint32
}

func (a AudioChannelProperty) MarshalTo(e *abi.Encoder) {
	a.NodeProperty.MarshalTo(e)
	e.Named("Channel").PutInt32(a.Channel)
	e.Named("ChannelReserved").PutUint32(a.Reserved)
}

func (a AudioChannelProperty) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(AudioChannelPropertySize)
	a.MarshalTo(e)
	return e.Finish(), nil
}

// NewAudioChannelProperty addresses channel of node with a topology
// KSPROPSETID_Audio property.
func NewAudioChannelProperty(id, flags, node uint32, channel int32) AudioChannelProperty {
	return AudioChannelProperty{
		NodeProperty: NodeProperty{
			Property: NewIdentifier(KSPROPSETID_Audio, id, flags|KSPROPERTY_TYPE_TOPOLOGY),
			NodeID:   node,
		},
		Channel: channel,
	}
}
