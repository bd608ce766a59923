package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kevmo314/go-ntioctl"
	"github.com/kevmo314/go-ntioctl/pkg/abi"
	"github.com/kevmo314/go-ntioctl/pkg/guid"
	"github.com/kevmo314/go-ntioctl/pkg/iscsi"
	"github.com/kevmo314/go-ntioctl/pkg/ks"
	"github.com/kevmo314/go-ntioctl/pkg/scsi"
)

// definition describes one request to encode.
type definition struct {
	Kind string `yaml:"kind"`
	// Arch selects the structure layout: "native" (default) or "32" for
	// the form a 32-bit process sends.
	Arch string `yaml:"arch,omitempty"`

	Property *propertyDef `yaml:"property,omitempty"`
	Camera   *cameraDef   `yaml:"camera,omitempty"`
	SCSI     *scsiDef     `yaml:"scsi,omitempty"`
	ATA      *ataDef      `yaml:"ata,omitempty"`
	Login    *loginDef    `yaml:"login,omitempty"`
}

type propertyDef struct {
	// Set is a GUID or one of the short names in propertySets.
	Set        string  `yaml:"set"`
	ID         uint32  `yaml:"id"`
	Type       string  `yaml:"type"`
	Pin        *uint32 `yaml:"pin,omitempty"`
	Node       *uint32 `yaml:"node,omitempty"`
	Value      *uint32 `yaml:"value,omitempty"`
	OutputSize uint32  `yaml:"output_size,omitempty"`
}

type cameraDef struct {
	// Control is "camera" or "procamp".
	Control string `yaml:"control"`
	ID      uint32 `yaml:"id"`
	Type    string `yaml:"type"`
	Value   int32  `yaml:"value"`
	Auto    bool   `yaml:"auto"`
}

type scsiDef struct {
	Path   uint8 `yaml:"path"`
	Target uint8 `yaml:"target"`
	Lun    uint8 `yaml:"lun"`
	// Command is a known command name, or empty when CDB is given.
	Command   string `yaml:"command,omitempty"`
	CDB       string `yaml:"cdb,omitempty"`
	Direction string `yaml:"direction,omitempty"`
	Length    int    `yaml:"length,omitempty"`
	Sense     int    `yaml:"sense,omitempty"`
	Timeout   uint32 `yaml:"timeout,omitempty"`
}

type ataDef struct {
	Path    uint8  `yaml:"path"`
	Target  uint8  `yaml:"target"`
	Lun     uint8  `yaml:"lun"`
	Command string `yaml:"command"`
}

type loginDef struct {
	Username       string  `yaml:"username,omitempty"`
	Password       string  `yaml:"password,omitempty"`
	Auth           string  `yaml:"auth,omitempty"`
	HeaderDigest   string  `yaml:"header_digest,omitempty"`
	DataDigest     string  `yaml:"data_digest,omitempty"`
	MaxConnections *uint32 `yaml:"max_connections,omitempty"`
	Multipath      bool    `yaml:"multipath,omitempty"`
}

// encoded is the result of encoding a definition. req is nil for buffers
// that are not sent with a control code of their own.
type encoded struct {
	req     ntioctl.Request
	buf     []byte
	outSize uint32
}

var propertySets = map[string]guid.GUID{
	"general":         ks.KSPROPSETID_General,
	"pin":             ks.KSPROPSETID_Pin,
	"connection":      ks.KSPROPSETID_Connection,
	"topology":        ks.KSPROPSETID_Topology,
	"stream":          ks.KSPROPSETID_Stream,
	"streamallocator": ks.KSPROPSETID_StreamAllocator,
	"clock":           ks.KSPROPSETID_Clock,
	"quality":         ks.KSPROPSETID_Quality,
	"audio":           ks.KSPROPSETID_Audio,
	"cameracontrol":   ks.PROPSETID_VIDCAP_CAMERACONTROL,
	"videoprocamp":    ks.PROPSETID_VIDCAP_VIDEOPROCAMP,
}

var propertyTypes = map[string]uint32{
	"get":            ks.KSPROPERTY_TYPE_GET,
	"set":            ks.KSPROPERTY_TYPE_SET,
	"setsupport":     ks.KSPROPERTY_TYPE_SETSUPPORT,
	"basic-support":  ks.KSPROPERTY_TYPE_BASICSUPPORT,
	"relations":      ks.KSPROPERTY_TYPE_RELATIONS,
	"default-values": ks.KSPROPERTY_TYPE_DEFAULTVALUES,
}

var scsiDirections = map[string]uint8{
	"":     scsi.SCSI_IOCTL_DATA_UNSPECIFIED,
	"none": scsi.SCSI_IOCTL_DATA_UNSPECIFIED,
	"in":   scsi.SCSI_IOCTL_DATA_IN,
	"out":  scsi.SCSI_IOCTL_DATA_OUT,
}

var authTypes = map[string]uint32{
	"none":        iscsi.ISCSI_NO_AUTH_TYPE,
	"chap":        iscsi.ISCSI_CHAP_AUTH_TYPE,
	"mutual-chap": iscsi.ISCSI_MUTUAL_CHAP_AUTH_TYPE,
}

var digestTypes = map[string]uint32{
	"none":   iscsi.ISCSI_DIGEST_TYPE_NONE,
	"crc32c": iscsi.ISCSI_DIGEST_TYPE_CRC32C,
}

func readDefinition(r io.Reader) (*definition, error) {
	def := &definition{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(def)
	if err != nil {
		return nil, fmt.Errorf("Failed to decode definition: %w", err)
	}

	if def.Arch != "" && def.Arch != "native" && def.Arch != "32" {
		return nil, fmt.Errorf("Unknown arch %q", def.Arch)
	}
	return def, nil
}

func getDefinition(fname string) (*definition, error) {
	if fname == "-" {
		return readDefinition(os.Stdin)
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("Failed to open %q: %w", fname, err)
	}
	defer f.Close()

	return readDefinition(f)
}

func (d *definition) compat() bool {
	return d.Arch == "32"
}

func (d *definition) encode() (encoded, error) {
	switch d.Kind {
	case "ks-property":
		if d.Property == nil {
			return encoded{}, fmt.Errorf("Kind %q needs a property section", d.Kind)
		}
		return d.Property.encode()
	case "ks-camera-control":
		if d.Camera == nil {
			return encoded{}, fmt.Errorf("Kind %q needs a camera section", d.Kind)
		}
		return d.Camera.encode()
	case "scsi-pass-through":
		if d.SCSI == nil {
			return encoded{}, fmt.Errorf("Kind %q needs a scsi section", d.Kind)
		}
		return d.SCSI.encode(d.compat())
	case "ata-pass-through":
		if d.ATA == nil {
			return encoded{}, fmt.Errorf("Kind %q needs an ata section", d.Kind)
		}
		return d.ATA.encode(d.compat())
	case "iscsi-login":
		if d.Login == nil {
			return encoded{}, fmt.Errorf("Kind %q needs a login section", d.Kind)
		}
		return d.Login.encode(d.compat())
	}
	return encoded{}, fmt.Errorf("Unknown kind %q", d.Kind)
}

func lookup[V any](m map[string]V, what, key string) (V, error) {
	v, ok := m[strings.ToLower(key)]
	if !ok {
		return v, fmt.Errorf("Unknown %s %q", what, key)
	}
	return v, nil
}

func parseSet(s string) (guid.GUID, error) {
	if g, ok := propertySets[strings.ToLower(s)]; ok {
		return g, nil
	}
	return guid.Parse(s)
}

func requestBuffer(req ntioctl.Request, outSize uint32) (encoded, error) {
	buf, err := req.MarshalBinary()
	if err != nil {
		return encoded{}, err
	}
	return encoded{req: req, buf: buf, outSize: outSize}, nil
}

func (p *propertyDef) encode() (encoded, error) {
	set, err := parseSet(p.Set)
	if err != nil {
		return encoded{}, err
	}
	flags, err := lookup(propertyTypes, "property type", p.Type)
	if err != nil {
		return encoded{}, err
	}
	if p.Pin != nil && p.Node != nil {
		return encoded{}, fmt.Errorf("A property addresses a pin or a node, not both")
	}
	if p.Node != nil {
		flags |= ks.KSPROPERTY_TYPE_TOPOLOGY
	}
	prop := ks.NewIdentifier(set, p.ID, flags)

	var payload []byte
	if p.Value != nil {
		payload = binary.LittleEndian.AppendUint32(nil, *p.Value)
	}

	switch {
	case p.Pin != nil:
		return requestBuffer(ks.NewPinPropertyRequest(prop, *p.Pin, payload), p.OutputSize)
	case p.Node != nil:
		return requestBuffer(ks.NewNodePropertyRequest(prop, *p.Node, payload), p.OutputSize)
	}
	return requestBuffer(ks.NewPropertyRequest(prop, payload), p.OutputSize)
}

func (c *cameraDef) encode() (encoded, error) {
	flags, err := lookup(propertyTypes, "property type", c.Type)
	if err != nil {
		return encoded{}, err
	}

	var v ks.ControlValue
	switch strings.ToLower(c.Control) {
	case "camera":
		mode := ks.KSPROPERTY_CAMERACONTROL_FLAGS_MANUAL
		if c.Auto {
			mode = ks.KSPROPERTY_CAMERACONTROL_FLAGS_AUTO
		}
		v = ks.NewCameraControlRequest(c.ID, flags, c.Value, mode)
	case "procamp":
		mode := ks.KSPROPERTY_VIDEOPROCAMP_FLAGS_MANUAL
		if c.Auto {
			mode = ks.KSPROPERTY_VIDEOPROCAMP_FLAGS_AUTO
		}
		v = ks.NewVideoProcAmpRequest(c.ID, flags, c.Value, mode)
	default:
		return encoded{}, fmt.Errorf("Unknown control %q", c.Control)
	}
	if flags == ks.KSPROPERTY_TYPE_GET {
		v.Value, v.Flags = 0, 0
	}

	return requestBuffer(v.Request(), ks.ControlValueSize)
}

func (s *scsiDef) command() (scsi.Command, error) {
	dir, err := lookup(scsiDirections, "direction", s.Direction)
	if err != nil {
		return scsi.Command{}, err
	}
	cmd := scsi.Command{
		PathID:      s.Path,
		TargetID:    s.Target,
		Lun:         s.Lun,
		Direction:   dir,
		SenseLength: s.Sense,
		Timeout:     s.Timeout,
	}
	if cmd.Timeout == 0 {
		cmd.Timeout = 10
	}

	switch strings.ToLower(s.Command) {
	case "inquiry":
		cdb := scsi.Inquiry(scsi.INQ_REPLY_LEN)
		cmd.CDB = cdb[:]
		cmd.Direction = scsi.SCSI_IOCTL_DATA_IN
		cmd.Data = make([]byte, scsi.INQ_REPLY_LEN)
		return cmd, nil
	case "test-unit-ready":
		cdb := scsi.TestUnitReady()
		cmd.CDB = cdb[:]
		cmd.Direction = scsi.SCSI_IOCTL_DATA_UNSPECIFIED
		return cmd, nil
	case "read-capacity":
		cdb := scsi.ReadCapacity10()
		cmd.CDB = cdb[:]
		cmd.Direction = scsi.SCSI_IOCTL_DATA_IN
		cmd.Data = make([]byte, 8)
		return cmd, nil
	case "":
	default:
		return scsi.Command{}, fmt.Errorf("Unknown scsi command %q", s.Command)
	}

	cmd.CDB, err = hex.DecodeString(strings.ReplaceAll(s.CDB, " ", ""))
	if err != nil {
		return scsi.Command{}, fmt.Errorf("Failed to parse cdb: %w", err)
	}
	if s.Length > 0 {
		cmd.Data = make([]byte, s.Length)
	}
	return cmd, nil
}

func (s *scsiDef) encode(compat bool) (encoded, error) {
	cmd, err := s.command()
	if err != nil {
		return encoded{}, err
	}

	var req scsi.PassThroughRequest
	if compat {
		req, err = scsi.BuildPassThrough[abi.Ptr32](cmd)
	} else {
		req, err = scsi.BuildPassThrough[abi.NativePtr](cmd)
	}
	if err != nil {
		return encoded{}, err
	}
	return requestBuffer(req, req.OutputSize())
}

func (a *ataDef) encode(compat bool) (encoded, error) {
	var cmd scsi.AtaCommand
	switch strings.ToLower(a.Command) {
	case "identify":
		cmd = scsi.IdentifyDevice()
	default:
		return encoded{}, fmt.Errorf("Unknown ata command %q", a.Command)
	}
	cmd.PathID, cmd.TargetID, cmd.Lun = a.Path, a.Target, a.Lun

	var (
		req scsi.AtaPassThroughRequest
		err error
	)
	if compat {
		req, err = scsi.BuildAtaPassThrough[abi.Ptr32](cmd)
	} else {
		req, err = scsi.BuildAtaPassThrough[abi.NativePtr](cmd)
	}
	if err != nil {
		return encoded{}, err
	}
	return requestBuffer(req, req.OutputSize())
}

func (l *loginDef) login() (iscsi.Login, error) {
	login := iscsi.Login{MaximumConnections: l.MaxConnections}
	if l.Multipath {
		login.LoginFlags |= iscsi.ISCSI_LOGIN_FLAG_MULTIPATH_ENABLED
	}
	if l.Auth != "" {
		auth, err := lookup(authTypes, "auth type", l.Auth)
		if err != nil {
			return iscsi.Login{}, err
		}
		login.AuthType = &auth
	}
	if l.HeaderDigest != "" {
		digest, err := lookup(digestTypes, "digest", l.HeaderDigest)
		if err != nil {
			return iscsi.Login{}, err
		}
		login.HeaderDigest = &digest
	}
	if l.DataDigest != "" {
		digest, err := lookup(digestTypes, "digest", l.DataDigest)
		if err != nil {
			return iscsi.Login{}, err
		}
		login.DataDigest = &digest
	}
	if l.Username != "" {
		login.Username = []byte(l.Username)
	}
	if l.Password != "" {
		login.Password = []byte(l.Password)
	}
	return login, nil
}

func (l *loginDef) encode(compat bool) (encoded, error) {
	login, err := l.login()
	if err != nil {
		return encoded{}, err
	}

	var req iscsi.LoginRequest
	if compat {
		req, err = iscsi.BuildLoginRequest[abi.Ptr32](login)
	} else {
		req, err = iscsi.BuildLoginRequest[abi.NativePtr](login)
	}
	if err != nil {
		return encoded{}, err
	}
	return encoded{buf: req.Buffer}, nil
}
