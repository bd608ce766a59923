package iscsi

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kevmo314/go-ntioctl/pkg/abi"
)

// loginHeaderSize is the size of LoginOptionsHeader.
const loginHeaderSize = 44

// LoginOptionsHeader is the part of ISCSI_LOGIN_OPTIONS before the username
// and password references.
type LoginOptionsHeader struct {
	Version              uint32
	InformationSpecified uint32
	LoginFlags           uint32
	AuthType             uint32
	HeaderDigest         uint32
	DataDigest           uint32
	MaximumConnections   uint32
	DefaultTime2Wait     uint32
	DefaultTime2Retain   uint32
	UsernameLength       uint32
	PasswordLength       uint32
}

func (h LoginOptionsHeader) MarshalTo(e *abi.Encoder) {
	e.Named("Version").PutUint32(h.Version)
	e.Named("InformationSpecified").PutUint32(h.InformationSpecified)
	e.Named("LoginFlags").PutUint32(h.LoginFlags)
	e.Named("AuthType").PutUint32(h.AuthType)
	e.Named("HeaderDigest").PutUint32(h.HeaderDigest)
	e.Named("DataDigest").PutUint32(h.DataDigest)
	e.Named("MaximumConnections").PutUint32(h.MaximumConnections)
	e.Named("DefaultTime2Wait").PutUint32(h.DefaultTime2Wait)
	e.Named("DefaultTime2Retain").PutUint32(h.DefaultTime2Retain)
	e.Named("UsernameLength").PutUint32(h.UsernameLength)
	e.Named("PasswordLength").PutUint32(h.PasswordLength)
}

// LoginOptionsOf maps to the `ISCSI_LOGIN_OPTIONS` C struct. Username and
// Password are pointers in the native form and byte offsets from the start
// of the structure in the framed form BuildLoginRequest produces.
type LoginOptionsOf[R abi.Ref] struct {
	LoginOptionsHeader
	Username R
	Password R
}

// LoginOptions is ISCSI_LOGIN_OPTIONS as laid out by the current process.
type LoginOptions = LoginOptionsOf[abi.NativePtr]

// LoginOptions32 is ISCSI_LOGIN_OPTIONS as laid out by a 32-bit process.
type LoginOptions32 = LoginOptionsOf[abi.Ptr32]

func (o LoginOptionsOf[R]) MarshalTo(e *abi.Encoder) {
	o.LoginOptionsHeader.MarshalTo(e)
	abi.PutRef(e.Named("Username"), o.Username)
	abi.PutRef(e.Named("Password"), o.Password)
}

func (o LoginOptionsOf[R]) MarshalBinary() ([]byte, error) {
	e := abi.NewEncoder(LoginOptionsSize[R]())
	o.MarshalTo(e)
	return e.Finish(), nil
}

func (o *LoginOptionsOf[R]) UnmarshalBinary(buf []byte) error {
	if len(buf) < LoginOptionsSize[R]() {
		return io.ErrShortBuffer
	}
	d := abi.NewDecoder(buf)
	o.Version = d.Uint32()
	o.InformationSpecified = d.Uint32()
	o.LoginFlags = d.Uint32()
	o.AuthType = d.Uint32()
	o.HeaderDigest = d.Uint32()
	o.DataDigest = d.Uint32()
	o.MaximumConnections = d.Uint32()
	o.DefaultTime2Wait = d.Uint32()
	o.DefaultTime2Retain = d.Uint32()
	o.UsernameLength = d.Uint32()
	o.PasswordLength = d.Uint32()
	o.Username = abi.GetRef[R](d)
	o.Password = abi.GetRef[R](d)
	return d.Err()
}

// LoginOptionsSize is the wire size of ISCSI_LOGIN_OPTIONS with references of
// width R: 64 with 8-byte references, 52 with 4-byte ones.
func LoginOptionsSize[R abi.Ref]() int {
	ref := abi.SizeOfRef[R]()
	return abi.AlignUp(abi.AlignUp(loginHeaderSize, ref)+2*ref, ref)
}

// Login holds the options of a target login. Nil fields are left
// unspecified so the initiator applies its defaults.
type Login struct {
	LoginFlags         uint32
	AuthType           *uint32
	HeaderDigest       *uint32
	DataDigest         *uint32
	MaximumConnections *uint32
	DefaultTime2Wait   *uint32
	DefaultTime2Retain *uint32
	Username           []byte
	Password           []byte
}

func (l Login) validate() error {
	if len(l.Username) > MAX_ISCSI_NAME_LEN {
		return errors.Wrapf(ErrNameTooLong, "username of %d bytes", len(l.Username))
	}
	if l.AuthType == nil || *l.AuthType == ISCSI_NO_AUTH_TYPE || l.Password == nil {
		return nil
	}
	if len(l.Password) > MaxChapSecretLength {
		return errors.Wrapf(ErrSecretTooLong, "%d bytes", len(l.Password))
	}
	if len(l.Password) < MinChapSecretLength {
		return errors.Wrapf(ErrSecretTooShort, "%d bytes", len(l.Password))
	}
	return nil
}

func (l Login) header() LoginOptionsHeader {
	h := LoginOptionsHeader{Version: ISCSI_LOGIN_OPTIONS_VERSION, LoginFlags: l.LoginFlags}
	set := func(bit uint32, dst *uint32, v *uint32) {
		if v != nil {
			h.InformationSpecified |= bit
			*dst = *v
		}
	}
	set(ISCSI_LOGIN_OPTIONS_AUTH_TYPE, &h.AuthType, l.AuthType)
	set(ISCSI_LOGIN_OPTIONS_HEADER_DIGEST, &h.HeaderDigest, l.HeaderDigest)
	set(ISCSI_LOGIN_OPTIONS_DATA_DIGEST, &h.DataDigest, l.DataDigest)
	set(ISCSI_LOGIN_OPTIONS_MAXIMUM_CONNECTIONS, &h.MaximumConnections, l.MaximumConnections)
	set(ISCSI_LOGIN_OPTIONS_DEFAULT_TIME_2_WAIT, &h.DefaultTime2Wait, l.DefaultTime2Wait)
	set(ISCSI_LOGIN_OPTIONS_DEFAULT_TIME_2_RETAIN, &h.DefaultTime2Retain, l.DefaultTime2Retain)
	if l.Username != nil {
		h.InformationSpecified |= ISCSI_LOGIN_OPTIONS_USERNAME
		h.UsernameLength = uint32(len(l.Username))
	}
	if l.Password != nil {
		h.InformationSpecified |= ISCSI_LOGIN_OPTIONS_PASSWORD
		h.PasswordLength = uint32(len(l.Password))
	}
	return h
}

// LoginRequest is an ISCSI_LOGIN_OPTIONS structure followed by the username
// and password it refers to.
type LoginRequest struct {
	Buffer []byte
}

func (r LoginRequest) MarshalBinary() ([]byte, error) {
	return r.Buffer, nil
}

// BuildLoginRequest lays out l in the form selected by R with the username
// and password appended after the structure and referenced by offset. Absent
// strings have a zero offset.
func BuildLoginRequest[R abi.Ref](l Login) (LoginRequest, error) {
	if err := l.validate(); err != nil {
		return LoginRequest{}, err
	}

	size := LoginOptionsSize[R]()
	o := LoginOptionsOf[R]{LoginOptionsHeader: l.header()}
	off := size
	if l.Username != nil {
		o.Username = R(off)
		off += len(l.Username)
	}
	if l.Password != nil {
		o.Password = R(off)
		off += len(l.Password)
	}

	e := abi.NewEncoder(off)
	o.MarshalTo(e)
	e.PutBytes(l.Username)
	e.PutBytes(l.Password)
	return LoginRequest{Buffer: e.Bytes()}, nil
}

// ParseLoginRequest reverses BuildLoginRequest.
func ParseLoginRequest[R abi.Ref](buf []byte) (LoginOptionsOf[R], []byte, []byte, error) {
	var o LoginOptionsOf[R]
	if err := o.UnmarshalBinary(buf); err != nil {
		return o, nil, nil, err
	}
	field := func(off R, n uint32) ([]byte, error) {
		if off == 0 {
			return nil, nil
		}
		end := uint64(off) + uint64(n)
		if end > uint64(len(buf)) {
			return nil, errors.Wrapf(io.ErrShortBuffer, "%d bytes at offset %d", n, off)
		}
		return buf[uint64(off):end], nil
	}
	user, err := field(o.Username, o.UsernameLength)
	if err != nil {
		return o, nil, nil, err
	}
	pass, err := field(o.Password, o.PasswordLength)
	return o, user, pass, err
}
