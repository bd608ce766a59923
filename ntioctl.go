// Package ntioctl hands encoded request buffers to an NT device through
// DeviceIoControl-style dispatch.
//
// The request packages under pkg/ only build and parse buffers. A Device is
// the transport boundary: Handle implements it on Windows, tests and other
// platforms supply their own.
package ntioctl

import (
	"encoding"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kevmo314/go-ntioctl/pkg/ctlcode"
)

// Device sends one control request and returns what the driver wrote to the
// output buffer.
type Device interface {
	IoControl(code uint32, in []byte, outSize uint32) ([]byte, error)
}

// InOutDevice is a Device that also accepts a caller-filled output buffer.
// METHOD_NEITHER requests such as KS property sets read their data from the
// output buffer.
type InOutDevice interface {
	Device
	IoControlInOut(code uint32, in, out []byte) (int, error)
}

// Request is an encoded request and the control code it is sent with.
type Request interface {
	ControlCode() ctlcode.Code
	encoding.BinaryMarshaler
}

// Splitter is implemented by requests whose data travels in the output
// buffer, like ks.Request.
type Splitter interface {
	Split() (in, out []byte)
}

type rawRequest struct {
	code    ctlcode.Code
	payload []byte
}

func (r rawRequest) ControlCode() ctlcode.Code {
	return r.code
}

func (r rawRequest) MarshalBinary() ([]byte, error) {
	return r.payload, nil
}

// NewRequest wraps a buffer built elsewhere.
func NewRequest(code ctlcode.Code, payload []byte) Request {
	return rawRequest{code: code, payload: payload}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// Dispatcher sends requests to one device and logs each exchange at debug
// level. It adds no locking of its own.
type Dispatcher struct {
	dev Device
	log logrus.FieldLogger
}

// NewDispatcher returns a Dispatcher for dev. A nil logger discards output.
func NewDispatcher(dev Device, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = discardLogger()
	}
	return &Dispatcher{dev: dev, log: log}
}

// Dispatch sends req to dev with an output buffer of outSize bytes.
func Dispatch(dev Device, req Request, outSize uint32) ([]byte, error) {
	return NewDispatcher(dev, nil).Dispatch(req, outSize)
}

// Dispatch marshals req and hands it to the device. Requests implementing
// Splitter are sent with their payload in the output buffer when the device
// supports it. Transport errors are wrapped with the control code.
func (d *Dispatcher) Dispatch(req Request, outSize uint32) ([]byte, error) {
	if d.dev == nil {
		return nil, ErrNilDevice
	}
	code := req.ControlCode()

	var (
		in, out []byte
		err     error
	)
	if s, ok := req.(Splitter); ok {
		if dev, ok := d.dev.(InOutDevice); ok {
			in, out, err = d.dispatchInOut(dev, code, s, outSize)
			return d.done(code, in, out, err)
		}
	}

	in, err = req.MarshalBinary()
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", code)
	}
	out, err = d.dev.IoControl(uint32(code), in, outSize)
	return d.done(code, in, out, err)
}

func (d *Dispatcher) dispatchInOut(dev InOutDevice, code ctlcode.Code, s Splitter, outSize uint32) ([]byte, []byte, error) {
	in, payload := s.Split()
	size := max(int(outSize), len(payload))
	out := make([]byte, size)
	copy(out, payload)
	n, err := dev.IoControlInOut(uint32(code), in, out)
	if err != nil {
		return in, nil, err
	}
	return in, out[:n], nil
}

func (d *Dispatcher) done(code ctlcode.Code, in, out []byte, err error) ([]byte, error) {
	entry := d.log.WithFields(logrus.Fields{
		"code": code.String(),
		"in":   len(in),
		"out":  len(out),
	})
	if err != nil {
		entry.WithError(err).Debug("ioctl failed")
		return nil, errors.Wrapf(err, "ioctl %s", code)
	}
	entry.Debug("ioctl")
	return out, nil
}
