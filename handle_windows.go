//go:build windows

package ntioctl

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Handle is an open device such as \\.\PhysicalDrive0 or a KS filter path.
type Handle struct {
	h  windows.Handle
	mu sync.Mutex
}

// Open opens path for synchronous read/write control requests.
func Open(path string) (*Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &Handle{h: h}, nil
}

func bufPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func (d *Handle) IoControl(code uint32, in []byte, outSize uint32) ([]byte, error) {
	out := make([]byte, outSize)
	n, err := d.IoControlInOut(code, in, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func (d *Handle) IoControlInOut(code uint32, in, out []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.h == windows.InvalidHandle {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	var n uint32
	err := windows.DeviceIoControl(d.h, code,
		bufPtr(in), uint32(len(in)),
		bufPtr(out), uint32(len(out)),
		&n, nil)
	return int(n), err
}

func (d *Handle) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.h == windows.InvalidHandle {
		return nil
	}
	err := windows.CloseHandle(d.h)
	d.h = windows.InvalidHandle
	return err
}
