//go:build !windows

package ntioctl

// Handle is only backed by a device on Windows.
type Handle struct{}

func Open(path string) (*Handle, error) {
	return nil, ErrUnsupportedPlatform
}

func (d *Handle) IoControl(code uint32, in []byte, outSize uint32) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}

func (d *Handle) IoControlInOut(code uint32, in, out []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (d *Handle) Close() error {
	return nil
}
