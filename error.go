package ntioctl

import "github.com/pkg/errors"

var (
	ErrNilDevice           = errors.New("nil device")
	ErrUnsupportedPlatform = errors.New("device handles are only available on windows")
)
