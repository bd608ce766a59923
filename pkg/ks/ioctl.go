package ks

import "github.com/kevmo314/go-ntioctl/pkg/ctlcode"

// KS control codes from ks.h. All of them use METHOD_NEITHER: the identifier
// travels in the input buffer and the member data in the output buffer.
const (
	IOCTL_KS_PROPERTY      ctlcode.Code = 0x002F0003
	IOCTL_KS_ENABLE_EVENT  ctlcode.Code = 0x002F0007
	IOCTL_KS_DISABLE_EVENT ctlcode.Code = 0x002F000B
	IOCTL_KS_METHOD        ctlcode.Code = 0x002F000F
	IOCTL_KS_WRITE_STREAM  ctlcode.Code = 0x002F8013
	IOCTL_KS_READ_STREAM   ctlcode.Code = 0x002F4017
	IOCTL_KS_RESET_STATE   ctlcode.Code = 0x002F001B
	IOCTL_KS_HANDSHAKE     ctlcode.Code = 0x002F001F
)

// Codes lists the KS control codes by header name.
var Codes = ctlcode.Table{
	{Name: "IOCTL_KS_PROPERTY", Code: IOCTL_KS_PROPERTY},
	{Name: "IOCTL_KS_ENABLE_EVENT", Code: IOCTL_KS_ENABLE_EVENT},
	{Name: "IOCTL_KS_DISABLE_EVENT", Code: IOCTL_KS_DISABLE_EVENT},
	{Name: "IOCTL_KS_METHOD", Code: IOCTL_KS_METHOD},
	{Name: "IOCTL_KS_WRITE_STREAM", Code: IOCTL_KS_WRITE_STREAM},
	{Name: "IOCTL_KS_READ_STREAM", Code: IOCTL_KS_READ_STREAM},
	{Name: "IOCTL_KS_RESET_STATE", Code: IOCTL_KS_RESET_STATE},
	{Name: "IOCTL_KS_HANDSHAKE", Code: IOCTL_KS_HANDSHAKE},
}

// KSRESET values for IOCTL_KS_RESET_STATE.
const (
	KSRESET_BEGIN uint32 = 0
	KSRESET_END   uint32 = 1
)
