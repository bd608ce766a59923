package ks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtypeFromFourCC(t *testing.T) {
	assert.Equal(t, KSDATAFORMAT_SUBTYPE_YUY2, SubtypeFromFourCC("YUY2"))
	assert.Equal(t, KSDATAFORMAT_SUBTYPE_NV12, SubtypeFromFourCC("NV12"))
	assert.Equal(t, KSDATAFORMAT_SUBTYPE_MJPG, SubtypeFromFourCC("MJPG"))
	assert.Equal(t, "{3032344D-0000-0010-8000-00AA00389B71}", KSDATAFORMAT_SUBTYPE_M420.String())
	assert.Equal(t, "{30323449-0000-0010-8000-00AA00389B71}", KSDATAFORMAT_SUBTYPE_I420.String())
}

func TestFourCC(t *testing.T) {
	code, ok := FourCC(KSDATAFORMAT_SUBTYPE_YUY2)
	assert.True(t, ok)
	assert.Equal(t, "YUY2", code)

	// PCM is 0x00000001 on the same base and has no printable code.
	_, ok = FourCC(KSDATAFORMAT_SUBTYPE_PCM)
	assert.False(t, ok)

	_, ok = FourCC(KSDATAFORMAT_SPECIFIER_NONE)
	assert.False(t, ok)
}
