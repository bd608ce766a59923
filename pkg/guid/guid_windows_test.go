//go:build windows

package guid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestWindowsRoundTrip(t *testing.T) {
	w, err := windows.GUIDFromString("{1464EDA5-6A8F-11D1-9AA7-00A0C9223196}")
	require.NoError(t, err)

	g := FromWindows(w)
	require.Equal(t, MustParse("1464eda5-6a8f-11d1-9aa7-00a0c9223196"), g)
	require.Equal(t, w, g.Windows())
}
