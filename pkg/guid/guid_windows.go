//go:build windows

package guid

import "golang.org/x/sys/windows"

// Windows returns g as the x/sys/windows GUID type, for callers passing set
// identifiers to Win32 APIs such as SetupDiGetClassDevs.
func (g GUID) Windows() windows.GUID {
	return windows.GUID{
		Data1: g.Data1,
		Data2: g.Data2,
		Data3: g.Data3,
		Data4: g.Data4,
	}
}

func FromWindows(w windows.GUID) GUID {
	return GUID{
		Data1: w.Data1,
		Data2: w.Data2,
		Data3: w.Data3,
		Data4: w.Data4,
	}
}
