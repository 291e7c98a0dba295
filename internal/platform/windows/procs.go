//go:build windows

package windows

import w32 "golang.org/x/sys/windows"

var (
	user32 = w32.NewLazySystemDLL("user32.dll")

	procFindWindowW         = user32.NewProc("FindWindowW")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procGetClientRect       = user32.NewProc("GetClientRect")
)

// rect mirrors the Win32 RECT structure.
type rect struct {
	Left, Top, Right, Bottom int32
}

// utf16PtrOrNil returns nil for the empty string so FindWindowW treats the
// argument as "any".
func utf16PtrOrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return w32.UTF16PtrFromString(s)
}
