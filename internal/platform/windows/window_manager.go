//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"github.com/mj1618/gamectl/internal/platform"
)

// WindowsWindowManager implements the platform.WindowManager interface.
type WindowsWindowManager struct{}

// NewWindowManager creates a new Windows window manager.
func NewWindowManager() *WindowsWindowManager {
	return &WindowsWindowManager{}
}

func (wm *WindowsWindowManager) FindWindow(class, title string) (platform.WindowHandle, error) {
	cClass, err := utf16PtrOrNil(class)
	if err != nil {
		return 0, fmt.Errorf("invalid window class %q: %w", class, err)
	}
	cTitle, err := utf16PtrOrNil(title)
	if err != nil {
		return 0, fmt.Errorf("invalid window title %q: %w", title, err)
	}
	ret, _, _ := procFindWindowW.Call(
		uintptr(unsafe.Pointer(cClass)),
		uintptr(unsafe.Pointer(cTitle)),
	)
	if ret == 0 {
		return 0, fmt.Errorf("%w: title %q class %q", platform.ErrWindowNotFound, title, class)
	}
	return platform.WindowHandle(ret), nil
}

// ShowWindow returns the previous visibility, which is not an error, so only
// a failure to load user32 is reported.
func (wm *WindowsWindowManager) ShowWindow(h platform.WindowHandle, cmd platform.ShowCommand) error {
	if err := procShowWindow.Find(); err != nil {
		return err
	}
	procShowWindow.Call(uintptr(h), uintptr(cmd))
	return nil
}

func (wm *WindowsWindowManager) SetForegroundWindow(h platform.WindowHandle) bool {
	ret, _, _ := procSetForegroundWindow.Call(uintptr(h))
	return ret != 0
}

func (wm *WindowsWindowManager) ClientSize(h platform.WindowHandle) (platform.Size, error) {
	var r rect
	ret, _, err := procGetClientRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return platform.Size{}, fmt.Errorf("GetClientRect: %w", err)
	}
	return platform.Size{
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, nil
}
