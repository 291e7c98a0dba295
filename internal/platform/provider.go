package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Processes ProcessManager
	Windows   WindowManager
	Power     PowerManager
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("gamectl is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// ErrWindowNotFound is returned when no window matches a lookup.
var ErrWindowNotFound = errors.New("window not found")

// ErrNonZeroExit wraps a system command that started but exited with a
// nonzero status. The command was still dispatched.
var ErrNonZeroExit = errors.New("command exited with nonzero status")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
