package platform

import (
	"context"
	"time"
)

// ProcessManager spawns, enumerates, and terminates OS processes.
type ProcessManager interface {
	// Start opens the executable at path through the OS shell and returns
	// without waiting for the new process to initialize.
	Start(path string) error

	// Processes returns every running process visible to the caller.
	Processes() ([]Process, error)

	// Owner returns the account name owning pid, possibly prefixed with a
	// domain ("DOMAIN\user").
	Owner(pid int) (string, error)

	// Terminate signals pid to exit and blocks until it does or timeout elapses.
	Terminate(pid int, timeout time.Duration) error

	// CurrentUser returns the login name of the invoking user.
	CurrentUser() (string, error)
}

// WindowManager looks up and manipulates top-level windows.
type WindowManager interface {
	// FindWindow returns the top-level window with the exact title and,
	// when class is non-empty, the given window class. It returns
	// ErrWindowNotFound when no window matches.
	FindWindow(class, title string) (WindowHandle, error)
	ShowWindow(h WindowHandle, cmd ShowCommand) error
	// SetForegroundWindow reports whether the OS granted foreground focus.
	SetForegroundWindow(h WindowHandle) bool
	ClientSize(h WindowHandle) (Size, error)
}

// PowerManager issues system power-state commands.
type PowerManager interface {
	Shutdown(ctx context.Context) error
	Hibernate(ctx context.Context) error
	Suspend(ctx context.Context) error
	SetHibernation(ctx context.Context, enabled bool) error
}
