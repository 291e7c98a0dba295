// Package controller drives a single external desktop application: it
// launches and terminates the application's processes, brings its window to
// the foreground, reports the window size, and issues a delayed power action
// once the application has been stopped.
//
// Every operation reports success as a bool and logs failures to the
// injected Logger; no error escapes a Controller method.
package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mj1618/gamectl/internal/platform"
)

// DefaultTerminateTimeout is how long Terminate waits for each process to exit.
const DefaultTerminateTimeout = 10 * time.Second

// DefaultPollInterval is used by WaitForWindow when no interval is given.
const DefaultPollInterval = 500 * time.Millisecond

// ErrForegroundRefused is reported when the OS declines to move the window to
// the foreground even after the minimize/restore retry.
var ErrForegroundRefused = errors.New("failed to set window foreground")

// Identity binds a Controller to one application.
type Identity struct {
	Path    string // executable path
	Process string // substring matched against running process names
	Window  string // exact window title
	Class   string // optional window class
}

// Controller controls the application described by its Identity.
type Controller struct {
	id               Identity
	processes        platform.ProcessManager
	windows          platform.WindowManager
	power            platform.PowerManager
	log              Logger
	terminateTimeout time.Duration
	sleep            func(ctx context.Context, d time.Duration) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logging sink. A nil logger discards output.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTerminateTimeout overrides DefaultTerminateTimeout.
func WithTerminateTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.terminateTimeout = d
		}
	}
}

// New creates a Controller for id backed by the given platform provider.
func New(id Identity, provider *platform.Provider, opts ...Option) *Controller {
	if id.Path != "" {
		id.Path = filepath.Clean(id.Path)
	}
	c := &Controller{
		id:               id,
		processes:        provider.Processes,
		windows:          provider.Windows,
		power:            provider.Power,
		log:              NopLogger(),
		terminateTimeout: DefaultTerminateTimeout,
		sleep:            sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Identity returns the bound application identity.
func (c *Controller) Identity() Identity {
	return c.id
}

// Launch starts the application through the OS shell. It does not wait for
// the application to initialize.
func (c *Controller) Launch() bool {
	if _, err := os.Stat(c.id.Path); err != nil {
		c.log.Errorf("executable not found: %s", c.id.Path)
		return false
	}
	if err := c.processes.Start(c.id.Path); err != nil {
		c.log.Errorf("failed to launch %s: %v", c.id.Path, err)
		return false
	}
	c.log.Infof("launched %s", c.id.Path)
	return true
}

// Terminate stops every process owned by the current user whose name
// contains the bound process name.
func (c *Controller) Terminate() bool {
	if err := c.terminateNamed(); err != nil {
		c.log.Errorf("failed to terminate %s: %v", c.id.Process, err)
		return false
	}
	c.log.Infof("terminated %s", c.id.Process)
	return true
}

func (c *Controller) terminateNamed() error {
	current, err := c.processes.CurrentUser()
	if err != nil {
		return err
	}
	current = platform.StripDomain(current)

	procs, err := c.processes.Processes()
	if err != nil {
		return err
	}
	for _, p := range procs {
		if !strings.Contains(p.Name, c.id.Process) {
			continue
		}
		owner, err := c.processes.Owner(p.PID)
		if err != nil {
			return err
		}
		if platform.StripDomain(owner) != current {
			continue
		}
		c.log.Debugf("terminating %s (pid %d)", p.Name, p.PID)
		if err := c.processes.Terminate(p.PID, c.terminateTimeout); err != nil {
			return err
		}
	}
	return nil
}

// FocusWindow restores the application window and brings it to the foreground.
func (c *Controller) FocusWindow() bool {
	h, ok := c.findWindow()
	if !ok {
		return false
	}
	if err := c.setForeground(h); err != nil {
		c.log.Errorf("failed to focus window %q: %v", c.id.Window, err)
		return false
	}
	c.log.Infof("window %q brought to foreground", c.id.Window)
	return true
}

// setForeground restores h and requests focus. Focus-stealing prevention
// can refuse the first request; a minimize/restore cycle usually clears it.
func (c *Controller) setForeground(h platform.WindowHandle) error {
	if err := c.windows.ShowWindow(h, platform.ShowRestore); err != nil {
		return err
	}
	if c.windows.SetForegroundWindow(h) {
		return nil
	}
	c.log.Debugf("foreground request refused, cycling window state")
	if err := c.windows.ShowWindow(h, platform.ShowMinimize); err != nil {
		return err
	}
	if err := c.windows.ShowWindow(h, platform.ShowRestore); err != nil {
		return err
	}
	if c.windows.SetForegroundWindow(h) {
		return nil
	}
	return ErrForegroundRefused
}

// WindowSize returns the client area of the application window. ok is false
// when the window does not exist or its geometry cannot be read.
func (c *Controller) WindowSize() (size platform.Size, ok bool) {
	h, ok := c.findWindow()
	if !ok {
		return platform.Size{}, false
	}
	size, err := c.windows.ClientSize(h)
	if err != nil {
		c.log.Debugf("window %q not found: %v", c.id.Window, err)
		return platform.Size{}, false
	}
	return size, true
}

func (c *Controller) findWindow() (platform.WindowHandle, bool) {
	h, err := c.windows.FindWindow(c.id.Class, c.id.Window)
	if err == nil {
		return h, true
	}
	if errors.Is(err, platform.ErrWindowNotFound) {
		c.log.Debugf("window %q not found", c.id.Window)
	} else {
		c.log.Errorf("failed to look up window %q: %v", c.id.Window, err)
	}
	return 0, false
}

// WaitForWindow polls until the window exists (or, with gone, no longer
// exists). It returns false if timeout elapses or ctx is cancelled first.
func (c *Controller) WaitForWindow(ctx context.Context, gone bool, timeout, interval time.Duration) bool {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		if _, found := c.WindowSize(); found != gone {
			return true
		}
		if err := c.sleep(ctx, interval); err != nil {
			c.log.Debugf("gave up waiting for window %q: %v", c.id.Window, err)
			return false
		}
	}
}

// Shutdown terminates the application and then, after delay, performs the
// power action. Exit and Loop only terminate. The result reports whether the
// power command was dispatched, not whether the machine changed state.
func (c *Controller) Shutdown(ctx context.Context, action platform.PowerAction, delay time.Duration) bool {
	c.Terminate()
	if action.IsNoop() {
		return true
	}

	c.log.Warnf("system %s in %s", strings.ToLower(string(action)), delay)
	if err := c.sleep(ctx, delay); err != nil {
		c.log.Errorf("system %s cancelled: %v", strings.ToLower(string(action)), err)
		return false
	}

	if err := c.dispatch(ctx, action); err != nil {
		c.log.Errorf("failed to perform system %s: %v", strings.ToLower(string(action)), err)
		return false
	}
	c.log.Infof("system %s issued", strings.ToLower(string(action)))
	return true
}

func (c *Controller) dispatch(ctx context.Context, action platform.PowerAction) error {
	switch action {
	case platform.ActionShutdown:
		return c.issued(c.power.Shutdown(ctx))
	case platform.ActionHibernate:
		return c.issued(c.power.Hibernate(ctx))
	case platform.ActionSleep:
		// Suspend hibernates while hibernation is on. All three steps are
		// issued regardless of how the previous one went.
		return errors.Join(
			c.issued(c.power.SetHibernation(ctx, false)),
			c.issued(c.power.Suspend(ctx)),
			c.issued(c.power.SetHibernation(ctx, true)),
		)
	}
	return nil
}

// issued filters a power command result: a command that ran but exited
// nonzero was still dispatched, so it is only logged.
func (c *Controller) issued(err error) error {
	if errors.Is(err, platform.ErrNonZeroExit) {
		c.log.Warnf("%v", err)
		return nil
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
