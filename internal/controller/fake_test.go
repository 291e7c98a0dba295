package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/mj1618/gamectl/internal/platform"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakePlatform records every call made through the platform interfaces.
type fakePlatform struct {
	calls []string

	startErr    error
	user        string
	userErr     error
	procs       []platform.Process
	procsErr    error
	owners      map[int]string
	terminateOK map[int]error
	terminated  []int
	timeouts    []time.Duration

	window       platform.WindowHandle
	findErr      error
	foreground   []bool // successive SetForegroundWindow results
	size         platform.Size
	sizeErr      error
	showCommands []platform.ShowCommand

	powerErr map[string]error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		user:        `HOST\alice`,
		owners:      map[int]string{},
		terminateOK: map[int]error{},
		powerErr:    map[string]error{},
	}
}

func (f *fakePlatform) provider() *platform.Provider {
	return &platform.Provider{Processes: f, Windows: f, Power: f}
}

func (f *fakePlatform) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakePlatform) Start(path string) error {
	f.record("start %s", path)
	return f.startErr
}

func (f *fakePlatform) Processes() ([]platform.Process, error) {
	f.record("processes")
	return f.procs, f.procsErr
}

func (f *fakePlatform) Owner(pid int) (string, error) {
	f.record("owner %d", pid)
	owner, ok := f.owners[pid]
	if !ok {
		return "", fmt.Errorf("access denied for %d", pid)
	}
	return owner, nil
}

func (f *fakePlatform) Terminate(pid int, timeout time.Duration) error {
	f.record("terminate %d", pid)
	f.terminated = append(f.terminated, pid)
	f.timeouts = append(f.timeouts, timeout)
	return f.terminateOK[pid]
}

func (f *fakePlatform) CurrentUser() (string, error) {
	return f.user, f.userErr
}

func (f *fakePlatform) FindWindow(class, title string) (platform.WindowHandle, error) {
	f.record("find %s/%s", class, title)
	if f.findErr != nil {
		return 0, f.findErr
	}
	if f.window == 0 {
		return 0, platform.ErrWindowNotFound
	}
	return f.window, nil
}

func (f *fakePlatform) ShowWindow(h platform.WindowHandle, cmd platform.ShowCommand) error {
	f.record("show %s", cmd)
	f.showCommands = append(f.showCommands, cmd)
	return nil
}

func (f *fakePlatform) SetForegroundWindow(h platform.WindowHandle) bool {
	f.record("foreground")
	if len(f.foreground) == 0 {
		return true
	}
	ok := f.foreground[0]
	f.foreground = f.foreground[1:]
	return ok
}

func (f *fakePlatform) ClientSize(h platform.WindowHandle) (platform.Size, error) {
	f.record("size")
	return f.size, f.sizeErr
}

func (f *fakePlatform) Shutdown(ctx context.Context) error {
	f.record("shutdown")
	return f.powerErr["shutdown"]
}

func (f *fakePlatform) Hibernate(ctx context.Context) error {
	f.record("hibernate")
	return f.powerErr["hibernate"]
}

func (f *fakePlatform) Suspend(ctx context.Context) error {
	f.record("suspend")
	return f.powerErr["suspend"]
}

func (f *fakePlatform) SetHibernation(ctx context.Context, enabled bool) error {
	state := "off"
	if enabled {
		state = "on"
	}
	f.record("hibernation %s", state)
	return f.powerErr["hibernation "+state]
}

// windowCalls returns recorded calls that control a window.
func (f *fakePlatform) windowCalls() []string {
	var out []string
	for _, c := range f.calls {
		if len(c) >= 4 && (c[:4] == "show" || c == "foreground") {
			out = append(out, c)
		}
	}
	return out
}

func newObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}
