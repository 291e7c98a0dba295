//go:build windows

package windows

import (
	"fmt"
	"os/user"
	"path/filepath"
	"time"

	"github.com/mj1618/gamectl/internal/platform"
	"github.com/shirou/gopsutil/process"
	w32 "golang.org/x/sys/windows"
)

const (
	swShowNormal = 1
	waitObject0  = 0x00000000
	waitTimeout  = 0x00000102
)

// WindowsProcessManager implements the platform.ProcessManager interface.
type WindowsProcessManager struct{}

// NewProcessManager creates a new Windows process manager.
func NewProcessManager() *WindowsProcessManager {
	return &WindowsProcessManager{}
}

// Start opens path with the shell "open" verb, using the executable's
// directory as the working directory.
func (pm *WindowsProcessManager) Start(path string) error {
	verb, err := w32.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := w32.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	dir, err := w32.UTF16PtrFromString(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("invalid directory for %q: %w", path, err)
	}
	if err := w32.ShellExecute(0, verb, file, nil, dir, swShowNormal); err != nil {
		return fmt.Errorf("ShellExecute %q: %w", path, err)
	}
	return nil
}

func (pm *WindowsProcessManager) Processes() ([]platform.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	result := make([]platform.Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Exited or inaccessible between listing and query.
			continue
		}
		result = append(result, platform.Process{PID: int(p.Pid), Name: name})
	}
	return result, nil
}

func (pm *WindowsProcessManager) Owner(pid int) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	name, err := p.Username()
	if err != nil {
		return "", fmt.Errorf("failed to resolve owner of process %d: %w", pid, err)
	}
	return name, nil
}

func (pm *WindowsProcessManager) Terminate(pid int, timeout time.Duration) error {
	h, err := w32.OpenProcess(w32.PROCESS_TERMINATE|w32.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("OpenProcess %d: %w", pid, err)
	}
	defer w32.CloseHandle(h)

	if err := w32.TerminateProcess(h, 1); err != nil {
		return fmt.Errorf("TerminateProcess %d: %w", pid, err)
	}

	event, err := w32.WaitForSingleObject(h, uint32(timeout.Milliseconds()))
	if err != nil {
		return fmt.Errorf("WaitForSingleObject %d: %w", pid, err)
	}
	switch event {
	case waitObject0:
		return nil
	case waitTimeout:
		return fmt.Errorf("process %d did not exit within %s", pid, timeout)
	default:
		return fmt.Errorf("unexpected wait result 0x%x for process %d", event, pid)
	}
}

func (pm *WindowsProcessManager) CurrentUser() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	return u.Username, nil
}
