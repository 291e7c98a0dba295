//go:build windows

package windows

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/mj1618/gamectl/internal/platform"
)

// WindowsPowerManager implements the platform.PowerManager interface using
// the shutdown, powercfg, and rundll32 tools shipped with Windows.
type WindowsPowerManager struct{}

// NewPowerManager creates a new Windows power manager.
func NewPowerManager() *WindowsPowerManager {
	return &WindowsPowerManager{}
}

func (pm *WindowsPowerManager) Shutdown(ctx context.Context) error {
	return run(ctx, "shutdown", "/s", "/t", "0")
}

func (pm *WindowsPowerManager) Hibernate(ctx context.Context) error {
	return run(ctx, "shutdown", "/h")
}

// Suspend requests sleep. With hibernation enabled Windows hibernates
// instead, so callers disable it first via SetHibernation.
func (pm *WindowsPowerManager) Suspend(ctx context.Context) error {
	return run(ctx, "rundll32.exe", "powrprof.dll,SetSuspendState", "0,1,0")
}

func (pm *WindowsPowerManager) SetHibernation(ctx context.Context, enabled bool) error {
	state := "off"
	if enabled {
		state = "on"
	}
	return run(ctx, "powercfg", "-h", state)
}

// run executes a power command. A command that ran but exited nonzero is
// reported as platform.ErrNonZeroExit with its combined output; any other
// error means the command could not be started.
func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s: %w (exit code %d): %s", command, platform.ErrNonZeroExit, exitErr.ExitCode(), strings.TrimSpace(string(out)))
	}
	return fmt.Errorf("failed to start %s: %w", command, err)
}
