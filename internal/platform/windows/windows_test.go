//go:build windows

package windows

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/gamectl/internal/platform"
)

func TestFindWindow_NotFound(t *testing.T) {
	wm := NewWindowManager()
	_, err := wm.FindWindow("", "gamectl test window that does not exist 7f3a")
	if !errors.Is(err, platform.ErrWindowNotFound) {
		t.Fatalf("expected ErrWindowNotFound, got %v", err)
	}
}

func TestProcesses_IncludesSelf(t *testing.T) {
	pm := NewProcessManager()
	procs, err := pm.Processes()
	if err != nil {
		t.Fatal(err)
	}
	self := strings.ToLower(filepath.Base(os.Args[0]))
	for _, p := range procs {
		if p.PID == os.Getpid() {
			if !strings.EqualFold(p.Name, self) {
				t.Logf("own process name %q differs from %q", p.Name, self)
			}
			return
		}
	}
	t.Errorf("own pid %d not found among %d processes", os.Getpid(), len(procs))
}

func TestOwner_MatchesCurrentUser(t *testing.T) {
	pm := NewProcessManager()
	current, err := pm.CurrentUser()
	if err != nil {
		t.Fatal(err)
	}
	owner, err := pm.Owner(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if platform.StripDomain(owner) != platform.StripDomain(current) {
		t.Errorf("owner %q does not match current user %q", owner, current)
	}
}

func TestStart_MissingFile(t *testing.T) {
	pm := NewProcessManager()
	if err := pm.Start(filepath.Join(t.TempDir(), "missing.exe")); err == nil {
		t.Error("expected ShellExecute to fail for a missing file")
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	err := run(context.Background(), "cmd", "/C", "echo denied & exit 3")
	if !errors.Is(err, platform.ErrNonZeroExit) {
		t.Fatalf("expected ErrNonZeroExit, got %v", err)
	}
	if !strings.Contains(err.Error(), "exit code 3") || !strings.Contains(err.Error(), "denied") {
		t.Errorf("error should carry exit code and output: %v", err)
	}
}

func TestRun_StartFailure(t *testing.T) {
	err := run(context.Background(), "gamectl-no-such-command-7f3a.exe")
	if err == nil || errors.Is(err, platform.ErrNonZeroExit) {
		t.Fatalf("expected a start failure, got %v", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound, got %v", err)
	}
}
