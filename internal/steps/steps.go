// Package steps executes named controller actions from loosely typed
// parameter maps. It backs the batch command, the MCP tools, and the
// single-action CLI commands.
package steps

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mj1618/gamectl/internal/platform"
)

// Controller is the subset of *controller.Controller that steps drive.
type Controller interface {
	Launch() bool
	Terminate() bool
	FocusWindow() bool
	WindowSize() (platform.Size, bool)
	WaitForWindow(ctx context.Context, gone bool, timeout, interval time.Duration) bool
	Shutdown(ctx context.Context, action platform.PowerAction, delay time.Duration) bool
}

// Defaults applied when a parameter is omitted.
const (
	DefaultShutdownDelay = 60 // seconds
	DefaultWaitTimeout   = 30 // seconds
	DefaultWaitInterval  = 500
	DefaultLaunchTimeout = 60 // seconds
)

// StepResult is the outcome of one action.
type StepResult struct {
	Step    int    `yaml:"step,omitempty"   json:"step,omitempty"`
	OK      bool   `yaml:"ok"               json:"ok"`
	Action  string `yaml:"action"           json:"action"`
	Window  string `yaml:"window,omitempty" json:"window,omitempty"`
	Width   int    `yaml:"width,omitempty"  json:"width,omitempty"`
	Height  int    `yaml:"height,omitempty" json:"height,omitempty"`
	Power   string `yaml:"power,omitempty"   json:"power,omitempty"`
	Elapsed string `yaml:"elapsed,omitempty" json:"elapsed,omitempty"`
	Error   string `yaml:"error,omitempty"  json:"error,omitempty"`
}

type executor func(ctx context.Context, c Controller, params map[string]interface{}) (StepResult, error)

var executors = map[string]executor{
	"launch":    executeLaunch,
	"terminate": executeTerminate,
	"focus":     executeFocus,
	"size":      executeSize,
	"wait":      executeWait,
	"sleep":     executeSleep,
	"shutdown":  executeShutdown,
}

// Actions returns the supported action names in sorted order.
func Actions() []string {
	names := make([]string, 0, len(executors))
	for n := range executors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs a single action. The returned result has OK set to whether
// the action succeeded and Error filled from err.
func Execute(ctx context.Context, c Controller, action string, params map[string]interface{}) StepResult {
	exec, ok := executors[action]
	if !ok {
		return StepResult{Action: action, Error: fmt.Sprintf("unknown step type: %q (supported: %v)", action, Actions())}
	}
	result, err := exec(ctx, c, params)
	result.Action = action
	if err != nil {
		result.OK = false
		result.Error = err.Error()
		return result
	}
	result.OK = true
	return result
}

func executeLaunch(ctx context.Context, c Controller, params map[string]interface{}) (StepResult, error) {
	if !c.Launch() {
		return StepResult{}, fmt.Errorf("launch failed")
	}
	if BoolParam(params, "wait", false) {
		timeout := time.Duration(IntParam(params, "timeout", DefaultLaunchTimeout)) * time.Second
		if !c.WaitForWindow(ctx, false, timeout, DefaultWaitInterval*time.Millisecond) {
			return StepResult{}, fmt.Errorf("window did not appear within %s", timeout)
		}
	}
	return StepResult{}, nil
}

func executeTerminate(_ context.Context, c Controller, _ map[string]interface{}) (StepResult, error) {
	if !c.Terminate() {
		return StepResult{}, fmt.Errorf("terminate failed")
	}
	return StepResult{}, nil
}

func executeFocus(_ context.Context, c Controller, _ map[string]interface{}) (StepResult, error) {
	if !c.FocusWindow() {
		return StepResult{}, fmt.Errorf("window not found or could not be focused")
	}
	return StepResult{}, nil
}

func executeSize(_ context.Context, c Controller, _ map[string]interface{}) (StepResult, error) {
	size, ok := c.WindowSize()
	if !ok {
		return StepResult{}, fmt.Errorf("window not found")
	}
	return StepResult{Width: size.Width, Height: size.Height}, nil
}

func executeWait(ctx context.Context, c Controller, params map[string]interface{}) (StepResult, error) {
	gone := BoolParam(params, "gone", false)
	timeout := time.Duration(IntParam(params, "timeout", DefaultWaitTimeout)) * time.Second
	interval := time.Duration(IntParam(params, "interval", DefaultWaitInterval)) * time.Millisecond
	if !c.WaitForWindow(ctx, gone, timeout, interval) {
		if gone {
			return StepResult{}, fmt.Errorf("window still present after %s", timeout)
		}
		return StepResult{}, fmt.Errorf("window did not appear within %s", timeout)
	}
	return StepResult{}, nil
}

func executeSleep(ctx context.Context, _ Controller, params map[string]interface{}) (StepResult, error) {
	ms := IntParam(params, "ms", 0)
	if ms <= 0 {
		return StepResult{}, fmt.Errorf("sleep requires a positive ms")
	}
	t := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer t.Stop()
	select {
	case <-t.C:
		return StepResult{Elapsed: fmt.Sprintf("%dms", ms)}, nil
	case <-ctx.Done():
		return StepResult{}, ctx.Err()
	}
}

func executeShutdown(ctx context.Context, c Controller, params map[string]interface{}) (StepResult, error) {
	action, err := platform.ParsePowerAction(StringParam(params, "power", ""))
	if err != nil {
		return StepResult{}, err
	}
	delay := time.Duration(IntParam(params, "delay", DefaultShutdownDelay)) * time.Second
	if !c.Shutdown(ctx, action, delay) {
		return StepResult{Power: string(action)}, fmt.Errorf("system %s failed", action)
	}
	return StepResult{Power: string(action)}, nil
}
