package platform

import (
	"fmt"
	"strings"
)

// Process is a single entry of the OS process table.
type Process struct {
	PID  int    `yaml:"pid"  json:"pid"`
	Name string `yaml:"name" json:"name"`
}

// WindowHandle is an opaque top-level window handle (HWND on Windows).
type WindowHandle uintptr

// ShowCommand is a window show state passed to ShowWindow.
type ShowCommand int

const (
	ShowMinimize ShowCommand = 6
	ShowRestore  ShowCommand = 9
)

func (c ShowCommand) String() string {
	switch c {
	case ShowMinimize:
		return "minimize"
	case ShowRestore:
		return "restore"
	default:
		return fmt.Sprintf("show(%d)", int(c))
	}
}

// Size is a window client area in pixels.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// PowerAction is what happens to the machine after the application is stopped.
type PowerAction string

const (
	ActionExit      PowerAction = "Exit"
	ActionLoop      PowerAction = "Loop"
	ActionShutdown  PowerAction = "Shutdown"
	ActionSleep     PowerAction = "Sleep"
	ActionHibernate PowerAction = "Hibernate"
)

var powerActions = []PowerAction{ActionExit, ActionLoop, ActionShutdown, ActionSleep, ActionHibernate}

// ParsePowerAction converts a flag value to a PowerAction, ignoring case.
func ParsePowerAction(s string) (PowerAction, error) {
	for _, a := range powerActions {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown power action: %q (expected exit, loop, shutdown, sleep, or hibernate)", s)
}

// IsNoop reports whether the action leaves the machine running.
func (a PowerAction) IsNoop() bool {
	switch a {
	case ActionShutdown, ActionSleep, ActionHibernate:
		return false
	default:
		return true
	}
}

// StripDomain returns the account part of a "DOMAIN\user" name.
func StripDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
