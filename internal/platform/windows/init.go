//go:build windows

package windows

import "github.com/mj1618/gamectl/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Processes: NewProcessManager(),
			Windows:   NewWindowManager(),
			Power:     NewPowerManager(),
		}, nil
	}
}
