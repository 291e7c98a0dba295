package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/gamectl/internal/config"
	"github.com/mj1618/gamectl/internal/controller"
	"github.com/mj1618/gamectl/internal/output"
	"github.com/mj1618/gamectl/internal/platform"
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/spf13/cobra"
)

// profileFlags reads the identity override flags.
func profileFlags(cmd *cobra.Command) config.Profile {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("path")
	process, _ := flags.GetString("process")
	window, _ := flags.GetString("window")
	class, _ := flags.GetString("class")
	return config.Profile{Path: path, Process: process, Window: window, Class: class}
}

// resolveProfile loads the profile file and applies overrides. A missing file
// is tolerated unless the user pointed at it explicitly or asked for a
// named profile.
func resolveProfile(configPath, profileName string, explicitConfig bool, override config.Profile) (config.Profile, error) {
	var p config.Profile

	f, err := config.Load(configPath)
	switch {
	case err == nil:
		p, err = f.Resolve(profileName)
		if err != nil && !(errors.Is(err, config.ErrNoProfile) && override.Validate() == nil) {
			return config.Profile{}, fmt.Errorf("%s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicitConfig && profileName == "":
		// flags only
	default:
		return config.Profile{}, fmt.Errorf("failed to load config: %w", err)
	}

	p = p.Merge(override)
	if err := p.Validate(); err != nil {
		return config.Profile{}, err
	}
	return p, nil
}

// newController builds a Controller for the selected profile on the current
// platform.
func newController(cmd *cobra.Command) (*controller.Controller, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, _ := flags.GetString("config")
	profileName, _ := flags.GetString("profile")
	explicit := flags.Changed("config") || os.Getenv("GAMECTL_CONFIG") != ""

	p, err := resolveProfile(configPath, profileName, explicit, profileFlags(cmd))
	if err != nil {
		return nil, err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	id := controller.Identity{Path: p.Path, Process: p.Process, Window: p.Window, Class: p.Class}
	return controller.New(id, provider, controller.WithLogger(logger.Sugar())), nil
}

// runAction executes a single step against the selected profile, prints the
// result, and fails the command when the step failed.
func runAction(cmd *cobra.Command, action string, params map[string]interface{}) error {
	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	result := steps.Execute(cmd.Context(), ctrl, action, params)
	if action == "focus" || action == "size" || action == "wait" {
		result.Window = ctrl.Identity().Window
	}
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("%s: %s", action, result.Error)
	}
	return nil
}
