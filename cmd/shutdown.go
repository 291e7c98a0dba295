package cmd

import (
	"github.com/mj1618/gamectl/internal/platform"
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/spf13/cobra"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown <exit|loop|shutdown|sleep|hibernate>",
	Short: "Terminate the application, then power off the machine",
	Long: `Terminate the application, wait --delay seconds, then shut down, sleep, or
hibernate the machine. exit and loop only terminate the application.

Sleep temporarily disables hibernation, which would otherwise take precedence.
Press Ctrl+C during the delay to cancel the power action.

Examples:
  gamectl shutdown exit
  gamectl shutdown sleep --delay 120`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"exit", "loop", "shutdown", "sleep", "hibernate"},
	RunE:      runShutdown,
}

func init() {
	rootCmd.AddCommand(shutdownCmd)
	shutdownCmd.Flags().Int("delay", steps.DefaultShutdownDelay, "Seconds to wait before the power action")
}

func runShutdown(cmd *cobra.Command, args []string) error {
	// Reject typos before anything is terminated.
	if _, err := platform.ParsePowerAction(args[0]); err != nil {
		return err
	}
	delay, _ := cmd.Flags().GetInt("delay")
	return runAction(cmd, "shutdown", map[string]interface{}{"power": args[0], "delay": delay})
}
