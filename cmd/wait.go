package cmd

import (
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the application window to appear or disappear",
	Long: `Poll for the application window until it exists, or until it no longer
exists with --gone. Fails when the timeout elapses first.`,
	Args: cobra.NoArgs,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().Bool("gone", false, "Wait until the window is NO LONGER present")
	waitCmd.Flags().Int("timeout", steps.DefaultWaitTimeout, "Max seconds to wait")
	waitCmd.Flags().Int("interval", steps.DefaultWaitInterval, "Polling interval in milliseconds")
}

func runWait(cmd *cobra.Command, args []string) error {
	gone, _ := cmd.Flags().GetBool("gone")
	timeout, _ := cmd.Flags().GetInt("timeout")
	interval, _ := cmd.Flags().GetInt("interval")
	return runAction(cmd, "wait", map[string]interface{}{
		"gone":     gone,
		"timeout":  timeout,
		"interval": interval,
	})
}
