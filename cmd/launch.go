package cmd

import (
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch the application",
	Long: `Launch the application executable through the Windows shell.

The command returns as soon as the process is spawned. Use --wait to block
until the application window appears.`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().Bool("wait", false, "Wait for the application window to appear")
	launchCmd.Flags().Int("timeout", steps.DefaultLaunchTimeout, "Max seconds to wait for the window (used with --wait)")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	wait, _ := cmd.Flags().GetBool("wait")
	timeout, _ := cmd.Flags().GetInt("timeout")
	return runAction(cmd, "launch", map[string]interface{}{"wait": wait, "timeout": timeout})
}
