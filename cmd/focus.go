package cmd

import "github.com/spf13/cobra"

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring the application window to the foreground",
	Long: `Restore the application window and make it the foreground window.

If Windows refuses the focus change, the window is minimized and restored once
before retrying.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "focus", nil)
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
