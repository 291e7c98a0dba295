package cmd

import "github.com/spf13/cobra"

var terminateCmd = &cobra.Command{
	Use:     "terminate",
	Aliases: []string{"stop"},
	Short:   "Terminate the application",
	Long: `Terminate every process owned by the current user whose name contains the
profile's process name, waiting up to 10 seconds for each to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "terminate", nil)
	},
}

func init() {
	rootCmd.AddCommand(terminateCmd)
}
