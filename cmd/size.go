package cmd

import "github.com/spf13/cobra"

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the client size of the application window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "size", nil)
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
