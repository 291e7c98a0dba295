package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mj1618/gamectl/internal/config"
	"github.com/mj1618/gamectl/internal/logging"
	"github.com/mj1618/gamectl/internal/output"
	"github.com/mj1618/gamectl/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is built by the root command before any subcommand runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "gamectl",
	Short: "Launch, focus, and stop a desktop application, then power off",
	Long: `Control a single desktop application (typically a game) on Windows:
launch it, terminate it, bring its window to the foreground, read its window
size, and shut down, sleep, or hibernate the machine once it has been stopped.

The application is described by a profile in the config file, or by the
--path, --process, --window, and --class flags.`,
	SilenceUsage: true,
}

// Execute runs the root command. Ctrl+C cancels a pending power action.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	configDefault := os.Getenv("GAMECTL_CONFIG")
	if configDefault == "" {
		configDefault = config.DefaultPath()
	}
	pf := rootCmd.PersistentFlags()
	pf.String("config", configDefault, "Profile file (env GAMECTL_CONFIG)")
	pf.String("profile", os.Getenv("GAMECTL_PROFILE"), "Profile name (env GAMECTL_PROFILE; default: the file's default profile)")
	pf.String("path", "", "Executable path (overrides profile)")
	pf.String("process", "", "Process name substring (overrides profile)")
	pf.String("window", "", "Exact window title (overrides profile)")
	pf.String("class", "", "Window class (overrides profile)")
	pf.String("format", "yaml", "Output format: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON output")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		l, err := logging.New(level, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		return nil
	}
}
