package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mj1618/gamectl/internal/output"
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/spf13/cobra"
)

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple actions in a batch",
	Long: `Execute a sequence of actions from a YAML list on stdin (or --file).

Each step is an action name with its parameters as a map. Steps execute
sequentially, and by default execution stops on the first error.

Supported step types: launch, terminate, focus, size, wait, sleep, shutdown

Example:
  gamectl do <<'EOF'
  - launch: { wait: true, timeout: 90 }
  - sleep: { ms: 5000 }
  - focus: {}
  - size: {}
  EOF`,
	Args: cobra.NoArgs,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().String("file", "", "Read steps from this file instead of stdin")
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := readSteps(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}
	batch, err := steps.ParseBatch(data)
	if err != nil {
		return err
	}

	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	result := steps.RunBatch(cmd.Context(), ctrl, batch, stopOnError)
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("batch failed: %d of %d steps completed", result.Completed, result.Steps)
	}
	return nil
}

func readSteps(stdin io.Reader, file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided on stdin; pipe a YAML list of actions or use --file")
	}
	return data, nil
}
