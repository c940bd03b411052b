package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/logging"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <environment>",
	Short: "Show the resolved contents of an environment",
	Long: `Print the variables and the combined PATH (and, on Linux,
LD_LIBRARY_PATH) lines of one environment, with variable references
already expanded.`,
	Example: `  # Inspect an environment
  envc info qt5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfoWithWriter(logging.FromContext(cmd.Context()), os.Stdout, args[0])
	},
}

// runInfoWithWriter allows injecting a writer for testing.
func runInfoWithWriter(log *slog.Logger, w io.Writer, name string) error {
	registry, profile, err := buildRegistry(log)
	if err != nil {
		return err
	}

	cfg, ok := registry.Get(name)
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrUnknownEnvironment, "%s", name),
			"Run 'envc list' to see available environments")
	}

	profile.RenderInfo(w, cfg)

	return nil
}
