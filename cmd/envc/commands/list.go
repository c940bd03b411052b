package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/envc/internal/logging"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all discovered environments",
	Long: `List the names of every environment found in the configuration
directory, one per line, in sorted order.`,
	Example: `  # List environments
  envc list

  # List environments from a specific directory
  envc list --config /opt/envs

  # Output as JSON
  envc list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListWithWriter(logging.FromContext(cmd.Context()), os.Stdout)
	},
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(log *slog.Logger, w io.Writer) error {
	registry, _, err := buildRegistry(log)
	if err != nil {
		return err
	}

	names := registry.Names()

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	for _, name := range names {
		fmt.Fprintln(w, name)
	}

	return nil
}
