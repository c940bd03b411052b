package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/logging"
	"github.com/thoreinstein/envc/internal/paths"
	"github.com/thoreinstein/envc/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new environment file",
	Long: `Create <config-dir>/<name>.json with an empty environment skeleton,
creating the configuration directory if needed.

Variable values may reference other variables ($OTHER or ${OTHER});
references are resolved against the file's own variables first and the
process environment second.`,
	Example: `  # Create ~/.envconf/qt5.json
  envc init qt5

  # Overwrite an existing definition
  envc init qt5 --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitWithWriter(logging.FromContext(cmd.Context()), os.Stdout, args[0])
	},
}

// runInitWithWriter allows injecting a writer for testing.
func runInitWithWriter(log *slog.Logger, w io.Writer, name string) error {
	profile, err := resolveProfile()
	if err != nil {
		return err
	}

	dir, err := envDir(profile)
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.NewSystemError(
			errors.Wrapf(err, "creating %s", dir),
			"Check directory permissions")
	}

	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"Pass --force to overwrite it")
	}

	skeleton := &envfile.Config{
		Name:      name,
		Path:      []string{},
		Lib:       []string{},
		Variables: map[string]string{},
	}
	if err := fileutil.AtomicWriteJSON(path, skeleton); err != nil {
		return errors.NewSystemError(err, "Check directory permissions")
	}

	log.Debug("environment file created", "file", path)
	fmt.Fprintf(w, "Created %s\n", path)

	return nil
}
