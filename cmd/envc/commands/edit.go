package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/envc/internal/editor"
	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/logging"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <environment>",
	Short: "Open an environment file in your editor",
	Long: `Open the JSON file backing an environment in an editor.

The editor is chosen from the 'editor' setting in the envc config, then
$EDITOR, then $VISUAL, then a platform fallback chain.`,
	Example: `  # Edit an environment definition
  envc edit qt5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0])
	},
}

func runEdit(cmd *cobra.Command, name string) error {
	log := logging.FromContext(cmd.Context())

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

	if err := editor.Open(cfg.File, editorOverride(), profile.Editors); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to a working editor")
	}

	return nil
}
