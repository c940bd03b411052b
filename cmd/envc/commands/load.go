package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/logging"
	"github.com/thoreinstein/envc/internal/platform"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [environment]",
	Short: "Launch an interactive subshell with an environment applied",
	Long: `Spawn an interactive subshell with the environment's variables set,
its path entries prepended to PATH (and, on Linux, its lib entries
prepended to LD_LIBRARY_PATH) and a prompt embedding the environment
name. envc blocks until the subshell exits.

With no argument the environment is picked interactively.`,
	Example: `  # Load an environment by name
  envc load qt5

  # Pick one interactively
  envc load`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runLoadWithWriter(logging.FromContext(cmd.Context()), os.Stdout, name)
	},
}

// runLoadWithWriter allows injecting a writer for testing. An empty name
// triggers the interactive picker.
func runLoadWithWriter(log *slog.Logger, w io.Writer, name string) error {
	registry, profile, err := buildRegistry(log)
	if err != nil {
		return err
	}

	if name == "" {
		name, err = pickEnvironment(registry)
		if err != nil {
			return err
		}
		if name == "" {
			// Selection aborted.
			return nil
		}
	}

	cfg, ok := registry.Get(name)
	if !ok {
		// Historical UX: a red diagnostic followed by every known name,
		// and no file writes or subprocess spawns.
		color.New(color.FgRed).Fprintf(w, "Unknown environment name: %s\n", name)
		for _, known := range registry.Names() {
			fmt.Fprintln(w, known)
		}
		return errors.NewExitError(nil, errors.ExitUser)
	}

	home, err := profile.Home()
	if err != nil {
		return errors.NewSystemError(err, "Set HOME (or HOMEDRIVE/HOMEPATH) and retry")
	}

	opts := platform.ApplyOptions{
		Home:  home,
		Shell: shellOverride(),
	}
	if err := profile.Apply(log, opts, cfg); err != nil {
		return errors.NewSystemError(err, "Check that the shell is installed and on PATH")
	}

	return nil
}

// pickEnvironment runs the interactive fuzzy finder over all known names.
// Returns an empty name when the user aborts.
func pickEnvironment(registry *envfile.Registry) (string, error) {
	names := registry.Names()
	if len(names) == 0 {
		return "", errors.NewUserError(
			errors.New("no environments found"),
			"Run 'envc init <name>' to create one")
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			cfg, _ := registry.Get(names[i])
			return previewEnvironment(cfg)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return names[idx], nil
}

// previewEnvironment renders a short summary for the finder's preview pane.
func previewEnvironment(cfg *envfile.Config) string {
	if cfg == nil {
		return ""
	}
	out := "Name: " + cfg.Name + "\n\nVariables:\n"
	for _, key := range cfg.VarNames() {
		out += "  " + key + "=" + cfg.Variables[key] + "\n"
	}
	out += "\nPath entries:\n"
	for _, p := range cfg.Path {
		out += "  " + p + "\n"
	}
	out += "\nLib entries:\n"
	for _, l := range cfg.Lib {
		out += "  " + l + "\n"
	}
	return out
}
