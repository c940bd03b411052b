package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/envc/internal/config"
	"github.com/thoreinstein/envc/internal/errors"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective application configuration",
	Long: `Print the envc application configuration (config directory, shell and
editor overrides) after merging the config file, environment variables
and defaults.`,
	Example: `  envc config`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConfigWithWriter(os.Stdout)
	},
}

// runConfigWithWriter allows injecting a writer for testing.
func runConfigWithWriter(w io.Writer) error {
	cfg := appCfg
	if cfg == nil {
		cfg = &config.Config{}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	_, err = w.Write(data)
	return err
}
