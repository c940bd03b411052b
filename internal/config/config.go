// Package config provides application-level configuration for envc using Viper.
//
// This is the tool's own configuration (where to find environment files,
// which shell and editor to prefer), not the environment files themselves;
// those are handled by the envfile package.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// ConfigDir overrides the directory scanned for environment files.
	// Empty means the platform default (<home>/.envconf).
	ConfigDir string `mapstructure:"config_dir" yaml:"config_dir"`

	// Shell overrides the shell spawned by the load action on Unix.
	// Empty means bash.
	Shell string `mapstructure:"shell" yaml:"shell"`

	// Editor overrides the editor used by the edit action. Empty means
	// $EDITOR/$VISUAL followed by the platform fallback chain.
	Editor string `mapstructure:"editor" yaml:"editor"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support: ENVC_CONFIG_DIR, ENVC_SHELL, ...
	viper.SetEnvPrefix("ENVC")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("config_dir", "")
	viper.SetDefault("shell", "")
	viper.SetDefault("editor", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An implicit load with no file present falls back to defaults;
			// an explicit path that does not resolve is an error.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
