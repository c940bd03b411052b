package commands

import (
	"log/slog"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/platform"
)

// resolveProfile returns the platform profile for the running host.
func resolveProfile() (*platform.Profile, error) {
	p, err := platform.Current()
	if err != nil {
		return nil, errors.NewUserError(err, "envc supports Linux and Windows hosts")
	}
	return p, nil
}

// envDir resolves the environment-file directory: the -c/--config flag wins,
// then the config_dir setting from the application config, then the
// platform default <home>/.envconf.
func envDir(p *platform.Profile) (string, error) {
	if configDirFlag != "" {
		return configDirFlag, nil
	}
	if appCfg != nil && appCfg.ConfigDir != "" {
		return appCfg.ConfigDir, nil
	}

	dir, err := p.DefaultConfigDir()
	if err != nil {
		return "", errors.NewSystemError(err, "Set HOME (or HOMEDRIVE/HOMEPATH) or pass --config")
	}
	return dir, nil
}

// buildRegistry resolves the profile and environment directory and scans it.
func buildRegistry(log *slog.Logger) (*envfile.Registry, *platform.Profile, error) {
	profile, err := resolveProfile()
	if err != nil {
		return nil, nil, err
	}

	dir, err := envDir(profile)
	if err != nil {
		return nil, nil, err
	}

	registry, err := envfile.LoadDir(log, dir)
	if err != nil {
		if errors.Is(err, errors.ErrConfigDirNotFound) {
			return nil, nil, errors.NewUserError(err,
				"Create the directory or point --config at your environment files")
		}
		return nil, nil, errors.NewSystemError(err, "Check directory permissions")
	}

	return registry, profile, nil
}

// shellOverride returns the configured shell override, if any.
func shellOverride() string {
	if appCfg != nil {
		return appCfg.Shell
	}
	return ""
}

// editorOverride returns the configured editor override, if any.
func editorOverride() string {
	if appCfg != nil {
		return appCfg.Editor
	}
	return ""
}
