// Package paths centralizes filesystem locations used by the envc CLI.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for config file naming.
const AppName = "envc"

// EnvDirName is the default environment-file directory, relative to the
// user's home directory.
const EnvDirName = ".envconf"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory holding the application's own
// configuration file (not the environment files).
// Returns: <ConfigHome>/envc/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
