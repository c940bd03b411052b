package platform

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/paths"
)

// ApplyOptions carries the per-run inputs for launching a subshell.
type ApplyOptions struct {
	// Home is the resolved home directory of the user.
	Home string

	// Shell overrides the shell executable on Unix profiles. Empty means
	// the profile default.
	Shell string
}

// Profile bundles the OS-specific behaviors selected once per run: path
// conventions, the info renderer, the init-script generator and the shell
// launcher.
//
// Both profiles are compiled on every platform so tests can exercise either;
// only Apply touches the host system.
type Profile struct {
	// Name is the profile identifier ("linux" or "windows").
	Name string

	// ListSep separates entries when joining PATH-style lists.
	ListSep string

	// PathSep separates path components in file names.
	PathSep string

	// Editors is the fallback chain of editor executables for the edit
	// action, tried in order after $EDITOR and $VISUAL.
	Editors []string

	// Home resolves the user's home directory from the environment.
	Home func() (string, error)

	// RenderInfo writes the resolved environment in the profile's display
	// format.
	RenderInfo func(w io.Writer, cfg *envfile.Config)

	// Script produces the shell-initialization artifact content for cfg.
	Script func(cfg *envfile.Config) []byte

	// Apply writes the init artifact and spawns an interactive shell,
	// blocking until the user exits it.
	Apply func(log *slog.Logger, opts ApplyOptions, cfg *envfile.Config) error
}

// DefaultConfigDir returns <home><sep>.envconf for the profile.
func (p *Profile) DefaultConfigDir() (string, error) {
	home, err := p.Home()
	if err != nil {
		return "", err
	}
	return home + p.PathSep + paths.EnvDirName, nil
}

var profiles = map[string]*Profile{
	"linux":   linuxProfile,
	"windows": windowsProfile,
}

// Lookup returns the profile for the given GOOS identifier.
// Only "linux" and "windows" are recognized; anything else yields
// ErrUnknownPlatform, which is fatal to the run.
func Lookup(goos string) (*Profile, error) {
	p, ok := profiles[goos]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownPlatform, "%s", goos)
	}
	return p, nil
}

// Current returns the profile for the running operating system.
func Current() (*Profile, error) {
	return Lookup(runtime.GOOS)
}
