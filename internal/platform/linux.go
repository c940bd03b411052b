package platform

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/errors"
)

// defaultUnixShell is spawned by the Linux launcher unless overridden via
// application config.
const defaultUnixShell = "bash"

var linuxProfile = &Profile{
	Name:       "linux",
	ListSep:    ":",
	PathSep:    "/",
	Editors:    []string{"xed", "mcedit", "nano", "vi"},
	Home:       linuxHome,
	RenderInfo: renderLinuxInfo,
	Script:     linuxScript,
	Apply:      applyLinux,
}

func linuxHome() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.Wrap(errors.ErrHomeNotFound, "HOME is not set")
	}
	return home, nil
}

// renderLinuxInfo prints one KEY=VALUE line per variable followed by the
// combined PATH and LD_LIBRARY_PATH lines.
//
// The stray ')' at the end of the PATH line reproduces the historical output
// format; scripts that parse this output depend on it.
func renderLinuxInfo(w io.Writer, cfg *envfile.Config) {
	for _, key := range cfg.VarNames() {
		fmt.Fprintf(w, "%s=%s\n", key, cfg.Variables[key])
	}
	fmt.Fprintf(w, "PATH=%s:$PATH)\n", strings.Join(cfg.Path, ":"))
	fmt.Fprintf(w, "LD_LIBRARY_PATH=%s:$LD_LIBRARY_PATH\n", strings.Join(cfg.Lib, ":"))
}

// linuxScript renders the rcfile sourced by the subshell: a red prompt
// embedding the environment name, one assignment per variable and the
// PATH/LD_LIBRARY_PATH prepends.
func linuxScript(cfg *envfile.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "PS1='\\e[0;31m(%s)> \\e[m'\n", cfg.Name)
	for _, key := range cfg.VarNames() {
		fmt.Fprintf(&buf, "%s=%s\n", key, cfg.Variables[key])
	}
	fmt.Fprintf(&buf, "PATH=%s:$PATH\n", strings.Join(cfg.Path, ":"))
	fmt.Fprintf(&buf, "LD_LIBRARY_PATH=%s:$LD_LIBRARY_PATH\n", strings.Join(cfg.Lib, ":"))
	return buf.Bytes()
}

// applyLinux writes the rcfile to a unique temp path, spawns an interactive
// shell reading it, blocks until the shell exits and removes the file
// afterwards.
func applyLinux(log *slog.Logger, opts ApplyOptions, cfg *envfile.Config) error {
	shell := opts.Shell
	if shell == "" {
		shell = defaultUnixShell
	}

	rc, err := os.CreateTemp("", "envc-rc-*.sh")
	if err != nil {
		return errors.Wrap(err, "creating rcfile")
	}
	rcName := rc.Name()
	defer os.Remove(rcName)

	if _, err := rc.Write(linuxScript(cfg)); err != nil {
		rc.Close()
		return errors.Wrap(err, "writing rcfile")
	}
	if err := rc.Close(); err != nil {
		return errors.Wrap(err, "closing rcfile")
	}

	log.Debug("spawning subshell", "shell", shell, "rcfile", rcName, "environment", cfg.Name)

	cmd := exec.Command(shell, "--rcfile", rcName)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Blocks until the user exits the subshell.
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", shell)
	}

	log.Debug("subshell exited", "environment", cfg.Name)

	return nil
}
