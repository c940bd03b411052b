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
	"github.com/thoreinstein/envc/pkg/fileutil"
)

// applyScriptName is the fixed batch-file name written into the user's home
// directory by the Windows launcher. Its content format is part of the
// observable contract for anyone scripting around the tool.
const applyScriptName = "__apply_environment.bat"

var windowsProfile = &Profile{
	Name:       "windows",
	ListSep:    ";",
	PathSep:    "\\",
	Editors:    []string{"notepad.exe"},
	Home:       windowsHome,
	RenderInfo: renderWindowsInfo,
	Script:     windowsScript,
	Apply:      applyWindows,
}

func windowsHome() (string, error) {
	home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	if home == "" {
		return "", errors.Wrap(errors.ErrHomeNotFound, "HOMEDRIVE/HOMEPATH are not set")
	}
	return home, nil
}

// renderWindowsInfo prints one KEY=VALUE line per variable followed by the
// combined PATH line. There is no LD_LIBRARY_PATH on Windows.
//
// The historical output joined entries with ';' but placed ':' before
// %PATH%; the separator is now ';' throughout (see DESIGN.md).
func renderWindowsInfo(w io.Writer, cfg *envfile.Config) {
	for _, key := range cfg.VarNames() {
		fmt.Fprintf(w, "%s=%s\n", key, cfg.Variables[key])
	}
	fmt.Fprintf(w, "PATH=%s;%%PATH%%\n", strings.Join(cfg.Path, ";"))
}

// windowsScript renders the batch file: prompt preservation, one `set` per
// variable, the PATH prepend and a final `cmd /k` that rewrites the prompt
// to embed the environment name and keeps the window open.
func windowsScript(cfg *envfile.Config) []byte {
	var buf bytes.Buffer
	buf.WriteString("@echo off\n")
	buf.WriteString("if not defined PROMPT set PROMPT=$P$G\n")
	buf.WriteString("if not defined __ENV_OLD_PROMPT__ set __ENV_OLD_PROMPT__=%PROMPT%\n")
	for _, key := range cfg.VarNames() {
		fmt.Fprintf(&buf, "set %s=%s\n", key, cfg.Variables[key])
	}
	fmt.Fprintf(&buf, "set PATH=%s;%%PATH%%\n", strings.Join(cfg.Path, ";"))
	fmt.Fprintf(&buf, "@cmd /k \"set PROMPT=[%s] %%__ENV_OLD_PROMPT__%%\"", cfg.Name)
	return buf.Bytes()
}

// applyWindows writes the batch file into the user's home directory, runs it
// and blocks until the spawned command shell exits. The file is left in
// place, matching the historical behavior of the fixed, well-known name.
func applyWindows(log *slog.Logger, opts ApplyOptions, cfg *envfile.Config) error {
	batPath := opts.Home + "\\" + applyScriptName

	if err := fileutil.AtomicWriteFile(batPath, windowsScript(cfg), 0644); err != nil {
		return errors.Wrap(err, "writing batch file")
	}

	log.Debug("spawning command shell", "script", batPath, "environment", cfg.Name)

	cmd := exec.Command(batPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", applyScriptName)
	}

	log.Debug("command shell exited", "environment", cfg.Name)

	return nil
}
