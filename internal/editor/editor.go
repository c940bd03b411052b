// Package editor provides utilities for launching the user's preferred text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/thoreinstein/envc/internal/errors"
)

// Open launches an editor for the given path and blocks until it exits.
//
// The editor is chosen in order: the explicit override (application config),
// $EDITOR, $VISUAL, then the first entry of the platform fallback chain
// found on PATH. The last fallback is used even when not found, so the
// failure surfaces as a normal exec error.
func Open(path, override string, fallbacks []string) error {
	editorCmd := detect(override, fallbacks)
	if editorCmd == "" {
		return errors.New("no editor available")
	}

	fmt.Printf("Location: %s\n", path)

	cmd := exec.Command(editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}

	return nil
}

// detect returns the editor command to use.
// Chain: override -> $EDITOR -> $VISUAL -> platform fallbacks.
func detect(override string, fallbacks []string) string {
	if override != "" {
		return override
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, candidate := range fallbacks {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}

	if len(fallbacks) > 0 {
		return fallbacks[len(fallbacks)-1]
	}
	return ""
}
