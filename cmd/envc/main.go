// Package main is the entry point for the envc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/envc/cmd/envc/commands"
	"github.com/thoreinstein/envc/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		// A nil underlying error means the command already reported the
		// failure; only the exit code remains.
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Error())
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(errors.ExitUser)
}
