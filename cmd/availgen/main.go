// Package main runs availgen and turns the returned error into a
// process exit code, printing the suggestion when one is attached.
package main

import (
	"fmt"
	"os"

	"github.com/availgen/availgen/cmd/availgen/commands"
	"github.com/availgen/availgen/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.ExitUser)
}
