// Package commands implements the dforms-media subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/dforms/dforms-go/pkg/media"
)

// Exit codes shared by all subcommands.
const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// loadRegistry parses the declaration file named by the last positional
// argument, reporting usage problems on stderr.
func loadRegistry(file string, stderr io.Writer) (*media.Registry, int) {
	if file == "" {
		fmt.Fprintln(stderr, "Error: no declaration file specified")
		return nil, exitCommandError
	}
	reg, err := media.LoadYAMLFile(file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, exitValidation
	}
	return reg, exitSuccess
}
