package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dforms/dforms-go/cmd/dforms-media/interactive"
	"github.com/dforms/dforms-go/pkg/media"
)

// runShell loads a declaration file and hands control to the
// interactive session.
func runShell(args []string) int {
	var verbose bool
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dforms-media shell [-verbose] <declaration.yaml>")
		return exitCommandError
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg, err := media.LoadYAMLFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitValidation
	}
	if problems := reg.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "FAIL %s\n", p)
		}
		return exitValidation
	}
	logger.Debug("declaration loaded", "file", fs.Arg(0), "classes", reg.Count())

	session, err := interactive.New(reg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer session.Close()

	session.Run()
	return exitSuccess
}
