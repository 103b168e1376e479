// dforms-media is a CLI tool for inspecting form media declarations.
package main

import (
	"fmt"
	"os"

	"github.com/dforms/dforms-go/cmd/dforms-media/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "tree":
		exitCode = commands.RunTree(args, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "snapshot":
		exitCode = commands.RunSnapshot(args, os.Stdout, os.Stderr)
	case "diff":
		exitCode = commands.RunDiff(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = runShell(args)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("dforms-media version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`dforms-media - form media declaration inspector

Usage:
  dforms-media <command> [options] <declaration.yaml>

Commands:
  show       Display the merged media manifest of a class
  tree       Display the class hierarchy as a tree
  validate   Check a declaration file for hierarchy problems
  snapshot   Write the resolved manifests to a snapshot file
  diff       Compare two snapshot files
  shell      Explore a declaration file interactively

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  dforms-media show -class datepicker widgets.yaml
  dforms-media tree widgets.yaml
  dforms-media snapshot -o media.snapshot widgets.yaml
  dforms-media diff old.snapshot new.snapshot`)
}
