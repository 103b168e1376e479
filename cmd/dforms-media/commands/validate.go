package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	reg, code := loadRegistry(fs.Arg(0), stderr)
	if code != exitSuccess {
		return code
	}

	problems := reg.Validate()
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(stdout, "FAIL %s\n", p)
		}
		fmt.Fprintf(stdout, "%d problem(s) found\n", len(problems))
		return exitValidation
	}

	fmt.Fprintf(stdout, "OK: %d classes under root %q\n", reg.Count(), reg.Root())
	return exitSuccess
}
