package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dforms/dforms-go/pkg/media"
)

// RunSnapshot runs the snapshot command: it resolves every class in a
// declaration file and writes the result as canonical CBOR.
func RunSnapshot(args []string, stdout, stderr io.Writer) int {
	var out string
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&out, "o", "media.snapshot", "output snapshot file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	reg, code := loadRegistry(fs.Arg(0), stderr)
	if code != exitSuccess {
		return code
	}

	if err := media.WriteSnapshotFile(reg, out); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	fmt.Fprintf(stdout, "wrote %d resolved classes to %s\n", reg.Count(), out)
	return exitSuccess
}

// RunDiff runs the diff command over two snapshot files written by the
// snapshot command. The first file is the baseline.
func RunDiff(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Error: diff needs exactly two snapshot files")
		return exitCommandError
	}

	oldSnap, err := media.ReadSnapshotFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	newSnap, err := media.ReadSnapshotFile(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	changes := media.DiffSnapshots(oldSnap, newSnap)
	if len(changes) == 0 {
		fmt.Fprintln(stdout, "no changes")
		return exitSuccess
	}
	for _, c := range changes {
		fmt.Fprintln(stdout, c)
	}
	fmt.Fprintf(stdout, "%d change(s)\n", len(changes))
	return exitValidation
}
