package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/dforms/dforms-go/pkg/media"
)

// RunTree runs the tree command.
func RunTree(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	reg, code := loadRegistry(fs.Arg(0), stderr)
	if code != exitSuccess {
		return code
	}
	if problems := reg.Validate(); len(problems) > 0 {
		fmt.Fprintf(stderr, "Error: invalid hierarchy: %s\n", problems[0])
		return exitValidation
	}

	WriteTree(stdout, reg)
	return exitSuccess
}

// WriteTree renders the class hierarchy under the root as an indented
// tree.
func WriteTree(w io.Writer, reg *media.Registry) {
	fmt.Fprintln(w, reg.Root())
	writeSubtree(w, reg, reg.Root(), "")
}

func writeSubtree(w io.Writer, reg *media.Registry, parent, prefix string) {
	children := reg.Children(parent)
	for i, child := range children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child)
		writeSubtree(w, reg, child, childPrefix)
	}
}
