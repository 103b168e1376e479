package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dforms/dforms-go/pkg/media"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Class string
	File  string
}

// ShowOutput is the resolved view of one class for display.
type ShowOutput struct {
	Class  string         `yaml:"class"`
	Parent string         `yaml:"parent"`
	Own    media.Manifest `yaml:"own,omitempty"`
	Media  media.Manifest `yaml:"media,omitempty"`
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	reg, code := loadRegistry(opts.File, stderr)
	if code != exitSuccess {
		return code
	}

	classes := []string{opts.Class}
	if opts.Class == "" {
		classes = reg.Classes()
		sort.Strings(classes)
	}

	for _, class := range classes {
		def, err := reg.Lookup(class)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		resolved, err := reg.Resolve(class)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitValidation
		}

		parent := def.Parent
		if parent == "" {
			parent = reg.Root()
		}
		output := ShowOutput{
			Class:  class,
			Parent: parent,
			Own:    def.Own(),
			Media:  resolved,
		}
		data, _ := yaml.Marshal(output)
		fmt.Fprint(stdout, string(data))
		if len(classes) > 1 {
			fmt.Fprintln(stdout, "---")
		}
	}

	return exitSuccess
}

func parseShowArgs(args []string) (ShowOptions, error) {
	var opts ShowOptions
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Class, "class", "", "class to show (default: all)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}
