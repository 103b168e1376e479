// Package interactive provides the interactive shell for dforms-media.
package interactive

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"gopkg.in/yaml.v3"

	"github.com/dforms/dforms-go/cmd/dforms-media/commands"
	"github.com/dforms/dforms-go/pkg/media"
)

// Session handles the interactive shell over one loaded declaration.
type Session struct {
	reg    *media.Registry
	rl     *readline.Instance
	logger *slog.Logger

	// Instances created during the session, keyed by short handle.
	instances map[string]*media.Instance
}

// New creates a new interactive session for the registry.
func New(reg *media.Registry, logger *slog.Logger) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "media> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Session{
		reg:       reg,
		rl:        rl,
		logger:    logger,
		instances: make(map[string]*media.Instance),
	}, nil
}

// Close releases the readline instance.
func (s *Session) Close() error {
	return s.rl.Close()
}

// Run starts the interactive command loop. It returns when the user
// exits or input is closed.
func (s *Session) Run() {
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			s.logger.Error("readline failed", "err", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "ls":
			s.cmdList()

		case "tree", "t":
			commands.WriteTree(s.rl.Stdout(), s.reg)

		case "show", "s":
			s.cmdShow(args)

		case "new", "n":
			s.cmdNew(args)

		case "media", "m":
			s.cmdMedia(args)

		case "validate", "v":
			s.cmdValidate()

		case "exit", "quit", "q":
			return

		default:
			fmt.Fprintf(s.rl.Stderr(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  ls                 List registered classes
  tree, t            Show the class hierarchy
  show, s <class>    Show a class's own and merged media
  new, n <class>     Create an instance of a class
  media, m <handle>  Read an instance's (memoized) media
  validate, v        Check the hierarchy
  help, ?            Show this help
  exit, quit, q      Leave the shell
`)
}

func (s *Session) cmdList() {
	classes := s.reg.Classes()
	sort.Strings(classes)
	for _, name := range classes {
		fmt.Fprintln(s.rl.Stdout(), name)
	}
}

func (s *Session) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stderr(), "Usage: show <class>")
		return
	}
	def, err := s.reg.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		return
	}
	resolved, err := s.reg.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		return
	}
	s.printYAML(map[string]any{
		"own":   map[string]any(def.Own()),
		"media": map[string]any(resolved),
	})
}

func (s *Session) cmdNew(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stderr(), "Usage: new <class>")
		return
	}
	in, err := s.reg.NewInstance(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		return
	}
	handle := fmt.Sprintf("%s#%d", in.Class(), len(s.instances)+1)
	s.instances[handle] = in
	s.logger.Debug("instance created", "handle", handle, "id", in.ID())
	fmt.Fprintf(s.rl.Stdout(), "%s (id %s)\n", handle, in.ID())
}

func (s *Session) cmdMedia(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stderr(), "Usage: media <handle>")
		return
	}
	in, ok := s.instances[args[0]]
	if !ok {
		fmt.Fprintf(s.rl.Stderr(), "Unknown instance handle: %s\n", args[0])
		return
	}
	manifest, err := in.Media()
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		return
	}
	s.printYAML(map[string]any(manifest))
}

func (s *Session) cmdValidate() {
	problems := s.reg.Validate()
	if len(problems) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "OK")
		return
	}
	for _, p := range problems {
		fmt.Fprintf(s.rl.Stdout(), "FAIL %s\n", p)
	}
}

func (s *Session) printYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.rl.Stdout(), string(data))
}
