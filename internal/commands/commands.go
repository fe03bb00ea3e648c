// Package commands is the console command registry: each command owns a
// flag.FlagSet and a Run function. The console parses every submitted line
// as a command (there is no chat mode).
package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the
// remaining positional arguments.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command. name is the first token of a console line
// (e.g. "depth"); usage is a one-line help string shown by "help".
// run is called after fs.Parse succeeds with the positional args.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse tokenizes a console line into command arguments by whitespace.
// An empty or whitespace-only line yields nil.
func Parse(line string) []string {
	return strings.Fields(line)
}

// Execute runs the command in args[0] with args[1:] as flag/positional
// arguments. Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (try \"help\")", name)
	}
	if cmd.FlagSet != nil {
		if err := cmd.FlagSet.Parse(args[1:]); err != nil {
			return err
		}
		return cmd.Run(cmd.FlagSet.Args())
	}
	return cmd.Run(args[1:])
}

// Usages returns one "name - usage" line per registered command, sorted by name.
func (r *Registry) Usages() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+" - "+r.cmds[name].Usage)
	}
	return out
}
