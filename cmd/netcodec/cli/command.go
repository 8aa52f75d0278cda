// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is a CLI command or command group.
type Command struct {
	// Name is the command name as typed by the user.
	Name string

	// Summary is the one-line description shown in the parent's
	// command listing.
	Summary string

	// Description is the multi-line text at the top of the command's
	// own help.
	Description string

	// Usage overrides the synthesized usage line.
	Usage string

	Examples []Example

	// Params returns a pointer to the command's params struct. Its
	// tagged fields become flags (see [BindFlags]) and are populated
	// before Run is called. Nil means the command takes no flags.
	Params func() any

	Subcommands []*Command

	// Run executes the command with the positional arguments left
	// after flag parsing. When Subcommands are also set, Run handles
	// arguments that do not name a subcommand.
	Run func(args []string) error

	// Output receives help text. Nil means os.Stderr.
	Output io.Writer

	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and dispatches to the matching subcommand or to
// Run.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.output())
		return nil
	}

	if sub, rest, err := c.dispatch(args); sub != nil || err != nil {
		if err != nil {
			return err
		}
		return sub.Execute(rest)
	}

	if c.Run == nil {
		c.PrintHelp(c.output())
		if len(c.Subcommands) == 0 {
			return fmt.Errorf("no action defined for %q", c.fullName())
		}
		if len(args) == 0 {
			return Validation("subcommand required")
		}
		return Validation("subcommand required (got flag %q)", args[0])
	}

	positional, err := c.parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		c.PrintHelp(c.output())
		return nil
	}
	if err != nil {
		return err
	}
	return c.Run(positional)
}

// dispatch finds the subcommand named by args[0]. It returns nil and
// no error when args should go to c itself: no subcommands, a leading
// flag, or an unknown name that Run will handle.
func (c *Command) dispatch(args []string) (*Command, []string, error) {
	if len(c.Subcommands) == 0 || len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return nil, nil, nil
	}
	name := args[0]
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub, args[1:], nil
		}
	}
	if c.Run != nil {
		return nil, nil, nil
	}
	hint := ""
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		hint = fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return nil, nil, Validation("unknown command %q%s\n\nRun '%s --help' for usage.", name, hint, c.fullName())
}

// parseFlags binds c's params and returns the positional arguments.
// pflag.ErrHelp is returned unwrapped.
func (c *Command) parseFlags(args []string) ([]string, error) {
	if c.Params == nil {
		return args, nil
	}
	flagSet := FlagsFromParams(c.Name, c.Params())
	flagSet.SetOutput(io.Discard)
	err := flagSet.Parse(args)
	if err == nil {
		return flagSet.Args(), nil
	}
	if errors.Is(err, pflag.ErrHelp) {
		return nil, err
	}
	hint := ""
	if suggestion := suggestFlag(args, flagSet); suggestion != "" {
		hint = fmt.Sprintf(" (did you mean %s?)", suggestion)
	}
	return nil, Validation("%v%s\n\nRun '%s --help' for usage.", err, hint, c.fullName())
}

// PrintHelp writes help for c to w: description, usage, commands,
// flags, examples.
func (c *Command) PrintHelp(w io.Writer) {
	var help strings.Builder

	if intro := cmp.Or(c.Description, c.Summary); intro != "" {
		help.WriteString(intro + "\n\n")
	}
	help.WriteString("Usage:\n  " + c.usage() + "\n")

	if len(c.Subcommands) > 0 {
		help.WriteString("\nCommands:\n")
		table := tabwriter.NewWriter(&help, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if c.Params != nil {
		if usage := FlagsFromParams(c.Name, c.Params()).FlagUsages(); usage != "" {
			help.WriteString("\nFlags:\n" + usage)
		}
	}

	if len(c.Examples) > 0 {
		help.WriteString("\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				help.WriteString("  " + example.Command + "\n")
				continue
			}
			fmt.Fprintf(&help, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(&help, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}
	io.WriteString(w, help.String())
}

func (c *Command) usage() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

// output is the nearest Output up the command path.
func (c *Command) output() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Output != nil {
			return command.Output
		}
	}
	return os.Stderr
}

// fullName returns the command path, e.g. "netcodec convert".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
