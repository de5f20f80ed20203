// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "hash", "encode").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is a detailed multi-line description shown in the command's
	// own help output.
	Description string

	// Usage is the usage string (e.g., "bytekit hex encode [flags] [text]").
	// If empty, it is synthesized from the command path and subcommands.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. Called
	// lazily on first use. If nil, the command accepts no flags.
	//
	// On a command with Subcommands, flags are parsed only up to the
	// first positional argument, which then selects the subcommand.
	Flags func() *pflag.FlagSet

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes the command with the remaining args (after flag parsing).
	// If both Run and Subcommands are set, Run is used when no subcommand
	// name is given.
	Run func(ctx context.Context, args []string) error

	// HelpOutput receives help text. Defaults to os.Stderr; inherited
	// by subcommands during dispatch.
	HelpOutput io.Writer

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute parses args and dispatches to the appropriate subcommand or Run
// function. This is the main entry point for the command tree.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}

	if len(c.Subcommands) > 0 {
		// Leading flags belong to this command, not the subcommand.
		if c.Flags != nil && len(args) > 0 && strings.HasPrefix(args[0], "-") {
			flagSet := c.Flags()
			flagSet.SetInterspersed(false)
			remaining, handled, err := c.parseFlags(flagSet, args)
			if handled || err != nil {
				return err
			}
			args = remaining
		}

		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			name := args[0]
			for _, sub := range c.Subcommands {
				if sub.Name == name {
					sub.parent = c
					return sub.Execute(ctx, args[1:])
				}
			}
			if c.Run == nil {
				suggestion := suggestCommand(name, c.Subcommands)
				if suggestion != "" {
					return Validation("unknown command %q (did you mean %q?)", name, suggestion).
						WithHint(fmt.Sprintf("Run '%s --help' for usage.", c.fullName()))
				}
				return Validation("unknown command %q", name).
					WithHint(fmt.Sprintf("Run '%s --help' for usage.", c.fullName()))
			}
		}

		if c.Run == nil {
			c.PrintHelp(c.helpOutput())
			if len(args) == 0 {
				return Validation("subcommand required")
			}
			return Validation("subcommand required (got flag %q)", args[0])
		}
		return c.Run(ctx, args)
	}

	if c.Flags != nil {
		remaining, handled, err := c.parseFlags(c.Flags(), args)
		if handled || err != nil {
			return err
		}
		args = remaining
	}

	if c.Run != nil {
		return c.Run(ctx, args)
	}

	c.PrintHelp(c.helpOutput())
	return Internal("no action defined for %q", c.fullName())
}

// parseFlags parses args into flagSet. handled is true when the
// arguments asked for help and help has been printed.
func (c *Command) parseFlags(flagSet *pflag.FlagSet, args []string) (remaining []string, handled bool, err error) {
	// Suppress pflag's own error output and usage dump. We format our
	// own error messages with suggestions.
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(c.helpOutput())
			return nil, true, nil
		}

		hint := fmt.Sprintf("Run '%s --help' for usage.", c.fullName())
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand flag") {
			// Recreate the flagSet to get a clean copy for suggestion
			// lookup (the failed parse may have consumed state).
			if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
				return nil, false, Validation("%s (did you mean %s?)", errMsg, suggestion).WithHint(hint)
			}
		}
		return nil, false, Validation("%s", errMsg).WithHint(hint)
	}
	return flagSet.Args(), false, nil
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	if c.Usage != "" {
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	} else if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	} else {
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		if usage := flagSet.FlagUsages(); usage != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usage)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "bytekit hex encode").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) helpOutput() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.HelpOutput != nil {
			return command.HelpOutput
		}
	}
	return os.Stderr
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
