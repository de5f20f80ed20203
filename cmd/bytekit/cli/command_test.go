// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "bytekit",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "hash",
				Run: func(_ context.Context, args []string) error {
					called = "hash"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"hash"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "hash" {
		t.Errorf("dispatched to %q, want %q", called, "hash")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "bytekit",
		Subcommands: []*Command{
			{
				Name: "hex",
				Subcommands: []*Command{
					{
						Name: "encode",
						Run: func(_ context.Context, args []string) error {
							called = "hex encode"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"hex", "encode", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "hex encode" {
		t.Errorf("dispatched to %q, want %q", called, "hex encode")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var algorithm string
	var input string

	command := &Command{
		Name: "hash",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.StringVarP(&algorithm, "algorithm", "a", "blake3", "hash algorithm")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				input = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"abc", "-a", "sha256"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if algorithm != "sha256" {
		t.Errorf("algorithm = %q, want %q", algorithm, "sha256")
	}
	if input != "abc" {
		t.Errorf("input = %q, want %q", input, "abc")
	}
}

func TestCommand_Execute_LeadingFlagsBeforeSubcommand(t *testing.T) {
	var configPath string
	var received []string

	root := &Command{
		Name: "bytekit",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("bytekit", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file")
			return flagSet
		},
		Subcommands: []*Command{
			{
				Name: "hash",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
					flagSet.String("algorithm", "blake3", "hash algorithm")
					return flagSet
				},
				Run: func(_ context.Context, args []string) error {
					received = args
					return nil
				},
			},
		},
	}

	err := root.Execute(context.Background(), []string{"--config", "/etc/bytekit.yaml", "hash", "--algorithm", "sha256", "abc"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/etc/bytekit.yaml" {
		t.Errorf("configPath = %q, want /etc/bytekit.yaml", configPath)
	}
	if len(received) != 1 || received[0] != "abc" {
		t.Errorf("args = %v, want [abc]", received)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "hash",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.Bool("multihash", false, "multihash output")
			flagSet.String("algorithm", "blake3", "hash algorithm")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--multihsah"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --multihash") {
		t.Errorf("error = %q, want suggestion for '--multihash'", errStr)
	}
	if !strings.Contains(errStr, "multihsah") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
	if ExitCode(err) != ExitValidation {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitValidation)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "hash",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.Bool("multihash", false, "multihash output")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "bytekit",
		Subcommands: []*Command{
			{Name: "hash"},
			{Name: "base58"},
			{Name: "version"},
		},
	}

	err := root.Execute(context.Background(), []string{"verison"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "version"`) {
		t.Errorf("error = %q, want suggestion for 'version'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "bytekit",
		Subcommands: []*Command{
			{Name: "hash"},
			{Name: "version"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			var output bytes.Buffer
			root := &Command{
				Name:       "bytekit",
				Summary:    "Byte array, hashing and secret tools",
				HelpOutput: &output,
				Subcommands: []*Command{
					{Name: "hash", Summary: "Hash input"},
				},
			}

			if err := root.Execute(context.Background(), []string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
			if !strings.Contains(output.String(), "Hash input") {
				t.Errorf("help output = %q, want subcommand listing", output.String())
			}
		})
	}
}

func TestCommand_Execute_HelpAfterFlags(t *testing.T) {
	var output bytes.Buffer
	ran := false
	root := &Command{
		Name:       "bytekit",
		HelpOutput: &output,
		Subcommands: []*Command{
			{
				Name:    "hash",
				Summary: "Hash input",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
					flagSet.String("algorithm", "blake3", "hash algorithm")
					return flagSet
				},
				Run: func(_ context.Context, args []string) error {
					ran = true
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"hash", "--algorithm", "sha256", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if ran {
		t.Error("Run was called despite --help")
	}
	if !strings.Contains(output.String(), "bytekit hash [flags]") {
		t.Errorf("help output = %q, want usage for the subcommand", output.String())
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name:       "bytekit",
		HelpOutput: io.Discard,
		Subcommands: []*Command{
			{Name: "hash", Summary: "Hash input"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_Execute_RunErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")
	command := &Command{
		Name: "bits",
		Run:  func(_ context.Context, args []string) error { return sentinel },
	}
	if err := command.Execute(context.Background(), nil); !errors.Is(err, sentinel) {
		t.Errorf("Execute() error = %v, want %v", err, sentinel)
	}
}

func TestCommand_Execute_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got any
	root := &Command{
		Name: "bytekit",
		Subcommands: []*Command{
			{
				Name: "bits",
				Run: func(ctx context.Context, args []string) error {
					got = ctx.Value(key{})
					return nil
				},
			},
		},
	}
	if err := root.Execute(ctx, []string{"bits"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "value" {
		t.Errorf("context value = %v, want %q", got, "value")
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "bytekit",
		Description: "Byte array, hashing and secret tools.",
		Subcommands: []*Command{
			{Name: "hex", Summary: "Encode and decode hex"},
			{Name: "hash", Summary: "Hash input"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Hash a string with SHA-256",
				Command:     "bytekit hash --algorithm sha256 abc",
			},
			{
				Description: "Seal a secret for a recipient",
				Command:     "bytekit seal --recipient age1...",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Byte array, hashing and secret tools.",
		"Usage:",
		"bytekit <command> [flags]",
		"Commands:",
		"hex",
		"Encode and decode hex",
		"Examples:",
		"bytekit hash --algorithm sha256 abc",
		"# Seal a secret for a recipient",
		"Run 'bytekit <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "hash",
		Summary: "Hash input",
		Usage:   "bytekit hash [flags] [text]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.String("algorithm", "blake3", "hash algorithm")
			flagSet.Bool("multihash", false, "prefix the digest with its multihash header")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"bytekit hash [flags] [text]",
		"Flags:",
		"--algorithm",
		"--multihash",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "bytekit"}
	hex := &Command{Name: "hex", parent: root}
	encode := &Command{Name: "encode", parent: hex}

	if got := root.fullName(); got != "bytekit" {
		t.Errorf("root.fullName() = %q, want %q", got, "bytekit")
	}
	if got := hex.fullName(); got != "bytekit hex" {
		t.Errorf("hex.fullName() = %q, want %q", got, "bytekit hex")
	}
	if got := encode.fullName(); got != "bytekit hex encode" {
		t.Errorf("encode.fullName() = %q, want %q", got, "bytekit hex encode")
	}
}
