// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/clock"
	"github.com/bureau-foundation/bytekit/lib/config"
	"github.com/bureau-foundation/bytekit/lib/encoding"
)

// Environment is the set of process resources commands use.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// ProcessEnvironment returns an Environment bound to the process's
// standard streams and the real clock.
func ProcessEnvironment() Environment {
	return Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.Real(),
	}
}

// app carries state shared by all commands of one invocation.
type app struct {
	env        Environment
	configPath string

	config *config.Config
	logger *slog.Logger
}

// Root returns the bytekit command tree bound to env.
func Root(env Environment) *cli.Command {
	a := &app{env: env}

	return &cli.Command{
		Name:    "bytekit",
		Summary: "Byte array, hashing and secret tools",
		Description: `bytekit converts between byte encodings, hashes data with domain
separation, and seals secrets with age.

Configuration is read from the file given by --config, or from
$BYTEKIT_CONFIG. Without either, built-in defaults apply.`,
		HelpOutput: env.Stderr,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("bytekit", pflag.ContinueOnError)
			flagSet.StringVar(&a.configPath, "config", "", "path to a YAML or JSONC configuration file (default $"+config.EnvironmentVariable+")")
			return flagSet
		},
		Subcommands: []*cli.Command{
			a.hexCommand(),
			a.base58Command(),
			a.hashCommand(),
			a.bitsCommand(),
			a.epochCommand(),
			a.keygenCommand(),
			a.sealCommand(),
			a.unsealCommand(),
			a.versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Hash a string with the configured algorithm",
				Command:     "bytekit hash 'hello world'",
			},
			{
				Description: "Use an explicit configuration file",
				Command:     "bytekit --config ~/.config/bytekit.yaml hash --file release.tar",
			},
		},
	}
}

// load reads the configuration and builds the logger. Safe to call
// more than once.
func (a *app) load() error {
	if a.config != nil {
		return nil
	}

	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cli.NotFound("loading configuration: %w", err)
		}
		return cli.Validation("loading configuration: %w", err)
	}

	logger, err := cli.NewLogger(a.env.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = logger
	return nil
}

// readInput returns the command's input: the single positional
// argument, the contents of file, or all of stdin.
func (a *app) readInput(args []string, file string) ([]byte, error) {
	switch {
	case len(args) > 1:
		return nil, cli.Validation("expected at most one argument, got %d", len(args))
	case file != "" && len(args) == 1:
		return nil, cli.Validation("pass either an argument or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fileError(file, err)
		}
		return data, nil
	case len(args) == 1:
		return []byte(args[0]), nil
	default:
		data, err := io.ReadAll(a.env.Stdin)
		if err != nil {
			return nil, cli.Internal("reading stdin: %w", err)
		}
		return data, nil
	}
}

// readText is readInput for textual encodings: surrounding whitespace,
// such as the trailing newline of a pipeline, is removed.
func (a *app) readText(args []string, file string) (string, error) {
	data, err := a.readInput(args, file)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(data)), nil
}

// encodeOutput renders data in the named output encoding, or the
// configured one when name is empty.
func (a *app) encodeOutput(data bytearray.ByteArray, name string) (string, error) {
	if name == "" {
		name = a.config.Output.Encoding
	}
	switch name {
	case config.EncodingHex:
		return bytearray.ToHex(data), nil
	case config.EncodingBase58:
		return encoding.ToBase58(data), nil
	case config.EncodingBase64:
		return encoding.ToBase64(data), nil
	case config.EncodingMultibase:
		multibaseEncoding, err := encoding.ParseMultibaseEncoding(a.config.Output.Multibase)
		if err != nil {
			return "", cli.Validation("%w", err)
		}
		text, err := encoding.ToMultibase(data, multibaseEncoding)
		if err != nil {
			return "", cli.Internal("%w", err)
		}
		return text, nil
	}
	return "", cli.Validation("unknown output encoding %q (want one of: %v)", name, outputEncodings)
}

var outputEncodings = []string{config.EncodingHex, config.EncodingBase58, config.EncodingBase64, config.EncodingMultibase}

func validEncoding(name string) bool {
	return name == "" || slices.Contains(outputEncodings, name)
}

// println writes a line to stdout.
func (a *app) println(text string) error {
	if _, err := fmt.Fprintln(a.env.Stdout, text); err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}

// write writes raw bytes to stdout.
func (a *app) write(data []byte) error {
	if _, err := a.env.Stdout.Write(data); err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}

func fileError(path string, err error) *cli.ToolError {
	if errors.Is(err, os.ErrNotExist) {
		return cli.NotFound("%s does not exist", path)
	}
	return cli.Internal("reading %s: %w", path, err)
}
