// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

func (a *app) hexCommand() *cli.Command {
	return &cli.Command{
		Name:    "hex",
		Summary: "Encode and decode lowercase hex",
		Subcommands: []*cli.Command{
			a.hexEncodeCommand(),
			a.hexDecodeCommand(),
		},
	}
}

func (a *app) hexEncodeCommand() *cli.Command {
	var file string

	return &cli.Command{
		Name:    "encode",
		Summary: "Print input bytes as lowercase hex",
		Usage:   "bytekit hex encode [--file path] [text]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "read input from a file instead of the argument or stdin")
			return flagSet
		},
		Examples: []cli.Example{
			{Command: "bytekit hex encode abc"},
			{Description: "Encode a binary file", Command: "bytekit hex encode --file key.bin"},
		},
		Run: func(_ context.Context, args []string) error {
			data, err := a.readInput(args, file)
			if err != nil {
				return err
			}
			return a.println(hex.EncodeToString(data))
		},
	}
}

func (a *app) hexDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:    "decode",
		Summary: "Write the bytes of a lowercase hex string",
		Usage:   "bytekit hex decode [hex]",
		Description: `Decode a lowercase hex string and write the raw bytes to stdout.
Uppercase digits, odd lengths and non-hex characters are rejected.`,
		Run: func(_ context.Context, args []string) error {
			text, err := a.readText(args, "")
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(text)
			if err != nil {
				return cli.Validation("decoding hex: %w", err)
			}
			return a.write(data)
		},
	}
}
