// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/encoding"
)

func (a *app) base58Command() *cli.Command {
	return &cli.Command{
		Name:    "base58",
		Summary: "Encode and decode base58 (Bitcoin alphabet)",
		Subcommands: []*cli.Command{
			a.base58EncodeCommand(),
			a.base58DecodeCommand(),
		},
	}
}

func (a *app) base58EncodeCommand() *cli.Command {
	var file string

	return &cli.Command{
		Name:    "encode",
		Summary: "Print input bytes as base58",
		Usage:   "bytekit base58 encode [--file path] [text]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "read input from a file instead of the argument or stdin")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			data, err := a.readInput(args, file)
			if err != nil {
				return err
			}
			return a.println(encoding.ToBase58(bytearray.Bytes(data)))
		},
	}
}

func (a *app) base58DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:    "decode",
		Summary: "Write the bytes of a base58 string",
		Usage:   "bytekit base58 decode [text]",
		Run: func(_ context.Context, args []string) error {
			text, err := a.readText(args, "")
			if err != nil {
				return err
			}
			data, err := encoding.FromBase58[bytearray.Bytes](text)
			if err != nil {
				return cli.Validation("%w", err)
			}
			return a.write(data)
		},
	}
}
