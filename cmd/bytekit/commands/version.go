// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/version"
)

func (a *app) versionCommand() *cli.Command {
	var verbose bool

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "include build details and the binary's BLAKE3 digest")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			version.Print(a.env.Stdout, "bytekit", verbose)
			return nil
		},
	}
}
