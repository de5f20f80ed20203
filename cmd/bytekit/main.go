// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/cmd/bytekit/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own verdict (like hash --verify)
		// return an ExitError. Don't print a redundant "error:" line
		// for those.
		if _, ok := err.(interface{ ExitCode() int }); !ok {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return commands.Root(commands.ProcessEnvironment()).Execute(ctx, os.Args[1:])
}
