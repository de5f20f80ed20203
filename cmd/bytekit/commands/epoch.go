// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/epochtime"
)

func (a *app) epochCommand() *cli.Command {
	return &cli.Command{
		Name:    "epoch",
		Summary: "Show an epoch timestamp and its byte form",
		Usage:   "bytekit epoch [seconds]",
		Description: `Print the current time (or the given seconds since the Unix epoch)
as decimal seconds, RFC 3339 UTC, and the 8-byte little-endian form
used when timestamps are hashed.`,
		Run: func(_ context.Context, args []string) error {
			var value epochtime.EpochTime
			switch len(args) {
			case 0:
				value = epochtime.Now(a.env.Clock)
			case 1:
				if err := value.UnmarshalText([]byte(args[0])); err != nil {
					return cli.Validation("%w", err)
				}
			default:
				return cli.Validation("expected at most one argument, got %d", len(args))
			}

			return a.println(fmt.Sprintf("seconds: %s\ntime:    %s\nbytes:   %s",
				value, value.Time().Format(time.RFC3339), bytearray.ToHex(value)))
		},
	}
}
