// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	mathbits "math/bits"
	"strings"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/bits"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

func (a *app) bitsCommand() *cli.Command {
	return &cli.Command{
		Name:    "bits",
		Summary: "Show the bits of hex bytes, least significant first",
		Usage:   "bytekit bits [hex]",
		Description: `Print each byte of a hex string as eight bits, least significant bit
first, followed by the little-endian unsigned value of the whole input
when it fits in a machine word.`,
		Examples: []cli.Example{
			{Command: "bytekit bits 0501"},
		},
		Run: func(_ context.Context, args []string) error {
			text, err := a.readText(args, "")
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(text)
			if err != nil {
				return cli.Validation("decoding hex: %w", err)
			}

			groups := make([]string, 0, len(data))
			for _, value := range data {
				var group strings.Builder
				for _, bit := range bits.ByteToBits(value) {
					if bit {
						group.WriteByte('1')
					} else {
						group.WriteByte('0')
					}
				}
				groups = append(groups, group.String())
			}
			if err := a.println(strings.Join(groups, " ")); err != nil {
				return err
			}

			all := bits.BytesToBits(data)
			if value, ok := bits.CheckedBitsToUint(all); ok {
				return a.println(fmt.Sprintf("value: %d", value))
			}
			return a.println(fmt.Sprintf("value: overflow (%d bits, maximum %d)", len(all), mathbits.UintSize))
		},
	}
}
