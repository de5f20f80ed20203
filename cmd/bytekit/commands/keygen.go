// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/sealed"
)

func (a *app) keygenCommand() *cli.Command {
	var output string

	return &cli.Command{
		Name:    "keygen",
		Summary: "Generate an age keypair for seal and unseal",
		Usage:   "bytekit keygen [--output path]",
		Description: `Generate an age X25519 identity in the same layout age-keygen
writes: two comment lines (creation time and public key) followed by
the AGE-SECRET-KEY-1 line.

With --output, the identity is written to a new file with mode 0600
and only the public key is printed. An existing file is never
overwritten.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
			flagSet.StringVarP(&output, "output", "o", "", "write the identity to this file instead of stdout")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if err := a.load(); err != nil {
				return err
			}

			keypair, err := sealed.GenerateKeypair()
			if err != nil {
				return cli.Internal("%w", err)
			}
			defer keypair.Close()

			if output == "" {
				return a.writeIdentity(a.env.Stdout, keypair)
			}

			file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
			if err != nil {
				if errors.Is(err, os.ErrExist) {
					return cli.Validation("%s already exists", output)
				}
				return cli.Internal("creating identity file: %w", err)
			}
			if err := a.writeIdentity(file, keypair); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return cli.Internal("closing %s: %w", output, err)
			}

			a.logger.Info("wrote identity", "path", output, "public_key", keypair.PublicKey)
			return a.println(keypair.PublicKey)
		},
	}
}

func (a *app) writeIdentity(w io.Writer, keypair *sealed.Keypair) error {
	created := a.env.Clock.Now().UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(w, "# created: %s\n# public key: %s\n", created, keypair.PublicKey); err != nil {
		return cli.Internal("writing identity: %w", err)
	}
	if _, err := w.Write(keypair.PrivateKey.Reveal()); err != nil {
		return cli.Internal("writing identity: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return cli.Internal("writing identity: %w", err)
	}
	return nil
}
