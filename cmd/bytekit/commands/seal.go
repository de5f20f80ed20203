// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/sealed"
)

func (a *app) sealCommand() *cli.Command {
	var recipients []string
	var secretFile string

	return &cli.Command{
		Name:    "seal",
		Summary: "Encrypt a secret to age recipients",
		Usage:   "bytekit seal [--recipient age1...] [--secret-file path]",
		Description: `Encrypt a secret to one or more age public keys and print the
base64 ciphertext.

Recipients come from seal.recipients in the configuration file plus
every --recipient flag. The secret is read from --secret-file ("-" for
the first line of stdin) or prompted for with echo disabled. It is held
in locked memory and zeroed after sealing.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("seal", pflag.ContinueOnError)
			flagSet.StringArrayVarP(&recipients, "recipient", "r", nil, "age public key to encrypt to (repeatable)")
			flagSet.StringVar(&secretFile, "secret-file", "", "read the secret from a file, or - for stdin (default: prompt)")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Seal a prompted secret", Command: "bytekit seal -r age1..."},
			{Description: "Seal a token from a file", Command: "bytekit seal --secret-file token.txt"},
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0]).
					WithHint("The secret is never taken from the command line. Use --secret-file or the prompt.")
			}
			if err := a.load(); err != nil {
				return err
			}

			all := append(append([]string(nil), a.config.Seal.Recipients...), recipients...)
			if len(all) == 0 {
				return cli.Validation("no recipients").
					WithHint("Pass --recipient age1... or set seal.recipients in the configuration file.")
			}
			for _, recipient := range all {
				if err := sealed.ParsePublicKey(recipient); err != nil {
					return cli.Validation("%w", err)
				}
			}

			password, err := cli.ReadSecret(secretFile, "Secret: ")
			if err != nil {
				return err
			}
			defer password.Close()

			ciphertext, err := sealed.SealPassword(password, all)
			if err != nil {
				return cli.Internal("%w", err)
			}

			a.logger.Debug("sealed secret", "recipients", len(all), "secret", password)
			return a.println(ciphertext)
		},
	}
}

func (a *app) unsealCommand() *cli.Command {
	var identityFile string
	var file string

	return &cli.Command{
		Name:    "unseal",
		Summary: "Decrypt a sealed secret",
		Usage:   "bytekit unseal [--identity path] [--file path] [ciphertext]",
		Description: `Decrypt base64 ciphertext produced by "bytekit seal" and write the
secret to stdout. The identity defaults to seal.identity_file in the
configuration file.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("unseal", pflag.ContinueOnError)
			flagSet.StringVarP(&identityFile, "identity", "i", "", "age identity file (default from config)")
			flagSet.StringVarP(&file, "file", "f", "", "read the ciphertext from a file instead of the argument or stdin")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			path := identityFile
			if path == "" {
				path = a.config.Seal.IdentityFile
			}
			if path == "" {
				return cli.Validation("no identity file").
					WithHint("Pass --identity or set seal.identity_file in the configuration file.")
			}

			ciphertext, err := a.readText(args, file)
			if err != nil {
				return err
			}

			identity, err := sealed.ReadIdentity(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return cli.NotFound("identity file %s does not exist", path)
				}
				return cli.Validation("%w", err)
			}
			defer identity.Close()

			plaintext, err := sealed.Open(ciphertext, identity)
			if err != nil {
				return cli.Validation("unsealing: %w", err)
			}
			defer plaintext.Close()

			if _, err := plaintext.WriteTo(a.env.Stdout); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}
