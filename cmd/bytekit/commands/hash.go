// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"hash"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytekit/cmd/bytekit/cli"
	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/hashing"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

type hashParams struct {
	Algorithm string
	Domain    string
	Multihash bool
	HexInput  bool
	File      string
	Encoding  string
	Verify    string
}

func (a *app) hashCommand() *cli.Command {
	var params hashParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "hash",
		Summary: "Hash input with a selectable algorithm",
		Usage:   "bytekit hash [flags] [text]",
		Description: `Hash the argument, a file, or stdin and print the digest.

The algorithm and output encoding default to the configuration file.
--domain switches to keyed BLAKE3 with the domain name as the key, so
the same bytes hashed under different domains never collide.
--multihash prefixes the digest with its self-describing multihash
header. --verify compares the result against an expected value and
exits 1 on mismatch.`,
		Flags: func() *pflag.FlagSet {
			flagSet = pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.StringVarP(&params.Algorithm, "algorithm", "a", "", fmt.Sprintf("hash algorithm: %v (default from config)", hashing.Algorithms()))
			flagSet.StringVar(&params.Domain, "domain", "", "keyed BLAKE3 domain (default from config)")
			flagSet.BoolVar(&params.Multihash, "multihash", false, "prefix the digest with its multihash header")
			flagSet.BoolVar(&params.HexInput, "hex", false, "input is hex and is decoded before hashing")
			flagSet.StringVarP(&params.File, "file", "f", "", "hash a file instead of the argument or stdin")
			flagSet.StringVarP(&params.Encoding, "encoding", "e", "", fmt.Sprintf("output encoding: %v (default from config)", outputEncodings))
			flagSet.StringVar(&params.Verify, "verify", "", "expected output; exit 1 if the digest differs")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "SHA-256 of a string", Command: "bytekit hash -a sha256 abc"},
			{Description: "Domain-separated BLAKE3 of a file", Command: "bytekit hash --domain bureau.artifact --file blob.bin"},
			{Description: "Multihash in base58, as used by content identifiers", Command: "bytekit hash -a sha256 --multihash -e base58 abc"},
		},
		Run: func(_ context.Context, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if !validEncoding(params.Encoding) {
				return cli.Validation("unknown output encoding %q (want one of: %v)", params.Encoding, outputEncodings)
			}

			algorithm := a.config.Hash.Algorithm
			if params.Algorithm != "" {
				parsed, err := hashing.ParseAlgorithm(params.Algorithm)
				if err != nil {
					return cli.Validation("%w", err)
				}
				algorithm = parsed
			}
			domain := a.config.Hash.Domain
			if flagSet.Changed("domain") {
				domain = params.Domain
			}

			hasher, err := newHasher(algorithm, domain)
			if err != nil {
				return err
			}

			digest, size, err := a.digestInput(args, params, hasher)
			if err != nil {
				return err
			}

			output := bytearray.ByteArray(digest)
			if params.Multihash {
				encoded, err := digest.Multihash(algorithm.MultihashCode())
				if err != nil {
					return cli.Internal("%w", err)
				}
				output = bytearray.Bytes(encoded)
			}
			text, err := a.encodeOutput(output, params.Encoding)
			if err != nil {
				return err
			}

			a.logger.Debug("hashed input",
				"algorithm", algorithm,
				"keyed", domain != "",
				"bytes", size,
			)

			if params.Verify == "" {
				return a.println(text)
			}
			if strings.TrimSpace(params.Verify) == text {
				return a.println("OK")
			}
			if err := a.println("MISMATCH " + text); err != nil {
				return err
			}
			return &cli.ExitError{Code: 1}
		},
	}
}

// newHasher returns the hash function for algorithm, keyed by domain
// when domain is non-empty.
func newHasher(algorithm hashing.Algorithm, domain string) (hash.Hash, error) {
	if domain == "" {
		return algorithm.New(), nil
	}
	if algorithm != hashing.BLAKE3 {
		return nil, cli.Validation("--domain requires the %s algorithm, got %s", hashing.BLAKE3, algorithm)
	}
	hasher, err := hashing.NewKeyed(domain)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return hasher, nil
}

// digestInput hashes the command input and returns the digest and the
// number of bytes hashed (-1 for a file streamed from disk).
func (a *app) digestInput(args []string, params hashParams, hasher hash.Hash) (hashing.Digest, int, error) {
	if params.File != "" && !params.HexInput {
		if len(args) > 0 {
			return hashing.Digest{}, 0, cli.Validation("pass either an argument or --file, not both")
		}
		digest, err := hashing.SumFile(params.File, hasher)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return hashing.Digest{}, 0, cli.NotFound("%s does not exist", params.File)
			}
			return hashing.Digest{}, 0, cli.Internal("%w", err)
		}
		return digest, -1, nil
	}

	var data []byte
	if params.HexInput {
		text, err := a.readText(args, params.File)
		if err != nil {
			return hashing.Digest{}, 0, err
		}
		data, err = hex.DecodeString(text)
		if err != nil {
			return hashing.Digest{}, 0, cli.Validation("decoding --hex input: %w", err)
		}
	} else {
		var err error
		data, err = a.readInput(args, "")
		if err != nil {
			return hashing.Digest{}, 0, err
		}
	}
	return hashing.HashableOf(bytearray.Bytes(data)).Hash(hasher), len(data), nil
}
