// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/bytekit/lib/secret"
)

// ReadSecret obtains a secret for a command. A non-empty path is a file
// to read, or "-" for the first line of stdin. With no path, the user
// is prompted on stderr and the secret is read from the terminal with
// echo disabled.
//
// The caller must Close the returned password.
func ReadSecret(path, prompt string) (*secret.SafePassword, error) {
	if path != "" {
		password, err := secret.ReadPassword(path)
		if err != nil {
			return nil, secretError(path, err)
		}
		return password, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, Validation("no terminal available for interactive prompt (use --secret-file)")
	}

	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		secret.Zero(data)
		return nil, Internal("reading secret: %w", err)
	}

	password, err := secret.NewPasswordFromBytes(data)
	if err != nil {
		secret.Zero(data)
		return nil, secretError("terminal", err)
	}
	return password, nil
}

func secretError(source string, err error) *ToolError {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return NotFound("secret file %s does not exist", source)
	case errors.Is(err, secret.ErrEmpty), errors.Is(err, secret.ErrTooLarge):
		return Validation("secret from %s: %w", source, err)
	}
	return Internal("reading secret from %s: %w", source, err)
}
