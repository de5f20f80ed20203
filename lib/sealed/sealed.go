// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/bureau-foundation/bytekit/lib/secret"
)

// identityPrefix starts every age x25519 identity line.
const identityPrefix = "AGE-SECRET-KEY-1"

// Keypair holds an age x25519 keypair. The private key is held in a
// SafePassword (mmap-backed, redacted from all output). The public key
// is a plain string and safe to publish.
//
// The caller must call Close when the keypair is no longer needed.
type Keypair struct {
	// PrivateKey is the identity in AGE-SECRET-KEY-1... format.
	PrivateKey *secret.SafePassword

	// PublicKey is the corresponding recipient in age1... format.
	PublicKey string
}

// Close releases the private key memory. Idempotent.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// GenerateKeypair generates a new age x25519 keypair.
//
// The caller must call Close on the returned Keypair when done.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age keypair: %w", err)
	}

	// age exposes the key only as a string; that heap copy is
	// unavoidable. NewPasswordFromBytes zeroes the []byte copy.
	privateKey, err := secret.NewPasswordFromBytes([]byte(identity.String()))
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: privateKey,
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// ParsePublicKey validates an age public key string.
func ParsePublicKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("invalid age public key: %w", err)
	}
	return nil
}

// ParseIdentity validates an identity.
func ParseIdentity(identity *secret.SafePassword) error {
	_, err := parseIdentity(identity)
	return err
}

// parseIdentity accepts either a bare key or the contents of an
// age-keygen file, where the key line follows "#" comment lines.
func parseIdentity(identity *secret.SafePassword) (*age.X25519Identity, error) {
	for line := range bytes.Lines(identity.Reveal()) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if !bytes.HasPrefix(line, []byte(identityPrefix)) {
			return nil, fmt.Errorf("invalid age private key: expected %s... line", identityPrefix)
		}
		parsed, err := age.ParseX25519Identity(string(line))
		if err != nil {
			return nil, fmt.Errorf("invalid age private key: %w", err)
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("invalid age private key: no key line found")
}

// ReadIdentity loads an identity from a file, or from stdin if path is
// "-".
func ReadIdentity(path string) (*secret.SafePassword, error) {
	identity, err := secret.ReadPassword(path)
	if err != nil {
		return nil, fmt.Errorf("reading identity: %w", err)
	}
	if err := ParseIdentity(identity); err != nil {
		identity.Close()
		return nil, err
	}
	return identity, nil
}

// Seal encrypts plaintext to one or more recipients specified by their
// age public key strings (age1... format) and returns standard base64
// ciphertext. Plaintext must not be empty.
func Seal(plaintext []byte, recipientKeys []string) (string, error) {
	if len(plaintext) == 0 {
		return "", fmt.Errorf("sealing: %w", secret.ErrEmpty)
	}
	if len(recipientKeys) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return "", fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	var ciphertextBuffer bytes.Buffer
	writer, err := age.Encrypt(&ciphertextBuffer, recipients...)
	if err != nil {
		return "", fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return "", fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing age encryption: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertextBuffer.Bytes()), nil
}

// SealPassword encrypts a password without copying it out of
// protected memory.
func SealPassword(password *secret.SafePassword, recipientKeys []string) (string, error) {
	return Seal(password.Reveal(), recipientKeys)
}

// Open decrypts base64 ciphertext with identity and returns the
// plaintext in a secret.Buffer. The identity is borrowed and NOT
// closed.
//
// The caller must call Close on the returned buffer.
func Open(ciphertext string, identity *secret.SafePassword) (*secret.Buffer, error) {
	parsed, err := parseIdentity(identity)
	if err != nil {
		return nil, err
	}

	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 ciphertext: %w", err)
	}

	reader, err := age.Decrypt(bytes.NewReader(rawCiphertext), parsed)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	plaintext, err := io.ReadAll(reader)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("decrypted plaintext: %w", secret.ErrEmpty)
	}

	// NewFromBytes zeroes the heap copy.
	buffer, err := secret.NewFromBytes(plaintext)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("protecting decrypted plaintext: %w", err)
	}
	return buffer, nil
}

// OpenPassword decrypts ciphertext produced by SealPassword.
func OpenPassword(ciphertext string, identity *secret.SafePassword) (*secret.SafePassword, error) {
	buffer, err := Open(ciphertext, identity)
	if err != nil {
		return nil, err
	}
	defer buffer.Close()
	// Copying out of one protected region into another; the source is
	// zeroed by NewPasswordFromBytes and released by Close.
	return secret.NewPasswordFromBytes(buffer.Bytes())
}
