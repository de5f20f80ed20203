// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed encrypts secrets to age x25519 recipients so they can
// be stored or sent as text, and opens them back into protected
// memory.
//
// Ciphertext is base64-encoded, so callers pass plaintext in and get a
// string out (and vice versa for [Open]). Identities (private keys)
// are held in [secret.SafePassword] values and decrypted plaintext is
// returned in a [secret.Buffer]; neither ever reaches a log line or
// an encoder in readable form.
//
// Key exports:
//
//   - [GenerateKeypair] -- new age x25519 keypair
//   - [Seal] / [SealPassword] -- encrypt to age public key recipients
//   - [Open] / [OpenPassword] -- decrypt with an identity
//   - [ReadIdentity] -- load an identity file written by keygen or age-keygen
//   - [ParsePublicKey] / [ParseIdentity] -- key validation
package sealed
