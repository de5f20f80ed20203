// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
)

// ToBase58 encodes v's bytes with the Bitcoin base58 alphabet. Each
// leading zero byte becomes a leading '1'.
func ToBase58(v bytearray.ByteArray) string {
	return base58.Encode(v.AsBytes())
}

// FromBase58 decodes a Bitcoin-alphabet base58 string into a T. The
// empty string decodes to zero bytes.
func FromBase58[T any, P bytearray.Pointer[T]](s string) (T, error) {
	if s == "" {
		return bytearray.FromBytes[T, P]([]byte{})
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decoding base58: %w", err)
	}
	return bytearray.FromBytes[T, P](decoded)
}

// ToBase64 encodes v's bytes as standard padded base64.
func ToBase64(v bytearray.ByteArray) string {
	return base64.StdEncoding.EncodeToString(v.AsBytes())
}

// FromBase64 decodes standard padded base64 into a T.
func FromBase64[T any, P bytearray.Pointer[T]](s string) (T, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decoding base64: %w", err)
	}
	return bytearray.FromBytes[T, P](decoded)
}

// ParseMultibaseEncoding looks up a multibase encoding by name, such
// as "base58btc" or "base32".
func ParseMultibaseEncoding(name string) (multibase.Encoding, error) {
	encoding, ok := multibase.Encodings[name]
	if !ok {
		return 0, fmt.Errorf("unknown multibase encoding %q", name)
	}
	return encoding, nil
}

// ToMultibase encodes v's bytes with a multibase prefix naming the
// encoding.
func ToMultibase(v bytearray.ByteArray, encoding multibase.Encoding) (string, error) {
	encoded, err := multibase.Encode(encoding, v.AsBytes())
	if err != nil {
		return "", fmt.Errorf("encoding multibase: %w", err)
	}
	return encoded, nil
}

// FromMultibase decodes any supported multibase string into a T. The
// prefix character selects the encoding.
func FromMultibase[T any, P bytearray.Pointer[T]](s string) (T, error) {
	_, decoded, err := multibase.Decode(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decoding multibase: %w", err)
	}
	return bytearray.FromBytes[T, P](decoded)
}
