// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"bytes"
	"fmt"
	"hash"

	"github.com/multiformats/go-multihash"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/codec"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

// Digest is the output of a hash function. The zero Digest is empty
// and is never produced by hashing.
//
// Digest holds its bytes in a string so that values are immutable and
// comparable with ==, and can be used as map keys.
type Digest struct {
	value string
}

// NewDigest copies b into a Digest. It fails for empty input.
func NewDigest(b []byte) (Digest, error) {
	var digest Digest
	if err := digest.SetBytes(b); err != nil {
		return Digest{}, err
	}
	return digest, nil
}

// ParseDigest decodes a lowercase hex digest.
func ParseDigest(s string) (Digest, error) {
	return bytearray.FromHex[Digest](s)
}

// AsBytes returns a copy of the digest bytes.
func (d Digest) AsBytes() []byte {
	return []byte(d.value)
}

// SetBytes replaces d with a copy of b. Empty input is rejected with
// [bytearray.ErrInvalidLength].
func (d *Digest) SetBytes(b []byte) error {
	if len(b) == 0 {
		// Digests are at least one byte long.
		return bytearray.LengthError(1, 0)
	}
	d.value = string(b)
	return nil
}

// Len returns the digest size in bytes.
func (d Digest) Len() int { return len(d.value) }

// Hash implements [Hashable]: the digest of d's raw bytes under h.
func (d Digest) Hash(h hash.Hash) Digest { return Sum(d, h) }

// IsZero reports whether d is the empty Digest.
func (d Digest) IsZero() bool { return d.value == "" }

// Equal reports whether d and other hold the same bytes.
func (d Digest) Equal(other Digest) bool { return d.value == other.value }

// Compare orders digests byte-wise, returning -1, 0 or +1.
func (d Digest) Compare(other Digest) int {
	return bytes.Compare([]byte(d.value), []byte(other.value))
}

// String returns the lowercase hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString([]byte(d.value))
}

// AppendRawBytes appends the digest bytes to buf.
func (d Digest) AppendRawBytes(buf []byte) []byte {
	return append(buf, d.value...)
}

// MarshalText returns the lowercase hex encoding.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes lowercase hex.
func (d *Digest) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	return d.SetBytes(decoded)
}

// MarshalCBOR encodes the digest as a CBOR byte string.
func (d Digest) MarshalCBOR() ([]byte, error) {
	return codec.MarshalByteString([]byte(d.value))
}

// UnmarshalCBOR decodes a CBOR byte string.
func (d *Digest) UnmarshalCBOR(data []byte) error {
	decoded, err := codec.UnmarshalByteString(data)
	if err != nil {
		return err
	}
	return d.SetBytes(decoded)
}

// Multihash returns the self-describing multihash encoding of d: a
// varint algorithm code, a varint length and the digest bytes. Use
// [Algorithm.MultihashCode] for the code.
func (d Digest) Multihash(code uint64) ([]byte, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("encoding multihash: empty digest")
	}
	encoded, err := multihash.Encode([]byte(d.value), code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return encoded, nil
}

// ParseMultihash decodes a multihash into its algorithm and digest.
// Codes without a registered [Algorithm] are rejected.
func ParseMultihash(data []byte) (Algorithm, Digest, error) {
	decoded, err := multihash.Decode(data)
	if err != nil {
		return "", Digest{}, fmt.Errorf("decoding multihash: %w", err)
	}
	algorithm, err := AlgorithmForMultihashCode(decoded.Code)
	if err != nil {
		return "", Digest{}, err
	}
	digest, err := NewDigest(decoded.Digest)
	if err != nil {
		return "", Digest{}, fmt.Errorf("decoding multihash: %w", err)
	}
	return algorithm, digest, nil
}
