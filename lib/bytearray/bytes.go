// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

import (
	"bytes"

	"github.com/bureau-foundation/bytekit/lib/codec"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

// Bytes is a variable-length byte value. Every length, including zero,
// is valid.
type Bytes []byte

// AsBytes returns b itself.
func (b Bytes) AsBytes() []byte { return b }

// SetBytes replaces b with a copy of data.
func (b *Bytes) SetBytes(data []byte) error {
	copied := make([]byte, len(data))
	copy(copied, data)
	*b = copied
	return nil
}

// AppendRawBytes appends b to buf.
func (b Bytes) AppendRawBytes(buf []byte) []byte { return append(buf, b...) }

// Equal reports whether b and other hold the same bytes.
func (b Bytes) Equal(other Bytes) bool { return bytes.Equal(b, other) }

// String returns the lowercase hex encoding.
func (b Bytes) String() string { return hex.EncodeToString(b) }

// MarshalText returns the lowercase hex encoding.
func (b Bytes) MarshalText() ([]byte, error) {
	encoded := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(encoded, b)
	return encoded, nil
}

// UnmarshalText decodes lowercase hex.
func (b *Bytes) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return err
	}
	*b = decoded
	return nil
}

// MarshalCBOR encodes b as a CBOR byte string.
func (b Bytes) MarshalCBOR() ([]byte, error) { return codec.MarshalByteString(b) }

// UnmarshalCBOR decodes a CBOR byte string.
func (b *Bytes) UnmarshalCBOR(data []byte) error {
	decoded, err := codec.UnmarshalByteString(data)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
