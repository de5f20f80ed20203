// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

import (
	"github.com/bureau-foundation/bytekit/lib/codec"
	"github.com/bureau-foundation/bytekit/lib/hex"
)

// Array16 is a fixed 16-byte value. Conversions from any other length
// fail with ErrInvalidLength.
type Array16 [16]byte

// AsBytes returns the bytes of a copy of a.
func (a Array16) AsBytes() []byte { return a[:] }

// SetBytes copies data into a. data must be exactly 16 bytes.
func (a *Array16) SetBytes(data []byte) error {
	if err := CheckLength(data, len(a)); err != nil {
		return err
	}
	copy(a[:], data)
	return nil
}

// AppendRawBytes appends a to buf.
func (a Array16) AppendRawBytes(buf []byte) []byte { return append(buf, a[:]...) }

// String returns the lowercase hex encoding.
func (a Array16) String() string { return hex.EncodeToString(a[:]) }

// MarshalText returns the lowercase hex encoding.
func (a Array16) MarshalText() ([]byte, error) {
	encoded := make([]byte, hex.EncodedLen(len(a)))
	hex.Encode(encoded, a[:])
	return encoded, nil
}

// UnmarshalText decodes exactly 32 lowercase hex characters.
func (a *Array16) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return err
	}
	return a.SetBytes(decoded)
}

// MarshalCBOR encodes a as a CBOR byte string.
func (a Array16) MarshalCBOR() ([]byte, error) { return codec.MarshalByteString(a[:]) }

// UnmarshalCBOR decodes a CBOR byte string of exactly 16 bytes.
func (a *Array16) UnmarshalCBOR(data []byte) error {
	decoded, err := codec.UnmarshalByteString(data)
	if err != nil {
		return err
	}
	return a.SetBytes(decoded)
}
// Array32 is a fixed 32-byte value. Conversions from any other length
// fail with ErrInvalidLength.
type Array32 [32]byte

// AsBytes returns the bytes of a copy of a.
func (a Array32) AsBytes() []byte { return a[:] }

// SetBytes copies data into a. data must be exactly 32 bytes.
func (a *Array32) SetBytes(data []byte) error {
	if err := CheckLength(data, len(a)); err != nil {
		return err
	}
	copy(a[:], data)
	return nil
}

// AppendRawBytes appends a to buf.
func (a Array32) AppendRawBytes(buf []byte) []byte { return append(buf, a[:]...) }

// String returns the lowercase hex encoding.
func (a Array32) String() string { return hex.EncodeToString(a[:]) }

// MarshalText returns the lowercase hex encoding.
func (a Array32) MarshalText() ([]byte, error) {
	encoded := make([]byte, hex.EncodedLen(len(a)))
	hex.Encode(encoded, a[:])
	return encoded, nil
}

// UnmarshalText decodes exactly 64 lowercase hex characters.
func (a *Array32) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return err
	}
	return a.SetBytes(decoded)
}

// MarshalCBOR encodes a as a CBOR byte string.
func (a Array32) MarshalCBOR() ([]byte, error) { return codec.MarshalByteString(a[:]) }

// UnmarshalCBOR decodes a CBOR byte string of exactly 32 bytes.
func (a *Array32) UnmarshalCBOR(data []byte) error {
	decoded, err := codec.UnmarshalByteString(data)
	if err != nil {
		return err
	}
	return a.SetBytes(decoded)
}
// Array64 is a fixed 64-byte value. Conversions from any other length
// fail with ErrInvalidLength.
type Array64 [64]byte

// AsBytes returns the bytes of a copy of a.
func (a Array64) AsBytes() []byte { return a[:] }

// SetBytes copies data into a. data must be exactly 64 bytes.
func (a *Array64) SetBytes(data []byte) error {
	if err := CheckLength(data, len(a)); err != nil {
		return err
	}
	copy(a[:], data)
	return nil
}

// AppendRawBytes appends a to buf.
func (a Array64) AppendRawBytes(buf []byte) []byte { return append(buf, a[:]...) }

// String returns the lowercase hex encoding.
func (a Array64) String() string { return hex.EncodeToString(a[:]) }

// MarshalText returns the lowercase hex encoding.
func (a Array64) MarshalText() ([]byte, error) {
	encoded := make([]byte, hex.EncodedLen(len(a)))
	hex.Encode(encoded, a[:])
	return encoded, nil
}

// UnmarshalText decodes exactly 128 lowercase hex characters.
func (a *Array64) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return err
	}
	return a.SetBytes(decoded)
}

// MarshalCBOR encodes a as a CBOR byte string.
func (a Array64) MarshalCBOR() ([]byte, error) { return codec.MarshalByteString(a[:]) }

// UnmarshalCBOR decodes a CBOR byte string of exactly 64 bytes.
func (a *Array64) UnmarshalCBOR(data []byte) error {
	decoded, err := codec.UnmarshalByteString(data)
	if err != nil {
		return err
	}
	return a.SetBytes(decoded)
}
