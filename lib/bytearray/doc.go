// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytearray defines the contract between a value and its flat
// byte representation, and the byte types that implement it.
//
// A type takes part by implementing [ByteArray] (AsBytes) on its value
// and SetBytes on its pointer. SetBytes is where the type enforces its
// own length and validity rules: a fixed-size type rejects any other
// length with [ErrInvalidLength], and a type with a validity predicate
// rejects bad bit patterns with [ErrInvalidValue]. Nothing is ever
// truncated or zero-filled. The generic helpers build on that pair:
//
//	key, err := bytearray.FromBytes[bytearray.Array32](raw)
//	key, err = bytearray.FromHex[bytearray.Array32](text)
//	text := bytearray.ToHex(key)
//
// Every conforming type satisfies FromBytes(AsBytes(x)) == x.
//
// Concrete types: [Bytes] (any length), [Array16], [Array32] and
// [Array64] (fixed length). Each marshals to lowercase hex in
// human-readable formats (encoding.TextMarshaler, so JSON and YAML)
// and to a CBOR byte string in binary formats (via lib/codec).
//
// [Appender] and the Append helpers build canonical byte sequences for
// composite values (integers little-endian, strings as raw UTF-8,
// booleans as one byte, times as little-endian Unix seconds), which is
// what lib/hashing feeds to a hash function.
package bytearray
