// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hashing computes digests over the canonical byte form of
// values.
//
// A value is hashed by feeding exactly its [bytearray.ByteArray] bytes
// (or, for composite values, the bytes its [bytearray.Appender] writes)
// into a caller-supplied [hash.Hash]. Equal values therefore produce
// equal digests under the same algorithm. No collision resistance is
// claimed beyond what the algorithm itself provides.
//
// [Digest] is the algorithm-independent result: an immutable,
// comparable byte string that formats as lowercase hex, marshals as
// hex in text formats and as a byte string in CBOR, and converts to
// and from a self-describing multihash.
//
// [Algorithm] names the supported hash functions. [NewKeyed] builds a
// BLAKE3 keyed hasher for domain-separated hashing, where the same
// input bytes must hash differently in different contexts.
package hashing
