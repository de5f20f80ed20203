// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides bytekit's shared CBOR configuration.
//
// bytekit types pick their serialized form by format class:
//
//   - Human-readable formats (JSON, YAML, CLI output) see a byte value
//     as lowercase hex text, via encoding.TextMarshaler.
//   - Binary formats (CBOR) see it as a CBOR byte string (major type
//     2), via the cbor.Marshaler methods that call into this package.
//   - Secret wrappers see neither: every format receives the redaction
//     marker as a text string.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same logical value always produces the same bytes and can be hashed
// or compared directly. Types implementing encoding.TextMarshaler
// without a CBOR method are written as CBOR text strings.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// [MarshalByteString] and [UnmarshalByteString] are the helpers the
// byte-array types use to implement cbor.Marshaler and
// cbor.Unmarshaler without importing fxamacker/cbor themselves.
package codec
