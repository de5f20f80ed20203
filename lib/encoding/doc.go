// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package encoding renders ByteArray values in text encodings other
// than hex: base58 (Bitcoin alphabet), base64 and self-describing
// multibase.
//
// Decoders convert through [bytearray.FromBytes], so a decoded value
// of the wrong length fails with [bytearray.ErrInvalidLength] exactly
// as it would from raw bytes.
package encoding
