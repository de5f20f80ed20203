// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hex converts between byte sequences and lowercase hexadecimal
// text. This is the only textual wire format bytekit defines, and
// callers elsewhere compare hex strings case-sensitively, so the codec
// is strict in both directions:
//
//   - [Encode] and [EncodeToString] always produce lowercase output of
//     length 2*len(src), high nibble first.
//   - [Decode] and [DecodeString] accept only 0-9 and a-f. Odd-length
//     input fails with [ErrOddLength]. Any other character, including
//     uppercase A-F, whitespace and a "0x" prefix, fails with
//     [ErrInvalidChar] at the byte offset of the first offender.
//
// Failures are returned as *[Error], which carries the [Kind] and, for
// invalid characters, the position and offending byte. Decoding never
// skips bad input or returns a partial result.
//
// Both directions run in linear time with a single output allocation,
// so multi-megabyte inputs are fine. There is no size cap.
//
// This package has no dependencies on other bytekit packages.
package hex
