// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package epochtime provides EpochTime, a whole-second timestamp with
// a fixed 8-byte canonical form.
//
// The canonical bytes are the seconds count as a little-endian uint64.
// That form is what [EpochTime.AsBytes] returns and what
// [EpochTime.Hash] digests. The text form is the decimal seconds count.
package epochtime
