// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bits converts between bytes, bit slices and unsigned
// integers. Bit order is little-endian throughout: index 0 is the
// least significant bit.
package bits
