// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bits

import "math/bits"

// ByteToBits returns the 8 bits of value, least significant first.
func ByteToBits(value byte) [8]bool {
	var result [8]bool
	for index := range result {
		result[index] = value&(1<<index) != 0
	}
	return result
}

// BytesToBits returns 8 bits per input byte, each byte least
// significant bit first, bytes in input order.
func BytesToBits(data []byte) []bool {
	result := make([]bool, 0, len(data)*8)
	for _, value := range data {
		expanded := ByteToBits(value)
		result = append(result, expanded[:]...)
	}
	return result
}

// CheckedBitsToUint assembles a little-endian bit slice into a uint.
// It reports false when there are more bits than a uint holds.
func CheckedBitsToUint(input []bool) (uint, bool) {
	if len(input) > bits.UintSize {
		return 0, false
	}
	var value uint
	for index, set := range input {
		if set {
			value |= 1 << index
		}
	}
	return value, true
}
