// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hex

import (
	stdhex "encoding/hex"
	"errors"
	"fmt"
)

// Kind classifies a decoding failure.
type Kind int

const (
	// KindOddLength means the input had an odd number of characters.
	KindOddLength Kind = iota + 1

	// KindInvalidChar means the input contained a character outside
	// the lowercase hex alphabet.
	KindInvalidChar
)

// Sentinels for errors.Is. Every *Error unwraps to exactly one of these.
var (
	ErrOddLength   = errors.New("hex: odd length")
	ErrInvalidChar = errors.New("hex: invalid character")
)

// Error is returned by Decode and DecodeString.
type Error struct {
	Kind Kind

	// Position is the byte offset of the first invalid character.
	// Zero for KindOddLength.
	Position int

	// Char is the offending byte. Zero for KindOddLength.
	Char byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindOddLength:
		return "hex string lengths must be a multiple of 2"
	case KindInvalidChar:
		return fmt.Sprintf("only lowercase hexadecimal characters (0-9, a-f) are permitted: invalid byte %#02x at position %d", e.Char, e.Position)
	default:
		return "hex: unknown error"
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindOddLength:
		return ErrOddLength
	case KindInvalidChar:
		return ErrInvalidChar
	default:
		return nil
	}
}

// invalidNibble marks a byte that is not in the lowercase hex alphabet.
const invalidNibble = 0xff

// nibbles maps each input byte to its 4-bit value, or invalidNibble.
var nibbles [256]byte

func init() {
	for index := range nibbles {
		nibbles[index] = invalidNibble
	}
	for c := byte('0'); c <= '9'; c++ {
		nibbles[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		nibbles[c] = c - 'a' + 10
	}
}

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes encoded by x hex characters.
// The result is only meaningful when x is even.
func DecodedLen(x int) int { return x / 2 }

// Encode writes the lowercase hex encoding of src into dst and returns
// the number of bytes written, EncodedLen(len(src)). dst must be at
// least that long.
func Encode(dst, src []byte) int {
	return stdhex.Encode(dst, src)
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	return stdhex.EncodeToString(src)
}

// EncodeMultiple encodes each value independently.
func EncodeMultiple(values [][]byte) []string {
	result := make([]string, len(values))
	for index, value := range values {
		result[index] = EncodeToString(value)
	}
	return result
}

// Decode decodes src into dst and returns the number of bytes written,
// DecodedLen(len(src)). dst must be at least that long. On error dst
// may hold a prefix of the output and must be discarded.
func Decode(dst, src []byte) (int, error) {
	if len(src)%2 == 1 {
		return 0, &Error{Kind: KindOddLength}
	}
	for index := 0; index < len(src); index += 2 {
		high := nibbles[src[index]]
		if high == invalidNibble {
			return 0, &Error{Kind: KindInvalidChar, Position: index, Char: src[index]}
		}
		low := nibbles[src[index+1]]
		if low == invalidNibble {
			return 0, &Error{Kind: KindInvalidChar, Position: index + 1, Char: src[index+1]}
		}
		dst[index/2] = high<<4 | low
	}
	return len(src) / 2, nil
}

// DecodeString decodes the lowercase hex string s. The empty string
// decodes to an empty, non-nil slice.
func DecodeString(s string) ([]byte, error) {
	result := make([]byte, DecodedLen(len(s)))
	if _, err := Decode(result, []byte(s)); err != nil {
		return nil, err
	}
	return result, nil
}
