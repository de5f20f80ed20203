// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bureau-foundation/bytekit/lib/hex"
)

// ByteArray is implemented by values with a canonical flat byte form.
// The returned slice must not be modified by the caller.
type ByteArray interface {
	AsBytes() []byte
}

// Pointer constrains *T to a ByteArray that can be loaded from bytes.
// SetBytes must reject input the type cannot represent exactly, with a
// *ConversionError, and must leave the receiver unchanged on failure.
type Pointer[T any] interface {
	*T
	ByteArray
	SetBytes(b []byte) error
}

// Kind classifies a conversion failure.
type Kind int

const (
	// KindInvalidLength means the input had the wrong number of bytes
	// for the target type.
	KindInvalidLength Kind = iota + 1

	// KindInvalidValue means the input had the right length but a bit
	// pattern the target type does not accept.
	KindInvalidValue
)

// Sentinels for errors.Is. Every *ConversionError unwraps to one.
var (
	ErrInvalidLength = errors.New("bytearray: invalid length")
	ErrInvalidValue  = errors.New("bytearray: invalid value")
)

// ConversionError is returned by SetBytes implementations and the
// generic helpers in this package.
type ConversionError struct {
	Kind Kind

	// Expected and Actual are byte counts, set for KindInvalidLength.
	Expected int
	Actual   int

	// Reason describes a KindInvalidValue failure.
	Reason string
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return fmt.Sprintf("the input data was the incorrect length to perform the desired conversion: got %d bytes, want %d", e.Actual, e.Expected)
	case KindInvalidValue:
		return "could not convert from a different format: " + e.Reason
	default:
		return "bytearray: unknown conversion error"
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *ConversionError) Unwrap() error {
	switch e.Kind {
	case KindInvalidLength:
		return ErrInvalidLength
	case KindInvalidValue:
		return ErrInvalidValue
	default:
		return nil
	}
}

// LengthError reports that actual bytes were supplied where expected
// were required.
func LengthError(expected, actual int) *ConversionError {
	return &ConversionError{Kind: KindInvalidLength, Expected: expected, Actual: actual}
}

// ValueError reports a bit pattern the target type rejects.
func ValueError(format string, args ...any) *ConversionError {
	return &ConversionError{Kind: KindInvalidValue, Reason: fmt.Sprintf(format, args...)}
}

// CheckLength returns a LengthError unless len(b) == n.
func CheckLength(b []byte, n int) error {
	if len(b) != n {
		return LengthError(n, len(b))
	}
	return nil
}

// FromBytes converts b to a T. The input is copied; the result does not
// alias b.
func FromBytes[T any, P Pointer[T]](b []byte) (T, error) {
	var value T
	if err := P(&value).SetBytes(b); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// FromHex decodes a lowercase hex string and converts the bytes to a T.
// Hex failures are returned as *hex.Error, conversion failures as
// *ConversionError.
func FromHex[T any, P Pointer[T]](s string) (T, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromBytes[T, P](decoded)
}

// ToHex returns the lowercase hex encoding of v's bytes.
func ToHex(v ByteArray) string {
	return hex.EncodeToString(v.AsBytes())
}

// ToVec returns an owned copy of v's bytes. The result is never nil.
func ToVec(v ByteArray) []byte {
	source := v.AsBytes()
	result := make([]byte, len(source))
	copy(result, source)
	return result
}

// Equal reports whether a and b have identical canonical bytes. It is
// not constant time; secret comparisons go through lib/secret.
func Equal(a, b ByteArray) bool {
	return bytes.Equal(a.AsBytes(), b.AsBytes())
}
