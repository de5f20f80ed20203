// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

import (
	"encoding/binary"
	"time"
	"unsafe"
)

// Appender is implemented by values that can append their raw bytes to
// a buffer. Composite values implement it by appending each field in a
// fixed order with the helpers below.
type Appender interface {
	AppendRawBytes(buf []byte) []byte
}

// Integer is the set of fixed-width integer types AppendInt accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AppendInt appends v in little-endian order using its in-memory width
// (int and uint are 8 bytes on 64-bit platforms).
func AppendInt[T Integer](buf []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(buf, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
}

// AppendString appends the UTF-8 bytes of s with no length prefix.
func AppendString(buf []byte, s string) []byte {
	return append(buf, s...)
}

// AppendBool appends 1 for true and 0 for false.
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// AppendTime appends t as little-endian signed Unix seconds.
func AppendTime(buf []byte, t time.Time) []byte {
	return AppendInt(buf, t.Unix())
}

// AppendAll appends each item in order.
func AppendAll[T Appender](buf []byte, items []T) []byte {
	for _, item := range items {
		buf = item.AppendRawBytes(buf)
	}
	return buf
}
