// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package epochtime

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"strconv"
	"time"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/clock"
	"github.com/bureau-foundation/bytekit/lib/hashing"
)

// Size is the length of the canonical byte form.
const Size = 8

// EpochTime counts whole seconds since 1970-01-01T00:00:00Z. Values
// above math.MaxInt64 cannot be represented as a time.Time and are
// rejected by every constructor.
type EpochTime uint64

// Now returns the current time from c, truncated to whole seconds.
// Clocks set before the epoch yield zero.
func Now(c clock.Clock) EpochTime {
	seconds := c.Now().Unix()
	if seconds < 0 {
		return 0
	}
	return EpochTime(seconds)
}

// FromTime converts t, truncating to whole seconds. Times before the
// epoch are rejected.
func FromTime(t time.Time) (EpochTime, error) {
	seconds := t.Unix()
	if seconds < 0 {
		return 0, bytearray.ValueError("time %s is before the Unix epoch", t.UTC().Format(time.RFC3339))
	}
	return EpochTime(seconds), nil
}

// Time returns e as a UTC time.Time.
func (e EpochTime) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

// Uint64 returns the number of seconds.
func (e EpochTime) Uint64() uint64 { return uint64(e) }

// String returns the decimal seconds count.
func (e EpochTime) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// AsBytes returns the 8-byte little-endian seconds count.
func (e EpochTime) AsBytes() []byte {
	return e.AppendRawBytes(make([]byte, 0, Size))
}

// AppendRawBytes appends the 8-byte little-endian seconds count.
func (e EpochTime) AppendRawBytes(buf []byte) []byte {
	return bytearray.AppendInt(buf, uint64(e))
}

// Hash implements [hashing.Hashable] over the 8-byte canonical form.
func (e EpochTime) Hash(h hash.Hash) hashing.Digest { return hashing.SumAppender(e, h) }

// SetBytes decodes an 8-byte little-endian seconds count.
func (e *EpochTime) SetBytes(data []byte) error {
	if err := bytearray.CheckLength(data, Size); err != nil {
		return err
	}
	value := binary.LittleEndian.Uint64(data)
	if value > math.MaxInt64 {
		return bytearray.ValueError("epoch seconds %d exceed the representable range", value)
	}
	*e = EpochTime(value)
	return nil
}

// MarshalText returns the decimal seconds count.
func (e EpochTime) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses a decimal seconds count.
func (e *EpochTime) UnmarshalText(text []byte) error {
	value, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing epoch time: %w", err)
	}
	if value > math.MaxInt64 {
		return bytearray.ValueError("epoch seconds %d exceed the representable range", value)
	}
	*e = EpochTime(value)
	return nil
}
