// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"log/slog"
	"sync"
)

// SafePassword holds a password or similar text secret in a [Buffer].
// It redacts itself on every formatting, logging and serialization
// path, and it deliberately has no byte-array or hashing interface:
// the only ways to read the text are [SafePassword.Reveal] and
// [SafePassword.RevealString].
//
// The zero value is an empty placeholder for decoding, populated by
// UnmarshalText. Reading an empty or closed SafePassword panics.
type SafePassword struct {
	mu     sync.Mutex
	buffer *Buffer
}

// NewPassword copies text into protected memory. The string itself is
// immutable and cannot be wiped, so prefer [NewPasswordFromBytes] or
// [ReadPassword] when the source is under the caller's control.
func NewPassword(text string) (*SafePassword, error) {
	if text == "" {
		return nil, fmt.Errorf("secret: password: %w", ErrEmpty)
	}
	buffer, err := New(len(text))
	if err != nil {
		return nil, err
	}
	copy(buffer.data, text)
	return &SafePassword{buffer: buffer}, nil
}

// NewPasswordFromBytes moves source into protected memory and zeroes
// source.
func NewPasswordFromBytes(source []byte) (*SafePassword, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: password: %w", ErrEmpty)
	}
	buffer, err := NewFromBytes(source)
	if err != nil {
		return nil, err
	}
	return &SafePassword{buffer: buffer}, nil
}

// ReadPassword reads a password from a file, or from the first line of
// stdin if path is "-". Surrounding whitespace is trimmed.
func ReadPassword(path string) (*SafePassword, error) {
	buffer, err := ReadFromPath(path)
	if err != nil {
		return nil, err
	}
	return &SafePassword{buffer: buffer}, nil
}

func (p *SafePassword) current() *Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buffer == nil {
		panic("secret: read from empty password")
	}
	return p.buffer
}

// Reveal returns the password bytes. The slice points into protected
// memory and is invalid after Close.
func (p *SafePassword) Reveal() []byte { return p.current().Bytes() }

// RevealString returns a heap copy of the password for APIs that
// require a string.
func (p *SafePassword) RevealString() string { return p.current().RevealString() }

// Len returns the password length in bytes.
func (p *SafePassword) Len() int { return p.current().Len() }

// Equal compares two passwords in constant time.
func (p *SafePassword) Equal(other *SafePassword) bool {
	return p.current().Equal(other.current())
}

// Close wipes and releases the password. Close is idempotent.
func (p *SafePassword) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buffer == nil {
		return nil
	}
	return p.buffer.Close()
}

// UnmarshalText loads a password from a text decoder such as a JSON or
// YAML config. The decoder's own copies of the input are outside this
// package's reach. Any previous password is released.
func (p *SafePassword) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return fmt.Errorf("secret: password: %w", ErrEmpty)
	}
	buffer, err := New(len(text))
	if err != nil {
		return err
	}
	copy(buffer.data, text)

	p.mu.Lock()
	previous := p.buffer
	p.buffer = buffer
	p.mu.Unlock()
	if previous != nil {
		previous.Close()
	}
	return nil
}

// String returns [RedactionMarker].
func (p *SafePassword) String() string { return RedactionMarker }

// GoString returns [RedactionMarker].
func (p *SafePassword) GoString() string { return RedactionMarker }

// Format prints [RedactionMarker] for every verb and flag.
func (p *SafePassword) Format(state fmt.State, verb rune) { writeMarker(state) }

// LogValue implements [slog.LogValuer].
func (p *SafePassword) LogValue() slog.Value { return slog.StringValue(RedactionMarker) }

// MarshalText returns [RedactionMarker].
func (p *SafePassword) MarshalText() ([]byte, error) { return []byte(RedactionMarker), nil }

// MarshalCBOR encodes [RedactionMarker] as a CBOR text string.
func (p *SafePassword) MarshalCBOR() ([]byte, error) { return marshalMarkerCBOR() }
