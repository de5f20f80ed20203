// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrEmpty is returned when a secret source holds no data.
var ErrEmpty = errors.New("secret is empty")

// ErrTooLarge is returned by NewFromReader when the source exceeds
// its limit.
var ErrTooLarge = errors.New("secret exceeds size limit")

// Buffer holds sensitive data in memory that is locked against swapping,
// excluded from core dumps, and zeroed on close. The backing memory is
// allocated via mmap outside the Go heap.
//
// A Buffer must not be copied after creation. Use Close to release the
// memory when the secret is no longer needed. After Close, any access
// to the buffer's contents will panic. A Buffer that becomes
// unreachable without being closed is zeroed and released by a GC
// cleanup.
//
// Every formatting, logging and serialization path prints
// [RedactionMarker]. Only [Buffer.Bytes], [Buffer.Reveal] and
// [Buffer.RevealString] return the contents.
type Buffer struct {
	mu      sync.Mutex
	data    []byte
	length  int
	closed  bool
	cleanup runtime.Cleanup
}

// New allocates a new secret buffer of the given size. The buffer is
// backed by an anonymous mmap region that is:
//   - Locked into physical RAM (mlock), preventing swap
//   - Excluded from core dumps (MADV_DONTDUMP)
//   - Outside the Go heap, invisible to the garbage collector
//
// The caller must call Close when the secret is no longer needed.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	buffer := &Buffer{
		data:   data,
		length: size,
	}
	buffer.cleanup = runtime.AddCleanup(buffer, func(data []byte) { release(data) }, data)
	return buffer, nil
}

// release zeroes and unmaps a region. It must not reference the
// owning Buffer, or the cleanup would keep it reachable.
func release(data []byte) error {
	Zero(data)
	var firstError error
	if err := unix.Munlock(data); err != nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}
	return firstError
}

// NewFromBytes creates a secret buffer from existing data. The source
// bytes are copied into the protected region and then zeroed in place,
// so the caller's original slice no longer holds the secret.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: cannot create buffer from empty source")
	}
	buffer, err := New(len(source))
	if err != nil {
		return nil, err
	}
	copy(buffer.data, source)
	Zero(source)
	return buffer, nil
}

// NewFromReader reads all of r into a secret buffer. Input is staged
// in protected memory sized to limit, so no heap copy of the secret
// is made. Returns [ErrEmpty] when r yields no bytes and [ErrTooLarge]
// when it yields more than limit.
func NewFromReader(r io.Reader, limit int) (*Buffer, error) {
	staging, err := New(limit)
	if err != nil {
		return nil, err
	}
	defer staging.Close()

	count, err := io.ReadFull(r, staging.data)
	switch {
	case err == nil:
		var probe [1]byte
		extra, _ := io.ReadFull(r, probe[:])
		Zero(probe[:])
		if extra > 0 {
			return nil, fmt.Errorf("secret: reading: %w (%d bytes)", ErrTooLarge, limit)
		}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		return nil, fmt.Errorf("secret: reading: %w", err)
	}
	if count == 0 {
		return nil, ErrEmpty
	}
	return NewFromBytes(staging.data[:count])
}

// Bytes returns the secret data. The returned slice points directly into
// the mmap region. Do not hold references to it beyond the lifetime of
// the Buffer. Panics if the buffer has been closed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.data[:b.length]
}

// Reveal returns the same slice as Bytes.
func (b *Buffer) Reveal() []byte {
	return b.Bytes()
}

// RevealString returns the secret data as a string. The returned string
// is backed by a heap-allocated copy (Go strings are immutable and must
// live on the heap), so this should only be used at API boundaries
// that require string arguments. Prefer Bytes when possible.
//
// Panics if the buffer has been closed.
func (b *Buffer) RevealString() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	return string(b.data[:b.length])
}

// Len returns the size of the secret data.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.length
}

// Equal reports whether b and other hold the same bytes, in time that
// depends only on the lengths. Panics if either buffer is closed.
func (b *Buffer) Equal(other *Buffer) bool {
	return other.EqualBytes(b.Bytes())
}

// EqualBytes compares the secret with data in constant time.
func (b *Buffer) EqualBytes(data []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	return subtle.ConstantTimeCompare(b.data[:b.length], data) == 1
}

// WriteTo writes the secret to w directly from protected memory.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	written, err := w.Write(b.data[:b.length])
	return int64(written), err
}

// String returns [RedactionMarker].
func (b *Buffer) String() string { return RedactionMarker }

// GoString returns [RedactionMarker].
func (b *Buffer) GoString() string { return RedactionMarker }

// Format prints [RedactionMarker] for every verb.
func (b *Buffer) Format(state fmt.State, verb rune) { writeMarker(state) }

// LogValue implements [slog.LogValuer].
func (b *Buffer) LogValue() slog.Value { return slog.StringValue(RedactionMarker) }

// MarshalText returns [RedactionMarker], for JSON, YAML and other text
// encoders.
func (b *Buffer) MarshalText() ([]byte, error) { return []byte(RedactionMarker), nil }

// MarshalCBOR encodes [RedactionMarker] as a CBOR text string.
func (b *Buffer) MarshalCBOR() ([]byte, error) { return marshalMarkerCBOR() }

// Close zeros the buffer contents, unlocks and unmaps the memory.
// After Close, any access to the buffer's Bytes() will panic.
// Close is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.cleanup.Stop()

	err := release(b.data)
	b.data = nil
	return err
}
