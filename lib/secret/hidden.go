// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"sync"
	"unsafe"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
)

// Hidden wraps a value of any type so that it cannot be printed,
// logged or serialized by accident, and is wiped when released.
//
// The wrapped value lives in a private heap cell. Close (or a GC
// cleanup if Close is never called, whichever comes first, exactly
// once) wipes it: a [Zeroizer] is asked to clear what it owns, the
// contents of a byte slice (including named types such as
// [bytearray.Bytes]) are zeroed, then the value is overwritten with its
// zero value.
//
// Hide copies its argument into the cell. Copies the caller keeps are
// the caller's responsibility. A byte slice shares its backing array
// with the caller, so that array is zeroed too. Go strings are immutable:
// Hidden[string] drops its reference on Close but cannot wipe the
// bytes. Use [SafePassword] or [Buffer] for text that must be wiped.
//
// After Close, Reveal and Use panic.
type Hidden[T any] struct {
	mu      sync.Mutex
	box     *T
	closed  bool
	cleanup runtime.Cleanup
}

// Hide wraps value.
func Hide[T any](value T) *Hidden[T] {
	box := new(T)
	*box = value
	hidden := &Hidden[T]{box: box}
	hidden.cleanup = runtime.AddCleanup(hidden, wipe[T], box)
	return hidden
}

func wipe[T any](box *T) {
	if zeroizer, ok := any(box).(Zeroizer); ok {
		zeroizer.Zeroize()
	} else if zeroizer, ok := any(*box).(Zeroizer); ok {
		zeroizer.Zeroize()
	}
	zeroByteSlice(reflect.ValueOf(box).Elem())
	var zero T
	*box = zero
}

// zeroByteSlice zeroes the backing array of value when it is a slice
// with byte elements, looking through one level of interface.
func zeroByteSlice(value reflect.Value) {
	if value.Kind() == reflect.Interface {
		if value.IsNil() {
			return
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
		Zero(value.Bytes())
	}
}

// Reveal returns a pointer to the wrapped value. Writes through the
// pointer change the wrapped value. The pointer must not be retained
// past Close, nor past the last use of h: an unreachable Hidden is
// wiped by its cleanup.
func (h *Hidden[T]) Reveal() *T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		panic("secret: reveal of closed Hidden value")
	}
	return h.box
}

// Use calls fn with the wrapped value while holding the lock, so a
// concurrent Close waits for fn to return.
func (h *Hidden[T]) Use(fn func(value *T)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		panic("secret: use of closed Hidden value")
	}
	fn(h.box)
}

// Equal compares the wrapped values while holding both locks, so a
// concurrent Close waits for the comparison. The comparison runs in
// constant time (for equal lengths) when T is []byte, string or
// implements [bytearray.ByteArray]. Otherwise it delegates to an
// Equal(T) bool method when T has one, and falls back to
// [reflect.DeepEqual], which is NOT constant time. Values of different
// dynamic types are unequal.
func (h *Hidden[T]) Equal(other *Hidden[T]) bool {
	if h == other {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			panic("secret: comparison of closed Hidden value")
		}
		return true
	}

	first, second := h, other
	if uintptr(unsafe.Pointer(second)) < uintptr(unsafe.Pointer(first)) {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()
	if h.closed || other.closed {
		panic("secret: comparison of closed Hidden value")
	}
	return equalValues(h.box, other.box)
}

func equalValues[T any](a, b *T) bool {
	switch first := any(a).(type) {
	case *[]byte:
		return subtle.ConstantTimeCompare(*first, *any(b).(*[]byte)) == 1
	case *string:
		return constantTimeEqualString(*first, *any(b).(*string))
	}
	if isNil(any(*a)) || isNil(any(*b)) {
		return reflect.DeepEqual(*a, *b)
	}
	if first, ok := any(*a).(bytearray.ByteArray); ok {
		second, ok := any(*b).(bytearray.ByteArray)
		if !ok || reflect.TypeOf(first) != reflect.TypeOf(second) {
			return false
		}
		return subtle.ConstantTimeCompare(first.AsBytes(), second.AsBytes()) == 1
	}
	if first, ok := any(*a).(interface{ Equal(T) bool }); ok {
		return first.Equal(*b)
	}
	return reflect.DeepEqual(*a, *b)
}

// isNil reports whether value is nil or a nil pointer, map, channel
// or function. Nil slices are left to the comparisons above, which
// treat them as empty.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch reflected := reflect.ValueOf(value); reflected.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		return reflected.IsNil()
	}
	return false
}

// constantTimeEqualString avoids the []byte conversions that would
// copy both strings onto the heap.
func constantTimeEqualString(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var difference byte
	for index := 0; index < len(a); index++ {
		difference |= a[index] ^ b[index]
	}
	return subtle.ConstantTimeByteEq(difference, 0) == 1
}

// Close wipes the wrapped value. Close is idempotent and always
// returns nil.
func (h *Hidden[T]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.cleanup.Stop()
	wipe(h.box)
	h.box = nil
	return nil
}

// String returns [RedactionMarker].
func (h *Hidden[T]) String() string { return RedactionMarker }

// GoString returns [RedactionMarker].
func (h *Hidden[T]) GoString() string { return RedactionMarker }

// Format prints [RedactionMarker] for every verb and flag.
func (h *Hidden[T]) Format(state fmt.State, verb rune) { writeMarker(state) }

// LogValue implements [slog.LogValuer].
func (h *Hidden[T]) LogValue() slog.Value { return slog.StringValue(RedactionMarker) }

// MarshalText returns [RedactionMarker], for JSON, YAML and other text
// encoders.
func (h *Hidden[T]) MarshalText() ([]byte, error) { return []byte(RedactionMarker), nil }

// MarshalCBOR encodes [RedactionMarker] as a CBOR text string.
func (h *Hidden[T]) MarshalCBOR() ([]byte, error) { return marshalMarkerCBOR() }

// Do hides value, passes it to fn and closes it when fn returns, even
// if fn fails or panics. Returns fn's error.
func Do[T any](value T, fn func(hidden *Hidden[T]) error) error {
	hidden := Hide(value)
	defer hidden.Close()
	return fn(hidden)
}
