// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
	"github.com/bureau-foundation/bytekit/lib/testutil"
)

func TestHiddenEqual(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		a, b, c := Hide("secret123"), Hide("secret123"), Hide("secret124")
		if !a.Equal(b) || a.Equal(c) {
			t.Error("string equality wrong")
		}
		if a.Equal(Hide("secret")) {
			t.Error("strings of different lengths compared equal")
		}
	})

	t.Run("bytes", func(t *testing.T) {
		a, b, c := Hide([]byte{1, 2, 3}), Hide([]byte{1, 2, 3}), Hide([]byte{1, 2})
		if !a.Equal(b) || a.Equal(c) {
			t.Error("byte slice equality wrong")
		}
	})

	t.Run("byte array", func(t *testing.T) {
		a := Hide(bytearray.Array16{1})
		b := Hide(bytearray.Array16{1})
		c := Hide(bytearray.Array16{2})
		if !a.Equal(b) || a.Equal(c) {
			t.Error("byte array equality wrong")
		}
	})

	t.Run("equal method", func(t *testing.T) {
		a, b := Hide(caseInsensitive("Token")), Hide(caseInsensitive("TOKEN"))
		if !a.Equal(b) {
			t.Error("Equal method was not used")
		}
	})

	t.Run("deep equal fallback", func(t *testing.T) {
		type pair struct {
			key   string
			value []int
		}
		a := Hide(pair{"k", []int{1, 2}})
		b := Hide(pair{"k", []int{1, 2}})
		c := Hide(pair{"k", []int{1, 3}})
		if !a.Equal(b) || a.Equal(c) {
			t.Error("fallback equality wrong")
		}
	})

	t.Run("self", func(t *testing.T) {
		a := Hide(42)
		if !a.Equal(a) {
			t.Error("value is not equal to itself")
		}
	})
}

func TestHiddenEqualMixedDynamicTypes(t *testing.T) {
	tests := []struct {
		name string
		a, b *Hidden[any]
		want bool
	}{
		{"same bytes", Hide[any](bytearray.Bytes("x")), Hide[any](bytearray.Bytes("x")), true},
		{"byte array against int", Hide[any](bytearray.Bytes("x")), Hide[any](42), false},
		{"int against byte array", Hide[any](42), Hide[any](bytearray.Bytes("x")), false},
		{"byte array against nil", Hide[any](bytearray.Bytes("x")), Hide[any](nil), false},
		{"nil against byte array", Hide[any](nil), Hide[any](bytearray.Bytes("x")), false},
		{"nil against nil", Hide[any](nil), Hide[any](nil), true},
		{"different byte array types", Hide[any](bytearray.Bytes{1}), Hide[any](bytearray.Array16{1}), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.want {
				t.Errorf("Equal = %v, want %v", got, test.want)
			}
		})
	}
}

func TestHiddenEqualInterfaceAndNilPointers(t *testing.T) {
	present := Hide[bytearray.ByteArray](bytearray.Bytes("x"))
	absent := Hide[bytearray.ByteArray](nil)
	if present.Equal(absent) || absent.Equal(present) {
		t.Error("present value compared equal to nil")
	}
	if !absent.Equal(Hide[bytearray.ByteArray](nil)) {
		t.Error("nil values compared unequal")
	}

	password, err := NewPassword("hunter2")
	if err != nil {
		t.Fatalf("NewPassword: %v", err)
	}
	defer password.Close()
	var missing *SafePassword
	if Hide(missing).Equal(Hide(password)) || Hide(password).Equal(Hide(missing)) {
		t.Error("nil password compared equal to a password")
	}
	if !Hide(missing).Equal(Hide(missing)) {
		t.Error("nil passwords compared unequal")
	}
}

func TestHiddenEqualConcurrentClose(t *testing.T) {
	a := Hide([]byte("secret123"))
	b := Hide([]byte("secret123"))

	var group sync.WaitGroup
	for range 8 {
		group.Add(1)
		go func() {
			defer group.Done()
			defer func() { recover() }()
			if !a.Equal(b) {
				t.Error("Equal observed a partially wiped value")
			}
			if !b.Equal(a) {
				t.Error("Equal observed a partially wiped value")
			}
		}()
	}
	a.Close()
	b.Close()
	testutil.RequireReturns(t, 5*time.Second, "Equal goroutines finishing", group.Wait)
}

type caseInsensitive string

func (c caseInsensitive) Equal(other caseInsensitive) bool {
	return len(c) == len(other) && toUpper(string(c)) == toUpper(string(other))
}

func toUpper(s string) string {
	result := []byte(s)
	for index, character := range result {
		if character >= 'a' && character <= 'z' {
			result[index] = character - 'a' + 'A'
		}
	}
	return string(result)
}

func TestHiddenRevealMutates(t *testing.T) {
	hidden := Hide(1)
	defer hidden.Close()

	*hidden.Reveal() = 2
	if *hidden.Reveal() != 2 {
		t.Errorf("Reveal = %d, want 2", *hidden.Reveal())
	}

	hidden.Use(func(value *int) { *value++ })
	if *hidden.Reveal() != 3 {
		t.Errorf("after Use, Reveal = %d, want 3", *hidden.Reveal())
	}
}

func TestHiddenCloseZeroesBytes(t *testing.T) {
	key := []byte("secret123")
	hidden := Hide(key)
	hidden.Close()

	for index, value := range key {
		if value != 0 {
			t.Fatalf("byte %d not zeroed after Close: %d", index, value)
		}
	}
}

func TestHiddenCloseZeroesNamedByteSlices(t *testing.T) {
	key := bytearray.Bytes("secret123")
	hidden := Hide(key)
	hidden.Close()
	if !bytes.Equal(key, make([]byte, len(key))) {
		t.Errorf("backing array after Close = %q, want zeros", []byte(key))
	}

	boxed := bytearray.Bytes("secret456")
	Hide[any](boxed).Close()
	if !bytes.Equal(boxed, make([]byte, len(boxed))) {
		t.Errorf("backing array behind interface after Close = %q, want zeros", []byte(boxed))
	}

	Hide[any](nil).Close()
}

type keyMaterial struct {
	seed    []byte
	wiped   *bool
	counter int
}

func (k *keyMaterial) Zeroize() {
	Zero(k.seed)
	*k.wiped = true
}

func TestHiddenCloseCallsZeroizer(t *testing.T) {
	wiped := false
	seed := []byte{9, 9, 9}
	hidden := Hide(keyMaterial{seed: seed, wiped: &wiped, counter: 7})
	box := hidden.box

	if err := hidden.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !wiped {
		t.Error("Zeroize was not called")
	}
	if seed[0] != 0 || seed[2] != 0 {
		t.Errorf("seed not zeroed: %v", seed)
	}
	if box.counter != 0 || box.seed != nil {
		t.Errorf("value not reset to zero: %+v", *box)
	}
}

func TestHiddenCloseIdempotent(t *testing.T) {
	calls := 0
	hidden := Hide(zeroCounter{calls: &calls})
	hidden.Close()
	hidden.Close()
	if calls != 1 {
		t.Errorf("Zeroize called %d times, want 1", calls)
	}
}

type zeroCounter struct{ calls *int }

func (z zeroCounter) Zeroize() { *z.calls++ }

func TestHiddenPanicsAfterClose(t *testing.T) {
	hidden := Hide("value")
	hidden.Close()

	for name, operation := range map[string]func(){
		"Reveal": func() { hidden.Reveal() },
		"Use":    func() { hidden.Use(func(*string) {}) },
		"Equal":  func() { hidden.Equal(Hide("value")) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic on %s after Close", name)
				}
			}()
			operation()
		})
	}
}

func TestDo(t *testing.T) {
	key := []byte("secret123")
	var captured *Hidden[[]byte]

	err := Do(key, func(hidden *Hidden[[]byte]) error {
		captured = hidden
		if string(*hidden.Reveal()) != "secret123" {
			t.Errorf("Reveal inside Do = %q", *hidden.Reveal())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !captured.closed {
		t.Error("Do did not close the value")
	}
	if key[0] != 0 {
		t.Error("Do did not zero the bytes")
	}
}

func TestDoClosesOnError(t *testing.T) {
	failure := errors.New("handshake failed")
	var captured *Hidden[string]

	err := Do("token", func(hidden *Hidden[string]) error {
		captured = hidden
		return failure
	})
	if !errors.Is(err, failure) {
		t.Errorf("Do error = %v, want %v", err, failure)
	}
	if !captured.closed {
		t.Error("Do did not close the value after an error")
	}
}

func TestDoClosesOnPanic(t *testing.T) {
	var captured *Hidden[string]

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic did not propagate out of Do")
			}
		}()
		Do("token", func(hidden *Hidden[string]) error {
			captured = hidden
			panic("boom")
		})
	}()

	if !captured.closed {
		t.Error("Do did not close the value after a panic")
	}
}

func TestHiddenConcurrentUseAndClose(t *testing.T) {
	hidden := Hide([]byte("secret123"))

	var group sync.WaitGroup
	for range 8 {
		group.Add(1)
		go func() {
			defer group.Done()
			defer func() { recover() }()
			hidden.Use(func(value *[]byte) {
				if len(*value) != 9 {
					t.Errorf("observed partially wiped value: %v", *value)
				}
			})
		}()
	}
	hidden.Close()
	testutil.RequireReturns(t, 5*time.Second, "Use goroutines finishing", group.Wait)
}
