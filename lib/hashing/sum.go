// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/bureau-foundation/bytekit/lib/bytearray"
)

// Hashable is implemented by values that define their own digest.
// Implementations normally delegate to [Sum] or [SumAppender] so the
// digest covers exactly the canonical bytes.
type Hashable interface {
	Hash(h hash.Hash) Digest
}

// HashableOf adapts a ByteArray that has no Hash method of its own.
// The digest covers value.AsBytes(), exactly as [Sum] computes it.
func HashableOf(value bytearray.ByteArray) Hashable {
	return byteArrayHashable{value: value}
}

type byteArrayHashable struct {
	value bytearray.ByteArray
}

func (b byteArrayHashable) Hash(h hash.Hash) Digest { return Sum(b.value, h) }

// Sum resets h, writes value's canonical bytes and returns the digest.
func Sum(value bytearray.ByteArray, h hash.Hash) Digest {
	h.Reset()
	h.Write(value.AsBytes())
	return Digest{value: string(h.Sum(nil))}
}

// SumAppender resets h, writes the bytes value appends and returns the
// digest. Composite values define their canonical form this way.
func SumAppender(value bytearray.Appender, h hash.Hash) Digest {
	h.Reset()
	h.Write(value.AppendRawBytes(nil))
	return Digest{value: string(h.Sum(nil))}
}

// SumReader resets h and streams r through it. Memory use is constant
// regardless of input size.
func SumReader(r io.Reader, h hash.Hash) (Digest, error) {
	h.Reset()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	return Digest{value: string(h.Sum(nil))}, nil
}

// SumFile streams the file at path through h.
func SumFile(path string, h hash.Hash) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	digest, err := SumReader(file, h)
	if err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}
