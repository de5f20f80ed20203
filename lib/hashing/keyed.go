// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// DomainKeySize is the BLAKE3 key length.
const DomainKeySize = 32

// DomainKey returns the BLAKE3 key for a domain name: the ASCII bytes
// of the name, zero-padded to 32 bytes. Readable keys show up plainly
// in hex dumps. Names must be non-empty printable ASCII of at most 32
// bytes.
func DomainKey(domain string) ([DomainKeySize]byte, error) {
	var key [DomainKeySize]byte
	if domain == "" {
		return key, fmt.Errorf("hash domain must not be empty")
	}
	if len(domain) > DomainKeySize {
		return key, fmt.Errorf("hash domain %q is %d bytes, maximum is %d", domain, len(domain), DomainKeySize)
	}
	for index := 0; index < len(domain); index++ {
		character := domain[index]
		if character < 0x21 || character > 0x7e {
			return key, fmt.Errorf("hash domain %q: invalid byte %#02x at position %d", domain, character, index)
		}
	}
	copy(key[:], domain)
	return key, nil
}

// NewKeyed returns a BLAKE3 hasher keyed by the domain's key. The
// same input produces unrelated digests under different domains.
// Reset returns the hasher to its keyed initial state.
func NewKeyed(domain string) (hash.Hash, error) {
	key, err := DomainKey(domain)
	if err != nil {
		return nil, err
	}
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		return nil, fmt.Errorf("initializing keyed BLAKE3 for domain %q: %w", domain, err)
	}
	return hasher, nil
}
