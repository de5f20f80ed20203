// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"

	"github.com/multiformats/go-multihash"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a hash function. The string form is what appears in
// configuration and on the command line.
type Algorithm string

const (
	SHA256     Algorithm = "sha256"
	SHA512     Algorithm = "sha512"
	SHA3_256   Algorithm = "sha3-256"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE3     Algorithm = "blake3"
)

type algorithmInfo struct {
	newHash       func() hash.Hash
	size          int
	multihashCode uint64
}

var algorithms = map[Algorithm]algorithmInfo{
	SHA256:   {newHash: sha256.New, size: sha256.Size, multihashCode: multihash.SHA2_256},
	SHA512:   {newHash: sha512.New, size: sha512.Size, multihashCode: multihash.SHA2_512},
	SHA3_256: {newHash: sha3.New256, size: 32, multihashCode: multihash.SHA3_256},
	BLAKE2b256: {
		newHash: func() hash.Hash {
			// New256 only fails for keys longer than 64 bytes.
			hasher, err := blake2b.New256(nil)
			if err != nil {
				panic("hashing: BLAKE2b initialization failed: " + err.Error())
			}
			return hasher
		},
		size:          blake2b.Size256,
		multihashCode: multihash.BLAKE2B_MIN + blake2b.Size256 - 1,
	},
	BLAKE3: {
		newHash:       func() hash.Hash { return blake3.New() },
		size:          32,
		multihashCode: multihash.BLAKE3,
	},
}

// Algorithms returns the supported algorithm names, sorted.
func Algorithms() []Algorithm {
	names := make([]Algorithm, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(name)
	if _, ok := algorithms[algorithm]; !ok {
		return "", fmt.Errorf("unknown hash algorithm %q (supported: %v)", name, Algorithms())
	}
	return algorithm, nil
}

// AlgorithmForMultihashCode maps a multihash code back to an Algorithm.
func AlgorithmForMultihashCode(code uint64) (Algorithm, error) {
	for name, info := range algorithms {
		if info.multihashCode == code {
			return name, nil
		}
	}
	return "", fmt.Errorf("unsupported multihash code %#x", code)
}

func (a Algorithm) info() algorithmInfo {
	info, ok := algorithms[a]
	if !ok {
		panic(fmt.Sprintf("hashing: unknown algorithm %q", string(a)))
	}
	return info
}

// New returns a fresh hasher. Panics for an Algorithm that did not
// come from this package's constants or [ParseAlgorithm].
func (a Algorithm) New() hash.Hash { return a.info().newHash() }

// Size returns the digest length in bytes.
func (a Algorithm) Size() int { return a.info().size }

// MultihashCode returns the multicodec table code for the algorithm.
func (a Algorithm) MultihashCode() uint64 { return a.info().multihashCode }

func (a Algorithm) String() string { return string(a) }

// UnmarshalText validates the name, so configuration files reject
// unknown algorithms at load time.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
