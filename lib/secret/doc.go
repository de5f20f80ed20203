// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret keeps sensitive values out of logs, output and
// memory that outlives them.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped. Because the memory lives
// outside the Go heap, the garbage collector cannot copy or relocate
// it, guaranteeing secret material does not persist after release.
//
// Constructors:
//
//   - [New] -- allocates a zero-filled buffer of a given size
//   - [NewFromBytes] -- copies into protected memory, zeros the source
//   - [NewFromReader] -- reads from an io.Reader with a size limit
//   - [ReadFromPath] -- reads a file or stdin, trimming whitespace
//
// [Hidden] wraps a value of any type and [SafePassword] wraps text
// held in a Buffer. All three print [RedactionMarker] from every fmt
// verb, String, GoString, slog and text, JSON, YAML and CBOR encoding.
// Contents are reachable only through the Reveal methods (and
// [Buffer.Bytes]). Equality on secret bytes is constant time. After
// Close, any access panics. Close is idempotent, and a GC cleanup
// wipes values whose owner forgot to close them.
//
// [Do] scopes a Hidden value to a function call.
//
// Imported by lib/sealed for age identity and plaintext protection.
package secret
