// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bytekit is a command-line front end to the bytekit libraries: hex and
// base58 conversion, hashing with algorithm selection, keyed BLAKE3
// domains and multihash output, bit inspection, epoch timestamps, and
// age sealing of secrets held in locked memory.
//
// Usage:
//
//	bytekit [--config path] <command> [flags]
//
// Run "bytekit --help" for the command list.
package main
