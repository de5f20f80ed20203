// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the bytekit command tree.
//
// [Root] returns the top-level [cli.Command]. Every command reads and
// writes through an [Environment] so tests can drive the tree with
// in-memory streams and a fake clock. Configuration is loaded lazily on
// first use, from --config or BYTEKIT_CONFIG.
package commands
