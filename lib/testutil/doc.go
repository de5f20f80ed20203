// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bytekit packages.
//
// [WriteFile] and [MissingPath] create fixture paths under t.TempDir()
// for tests that read configuration, identities, or secrets from disk.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no bytekit-internal dependencies.
package testutil
