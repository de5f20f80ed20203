// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the bytekit tool.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree by the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Failures are reported as [ToolError] values carrying an
// [ErrorCategory]; [ExitCode] maps a returned error to the process exit
// status. [ExitError] exits non-zero without printing anything.
//
// [NewLogger] builds the process logger and [ReadSecret] obtains a secret
// from a file, stdin, or an echo-disabled terminal prompt.
package cli
