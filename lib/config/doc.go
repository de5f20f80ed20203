// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the bytekit tool.
//
// Configuration is loaded from a single file specified by either the
// BYTEKIT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Without a file, [Default] applies.
//
// Files ending in .json or .jsonc are parsed as JSON with comments and
// trailing commas allowed; anything else is YAML. Unknown keys are
// rejected in both.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No environment
// variables override config values.
package config
