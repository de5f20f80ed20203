// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bureau-foundation/bytekit/lib/hashing"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA.
func Commit() string {
	return GitCommit
}

// SelfDigest hashes the currently running binary with algorithm and
// returns the digest and the binary's path. On Linux os.Executable
// reads /proc/self/exe, which names the original binary even if it
// was replaced on disk after the process started.
func SelfDigest(algorithm hashing.Algorithm) (hashing.Digest, string, error) {
	executable, err := os.Executable()
	if err != nil {
		return hashing.Digest{}, "", fmt.Errorf("resolving own executable path: %w", err)
	}
	digest, err := hashing.SumFile(executable, algorithm.New())
	if err != nil {
		return hashing.Digest{}, "", fmt.Errorf("hashing own binary: %w", err)
	}
	return digest, executable, nil
}

// Print writes "<binary> <Info>" to w, followed by Full details and the
// binary digest when verbose is set. A failure to hash the binary is
// reported inline rather than returned.
func Print(w io.Writer, binary string, verbose bool) {
	if !verbose {
		fmt.Fprintf(w, "%s %s\n", binary, Info())
		return
	}
	fmt.Fprintf(w, "%s %s\n", binary, Full())
	digest, path, err := SelfDigest(hashing.BLAKE3)
	if err != nil {
		fmt.Fprintf(w, "  Binary: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  Binary: %s\n  BLAKE3: %s\n", path, digest)
}
