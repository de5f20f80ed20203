// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// MaxFileSize bounds secrets read by ReadFromPath.
const MaxFileSize = 64 * 1024

// ReadFromPath reads a secret from a file path, or from stdin if path is "-".
// The returned buffer is mmap-backed (locked into RAM, excluded from core
// dumps) and must be closed by the caller. Leading/trailing whitespace is
// trimmed before storing. Returns [ErrEmpty] if the source is empty after
// trimming.
//
// Files are staged in protected memory, so no heap copy of the secret is
// made. Stdin is read a line at a time and the line buffer is zeroed.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		return readLine()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Size the locked staging region to the file rather than to the
	// limit; RLIMIT_MEMLOCK is often only a few pages.
	limit := MaxFileSize
	if info, err := file.Stat(); err == nil && info.Mode().IsRegular() {
		if info.Size() > MaxFileSize {
			return nil, fmt.Errorf("reading secret from %s: %w (%d bytes)", path, ErrTooLarge, MaxFileSize)
		}
		limit = max(int(info.Size()), 1)
	}

	raw, err := NewFromReader(file, limit)
	if err != nil {
		return nil, fmt.Errorf("reading secret from %s: %w", path, err)
	}
	defer raw.Close()
	return trimmed(raw.Bytes())
}

func readLine() (*Buffer, error) {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return nil, fmt.Errorf("stdin: %w", ErrEmpty)
	}
	data := scanner.Bytes()
	buffer, err := trimmed(data)
	// Zero the whitespace prefix and suffix trimmed leaves behind.
	Zero(data)
	return buffer, err
}

// trimmed copies data without surrounding whitespace into a new
// Buffer, zeroing the copied region of data.
func trimmed(data []byte) (*Buffer, error) {
	content := bytes.TrimSpace(data)
	if len(content) == 0 {
		return nil, ErrEmpty
	}
	return NewFromBytes(content)
}
