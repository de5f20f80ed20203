// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSecret_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("  s3cret\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	password, err := ReadSecret(path, "Secret: ")
	if err != nil {
		t.Fatalf("ReadSecret() error: %v", err)
	}
	defer password.Close()
	if password.RevealString() != "s3cret" {
		t.Errorf("ReadSecret() = %q, want %q", password.RevealString(), "s3cret")
	}
}

func TestReadSecret_Errors(t *testing.T) {
	directory := t.TempDir()
	empty := filepath.Join(directory, "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		category ErrorCategory
	}{
		{"missing", filepath.Join(directory, "missing"), CategoryNotFound},
		{"empty", empty, CategoryValidation},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadSecret(test.path, "Secret: ")
			toolErr, ok := err.(*ToolError)
			if !ok {
				t.Fatalf("ReadSecret() error = %v (%T), want *ToolError", err, err)
			}
			if toolErr.Category != test.category {
				t.Errorf("Category = %q, want %q", toolErr.Category, test.category)
			}
		})
	}
}
