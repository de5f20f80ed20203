// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/bytekit/lib/config"
	"github.com/bureau-foundation/bytekit/lib/secret"
)

func TestNewLogger_Formats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON bool
	}{
		// A bytes.Buffer is not a terminal, so auto selects JSON.
		{config.LogFormatAuto, true},
		{config.LogFormatJSON, true},
		{config.LogFormatText, false},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			var output bytes.Buffer
			logger, err := NewLogger(&output, config.LogConfig{Level: "info", Format: test.format})
			if err != nil {
				t.Fatalf("NewLogger() error: %v", err)
			}
			logger.Info("hashed", "algorithm", "blake3")

			var record map[string]any
			isJSON := json.Unmarshal(output.Bytes(), &record) == nil
			if isJSON != test.wantJSON {
				t.Errorf("output %q: JSON = %v, want %v", output.String(), isJSON, test.wantJSON)
			}
			if !strings.Contains(output.String(), "algorithm") {
				t.Errorf("output %q missing attribute", output.String())
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	var output bytes.Buffer
	logger, err := NewLogger(&output, config.LogConfig{Level: "warn", Format: config.LogFormatJSON})
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	logger.Info("dropped")
	if output.Len() != 0 {
		t.Errorf("info record written at warn level: %q", output.String())
	}
	logger.Warn("kept")
	if !strings.Contains(output.String(), "kept") {
		t.Errorf("warn record missing: %q", output.String())
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, config.LogConfig{Level: "loud", Format: config.LogFormatJSON})
	if ExitCode(err) != ExitValidation {
		t.Errorf("NewLogger() error = %v, want validation error", err)
	}
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	password, err := secret.NewPassword("hunter2")
	if err != nil {
		t.Fatalf("NewPassword() error: %v", err)
	}
	defer password.Close()

	var output bytes.Buffer
	logger, err := NewLogger(&output, config.LogConfig{Level: "info", Format: config.LogFormatText})
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	logger.Info("sealing", "password", password)

	if strings.Contains(output.String(), "hunter2") {
		t.Fatalf("log output contains the secret: %q", output.String())
	}
	if !strings.Contains(output.String(), secret.RedactionMarker) {
		t.Errorf("log output %q missing redaction marker", output.String())
	}
}
