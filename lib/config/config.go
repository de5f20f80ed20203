// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytekit/lib/encoding"
	"github.com/bureau-foundation/bytekit/lib/hashing"
	"github.com/bureau-foundation/bytekit/lib/sealed"
)

// EnvironmentVariable names the variable Load reads the config path
// from.
const EnvironmentVariable = "BYTEKIT_CONFIG"

// Output encodings.
const (
	EncodingHex       = "hex"
	EncodingBase58    = "base58"
	EncodingBase64    = "base64"
	EncodingMultibase = "multibase"
)

// Log formats. Auto picks text on a terminal and JSON otherwise.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the bytekit configuration.
type Config struct {
	Hash   HashConfig   `yaml:"hash" json:"hash"`
	Output OutputConfig `yaml:"output" json:"output"`
	Log    LogConfig    `yaml:"log" json:"log"`
	Seal   SealConfig   `yaml:"seal" json:"seal"`
}

// HashConfig configures the hash command.
type HashConfig struct {
	// Algorithm is the default hash function.
	// Default: blake3
	Algorithm hashing.Algorithm `yaml:"algorithm" json:"algorithm"`

	// Domain, when set, switches hashing to keyed BLAKE3 with this
	// domain name as the key. Requires Algorithm blake3.
	Domain string `yaml:"domain" json:"domain"`
}

// OutputConfig configures how binary results are printed.
type OutputConfig struct {
	// Encoding is one of hex, base58, base64, multibase.
	// Default: hex
	Encoding string `yaml:"encoding" json:"encoding"`

	// Multibase names the multibase encoding used when Encoding is
	// multibase, such as base58btc or base32.
	// Default: base58btc
	Multibase string `yaml:"multibase" json:"multibase"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	// Default: info
	Level string `yaml:"level" json:"level"`

	// Format is auto, text or json.
	// Default: auto
	Format string `yaml:"format" json:"format"`
}

// SealConfig configures the seal and unseal commands.
type SealConfig struct {
	// Recipients are age public keys (age1...) every sealed secret is
	// encrypted to, in addition to any given on the command line.
	Recipients []string `yaml:"recipients" json:"recipients"`

	// IdentityFile is the age identity unseal reads by default.
	// ${HOME} and ${VAR:-default} are expanded.
	IdentityFile string `yaml:"identity_file" json:"identity_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Hash: HashConfig{
			Algorithm: hashing.BLAKE3,
		},
		Output: OutputConfig{
			Encoding:  EncodingHex,
			Multibase: "base58btc",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatAuto,
		},
	}
}

// Load loads configuration from the file named by BYTEKIT_CONFIG, or
// returns Default when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of
// Default. The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		return decoder.Decode(c)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err := decoder.Decode(c)
		if errors.Is(err, io.EOF) {
			// An empty file leaves the defaults in place.
			return nil
		}
		return err
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Seal.IdentityFile = expandVars(c.Seal.IdentityFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := hashing.ParseAlgorithm(string(c.Hash.Algorithm)); err != nil {
		errs = append(errs, fmt.Errorf("hash.algorithm: %w", err))
	}
	if c.Hash.Domain != "" {
		if c.Hash.Algorithm != hashing.BLAKE3 {
			errs = append(errs, fmt.Errorf("hash.domain requires hash.algorithm %s, got %q", hashing.BLAKE3, c.Hash.Algorithm))
		}
		if _, err := hashing.DomainKey(c.Hash.Domain); err != nil {
			errs = append(errs, fmt.Errorf("hash.domain: %w", err))
		}
	}

	encodings := []string{EncodingHex, EncodingBase58, EncodingBase64, EncodingMultibase}
	if !slices.Contains(encodings, c.Output.Encoding) {
		errs = append(errs, fmt.Errorf("output.encoding must be one of: %v", encodings))
	}
	if c.Output.Encoding == EncodingMultibase {
		if _, err := encoding.ParseMultibaseEncoding(c.Output.Multibase); err != nil {
			errs = append(errs, fmt.Errorf("output.multibase: %w", err))
		}
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	formats := []string{LogFormatAuto, LogFormatText, LogFormatJSON}
	if !slices.Contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	for index, recipient := range c.Seal.Recipients {
		if err := sealed.ParsePublicKey(recipient); err != nil {
			errs = append(errs, fmt.Errorf("seal.recipients[%d]: %w", index, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}
