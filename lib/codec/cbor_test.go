// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

type sampleRecord struct {
	Label string `cbor:"label"`
	Count int    `cbor:"count,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{Label: "digest", Count: 32}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"zeta": 1, "alpha": 2, "mid": []byte{1, 2}}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestByteStringRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"bytes", []byte{0x00, 0xff, 0x10}, []byte{0x00, 0xff, 0x10}},
		{"empty", []byte{}, []byte{}},
		{"nil", nil, []byte{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := MarshalByteString(test.input)
			if err != nil {
				t.Fatalf("MarshalByteString: %v", err)
			}
			// Major type 2 occupies the top three bits.
			if data[0]>>5 != 2 {
				t.Errorf("major type = %d, want 2 (byte string)", data[0]>>5)
			}
			decoded, err := UnmarshalByteString(data)
			if err != nil {
				t.Fatalf("UnmarshalByteString: %v", err)
			}
			if !bytes.Equal(decoded, test.want) || decoded == nil {
				t.Errorf("decoded = %#v, want %#v", decoded, test.want)
			}
		})
	}
}

func TestUnmarshalByteStringRejectsOtherTypes(t *testing.T) {
	data, err := Marshal(42)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := UnmarshalByteString(data); err == nil {
		t.Error("UnmarshalByteString should reject an integer")
	}
}

func TestMarshalText(t *testing.T) {
	data, err := MarshalText("Hidden<redacted>")
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if notation != `"Hidden<redacted>"` {
		t.Errorf("notation = %s, want a text string", notation)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleRecord
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"label": "digest"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"label"`) || !strings.Contains(notation, `"digest"`) {
		t.Errorf("notation %q missing expected content", notation)
	}
}
