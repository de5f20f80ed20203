// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode writes Core Deterministic Encoding: sorted map keys,
// smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode accepts standard CBOR and ignores unknown fields.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Hex-typed values without their own CBOR method become text
	// strings rather than empty maps.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// any-typed targets decode maps as map[string]any so results
		// interoperate with encoding/json.
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// MarshalByteString encodes data as a single CBOR byte string. A nil
// slice encodes as an empty byte string, not CBOR null, so that the
// zero value of a byte type round-trips.
func MarshalByteString(data []byte) ([]byte, error) {
	if data == nil {
		data = []byte{}
	}
	return encMode.Marshal(data)
}

// UnmarshalByteString decodes a single CBOR byte string. Any other
// major type is rejected.
func UnmarshalByteString(data []byte) ([]byte, error) {
	var decoded []byte
	if err := decMode.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("codec: decoding byte string: %w", err)
	}
	if decoded == nil {
		decoded = []byte{}
	}
	return decoded, nil
}

// MarshalText encodes text as a single CBOR text string. Secret
// wrappers use this to emit their redaction marker.
func MarshalText(text string) ([]byte, error) {
	return encMode.Marshal(text)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
