// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"io"
	"runtime"

	"github.com/bureau-foundation/bytekit/lib/codec"
)

// RedactionMarker is printed in place of secret contents on every
// formatting, logging and serialization path. It is constant so that
// output never depends on the secret, not even its length.
const RedactionMarker = "Hidden<redacted>"

// Zero overwrites b with zeros. The write is kept live so the compiler
// cannot drop it as a dead store.
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// Zeroizer is implemented by types that own storage the zero value
// alone does not clear, such as slices or maps reached through the
// value. Hidden calls Zeroize before overwriting the value itself.
type Zeroizer interface {
	Zeroize()
}

func writeMarker(w io.Writer) {
	io.WriteString(w, RedactionMarker)
}

func marshalMarkerCBOR() ([]byte, error) {
	return codec.MarshalText(RedactionMarker)
}
