/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	// Canonical encoding keeps equal documents byte-identical.
	if cborEnc, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if cborDec, err = (cbor.DecOptions{DefaultMapType: reflect.TypeOf(Object(nil))}).DecMode(); err != nil {
		panic(err)
	}
}

// ParseCBOR reads a CBOR data item into a Document. Map keys must be text;
// unsigned integers above math.MaxInt64 are rejected as in Normalize.
func ParseCBOR(data []byte) (Document, error) {
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return Document{}, fmt.Errorf("failed to parse CBOR document: %w", err)
	}
	return New(v)
}

// MarshalCBOR implements cbor.Marshaler with canonical encoding.
func (d Document) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(d.root)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *Document) UnmarshalCBOR(data []byte) error {
	parsed, err := ParseCBOR(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
