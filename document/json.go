/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse for input that is not a single JSON value.
var ErrInvalidJSON = errors.New("invalid JSON document")

// Parse reads a JSON text into a Document. Numbers become float64.
func Parse(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, ErrInvalidJSON
	}
	return Document{root: gjson.ParseBytes(data).Value()}, nil
}

// PeekTypeTag reads the top-level TypeField of a JSON object without
// building the tree. It reports false when the field is absent or not a string.
func PeekTypeTag(data []byte) (string, bool) {
	r := gjson.GetBytes(data, TypeField)
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.root)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
