/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typebridge

import (
	"reflect"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/fields"
	"github.com/suparena/typebridge/registry"
)

// Generic helpers. Go methods cannot take type parameters, so these are
// functions taking the exporter explicitly; pass Default() for the
// process-wide registry.

// Register installs a converter pair for T in the exporter's registry.
func Register[T any](e *Exporter, enc func(T) (document.Document, error), dec func(document.Document) (T, error)) {
	registry.Register(e.registry, enc, dec)
}

// RegisterFields installs the converters declared by T's DefineFields method.
// Encoded documents carry tag as their type tag; an empty tag leaves only the
// derived type name for lookups.
func RegisterFields[T any, PT fields.Definition[T]](e *Exporter, tag string) {
	enc, dec := fields.Bind[T, PT](tag)
	registry.Register(e.registry, enc, dec)
}

// RegisterIndexMap associates T with datastore key patterns.
func RegisterIndexMap[T any](e *Exporter, idxMap map[string]string) {
	registry.RegisterIndexMap[T](e.registry, idxMap)
}

// EncodeValue wraps v as T and encodes it.
func EncodeValue[T any](e *Exporter, v T) (document.Document, error) {
	return e.Encode(anyvalue.Of(v))
}

// DecodeTo decodes doc explicitly as T and unwraps the result.
func DecodeTo[T any](e *Exporter, doc document.Document) (T, error) {
	v, err := e.DecodeAs(doc, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return anyvalue.Cast[T](v)
}
