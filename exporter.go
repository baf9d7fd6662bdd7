/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typebridge

import (
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
	"github.com/suparena/typebridge/registry"
)

// Exporter converts type-erased values to and from documents using the
// converters held by a registry. It holds no state of its own beyond the
// registry reference and is safe for concurrent use.
type Exporter struct {
	registry *registry.Registry
	logger   *zap.Logger
	metrics  *Metrics
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRegistry makes the exporter dispatch through r instead of registry.Default().
func WithRegistry(r *registry.Registry) Option {
	return func(e *Exporter) {
		e.registry = r
	}
}

// WithLogger sets the logger used for conversion diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Exporter. Without options it uses the process-wide registry.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		registry: registry.Default(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExporter = New()

// Default returns the exporter bound to registry.Default().
func Default() *Exporter {
	return defaultExporter
}

// Registry returns the registry the exporter dispatches through.
func (e *Exporter) Registry() *registry.Registry {
	return e.registry
}

// Encode converts v with the converter registered for its type identity.
// The converter is responsible for embedding the type tag.
func (e *Exporter) Encode(v anyvalue.Value) (doc document.Document, err error) {
	defer func(start time.Time) { e.metrics.observe("encode", start, err) }(time.Now())
	return e.encode(v)
}

func (e *Exporter) encode(v anyvalue.Value) (document.Document, error) {
	if v.IsEmpty() {
		return document.Document{}, errors.NewNoConverterError("")
	}

	entry, ok := e.registry.Lookup(v.Type())
	if !ok {
		return document.Document{}, errors.NewNoConverterError(v.TypeName())
	}

	doc, err := entry.Encode(v)
	if err != nil {
		e.logger.Debug("encode failed", zap.String("type", v.TypeName()), zap.Error(err))
		return document.Document{}, errors.NewEncodeError(v.TypeName(), err)
	}
	return doc, nil
}

// Decode converts a document whose type is named by its type tag.
func (e *Exporter) Decode(doc document.Document) (v anyvalue.Value, err error) {
	defer func(start time.Time) { e.metrics.observe("decode", start, err) }(time.Now())
	return e.decode(doc)
}

func (e *Exporter) decode(doc document.Document) (anyvalue.Value, error) {
	name, ok := doc.TypeTag()
	if !ok {
		return anyvalue.Value{}, errors.NewMissingTypeTagError(document.TypeField)
	}

	entry, ok := e.registry.LookupName(name)
	if !ok {
		return anyvalue.Value{}, errors.NewUnknownTypeNameError(name)
	}
	return e.decodeWith(entry, doc)
}

// DecodeAs converts a document into the type t, ignoring any type tag.
func (e *Exporter) DecodeAs(doc document.Document, t reflect.Type) (v anyvalue.Value, err error) {
	defer func(start time.Time) { e.metrics.observe("decode_as", start, err) }(time.Now())
	entry, ok := e.registry.Lookup(t)
	if !ok {
		return anyvalue.Value{}, errors.NewNoConverterError(typeString(t))
	}
	return e.decodeWith(entry, doc)
}

func (e *Exporter) decodeWith(entry registry.Entry, doc document.Document) (anyvalue.Value, error) {
	v, err := entry.Decode(doc)
	if err != nil {
		e.logger.Debug("decode failed", zap.Stringer("type", entry.Type), zap.Error(err))
		return anyvalue.Value{}, errors.NewMalformedDocumentError(entry.Type.String(), err)
	}
	return v, nil
}

// EncodeJSON encodes v and renders the document as JSON.
func (e *Exporter) EncodeJSON(v anyvalue.Value) ([]byte, error) {
	doc, err := e.Encode(v)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

// DecodeJSON decodes a JSON text by its type tag. The tag is read before the
// text is parsed, so unknown or missing tags fail without building the tree.
func (e *Exporter) DecodeJSON(data []byte) (v anyvalue.Value, err error) {
	defer func(start time.Time) { e.metrics.observe("decode_json", start, err) }(time.Now())
	return e.decodeJSON(data)
}

func (e *Exporter) decodeJSON(data []byte) (anyvalue.Value, error) {
	name, ok := document.PeekTypeTag(data)
	if !ok {
		if _, err := document.Parse(data); err != nil {
			return anyvalue.Value{}, errors.NewMalformedDocumentError("", err)
		}
		return anyvalue.Value{}, errors.NewMissingTypeTagError(document.TypeField)
	}

	entry, ok := e.registry.LookupName(name)
	if !ok {
		return anyvalue.Value{}, errors.NewUnknownTypeNameError(name)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return anyvalue.Value{}, errors.NewMalformedDocumentError(entry.Type.String(), err)
	}
	// Duplicate tag keys: the parsed tree keeps the last one.
	if tag, _ := doc.TypeTag(); tag != name {
		return e.decode(doc)
	}
	return e.decodeWith(entry, doc)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
