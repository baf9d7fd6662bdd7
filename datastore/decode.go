/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
)

// DecodeAll decodes stored documents by their type tag. Documents without a
// tag, or whose tag no converter claims, are kept as raw document.Document
// values. A non-empty typeName keeps only values of that type.
func DecodeAll(e *typebridge.Exporter, docs []document.Document, typeName string, logger *zap.Logger) ([]anyvalue.Value, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var want reflect.Type
	if typeName != "" {
		t, ok := e.Registry().Resolve(typeName)
		if !ok {
			return nil, errors.NewUnknownTypeNameError(typeName)
		}
		want = t
	}

	results := make([]anyvalue.Value, 0, len(docs))
	for _, doc := range docs {
		v, err := e.Decode(doc)
		switch {
		case errors.IsMissingTypeTag(err), errors.IsUnknownTypeName(err):
			// Fallback: keep the document itself.
			logger.Debug("keeping undecodable item as raw document", zap.Error(err))
			v = anyvalue.Of(doc)
		case err != nil:
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}

		if want != nil && v.Type() != want {
			continue
		}
		results = append(results, v)
	}
	return results, nil
}
