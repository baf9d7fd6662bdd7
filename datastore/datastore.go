/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/storagemodels"
)

// DataStore persists type-erased values as tagged documents. Keys are
// derived from the index map registered for the value's type.
type DataStore interface {
	// GetOne loads the entity of the named type stored under key.
	GetOne(ctx context.Context, typeName, key string) (anyvalue.Value, error)

	// Put encodes v and stores it under the keys expanded from its fields.
	Put(ctx context.Context, v anyvalue.Value) error

	// Query returns every matching entity decoded by its type tag.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error)

	// Delete removes the entity of the named type stored under key.
	Delete(ctx context.Context, typeName, key string) error
}
