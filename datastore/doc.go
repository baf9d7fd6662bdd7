/*
Package datastore defines the persistence interface for type-erased values.

The main interface is DataStore, which stores any registered type as a
tagged document and reads it back through the exporter:

	type DataStore interface {
	    GetOne(ctx context.Context, typeName, key string) (anyvalue.Value, error)
	    Put(ctx context.Context, v anyvalue.Value) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error)
	    Delete(ctx context.Context, typeName, key string) error
	}

Keys come from the index map registered for each type. Templates use
"{field}" macros that are filled from the encoded document on Put and from
the caller's key on GetOne and Delete:

	indexMap := map[string]string{
	    "PK": "PLAYER#{id}",
	    "SK": "PLAYER#{id}",
	}

Implementations:
  - ddb: DynamoDB single-table implementation
  - mock: In-memory implementation for testing
*/
package datastore
