/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "PLAYER#{id}")
  - Polymorphic queries decoded by the stored "__type" tag
  - A query builder for base table and GSI key conditions

Key Features:

Macro Expansion:
Keys use macros that are replaced with fields of the encoded document:

	indexMap := map[string]string{
	    "PK":     "PLAYER#{id}",     // Becomes "PLAYER#123"
	    "SK":     "PLAYER#{id}",
	    "GSI1PK": "CLUB#{club}",
	}

Query Builder:

	values, err := store.QueryType("Rating").
	    OnIndex("GSI1").
	    WithPartitionKey("p1").
	    WithSortKeyPrefix("RATINGSYSTEM#").
	    Execute(ctx)

Items whose tag is missing or unknown come back as raw document.Document values.
*/
package ddb
