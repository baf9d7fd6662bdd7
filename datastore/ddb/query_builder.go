/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/datastore"
	"github.com/suparena/typebridge/errors"
	"github.com/suparena/typebridge/storagemodels"
)

// IndexConfig names an index and its key attributes.
type IndexConfig struct {
	// IndexName is the GSI name in DynamoDB; empty for the base table.
	IndexName string
	// PartitionKeyName is the partition key attribute (e.g., "GSI1PK")
	PartitionKeyName string
	// SortKeyName is the sort key attribute (e.g., "GSI1SK")
	SortKeyName string
}

// DefaultIndexConfigs holds the base table and GSI1 key layouts.
var DefaultIndexConfigs = map[string]IndexConfig{
	"": {
		PartitionKeyName: datastore.PartitionKey,
		SortKeyName:      datastore.SortKey,
	},
	"GSI1": {
		IndexName:        "GSI1",
		PartitionKeyName: "GSI1PK",
		SortKeyName:      "GSI1SK",
	},
}

// QueryBuilder provides a fluent interface for querying one type's items.
// The partition key value is expanded through the type's index map.
type QueryBuilder struct {
	store      *DynamodbDataStore
	typeName   string
	index      string
	pkValue    string
	skValue    string
	skValue2   string
	skOperator string // "=", "begins_with", ">", "<", ">=", "<=", "BETWEEN"
	filters    []string
	filterVals map[string]types.AttributeValue
	limit      *int32
	startKey   map[string]types.AttributeValue
}

// QueryType creates a query builder for the named type on the base table.
func (d *DynamodbDataStore) QueryType(typeName string) *QueryBuilder {
	return &QueryBuilder{
		store:      d,
		typeName:   typeName,
		filterVals: make(map[string]types.AttributeValue),
	}
}

// OnIndex queries the named index from DefaultIndexConfigs instead of the base table.
func (q *QueryBuilder) OnIndex(indexName string) *QueryBuilder {
	q.index = indexName
	return q
}

// WithPartitionKey sets the value substituted into the partition key template.
func (q *QueryBuilder) WithPartitionKey(value string) *QueryBuilder {
	q.pkValue = value
	return q
}

// WithSortKey matches the sort key exactly.
func (q *QueryBuilder) WithSortKey(value string) *QueryBuilder {
	return q.sortKey("=", value)
}

// WithSortKeyPrefix matches sort keys beginning with prefix.
func (q *QueryBuilder) WithSortKeyPrefix(prefix string) *QueryBuilder {
	return q.sortKey("begins_with", prefix)
}

// WithSortKeyGreaterThan matches sort keys after value.
func (q *QueryBuilder) WithSortKeyGreaterThan(value string) *QueryBuilder {
	return q.sortKey(">", value)
}

// WithSortKeyLessThan matches sort keys before value.
func (q *QueryBuilder) WithSortKeyLessThan(value string) *QueryBuilder {
	return q.sortKey("<", value)
}

// WithSortKeyBetween matches sort keys in [start, end].
func (q *QueryBuilder) WithSortKeyBetween(start, end string) *QueryBuilder {
	q.skValue2 = end
	return q.sortKey("BETWEEN", start)
}

func (q *QueryBuilder) sortKey(op, value string) *QueryBuilder {
	q.skOperator = op
	q.skValue = value
	return q
}

// WithFilter adds a filter expression
func (q *QueryBuilder) WithFilter(expression string, values map[string]types.AttributeValue) *QueryBuilder {
	q.filters = append(q.filters, expression)
	for k, v := range values {
		q.filterVals[k] = v
	}
	return q
}

// WithLimit sets the query limit
func (q *QueryBuilder) WithLimit(limit int32) *QueryBuilder {
	q.limit = aws.Int32(limit)
	return q
}

// WithStartKey resumes a previous query.
func (q *QueryBuilder) WithStartKey(key map[string]types.AttributeValue) *QueryBuilder {
	q.startKey = key
	return q
}

// Build constructs the final query parameters
func (q *QueryBuilder) Build() (*storagemodels.QueryParams, error) {
	if q.pkValue == "" {
		return nil, errors.NewValidationError("partitionKey", "partition key value is required")
	}

	cfg, ok := DefaultIndexConfigs[q.index]
	if !ok {
		return nil, errors.NewValidationError("index", fmt.Sprintf("unknown index %q", q.index))
	}

	reg := q.store.exporter.Registry()
	t, ok := reg.Resolve(q.typeName)
	if !ok {
		return nil, errors.NewUnknownTypeNameError(q.typeName)
	}
	indexMap, ok := reg.IndexMap(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, q.typeName)
	}
	if _, ok := indexMap[cfg.PartitionKeyName]; !ok {
		return nil, errors.NewValidationError(cfg.PartitionKeyName, fmt.Sprintf("not in index map of %s", q.typeName))
	}
	expanded := datastore.ExpandKey(indexMap, q.pkValue)

	params := &storagemodels.QueryParams{
		ExpressionAttributeNames: map[string]string{"#pk": cfg.PartitionKeyName},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: expanded[cfg.PartitionKeyName]},
		},
		Limit:             q.limit,
		ExclusiveStartKey: q.startKey,
		TypeName:          q.typeName,
	}
	keyConditions := []string{"#pk = :pk"}

	if q.skOperator != "" {
		params.ExpressionAttributeNames["#sk"] = cfg.SortKeyName
		params.ExpressionAttributeValues[":sk"] = &types.AttributeValueMemberS{Value: q.skValue}
		switch q.skOperator {
		case "begins_with":
			keyConditions = append(keyConditions, "begins_with(#sk, :sk)")
		case "BETWEEN":
			keyConditions = append(keyConditions, "#sk BETWEEN :sk AND :sk2")
			params.ExpressionAttributeValues[":sk2"] = &types.AttributeValueMemberS{Value: q.skValue2}
		default:
			keyConditions = append(keyConditions, "#sk "+q.skOperator+" :sk")
		}
	}
	params.KeyConditionExpression = strings.Join(keyConditions, " AND ")

	if cfg.IndexName != "" {
		params.IndexName = aws.String(cfg.IndexName)
	}

	if len(q.filters) > 0 {
		params.FilterExpression = aws.String(strings.Join(q.filters, " AND "))
		for k, v := range q.filterVals {
			params.ExpressionAttributeValues[k] = v
		}
	}

	return params, nil
}

// Execute runs the query and returns the values of the builder's type.
func (q *QueryBuilder) Execute(ctx context.Context) ([]anyvalue.Value, error) {
	params, err := q.Build()
	if err != nil {
		return nil, err
	}
	return q.store.Query(ctx, params)
}
