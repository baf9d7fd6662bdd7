/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/datastore"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/storagemodels"
)

// Query performs a query against the DynamoDB table using the provided parameters.
// Each item is decoded by the "__type" tag written at persist time, so a single
// query can return entities of different types. Items without a usable tag are
// returned as raw documents.
func (d *DynamodbDataStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error) {
	if params == nil {
		params = &storagemodels.QueryParams{}
	}
	tableName := params.Table(d.tableName)

	input := &dynamodb.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	docs := make([]document.Document, 0, len(out.Items))
	for _, item := range out.Items {
		doc, err := fromItem(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return datastore.DecodeAll(d.exporter, docs, params.TypeName, d.logger)
}
