/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/datastore/testmodels"
	"github.com/suparena/typebridge/errors"
)

func attrS(t *testing.T, m map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := m[key].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("Expected string attribute %s, got %#v", key, m[key])
	}
	return v.Value
}

func TestQueryBuilderBaseTable(t *testing.T) {
	store, _ := getRatingSystemStore(t)

	params, err := store.QueryType("Rating").
		WithPartitionKey("TTOakville").
		WithSortKeyPrefix("RATING#").
		WithLimit(25).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if params.KeyConditionExpression != "#pk = :pk AND begins_with(#sk, :sk)" {
		t.Errorf("Unexpected key condition %q", params.KeyConditionExpression)
	}
	if params.ExpressionAttributeNames["#pk"] != "PK" || params.ExpressionAttributeNames["#sk"] != "SK" {
		t.Errorf("Unexpected attribute names %v", params.ExpressionAttributeNames)
	}
	if got := attrS(t, params.ExpressionAttributeValues, ":pk"); got != "RATINGSYSTEM#TTOakville" {
		t.Errorf("Expected expanded partition key, got %q", got)
	}
	if got := attrS(t, params.ExpressionAttributeValues, ":sk"); got != "RATING#" {
		t.Errorf("Expected sort key prefix, got %q", got)
	}
	if params.IndexName != nil {
		t.Errorf("Expected base table query, got index %s", *params.IndexName)
	}
	if *params.Limit != 25 || params.TypeName != "Rating" {
		t.Errorf("Unexpected limit or type name: %d %q", *params.Limit, params.TypeName)
	}
}

func TestQueryBuilderIndex(t *testing.T) {
	store, _ := getRatingSystemStore(t)
	typebridge.RegisterIndexMap[testmodels.Rating](store.exporter, map[string]string{
		"PK":     "RATINGSYSTEM#{SystemId}",
		"SK":     "RATING#{PlayerId}",
		"GSI1PK": "PLAYER#{PlayerId}",
		"GSI1SK": "RATINGSYSTEM#{SystemId}",
	})

	params, err := store.QueryType("Rating").
		OnIndex("GSI1").
		WithPartitionKey("p1").
		WithSortKeyBetween("RATINGSYSTEM#A", "RATINGSYSTEM#M").
		WithFilter("Games > :games", map[string]types.AttributeValue{
			":games": &types.AttributeValueMemberN{Value: "10"},
		}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if params.IndexName == nil || *params.IndexName != "GSI1" {
		t.Fatalf("Expected GSI1 index, got %v", params.IndexName)
	}
	if params.KeyConditionExpression != "#pk = :pk AND #sk BETWEEN :sk AND :sk2" {
		t.Errorf("Unexpected key condition %q", params.KeyConditionExpression)
	}
	if params.ExpressionAttributeNames["#pk"] != "GSI1PK" {
		t.Errorf("Unexpected attribute names %v", params.ExpressionAttributeNames)
	}
	if got := attrS(t, params.ExpressionAttributeValues, ":pk"); got != "PLAYER#p1" {
		t.Errorf("Expected expanded GSI partition key, got %q", got)
	}
	if got := attrS(t, params.ExpressionAttributeValues, ":sk2"); got != "RATINGSYSTEM#M" {
		t.Errorf("Expected range end, got %q", got)
	}
	if params.FilterExpression == nil || *params.FilterExpression != "Games > :games" {
		t.Errorf("Unexpected filter %v", params.FilterExpression)
	}
	if _, ok := params.ExpressionAttributeValues[":games"]; !ok {
		t.Error("Expected filter value to be merged")
	}
}

func TestQueryBuilderErrors(t *testing.T) {
	store, _ := getRatingSystemStore(t)

	tests := []struct {
		name  string
		build *QueryBuilder
		check func(error) bool
	}{
		{"missing partition key", store.QueryType("Rating"), errors.IsValidationError},
		{"unknown index", store.QueryType("Rating").OnIndex("GSI9").WithPartitionKey("x"), errors.IsValidationError},
		{"index not mapped", store.QueryType("Rating").OnIndex("GSI1").WithPartitionKey("x"), errors.IsValidationError},
		{"unknown type", store.QueryType("Tournament").WithPartitionKey("x"), errors.IsUnknownTypeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build.Build()
			if !tt.check(err) {
				t.Errorf("Unexpected error %v", err)
			}
		})
	}
}

func TestQueryBuilderExecute(t *testing.T) {
	store, api := getRatingSystemStore(t)
	ctx := context.Background()

	rating := testmodels.Rating{SystemID: "TTOakville", PlayerID: "p2", Value: 1500, Games: 3}
	if err := store.Put(ctx, anyvalue.Of(rating)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, anyvalue.Of(testRatingSystem())); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	for _, item := range api.items {
		api.queryItems = append(api.queryItems, item)
	}

	results, err := store.QueryType("Rating").WithPartitionKey("TTOakville").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected only the rating, got %d results", len(results))
	}
	if got, _ := anyvalue.Cast[testmodels.Rating](results[0]); got != rating {
		t.Errorf("Expected %+v, got %+v", rating, got)
	}
}
