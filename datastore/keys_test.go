/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"testing"

	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
)

func TestExpandMacros(t *testing.T) {
	indexMap := map[string]string{
		"PK":     "PLAYER#{id}",
		"SK":     "RATING#{rating}#{active}",
		"GSI1PK": "{club}",
		"GSI1SK": "{missing}",
	}
	obj := document.Object{
		"id":     "p1",
		"rating": float64(1850.5),
		"active": true,
		"club":   int64(42),
	}

	got := ExpandMacros(indexMap, obj)

	want := map[string]string{
		"PK":     "PLAYER#p1",
		"SK":     "RATING#1850.5#true",
		"GSI1PK": "42",
		"GSI1SK": "",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestExpandKey(t *testing.T) {
	got := ExpandKey(map[string]string{"PK": "POINT#{id}", "SK": "{id}"}, "a$1")
	if got["PK"] != "POINT#a$1" || got["SK"] != "a$1" {
		t.Errorf("Unexpected expansion: %v", got)
	}
}

func TestPrimaryKey(t *testing.T) {
	pk, sk, err := PrimaryKey(map[string]string{"PK": "A", "SK": "B"})
	if err != nil {
		t.Fatalf("PrimaryKey failed: %v", err)
	}
	if pk != "A" || sk != "B" {
		t.Errorf("Expected A/B, got %s/%s", pk, sk)
	}

	_, _, err = PrimaryKey(map[string]string{"PK": "A"})
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	_, _, err = PrimaryKey(map[string]string{"SK": "B"})
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
