/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore_test

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/datastore"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
)

func TestEncodeItem(t *testing.T) {
	e := newExporter()
	typebridge.RegisterIndexMap[Club](e, map[string]string{"PK": "CLUB#{id}", "SK": "CLUB#{id}"})

	item, err := datastore.EncodeItem(e, anyvalue.Of(Club{ID: "c1", Name: "Oakville"}))
	if err != nil {
		t.Fatalf("EncodeItem failed: %v", err)
	}

	if item.Object["__type"] != "Club" {
		t.Errorf("Expected Club tag, got %v", item.Object["__type"])
	}
	pk, sk, err := item.PrimaryKey()
	if err != nil {
		t.Fatalf("PrimaryKey failed: %v", err)
	}
	if pk != "CLUB#c1" || sk != "CLUB#c1" {
		t.Errorf("Unexpected keys %s/%s", pk, sk)
	}

	attrs := item.Attributes()
	if attrs["PK"] != "CLUB#c1" || attrs["SK"] != "CLUB#c1" || attrs["name"] != "Oakville" {
		t.Errorf("Unexpected attributes %v", attrs)
	}
	if _, ok := item.Object["PK"]; ok {
		t.Error("Attributes must not modify the encoded object")
	}
}

func TestEncodeItemErrors(t *testing.T) {
	e := newExporter()

	// Court has a converter but no index map.
	_, err := datastore.EncodeItem(e, anyvalue.Of(Court{Number: 1}))
	if !stderrors.Is(err, errors.ErrNoIndexMap) {
		t.Errorf("Expected no index map error, got %v", err)
	}

	_, err = datastore.EncodeItem(e, anyvalue.Of(struct{}{}))
	if !errors.IsNoConverter(err) {
		t.Errorf("Expected no converter error, got %v", err)
	}

	typebridge.Register(e,
		func(s string) (document.Document, error) { return document.New(s) },
		func(d document.Document) (string, error) {
			s, _ := d.Value().(string)
			return s, nil
		},
	)
	typebridge.RegisterIndexMap[string](e, map[string]string{"PK": "S", "SK": "S"})
	_, err = datastore.EncodeItem(e, anyvalue.Of("scalar"))
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for scalar document, got %v", err)
	}
}

func TestResolveKey(t *testing.T) {
	e := newExporter()
	typebridge.RegisterIndexMap[Club](e, map[string]string{"PK": "CLUB#{id}", "SK": "META"})

	typ, pk, sk, err := datastore.ResolveKey(e, "Club", "c9")
	if err != nil {
		t.Fatalf("ResolveKey failed: %v", err)
	}
	if typ != reflect.TypeOf((*Club)(nil)).Elem() {
		t.Errorf("Expected Club type, got %v", typ)
	}
	if pk != "CLUB#c9" || sk != "META" {
		t.Errorf("Unexpected keys %s/%s", pk, sk)
	}

	if _, _, _, err := datastore.ResolveKey(e, "Nope", "x"); !errors.IsUnknownTypeName(err) {
		t.Errorf("Expected unknown type name error, got %v", err)
	}
	if _, _, _, err := datastore.ResolveKey(e, "Court", "x"); !stderrors.Is(err, errors.ErrNoIndexMap) {
		t.Errorf("Expected no index map error, got %v", err)
	}
}
