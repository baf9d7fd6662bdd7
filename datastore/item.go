/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"fmt"
	"reflect"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
)

// Item is an encoded value ready to be written: its document object and the
// key attributes expanded from its index map.
type Item struct {
	Object document.Object
	Keys   map[string]string
}

// PrimaryKey returns the item's partition and sort keys.
func (it Item) PrimaryKey() (pk, sk string, err error) {
	return PrimaryKey(it.Keys)
}

// Attributes returns a copy of the object with the key attributes set. Keys
// overwrite document fields of the same name.
func (it Item) Attributes() document.Object {
	out := make(document.Object, len(it.Object)+len(it.Keys))
	for k, v := range it.Object {
		out[k] = v
	}
	for k, v := range it.Keys {
		out[k] = v
	}
	return out
}

// EncodeItem encodes v and expands the index map registered for its type.
// Only values encoding to object documents can be stored.
func EncodeItem(e *typebridge.Exporter, v anyvalue.Value) (Item, error) {
	doc, err := e.Encode(v)
	if err != nil {
		return Item{}, err
	}

	indexMap, ok := e.Registry().IndexMap(v.Type())
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, v.TypeName())
	}

	obj, ok := doc.Object()
	if !ok {
		return Item{}, errors.NewValidationError("document", fmt.Sprintf("%s encodes to %s, not an object", v.TypeName(), doc.Kind()))
	}
	return Item{Object: obj, Keys: ExpandMacros(indexMap, obj)}, nil
}

// ResolveKey maps a type name and caller key to the type identity and the
// primary key under which its entity is stored.
func ResolveKey(e *typebridge.Exporter, typeName, key string) (t reflect.Type, pk, sk string, err error) {
	t, ok := e.Registry().Resolve(typeName)
	if !ok {
		return nil, "", "", errors.NewUnknownTypeNameError(typeName)
	}

	indexMap, ok := e.Registry().IndexMap(t)
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %s", errors.ErrNoIndexMap, typeName)
	}

	pk, sk, err = PrimaryKey(ExpandKey(indexMap, key))
	if err != nil {
		return nil, "", "", err
	}
	return t, pk, sk, nil
}
