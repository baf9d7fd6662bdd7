/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"maps"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/suparena/typebridge/errors"
)

// Index maps associate a registered type with the key attributes a datastore
// derives from its documents, e.g. {"PK": "POINT#{id}", "SK": "POINT"}.

// SetIndexMap associates t with idxMap. The map is copied.
func (r *Registry) SetIndexMap(t reflect.Type, idxMap map[string]string) {
	cp := maps.Clone(idxMap)
	if cp == nil {
		cp = map[string]string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexMaps[t] = cp
}

// RegisterIndexMap associates T with idxMap.
func RegisterIndexMap[T any](r *Registry, idxMap map[string]string) {
	r.SetIndexMap(reflect.TypeOf((*T)(nil)).Elem(), idxMap)
}

// IndexMap retrieves a copy of the index map for t, if any.
func (r *Registry) IndexMap(t reflect.Type) (map[string]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.indexMaps[t]
	if !ok {
		return nil, false
	}
	return maps.Clone(m), true
}

// GetIndexMap retrieves the index map for T, if any.
func GetIndexMap[T any](r *Registry) (map[string]string, bool) {
	return r.IndexMap(reflect.TypeOf((*T)(nil)).Elem())
}

// LoadIndexMapsYAML reads index maps keyed by type name and binds each one to
// the type the name resolves to:
//
//	Point:
//	  PK: "POINT#{id}"
//	  SK: "POINT"
//
// Every name must already be registered. It returns the number of maps bound.
func (r *Registry) LoadIndexMapsYAML(in io.Reader) (int, error) {
	var loaded map[string]map[string]string
	if err := yaml.NewDecoder(in).Decode(&loaded); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to decode index maps: %w", err)
	}

	resolved := make(map[reflect.Type]map[string]string, len(loaded))
	for name, idxMap := range loaded {
		t, ok := r.Resolve(name)
		if !ok {
			return 0, fmt.Errorf("index map for %q: %w", name, errors.NewUnknownTypeNameError(name))
		}
		resolved[t] = idxMap
	}
	for t, idxMap := range resolved {
		r.SetIndexMap(t, idxMap)
	}
	return len(loaded), nil
}
