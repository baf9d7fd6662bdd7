/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.DataStore for testing
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/datastore"
	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
	"github.com/suparena/typebridge/storagemodels"
)

// DataStore keeps encoded documents in memory, keyed by "PK|SK".
type DataStore struct {
	mu          sync.RWMutex
	exporter    *typebridge.Exporter
	data        map[string]document.Document
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error)
	putError    error
	deleteError error
}

var _ datastore.DataStore = (*DataStore)(nil)

// New creates a mock DataStore converting through e, or typebridge.Default() when e is nil.
func New(e *typebridge.Exporter) *DataStore {
	if e == nil {
		e = typebridge.Default()
	}
	return &DataStore{
		exporter: e,
		data:     make(map[string]document.Document),
	}
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error)) *DataStore {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore) WithPutError(err error) *DataStore {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by type name and key
func (m *DataStore) GetOne(ctx context.Context, typeName, key string) (anyvalue.Value, error) {
	t, pk, sk, err := datastore.ResolveKey(m.exporter, typeName, key)
	if err != nil {
		return anyvalue.Value{}, err
	}

	m.mu.RLock()
	doc, exists := m.data[compositeKey(pk, sk)]
	m.mu.RUnlock()
	if !exists {
		return anyvalue.Value{}, errors.NewNotFoundError(typeName, key)
	}
	return m.exporter.DecodeAs(doc, t)
}

// GetByKey retrieves an entity by explicit PK and SK values, decoding it by its type tag
func (m *DataStore) GetByKey(ctx context.Context, pk, sk string) (anyvalue.Value, error) {
	m.mu.RLock()
	doc, exists := m.data[compositeKey(pk, sk)]
	m.mu.RUnlock()
	if !exists {
		return anyvalue.Value{}, errors.NewNotFoundError("entity", compositeKey(pk, sk))
	}
	return m.exporter.Decode(doc)
}

// Put encodes and stores an entity
func (m *DataStore) Put(ctx context.Context, v anyvalue.Value) error {
	if m.putError != nil {
		return m.putError
	}

	item, err := datastore.EncodeItem(m.exporter, v)
	if err != nil {
		return err
	}
	pk, sk, err := item.PrimaryKey()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[compositeKey(pk, sk)] = document.FromObject(item.Attributes())
	return nil
}

// Query decodes every stored document in key order
func (m *DataStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	docs := make([]document.Document, len(keys))
	for i, k := range keys {
		docs[i] = m.data[k]
	}
	m.mu.RUnlock()

	var typeName string
	if params != nil {
		typeName = params.TypeName
	}
	return datastore.DecodeAll(m.exporter, docs, typeName, nil)
}

// Delete removes an entity by type name and key
func (m *DataStore) Delete(ctx context.Context, typeName, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	_, pk, sk, err := datastore.ResolveKey(m.exporter, typeName, key)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ck := compositeKey(pk, sk)
	if _, exists := m.data[ck]; !exists {
		return errors.NewNotFoundError(typeName, key)
	}
	delete(m.data, ck)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore) SetData(data map[string]document.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]document.Document, len(data))
	for k, v := range data {
		m.data[k] = v
	}
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore) GetData() map[string]document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]document.Document, len(m.data))
	for k, v := range m.data {
		result[k] = v.Clone()
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]document.Document)
}

func compositeKey(pk, sk string) string {
	return pk + "|" + sk
}
