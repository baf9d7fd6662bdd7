/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"fmt"
	"sort"
	"sync"
)

// Manager is a thread-safe collection of named DataStore instances, for
// example one per table or backend.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]DataStore
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]DataStore),
	}
}

// Register stores ds under name. Names can only be registered once.
func (m *Manager) Register(name string, ds DataStore) error {
	if ds == nil {
		return fmt.Errorf("datastore %q is nil", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[name]; exists {
		return fmt.Errorf("datastore with name %q already registered", name)
	}
	m.stores[name] = ds
	return nil
}

// Get retrieves the DataStore registered under name.
func (m *Manager) Get(name string) (DataStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ds, exists := m.stores[name]
	if !exists {
		return nil, fmt.Errorf("datastore with name %q not found", name)
	}
	return ds, nil
}

// Remove unregisters name.
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[name]; !exists {
		return fmt.Errorf("datastore with name %q not found", name)
	}
	delete(m.stores, name)
	return nil
}

// List returns the registered names in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.stores))
	for name := range m.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
