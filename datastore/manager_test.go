/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"sync"
	"testing"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/storagemodels"
)

// stubDataStore is a minimal implementation for testing
type stubDataStore struct{}

func (stubDataStore) GetOne(ctx context.Context, typeName, key string) (anyvalue.Value, error) {
	return anyvalue.Value{}, nil
}

func (stubDataStore) Put(ctx context.Context, v anyvalue.Value) error {
	return nil
}

func (stubDataStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]anyvalue.Value, error) {
	return nil, nil
}

func (stubDataStore) Delete(ctx context.Context, typeName, key string) error {
	return nil
}

func TestManager(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		m := NewManager()

		if err := m.Register("ratings", stubDataStore{}); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := m.Register("ratings", stubDataStore{}); err == nil {
			t.Fatal("Expected error for duplicate registration")
		}

		if _, err := m.Get("ratings"); err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if _, err := m.Get("players"); err == nil {
			t.Fatal("Expected error for unknown name")
		}

		if err := m.Register("archive", stubDataStore{}); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		names := m.List()
		if len(names) != 2 || names[0] != "archive" || names[1] != "ratings" {
			t.Fatalf("Unexpected names %v", names)
		}

		if err := m.Remove("ratings"); err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if err := m.Remove("ratings"); err == nil {
			t.Fatal("Expected error removing twice")
		}
	})

	t.Run("RejectsNil", func(t *testing.T) {
		if err := NewManager().Register("nil", nil); err == nil {
			t.Fatal("Expected error for nil datastore")
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		m := NewManager()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				name := string(rune('a' + i))
				if err := m.Register(name, stubDataStore{}); err != nil {
					t.Errorf("Register %s: %v", name, err)
				}
				m.List()
			}(i)
		}
		wg.Wait()

		if len(m.List()) != 10 {
			t.Errorf("Expected 10 datastores, got %d", len(m.List()))
		}
	})
}
