/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/typebridge/anyvalue"
	"github.com/suparena/typebridge/document"
)

// EncodeFunc converts a type-erased value into a document.
type EncodeFunc func(v anyvalue.Value) (document.Document, error)

// DecodeFunc converts a document into a type-erased value.
type DecodeFunc func(doc document.Document) (anyvalue.Value, error)

// Entry is the converter pair registered for one type.
type Entry struct {
	Type   reflect.Type
	Names  []string
	Encode EncodeFunc
	Decode DecodeFunc
}

// Registry maps type identities to converters and type names to identities.
// It is safe for concurrent use; registration is expected to finish before
// dispatch starts, but nothing breaks if it does not.
type Registry struct {
	mu        sync.RWMutex
	entries   map[reflect.Type]*Entry
	names     map[string]reflect.Type
	indexMaps map[reflect.Type]map[string]string
	logger    *zap.Logger
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:   make(map[reflect.Type]*Entry),
		names:     make(map[string]reflect.Type),
		indexMaps: make(map[reflect.Type]map[string]string),
		logger:    zap.NewNop(),
	}
}

// SetLogger replaces the registry's logger. A nil logger disables logging.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register installs converters for T in r.
//
// The type is bound under reflect.Type.String() and, when encoding the zero
// value of T yields an object carrying a type tag, under that tag as well.
// A name already bound to another type is taken over silently: the most
// recent registration wins. Registering T again replaces its converters.
//
// enc must accept the zero value of T; a panic there propagates to the caller.
func Register[T any](r *Registry, enc func(T) (document.Document, error), dec func(document.Document) (T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	entry := &Entry{
		Type: t,
		Encode: func(v anyvalue.Value) (document.Document, error) {
			tv, err := anyvalue.Cast[T](v)
			if err != nil {
				return document.Document{}, err
			}
			return enc(tv)
		},
		Decode: func(doc document.Document) (anyvalue.Value, error) {
			out, err := dec(doc)
			if err != nil {
				return anyvalue.Value{}, err
			}
			return anyvalue.Of(out), nil
		},
	}

	var names []string
	var zero T
	probe, err := enc(zero)
	if err != nil {
		r.log().Debug("zero value probe failed, no tag name bound",
			zap.Stringer("type", t), zap.Error(err))
	} else if tag, ok := probe.TypeTag(); ok {
		names = append(names, tag)
	}
	if auto := t.String(); len(names) == 0 || names[0] != auto {
		names = append(names, auto)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[t]; ok {
		for _, name := range prev.Names {
			if r.names[name] == t {
				delete(r.names, name)
			}
		}
	}

	for _, name := range names {
		if owner, ok := r.names[name]; ok && owner != t {
			r.logger.Warn("type name already registered, overriding",
				zap.String("name", name),
				zap.Stringer("previous", owner),
				zap.Stringer("type", t))
			if prev, ok := r.entries[owner]; ok {
				prev.Names = removeName(prev.Names, name)
			}
		}
		r.names[name] = t
	}
	entry.Names = names
	r.entries[t] = entry

	r.logger.Debug("registered converter", zap.Stringer("type", t), zap.Strings("names", names))
}

func (r *Registry) log() *zap.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

func removeName(names []string, name string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// Lookup returns the entry registered for t.
func (r *Registry) Lookup(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[t]
	if !ok {
		return Entry{}, false
	}
	return copyEntry(e), true
}

// Resolve returns the type bound to name.
func (r *Registry) Resolve(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.names[name]
	return t, ok
}

// LookupName resolves name and returns the entry of the type it is bound to.
func (r *Registry) LookupName(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.names[name]
	if !ok {
		return Entry{}, false
	}
	e, ok := r.entries[t]
	if !ok {
		return Entry{}, false
	}
	return copyEntry(e), true
}

// Names returns the names currently bound to t.
func (r *Registry) Names(t reflect.Type) []string {
	e, ok := r.Lookup(t)
	if !ok {
		return nil
	}
	return e.Names
}

// Entries returns a snapshot of every entry, ordered by type name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, copyEntry(e))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Type.String() < out[j].Type.String()
	})
	return out
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reset removes every registration and index map.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[reflect.Type]*Entry)
	r.names = make(map[string]reflect.Type)
	r.indexMaps = make(map[reflect.Type]map[string]string)
}

func copyEntry(e *Entry) Entry {
	out := *e
	out.Names = append([]string(nil), e.Names...)
	return out
}
