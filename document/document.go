/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"encoding/json"
	"fmt"
)

// TypeField is the reserved object field carrying the producing type's name.
const TypeField = "__type"

// Object is the document representation of a JSON object.
type Object = map[string]any

// Kind enumerates the node kinds a Document can hold.
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Document is a self-describing tree value. The root is always normalized:
// Object, []any, string, int64, float64, bool or nil.
// The zero Document is null.
type Document struct {
	root any
}

// New normalizes v into a Document. See Normalize for the accepted shapes.
func New(v any) (Document, error) {
	n, err := Normalize(v)
	if err != nil {
		return Document{}, err
	}
	return Document{root: n}, nil
}

// FromObject wraps an already normalized object without copying it.
func FromObject(obj Object) Document {
	return Document{root: obj}
}

// Value returns the normalized root.
func (d Document) Value() any {
	return d.root
}

// Kind reports the kind of the root node.
func (d Document) Kind() Kind {
	return kindOf(d.root)
}

// IsNull reports whether the document is null.
func (d Document) IsNull() bool {
	return d.root == nil
}

// Object returns the root as an Object if it is one.
func (d Document) Object() (Object, bool) {
	obj, ok := d.root.(Object)
	return obj, ok
}

// Field returns a top-level field of an object document.
func (d Document) Field(name string) (any, bool) {
	obj, ok := d.Object()
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

// TypeTag returns the string held in the TypeField of an object document.
// A tag field that is not a string does not count as a tag.
func (d Document) TypeTag() (string, bool) {
	v, ok := d.Field(TypeField)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// WithTypeTag returns a copy of an object document with TypeField set to name.
// Non-object documents are returned unchanged.
func (d Document) WithTypeTag(name string) Document {
	obj, ok := d.Object()
	if !ok {
		return d
	}
	out := make(Object, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	out[TypeField] = name
	return Document{root: out}
}

// WithoutTypeTag returns a copy of an object document without TypeField.
func (d Document) WithoutTypeTag() Document {
	obj, ok := d.Object()
	if !ok {
		return d
	}
	out := make(Object, len(obj))
	for k, v := range obj {
		if k != TypeField {
			out[k] = v
		}
	}
	return Document{root: out}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	return Document{root: cloneValue(d.root)}
}

// Equal reports whether two documents hold the same tree. Numbers compare by
// value, so int64(1) equals float64(1).
func (d Document) Equal(other Document) bool {
	return equalValues(d.root, other.root)
}

// String renders the document as compact JSON.
func (d Document) String() string {
	b, err := json.Marshal(d.root)
	if err != nil {
		return fmt.Sprintf("<invalid document: %v>", err)
	}
	return string(b)
}

func kindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case Object:
		return KindObject
	case []any:
		return KindArray
	case string:
		return KindString
	case int64, float64:
		return KindNumber
	case bool:
		return KindBool
	default:
		return KindNull
	}
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case Object:
		out := make(Object, len(tv))
		for k, e := range tv {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func equalValues(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, e := range av {
			other, ok := bv[k]
			if !ok || !equalValues(e, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case int64, float64:
		x, ok := asFloat(a)
		y, ok2 := asFloat(b)
		return ok && ok2 && x == y
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
