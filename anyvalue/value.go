/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package anyvalue

import (
	"fmt"
	"reflect"

	"github.com/suparena/typebridge/errors"
)

// Value holds exactly one value together with the identity of the static type
// it was wrapped as. The zero Value is empty.
type Value struct {
	typ reflect.Type
	val any
}

// Of wraps v under the identity of T. For interface types T the identity is
// the interface type itself, not the dynamic type of v.
func Of[T any](v T) Value {
	return Value{typ: reflect.TypeOf((*T)(nil)).Elem(), val: v}
}

// Type returns the identity the value was wrapped with, or nil when empty.
func (v Value) Type() reflect.Type {
	return v.typ
}

// TypeName returns the identity's string form, or "" when empty.
func (v Value) TypeName() string {
	if v.typ == nil {
		return ""
	}
	return v.typ.String()
}

// Interface returns the contained value.
func (v Value) Interface() any {
	return v.val
}

// IsEmpty reports whether the value holds nothing.
func (v Value) IsEmpty() bool {
	return v.typ == nil
}

// Is reports whether the value was wrapped as T.
func Is[T any](v Value) bool {
	return v.typ != nil && v.typ == reflect.TypeOf((*T)(nil)).Elem()
}

// Cast returns the contained value as T. Values wrapped as a different type
// fail with a TypeMismatchError; nothing is converted.
func Cast[T any](v Value) (T, error) {
	var zero T
	want := reflect.TypeOf((*T)(nil)).Elem()
	if v.typ != want {
		return zero, errors.NewTypeMismatchError(want.String(), v.TypeName())
	}
	if v.val == nil {
		return zero, nil
	}
	out, ok := v.val.(T)
	if !ok {
		return zero, errors.NewTypeMismatchError(want.String(), fmt.Sprintf("%T", v.val))
	}
	return out, nil
}

// String renders the value for logs.
func (v Value) String() string {
	if v.typ == nil {
		return "<empty>"
	}
	return fmt.Sprintf("%s(%v)", v.typ, v.val)
}
