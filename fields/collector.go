/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fields

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/suparena/typebridge/document"
)

// ErrMissingField is reported when a declared field is absent from a document.
var ErrMissingField = errors.New("missing field")

// FieldError locates a conversion failure at a declared field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Definer is implemented (on the pointer) by types that declare their
// document fields. DefineFields must call Field once per field, in a fixed order.
type Definer interface {
	DefineFields(c *Collector)
}

// Definition constrains PT to *T implementing Definer.
type Definition[T any] interface {
	*T
	Definer
}

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeDescribe
)

// Collector is handed to DefineFields. Depending on the direction it reads
// each declared field into a document object or writes it back from one.
// After the first failure the remaining fields are skipped.
type Collector struct {
	mode  mode
	obj   document.Object
	names []string
	err   error
}

// Field declares one field. ptr must point into the value being defined.
func Field[V any](c *Collector, name string, ptr *V) {
	if c.err != nil {
		return
	}
	c.names = append(c.names, name)

	switch c.mode {
	case modeEncode:
		val, err := encodeValue(ptr)
		if err != nil {
			c.err = &FieldError{Field: name, Err: err}
			return
		}
		c.obj[name] = val
	case modeDecode:
		raw, ok := c.obj[name]
		if !ok {
			c.err = &FieldError{Field: name, Err: ErrMissingField}
			return
		}
		if err := decodeValue(raw, ptr); err != nil {
			c.err = &FieldError{Field: name, Err: err}
		}
	}
}

// Encode writes the declared fields of v into an object document. A
// non-empty tag is stored under document.TypeField.
func Encode[T any, PT Definition[T]](v T, tag string) (document.Document, error) {
	obj, err := encodeFields(PT(&v))
	if err != nil {
		return document.Document{}, err
	}
	if tag != "" {
		obj[document.TypeField] = tag
	}
	return document.FromObject(obj), nil
}

// Decode reads the declared fields of T from an object document. Every
// declared field must be present; fields not declared are ignored. On
// failure the zero T is returned.
func Decode[T any, PT Definition[T]](doc document.Document) (T, error) {
	var out T
	obj, ok := doc.Object()
	if !ok {
		return out, fmt.Errorf("expected object document, got %s", doc.Kind())
	}
	if err := decodeFields(PT(&out), obj); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Bind returns the converter pair for T, suitable for registry.Register.
func Bind[T any, PT Definition[T]](tag string) (func(T) (document.Document, error), func(document.Document) (T, error)) {
	enc := func(v T) (document.Document, error) {
		return Encode[T, PT](v, tag)
	}
	return enc, Decode[T, PT]
}

// Names returns the declared field names of T in declaration order.
func Names[T any, PT Definition[T]]() []string {
	var v T
	c := &Collector{mode: modeDescribe}
	PT(&v).DefineFields(c)
	return c.names
}

var definerType = reflect.TypeOf((*Definer)(nil)).Elem()

func encodeFields(d Definer) (document.Object, error) {
	c := &Collector{mode: modeEncode, obj: make(document.Object)}
	d.DefineFields(c)
	if c.err != nil {
		return nil, c.err
	}
	return c.obj, nil
}

func decodeFields(d Definer, obj document.Object) error {
	c := &Collector{mode: modeDecode, obj: obj}
	d.DefineFields(c)
	return c.err
}

// encodeValue converts the value behind ptr. Nested definitions, pointers to
// them and slices of them use their own declarations; everything else is
// normalized by the document package.
func encodeValue(ptr any) (any, error) {
	if d, ok := ptr.(Definer); ok {
		return encodeFields(d)
	}

	rv := reflect.ValueOf(ptr).Elem()
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Implements(definerType) {
			return encodeValue(rv.Interface())
		}
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if reflect.PointerTo(rv.Type().Elem()).Implements(definerType) {
			out := make([]any, rv.Len())
			for i := range out {
				val, err := encodeValue(rv.Index(i).Addr().Interface())
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", i, err)
				}
				out[i] = val
			}
			return out, nil
		}
	}
	return document.Normalize(ptr)
}

func decodeValue(raw any, ptr any) error {
	if d, ok := ptr.(Definer); ok {
		obj, ok := raw.(document.Object)
		if !ok {
			return fmt.Errorf("expected object, got %s", kindName(raw))
		}
		return decodeFields(d, obj)
	}

	rv := reflect.ValueOf(ptr).Elem()
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.Type().Implements(definerType) {
			if raw == nil {
				rv.Set(reflect.Zero(rv.Type()))
				return nil
			}
			fresh := reflect.New(rv.Type().Elem())
			if err := decodeValue(raw, fresh.Interface()); err != nil {
				return err
			}
			rv.Set(fresh)
			return nil
		}
	case reflect.Slice:
		if reflect.PointerTo(rv.Type().Elem()).Implements(definerType) {
			if raw == nil {
				rv.Set(reflect.Zero(rv.Type()))
				return nil
			}
			list, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("expected array, got %s", kindName(raw))
			}
			out := reflect.MakeSlice(rv.Type(), len(list), len(list))
			for i, item := range list {
				if err := decodeValue(item, out.Index(i).Addr().Interface()); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			rv.Set(out)
			return nil
		}
	}

	if raw == nil {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		default:
			return fmt.Errorf("expected %s, got null", rv.Type())
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			exactNumberHook,
		),
		TagName: "json",
		Result:  ptr,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// exactNumberHook rejects numbers that an integer target cannot hold exactly.
func exactNumberHook(from, to reflect.Value) (any, error) {
	data := from.Interface()
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch from.Kind() {
		case reflect.Float32, reflect.Float64:
			f := from.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return nil, fmt.Errorf("%v does not fit %s", f, to.Type())
			}
			if to.OverflowInt(int64(f)) {
				return nil, fmt.Errorf("%v overflows %s", f, to.Type())
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if to.OverflowInt(from.Int()) {
				return nil, fmt.Errorf("%d overflows %s", from.Int(), to.Type())
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch from.Kind() {
		case reflect.Float32, reflect.Float64:
			f := from.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return nil, fmt.Errorf("%v does not fit %s", f, to.Type())
			}
			if to.OverflowUint(uint64(f)) {
				return nil, fmt.Errorf("%v overflows %s", f, to.Type())
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i := from.Int()
			if i < 0 || to.OverflowUint(uint64(i)) {
				return nil, fmt.Errorf("%d overflows %s", i, to.Type())
			}
		}
	}
	return data, nil
}

func kindName(v any) string {
	switch v.(type) {
	case document.Object:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
