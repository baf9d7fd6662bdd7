/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Normalize converts a Go value into the document tree shape.
//
//   - bool, string and every integer and float kind map to bool, string,
//     int64 and float64; unsigned values above math.MaxInt64 are rejected
//   - encoding.TextMarshaler (time.Time, strfmt.DateTime, ...) becomes a string
//   - []byte becomes a base64 string, other slices and arrays become []any
//   - maps become Object, with non-string keys formatted by fmt
//   - structs become Object keyed by their json tag or field name
//   - nil pointers, nil interfaces and nil slices become null
func Normalize(v any) (any, error) {
	return normalize(reflect.ValueOf(v))
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func normalize(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
	}

	if rv.CanInterface() {
		switch tv := rv.Interface().(type) {
		case Document:
			return cloneValue(tv.root), nil
		case encoding.TextMarshaler:
			b, err := tv.MarshalText()
			if err != nil {
				return nil, fmt.Errorf("failed to marshal %s as text: %w", rv.Type(), err)
			}
			return string(b), nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return normalize(rv.Elem())
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("unsigned value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return base64.StdEncoding.EncodeToString(rv.Bytes()), nil
		}
		return normalizeList(rv)
	case reflect.Array:
		return normalizeList(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		out := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := mapKey(iter.Key())
			val, err := normalize(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("map key %q: %w", key, err)
			}
			out[key] = val
		}
		return out, nil
	case reflect.Struct:
		out := make(Object)
		if err := normalizeStruct(rv, out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s for document value", rv.Kind())
	}
}

func normalizeList(rv reflect.Value) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		val, err := normalize(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return out, nil
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.Type().Implements(textMarshalerType) {
		if b, err := k.Interface().(encoding.TextMarshaler).MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(k.Interface())
}

// normalizeStruct follows encoding/json naming: the json tag name wins,
// "-" skips, omitempty drops zero values, untagged embedded structs flatten.
func normalizeStruct(rv reflect.Value, out Object) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)

		if f.Anonymous && name == "" {
			inner := fv
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if err := normalizeStruct(inner, out); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		val, err := normalize(fv)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[name] = val
	}
	return nil
}
