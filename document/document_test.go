/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip,omitempty"`
}

type customer struct {
	address
	Name    string            `json:"name"`
	Age     uint8             `json:"age"`
	Tags    []string          `json:"tags"`
	Scores  map[string]int    `json:"scores"`
	Seen    time.Time         `json:"seen"`
	Secret  string            `json:"-"`
	Labels  map[int]string    `json:"labels,omitempty"`
	Extra   map[string]string `json:"extra"`
	private int
}

func TestNormalizeStruct(t *testing.T) {
	seen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc, err := New(customer{
		address: address{City: "Oakville"},
		Name:    "Ada",
		Age:     36,
		Tags:    []string{"a", "b"},
		Scores:  map[string]int{"go": 9},
		Seen:    seen,
		Secret:  "hidden",
		private: 1,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := Object{
		"city":   "Oakville",
		"name":   "Ada",
		"age":    int64(36),
		"tags":   []any{"a", "b"},
		"scores": Object{"go": int64(9)},
		"seen":   "2025-03-01T12:00:00Z",
		"extra":  nil,
	}
	if !doc.Equal(FromObject(want)) {
		t.Fatalf("Expected %v, got %v", FromObject(want), doc)
	}
	if _, ok := doc.Field("Secret"); ok {
		t.Error("json:\"-\" field should be skipped")
	}
	if _, ok := doc.Field("zip"); ok {
		t.Error("omitempty field should be skipped when zero")
	}
}

func TestNormalizeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"int", 7, KindNumber},
		{"float32", float32(1.5), KindNumber},
		{"string", "x", KindString},
		{"bytes", []byte("hi"), KindString},
		{"array", [2]int{1, 2}, KindArray},
		{"nil pointer", (*int)(nil), KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New(tt.in)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if doc.Kind() != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, doc.Kind())
			}
		})
	}

	if _, err := New(make(chan int)); err == nil {
		t.Error("Expected error for channel value")
	}
	if _, err := New(uint64(1) << 63); err == nil {
		t.Error("Expected overflow error for large unsigned value")
	}
}

func TestTypeTag(t *testing.T) {
	doc := FromObject(Object{"x": 1.0})

	if _, ok := doc.TypeTag(); ok {
		t.Fatal("Expected no tag on untagged document")
	}

	tagged := doc.WithTypeTag("Point")
	name, ok := tagged.TypeTag()
	if !ok || name != "Point" {
		t.Fatalf("Expected tag Point, got %q (%v)", name, ok)
	}
	if _, ok := doc.TypeTag(); ok {
		t.Error("WithTypeTag must not modify the receiver")
	}

	if _, ok := tagged.WithoutTypeTag().TypeTag(); ok {
		t.Error("WithoutTypeTag should drop the tag")
	}

	numeric := FromObject(Object{TypeField: 3.0})
	if _, ok := numeric.TypeTag(); ok {
		t.Error("Non-string tag field should not count as a tag")
	}

	arr, _ := New([]int{1})
	if !arr.WithTypeTag("Point").Equal(arr) {
		t.Error("WithTypeTag should leave non-object documents unchanged")
	}
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"x":1.0,"y":2.0,"__type":"Point","tags":["a",null,true]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := FromObject(Object{
		"x":       int64(1),
		"y":       2.0,
		TypeField: "Point",
		"tags":    []any{"a", nil, true},
	})
	if !doc.Equal(want) {
		t.Fatalf("Expected %v, got %v", want, doc)
	}

	if _, err := Parse([]byte(`{"x":`)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("Expected ErrInvalidJSON, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := FromObject(Object{"x": 1.5, "name": "p", TypeField: "Point"})

	data, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var back Document
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !back.Equal(doc) {
		t.Errorf("Expected %v, got %v", doc, back)
	}
}

func TestPeekTypeTag(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"tagged", `{"x":1,"__type":"Point"}`, "Point", true},
		{"untagged", `{"x":1}`, "", false},
		{"numeric tag", `{"__type":5}`, "", false},
		{"array root", `[{"__type":"Point"}]`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PeekTypeTag([]byte(tt.input))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	doc, err := ParseYAML([]byte("x: 1\ny: 2.5\n__type: Point\nlabels:\n  1: one\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	want := FromObject(Object{
		"x":       int64(1),
		"y":       2.5,
		TypeField: "Point",
		"labels":  Object{"1": "one"},
	})
	if !doc.Equal(want) {
		t.Fatalf("Expected %v, got %v", want, doc)
	}

	out, err := doc.YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	if !strings.Contains(string(out), "__type: Point") {
		t.Errorf("Expected rendered YAML to carry the tag, got %s", out)
	}

	if _, err := ParseYAML([]byte("x: [1")); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromObject(Object{"inner": Object{"v": int64(1)}, "list": []any{int64(1)}})
	clone := orig.Clone()

	obj, _ := clone.Object()
	obj["inner"].(Object)["v"] = int64(2)
	obj["list"].([]any)[0] = int64(2)

	if !orig.Equal(FromObject(Object{"inner": Object{"v": int64(1)}, "list": []any{int64(1)}})) {
		t.Errorf("Mutating the clone changed the original: %v", orig)
	}
}

func TestString(t *testing.T) {
	doc := FromObject(Object{"x": 1.0})
	if doc.String() != `{"x":1}` {
		t.Errorf("Unexpected string rendering %q", doc.String())
	}
	if (Document{}).String() != "null" {
		t.Errorf("Zero document should render as null, got %q", Document{}.String())
	}
}
