/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoValue converts the document into a google.protobuf.Value. Protobuf
// numbers are doubles, so int64 values beyond 2^53 lose precision.
func (d Document) ProtoValue() (*structpb.Value, error) {
	v, err := structpb.NewValue(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to convert document to protobuf: %w", err)
	}
	return v, nil
}

// FromProtoValue converts a google.protobuf.Value into a Document. Numbers
// become float64.
func FromProtoValue(v *structpb.Value) (Document, error) {
	return New(v.AsInterface())
}

// MarshalProto renders the document as a deterministic binary google.protobuf.Value.
func (d Document) MarshalProto() ([]byte, error) {
	v, err := d.ProtoValue()
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

// ParseProto reads a binary google.protobuf.Value into a Document.
func ParseProto(data []byte) (Document, error) {
	var v structpb.Value
	if err := proto.Unmarshal(data, &v); err != nil {
		return Document{}, fmt.Errorf("failed to parse protobuf document: %w", err)
	}
	return FromProtoValue(&v)
}
