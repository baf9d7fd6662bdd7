/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNoConverter is returned when no converter is registered for a type
	ErrNoConverter = errors.New("no converter registered for type")

	// ErrMissingTypeTag is returned when an implicit decode meets a document without a type tag
	ErrMissingTypeTag = errors.New("document has no type tag")

	// ErrUnknownTypeName is returned when a type tag matches no registered name
	ErrUnknownTypeName = errors.New("unknown type name")

	// ErrMalformedDocument is returned when a converter cannot read a document
	ErrMalformedDocument = errors.New("malformed document")

	// ErrEncodeFailed is returned when a converter cannot produce a document
	ErrEncodeFailed = errors.New("encode failed")

	// ErrTypeMismatch is returned when a value is read back as the wrong type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NoConverterError reports a type identity that has no registered converter.
type NoConverterError struct {
	Type string
}

func (e *NoConverterError) Error() string {
	if e.Type == "" {
		return "no converter registered for empty value"
	}
	return fmt.Sprintf("no converter registered for type %s", e.Type)
}

func (e *NoConverterError) Is(target error) bool {
	return target == ErrNoConverter
}

// MissingTypeTagError reports a document lacking its type tag field.
type MissingTypeTagError struct {
	Field string
}

func (e *MissingTypeTagError) Error() string {
	return fmt.Sprintf("document has no %q type tag", e.Field)
}

func (e *MissingTypeTagError) Is(target error) bool {
	return target == ErrMissingTypeTag
}

// UnknownTypeNameError reports a type tag that no registration claimed.
type UnknownTypeNameError struct {
	Name string
}

func (e *UnknownTypeNameError) Error() string {
	return fmt.Sprintf("no type registered with name %q", e.Name)
}

func (e *UnknownTypeNameError) Is(target error) bool {
	return target == ErrUnknownTypeName
}

// MalformedDocumentError wraps the diagnostic produced by a decode converter.
type MalformedDocumentError struct {
	Type string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("malformed document: %v", e.Err)
	}
	return fmt.Sprintf("malformed document for type %s: %v", e.Type, e.Err)
}

func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// EncodeError wraps the diagnostic produced by an encode converter.
type EncodeError struct {
	Type string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode type %s: %v", e.Type, e.Err)
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncodeFailed
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// TypeMismatchError represents a value read back as a type it does not hold
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value holds %s, not %s", e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNoConverterError creates a new NoConverterError
func NewNoConverterError(typeName string) error {
	return &NoConverterError{Type: typeName}
}

// NewMissingTypeTagError creates a new MissingTypeTagError
func NewMissingTypeTagError(field string) error {
	return &MissingTypeTagError{Field: field}
}

// NewUnknownTypeNameError creates a new UnknownTypeNameError
func NewUnknownTypeNameError(name string) error {
	return &UnknownTypeNameError{Name: name}
}

// NewMalformedDocumentError creates a new MalformedDocumentError
func NewMalformedDocumentError(typeName string, err error) error {
	return &MalformedDocumentError{Type: typeName, Err: err}
}

// NewEncodeError creates a new EncodeError
func NewEncodeError(typeName string, err error) error {
	return &EncodeError{Type: typeName, Err: err}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(want, got string) error {
	return &TypeMismatchError{Want: want, Got: got}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNoConverter checks if an error is a no converter error
func IsNoConverter(err error) bool {
	return errors.Is(err, ErrNoConverter)
}

// IsMissingTypeTag checks if an error is a missing type tag error
func IsMissingTypeTag(err error) bool {
	return errors.Is(err, ErrMissingTypeTag)
}

// IsUnknownTypeName checks if an error is an unknown type name error
func IsUnknownTypeName(err error) bool {
	return errors.Is(err, ErrUnknownTypeName)
}

// IsMalformedDocument checks if an error is a malformed document error
func IsMalformedDocument(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}

// IsEncodeFailed checks if an error is an encode error
func IsEncodeFailed(err error) bool {
	return errors.Is(err, ErrEncodeFailed)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
