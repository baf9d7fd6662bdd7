/*
Package errors provides semantic error types for the typebridge library.

The conversion taxonomy has one sentinel per failure kind, each with a typed
error that matches it through errors.Is:

	var (
	    ErrNoConverter       = errors.New("no converter registered for type")
	    ErrMissingTypeTag    = errors.New("document has no type tag")
	    ErrUnknownTypeName   = errors.New("unknown type name")
	    ErrMalformedDocument = errors.New("malformed document")
	    ErrEncodeFailed      = errors.New("encode failed")
	)

Usage:

	v, err := exporter.Decode(doc)
	if err != nil {
	    if errors.IsMissingTypeTag(err) {
	        // fall back to an explicit type
	        v, err = exporter.DecodeAs(doc, reflect.TypeFor[Point]())
	    }
	}

MalformedDocumentError and EncodeError wrap the field-level diagnostic, so
errors.Unwrap and errors.As reach the underlying cause. The datastore
packages additionally use ErrNotFound, ErrInvalidInput and ErrNoIndexMap.

None of these errors are fatal; callers can skip, log, or surface them.
*/
package errors
