/*
Package document defines the tree-structured value that typebridge converts
registered types to and from.

A Document wraps a normalized JSON-shaped tree:

	Object (map[string]any), []any, string, int64, float64, bool, nil

Objects may carry the reserved TypeField ("__type") naming the type that
produced them; implicit decoding resolves the type from it.

	doc, _ := document.Parse([]byte(`{"x":1,"y":2,"__type":"Point"}`))
	name, ok := doc.TypeTag() // "Point", true

JSON is read with gjson and written with encoding/json; YAML goes through
gopkg.in/yaml.v3. Binary forms are available as canonical CBOR
(fxamacker/cbor) and as a protobuf google.protobuf.Value (structpb). Numeric
precision follows those libraries: protobuf carries every number as a double.
*/
package document
