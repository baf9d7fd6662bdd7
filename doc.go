/*
Package typebridge converts values whose concrete type is only known at runtime
to and from JSON-shaped documents.

The library follows a register-once, convert-anywhere workflow:
  - Startup: register an encode/decode pair per concrete type
  - Runtime: encode any wrapped value, decode any tagged document

Key Features:
  - Type-erased dispatch keyed by reflect.Type
  - Implicit decoding from the "__type" tag embedded in documents
  - Field declarations that give both conversion directions at once
  - JSON and YAML document adapters
  - Polymorphic persistence of tagged documents (DynamoDB, in-memory mock)
  - Semantic error types for every failure kind

Basic Usage:

	type Point struct{ X, Y float64 }

	func (p *Point) DefineFields(c *fields.Collector) {
	    fields.Field(c, "x", &p.X)
	    fields.Field(c, "y", &p.Y)
	}

	func init() {
	    typebridge.RegisterFields[Point](typebridge.Default(), "Point")
	}

	exp := typebridge.Default()
	doc, _ := exp.Encode(anyvalue.Of(Point{1, 2})) // {"x":1,"y":2,"__type":"Point"}
	v, _ := exp.Decode(doc)                         // anyvalue holding Point{1, 2}

For more information, see the documentation at https://github.com/suparena/typebridge
*/
package typebridge
