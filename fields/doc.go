/*
Package fields lets a type declare its document fields once and get both
conversion directions from that declaration.

	type Point struct {
	    X, Y float64
	}

	func (p *Point) DefineFields(c *fields.Collector) {
	    fields.Field(c, "x", &p.X)
	    fields.Field(c, "y", &p.Y)
	}

	enc, dec := fields.Bind[Point]("Point")
	registry.Register(registry.Default(), enc, dec)

Encoding produces {"x":1,"y":2,"__type":"Point"}. Decoding requires every
declared field and ignores the rest, including the tag. Field values go
through document.Normalize on the way out and mapstructure on the way in,
so time.Time, strfmt.DateTime and other TextMarshaler types travel as strings.
Fields whose type declares its own fields (directly, by pointer, or as a
slice) are converted with that declaration.
*/
package fields
