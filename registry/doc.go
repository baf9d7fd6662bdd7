/*
Package registry manages converter registration and index mapping for typebridge.

The registry system enables:
  - Type-erased conversion of values whose type is only known at runtime
  - Type resolution from the "__type" tag embedded in documents
  - Key patterns for persisting documents through index maps

Converter Registry:
Maps a type identity (reflect.Type) to an encode/decode pair, and type names to
identities:

	registry.Register(registry.Default(), encodePoint, decodePoint)

Each type is reachable under reflect.Type.String() ("geo.Point") and under the
tag its zero value encodes to, if any ("Point"). When two types claim the same
name the most recent registration wins.

Index Map Registry:
Associates registered types with datastore key patterns:

	indexMap := map[string]string{
	    "PK": "POINT#{id}",
	    "SK": "POINT",
	}
	registry.RegisterIndexMap[Point](registry.Default(), indexMap)

The registry is thread-safe and should be populated during initialization,
typically in init() functions. Tests build their own with New or call Reset.
*/
package registry
