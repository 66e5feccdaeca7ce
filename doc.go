/*
Package jsondot provides a single unified handle over JSON-like trees:
JSON text, maps, slices or bare scalars all normalize into one
canonical nested form that can be read, mutated, counted, iterated and
re-serialized through dotted path strings.

Values are addressed by paths such as "apps.browsers.chrome", where
"." separates keys and a backslash escapes a literal separator inside
a key. Reads are total: a missing path is a nil result, never an
error. Writes create missing intermediate containers on demand.

	doc, err := jsondot.New(`{"apps":{"browsers":{"chrome":1}}}`)
	if err != nil {
		// handle error
	}

	doc.Get("apps.browsers.chrome") // int64(1)

	if err := doc.Set("apps.browsers.firefox", 2); err != nil {
		// handle error
	}

	out, _ := doc.JSON(jsondot.Indent(2))
	// {
	//   "apps": {
	//     "browsers": {
	//       "chrome": 1,
	//       "firefox": 2
	//     }
	//   }
	// }

Containers preserve insertion order, so iteration and serialization
reflect the order keys were first written:

	seq, err := doc.Iterate(jsondot.ShapeValue, "apps.browsers")
	if err != nil {
		// handle error
	}
	for key, value := range seq {
		// ("chrome", int64(1)), ("firefox", int64(2))
	}

Beyond path access, a Document converts to and from YAML, accepts RFC
7396 merge patches and RFC 6902 patches, and exposes a subscript-style
protocol (GetKey, SetKey, UnsetKey, ExistsKey) for single-key access.

A Document is a plain in-memory data structure with no locking; a
caller sharing one across goroutines must serialize access externally.
*/
package jsondot
