package codec

// JSONKind returns the byte that opens the JSON value in data, after any
// leading whitespace: '{' for objects, '[' for arrays, '"' for strings,
// 't' or 'f' for booleans, 'n' for null, and a digit or '-' for numbers.
// Blank input yields 0. Shape-polymorphic decoders switch on it instead
// of attempting one shape and falling back on failure.
func JSONKind(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}
