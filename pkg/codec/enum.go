package codec

import "fmt"

// EnumCodec maps a closed set of wire tags of type K to values of type V
// and back. Tags are integers or strings depending on what the node emits
// for the field.
//
// The tag space is closed: decoding a tag outside the set fails with
// ErrUnknownVariant rather than falling back to a default, and encoding a
// value outside the set fails the same way. This keeps new node-side
// variants loud instead of silently misread.
type EnumCodec[K comparable, V comparable] struct {
	byTag map[K]V
	byVal map[V]K
}

// NewEnumCodec builds a codec from a tag-to-value table.
// The table must be a bijection; duplicate values panic.
func NewEnumCodec[K comparable, V comparable](table map[K]V) *EnumCodec[K, V] {
	c := &EnumCodec[K, V]{
		byTag: make(map[K]V, len(table)),
		byVal: make(map[V]K, len(table)),
	}
	for tag, val := range table {
		if _, ok := c.byVal[val]; ok {
			panic(fmt.Sprintf("codec: duplicate enum value %v", val))
		}
		c.byTag[tag] = val
		c.byVal[val] = tag
	}
	return c
}

// Decode resolves a wire tag to its value.
func (c *EnumCodec[K, V]) Decode(tag K) (V, error) {
	v, ok := c.byTag[tag]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: tag %v", ErrUnknownVariant, tag)
	}
	return v, nil
}

// Encode resolves a value back to its wire tag.
func (c *EnumCodec[K, V]) Encode(v V) (K, error) {
	tag, ok := c.byVal[v]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: value %v", ErrUnknownVariant, v)
	}
	return tag, nil
}

// Knows reports whether the tag belongs to the set.
func (c *EnumCodec[K, V]) Knows(tag K) bool {
	_, ok := c.byTag[tag]
	return ok
}
