package codec

import "fmt"

// Flag names a single bit position inside a packed flag word.
type Flag struct {
	Name string
	Bit  uint
}

// FlagSet is the unpacked form of a flag word: the named booleans plus a
// residual word holding every set bit the codec did not recognize.
// Keeping the residual makes Pack(Unpack(w)) == w hold for any input.
type FlagSet struct {
	Named    map[string]bool
	Residual uint64
}

// IsSet reports whether the named flag is set.
func (s FlagSet) IsSet(name string) bool {
	return s.Named[name]
}

// FlagCodec packs and unpacks named booleans at fixed bit positions.
type FlagCodec struct {
	flags []Flag
	known uint64
}

// NewFlagCodec builds a codec from flag definitions.
// Bit positions must be below 64 and unique; violations panic.
func NewFlagCodec(flags ...Flag) *FlagCodec {
	c := &FlagCodec{flags: flags}
	for _, f := range flags {
		if f.Bit >= 64 {
			panic(fmt.Sprintf("codec: flag %q bit %d out of range", f.Name, f.Bit))
		}
		mask := uint64(1) << f.Bit
		if c.known&mask != 0 {
			panic(fmt.Sprintf("codec: flag %q reuses bit %d", f.Name, f.Bit))
		}
		c.known |= mask
	}
	return c
}

// Unpack splits a flag word into named booleans and a residual of
// unrecognized bits.
func (c *FlagCodec) Unpack(word uint64) FlagSet {
	set := FlagSet{
		Named:    make(map[string]bool, len(c.flags)),
		Residual: word &^ c.known,
	}
	for _, f := range c.flags {
		set.Named[f.Name] = word&(uint64(1)<<f.Bit) != 0
	}
	return set
}

// Pack reassembles a flag word from named booleans and the residual.
// Residual bits overlapping known positions are ignored so that named
// values stay authoritative.
func (c *FlagCodec) Pack(set FlagSet) uint64 {
	word := set.Residual &^ c.known
	for _, f := range c.flags {
		if set.Named[f.Name] {
			word |= uint64(1) << f.Bit
		}
	}
	return word
}
