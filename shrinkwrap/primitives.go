package shrinkwrap

// Nibble is a 4-bit unsigned value, the smallest addressable unit of the
// tail region and a useful compact field type in the front region too.
type Nibble uint8

// WriteNibble writes v's low 4 bits.
func WriteNibble(w *BufWriter, v Nibble) error {
	return w.WriteU4(uint8(v))
}

// ReadNibble reads one nibble.
func ReadNibble(r *BufReader) (Nibble, error) {
	v, err := r.ReadU4()
	return Nibble(v), err
}

// Element size accessors for the fixed-width primitives, used by callers
// assembling a Sized/Unsized classification for a composite type.
func BoolSize() ElementSize   { return Sized(1) }
func NibbleSize() ElementSize { return Sized(4) }
func U8Size() ElementSize     { return Sized(8) }
func U16Size() ElementSize    { return Sized(16) }
func U32Size() ElementSize    { return Sized(32) }
func U64Size() ElementSize    { return Sized(64) }
