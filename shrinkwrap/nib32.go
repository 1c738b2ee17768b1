package shrinkwrap

// UNib32 is a variable-length encoding of a uint32 as 1..11 nibbles, each
// carrying 3 payload bits and a continuation bit, written and read at the
// buffer's tail. Its ELEMENT_SIZE is Unsized: every occurrence lives
// entirely in the tail region and consumes no front-region bits of its
// own.
type UNib32 uint32

// Size reports UNib32's element size classification.
func (UNib32) Size() ElementSize { return Unsized }

// WriteUNib32 encodes v at the writer's tail cursor.
func WriteUNib32(w *BufWriter, v UNib32) error {
	return w.writeUNib32Rev(uint32(v))
}

// ReadUNib32 decodes a UNib32 from the reader's tail cursor.
func ReadUNib32(r *BufReader) (UNib32, error) {
	v, err := r.readUNib32Rev()
	return UNib32(v), err
}
