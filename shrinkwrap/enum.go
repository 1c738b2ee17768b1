package shrinkwrap

// WriteDiscriminant writes an enum's discriminant using a schema-declared
// bit width of 1..32 (pass 0 to use UNib32 for an open-ended repr).
func WriteDiscriminant(w *BufWriter, bitWidth uint8, disc uint32) error {
	if bitWidth == 0 {
		return w.writeUNib32Rev(disc)
	}
	return w.WriteUN(bitWidth, disc)
}

// ReadDiscriminant mirrors WriteDiscriminant. Callers are responsible for
// mapping an unrecognized disc value to ErrEnumFutureVersionOrMalformedData.
func ReadDiscriminant(r *BufReader, bitWidth uint8) (uint32, error) {
	if bitWidth == 0 {
		return r.readUNib32Rev()
	}
	return r.ReadUN(bitWidth)
}
