package shrinkwrap

// WriteUnsized serializes an Unsized value as a self-contained sub-blob:
// ser runs against a fresh, independent BufWriter of its own, which is
// then Finish()-ed (compacting its own front/tail regions) before its
// bytes are embedded verbatim in the parent. Only the blob's total length
// is recorded as the parent's own Nib32 tail entry.
//
// Self-containment is what makes skipping safe: a reader that doesn't
// recognize this field (or simply isn't interested in it) can jump over
// exactly length bytes without ever constructing a reader for it, and
// without disturbing any OTHER field's tail data — because this value's
// own nested Unsized entries (if any) live entirely inside its own blob,
// never in the parent's shared tail region.
func WriteUnsized(w *BufWriter, ser func(*BufWriter) error) error {
	inner := New(make([]byte, len(w.buf)))
	if err := ser(inner); err != nil {
		return err
	}
	blob, err := inner.Finish()
	if err != nil {
		return err
	}
	if err := w.WriteRawSlice(blob); err != nil {
		return err
	}
	return w.writeUNib32Rev(uint32(len(blob)))
}

// ReadUnsized pops an Unsized value's Nib32 tail length, borrows exactly
// that many raw bytes from the front region, and hands des a brand new
// BufReader constructed over just that sub-blob — independent of r's own
// tail cursor, so des is free to read as much or as little of it as it
// wants (or nothing at all) without affecting any sibling field's
// position in r.
func ReadUnsized[T any](r *BufReader, des func(*BufReader) (T, error)) (T, error) {
	var zero T
	length, err := r.readUNib32Rev()
	if err != nil {
		return zero, err
	}
	blob, err := r.ReadRawSlice(int(length))
	if err != nil {
		return zero, err
	}
	return des(NewReader(blob))
}

// WriteUnsizedInline reserves exactly one tail entry for the length of
// whatever ser writes, but — unlike WriteUnsized — writes ser's content
// directly into w instead of a private sub-buffer. Use this for combinators
// that are always decoded synchronously and in full as part of the same
// read pass (Option, Result, Vec, Array, RefVec's per-element framing):
// since nothing defers or partially consumes their payload, any tail
// entries the payload itself pushes are consumed in the same order they
// were written, so sharing w's tail table is safe and avoids nesting a
// fresh private BufWriter per call frame. Types that can be skipped or
// re-decoded independently of the surrounding read (RefBox, and RefVec's
// own count+elements framing) still need WriteUnsized's self-contained
// blob instead — see refbox.go and refvec.go.
func WriteUnsizedInline(w *BufWriter, ser func(*BufWriter) error) error {
	if err := w.flushFlags(); err != nil {
		return err
	}
	before := w.BytesWritten()
	if err := ser(w); err != nil {
		return err
	}
	if err := w.flushFlags(); err != nil {
		return err
	}
	length := w.BytesWritten() - before
	return w.writeUNib32Rev(uint32(length))
}

// ReadUnsizedInline mirrors WriteUnsizedInline: it pops the length entry
// WriteUnsizedInline pushed and then decodes des directly from r. The
// popped length itself isn't needed for decoding (des knows its own
// shape); it exists so a reader that doesn't recognize this value can
// skip it without decoding.
func ReadUnsizedInline[T any](r *BufReader, des func(*BufReader) (T, error)) (T, error) {
	var zero T
	if _, err := r.readUNib32Rev(); err != nil {
		return zero, err
	}
	return des(r)
}
