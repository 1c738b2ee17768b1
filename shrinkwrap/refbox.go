package shrinkwrap

// RefBox defers decoding a nested Unsized value until the consumer asks
// for it. Because every RefBox occupies its own Nib32-delimited tail
// region, a reader can skip straight past one without ever decoding its
// contents — the property that makes cyclic graphs impossible by
// construction and tree-shaped recursive types (linked lists, nested
// messages) cheap to partially inspect.
type RefBox[T any] struct {
	bytes []byte
	des   func(*BufReader) (T, error)
}

// Read decodes the boxed value. It may be called more than once; each
// call decodes fresh from the retained byte range.
func (b *RefBox[T]) Read() (T, error) {
	return b.des(NewReader(b.bytes))
}

// WriteRefBox writes val as a nested Unsized value in its own tail region.
func WriteRefBox[T any](w *BufWriter, val T, writeT func(*BufWriter, T) error) error {
	return WriteUnsized(w, func(w *BufWriter) error { return writeT(w, val) })
}

// ReadRefBox pops the box's tail length, borrows that many bytes without
// decoding them, and returns a RefBox that decodes lazily via des.
func ReadRefBox[T any](r *BufReader, des func(*BufReader) (T, error)) (*RefBox[T], error) {
	length, err := r.readUNib32Rev()
	if err != nil {
		return nil, err
	}
	bytes, err := r.ReadRawSlice(int(length))
	if err != nil {
		return nil, err
	}
	return &RefBox[T]{bytes: bytes, des: des}, nil
}
