package shrinkwrap

// RefVec is a vector whose elements are each individually length-delimited,
// decoded lazily one at a time via Next rather than all at once the way
// ReadVec does. It is the vector counterpart to RefBox: useful when the
// element type is expensive to decode and callers may only need a prefix.
// The vector as a whole is still one self-contained Unsized blob (so an
// uninterested caller can skip the whole RefVec field without ever calling
// Next), but within that blob each element's own length entry is written
// inline — Next always consumes elements in order, so nothing needs the
// independent-replay guarantee a private sub-buffer would add.
type RefVec[T any] struct {
	r     *BufReader
	count int
	next  int
	des   func(*BufReader) (T, error)
}

// Len reports the element count read from the tail.
func (v *RefVec[T]) Len() int { return v.count }

// Next decodes the next element in sequence. It returns ErrOutOfBounds
// once every element (per Len) has been consumed.
func (v *RefVec[T]) Next() (T, error) {
	var zero T
	if v.next >= v.count {
		return zero, ErrOutOfBounds
	}
	val, err := ReadUnsizedInline(v.r, v.des)
	if err != nil {
		return zero, err
	}
	v.next++
	return val, nil
}

// WriteRefVec writes the element count followed by each element, each with
// its own inline tail length entry within the vector's outer blob.
func WriteRefVec[T any](w *BufWriter, vals []T, writeT func(*BufWriter, T) error) error {
	return WriteUnsized(w, func(w *BufWriter) error {
		if err := w.writeUNib32Rev(uint32(len(vals))); err != nil {
			return err
		}
		for _, v := range vals {
			elem := v
			if err := WriteUnsizedInline(w, func(w *BufWriter) error { return writeT(w, elem) }); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadRefVec mirrors WriteRefVec, returning a lazily-decoding RefVec.
func ReadRefVec[T any](r *BufReader, des func(*BufReader) (T, error)) (*RefVec[T], error) {
	return ReadUnsized(r, func(sub *BufReader) (*RefVec[T], error) {
		n, err := sub.readUNib32Rev()
		if err != nil {
			return nil, err
		}
		return &RefVec[T]{r: sub, count: int(n), des: des}, nil
	})
}
