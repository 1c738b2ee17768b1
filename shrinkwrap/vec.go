package shrinkwrap

// WriteVec writes the element count as a tail Nib32 followed by each
// element in order as one Unsized value, whose length entry follows the
// count in the tail.
func WriteVec[T any](w *BufWriter, vals []T, writeT func(*BufWriter, T) error) error {
	if uint64(len(vals)) > (1<<32)-1 {
		return ErrVecTooLong
	}
	if err := w.writeUNib32Rev(uint32(len(vals))); err != nil {
		return err
	}
	return WriteUnsizedInline(w, func(w *BufWriter) error {
		for _, v := range vals {
			if err := writeT(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadVec mirrors WriteVec.
func ReadVec[T any](r *BufReader, readT func(*BufReader) (T, error)) ([]T, error) {
	n, err := r.readUNib32Rev()
	if err != nil {
		return nil, err
	}
	return ReadUnsizedInline(r, func(sub *BufReader) ([]T, error) {
		out := make([]T, 0, n)
		for i := uint32(0); i < n; i++ {
			v, err := readT(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}
