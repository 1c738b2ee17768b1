package shrinkwrap

// WriteArray writes a fixed-length sequence of N elements (the caller
// guarantees len(vals) == N at the schema level; shrinkwrap itself has no
// notion of array length since Go's generics don't carry numeric type
// parameters the way Rust's [T; N] does). If elemSized is true the
// elements are simply concatenated with no tail entries, making the whole
// array Sized; otherwise every element is written as its own Unsized
// value with its own tail length entry.
func WriteArray[T any](w *BufWriter, vals []T, writeT func(*BufWriter, T) error, elemSized bool) error {
	for _, v := range vals {
		if elemSized {
			if err := writeT(w, v); err != nil {
				return err
			}
			continue
		}
		if err := WriteUnsizedInline(w, func(w *BufWriter) error { return writeT(w, v) }); err != nil {
			return err
		}
	}
	return nil
}

// ReadArray reads n elements, mirroring WriteArray.
func ReadArray[T any](r *BufReader, n int, readT func(*BufReader) (T, error), elemSized bool) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		if elemSized {
			v, err := readT(r)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			continue
		}
		v, err := ReadUnsizedInline(r, readT)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
