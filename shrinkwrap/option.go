package shrinkwrap

// WriteOption writes val (nil meaning None) using writeT for the payload.
// When flagPromoted is false the discriminant bit and payload together
// form one Unsized value with its own tail length entry, so a reader that
// doesn't recognize T can still skip over it. When flagPromoted is true
// the discriminant is instead pushed onto the writer's flag stack, saving
// the tail entry; the schema author is responsible for only promoting
// fields whose consumers are guaranteed to share T's definition.
func WriteOption[T any](w *BufWriter, val *T, writeT func(*BufWriter, T) error, flagPromoted bool) error {
	if flagPromoted {
		w.pushFlag(val != nil)
		if val != nil {
			return writeT(w, *val)
		}
		return nil
	}
	return WriteUnsizedInline(w, func(w *BufWriter) error {
		if err := w.WriteBoolValue(val != nil); err != nil {
			return err
		}
		if val != nil {
			return writeT(w, *val)
		}
		return nil
	})
}

// ReadOption mirrors WriteOption; flagPromoted must match the value that
// was passed to WriteOption.
func ReadOption[T any](r *BufReader, readT func(*BufReader) (T, error), flagPromoted bool) (*T, error) {
	if flagPromoted {
		isSome, err := r.ReadFlag()
		if err != nil {
			return nil, err
		}
		if !isSome {
			return nil, nil
		}
		v, err := readT(r)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return ReadUnsizedInline(r, func(sub *BufReader) (*T, error) {
		isSome, err := sub.ReadBool()
		if err != nil {
			return nil, err
		}
		if !isSome {
			return nil, nil
		}
		v, err := readT(sub)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}
