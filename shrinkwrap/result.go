package shrinkwrap

// Result mirrors Rust's Result<T,E>: exactly one of Ok/Err is meaningful,
// selected by IsOk.
type Result[T any, E any] struct {
	IsOk bool
	Ok   T
	Err  E
}

// OkResult constructs a successful Result.
func OkResult[T any, E any](v T) Result[T, E] {
	return Result[T, E]{IsOk: true, Ok: v}
}

// ErrResult constructs a failed Result.
func ErrResult[T any, E any](e E) Result[T, E] {
	return Result[T, E]{Err: e}
}

// WriteResult writes the discriminant and the matching branch's payload.
// As with Option, flagPromoted hoists the discriminant bit into the
// writer's flag stack instead of reserving a tail length entry.
func WriteResult[T any, E any](w *BufWriter, v Result[T, E], writeOk func(*BufWriter, T) error, writeErr func(*BufWriter, E) error, flagPromoted bool) error {
	if flagPromoted {
		w.pushFlag(v.IsOk)
		if v.IsOk {
			return writeOk(w, v.Ok)
		}
		return writeErr(w, v.Err)
	}
	return WriteUnsizedInline(w, func(w *BufWriter) error {
		if err := w.WriteBoolValue(v.IsOk); err != nil {
			return err
		}
		if v.IsOk {
			return writeOk(w, v.Ok)
		}
		return writeErr(w, v.Err)
	})
}

// ReadResult mirrors WriteResult.
func ReadResult[T any, E any](r *BufReader, readOk func(*BufReader) (T, error), readErr func(*BufReader) (E, error), flagPromoted bool) (Result[T, E], error) {
	var zero Result[T, E]
	decode := func(sub *BufReader) (Result[T, E], error) {
		isOk, err := sub.ReadBool()
		if err != nil {
			return zero, err
		}
		if isOk {
			v, err := readOk(sub)
			if err != nil {
				return zero, err
			}
			return OkResult[T, E](v), nil
		}
		e, err := readErr(sub)
		if err != nil {
			return zero, err
		}
		return ErrResult[T, E](e), nil
	}
	if flagPromoted {
		isOk, err := r.ReadFlag()
		if err != nil {
			return zero, err
		}
		if isOk {
			v, err := readOk(r)
			if err != nil {
				return zero, err
			}
			return OkResult[T, E](v), nil
		}
		e, err := readErr(r)
		if err != nil {
			return zero, err
		}
		return ErrResult[T, E](e), nil
	}
	return ReadUnsizedInline(r, decode)
}
