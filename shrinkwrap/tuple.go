package shrinkwrap

// Tuple fields are written as a plain concatenation with no per-field tail
// entries; the tuple as a whole is Sized only if every member is Sized,
// and otherwise the caller wraps the concatenation with WriteUnsized so it
// reserves one tail entry covering the whole tuple.

// WriteTuple2 concatenates two values.
func WriteTuple2[A, B any](w *BufWriter, a A, b B, writeA func(*BufWriter, A) error, writeB func(*BufWriter, B) error) error {
	if err := writeA(w, a); err != nil {
		return err
	}
	return writeB(w, b)
}

// ReadTuple2 mirrors WriteTuple2.
func ReadTuple2[A, B any](r *BufReader, readA func(*BufReader) (A, error), readB func(*BufReader) (B, error)) (A, B, error) {
	var zeroA A
	var zeroB B
	a, err := readA(r)
	if err != nil {
		return zeroA, zeroB, err
	}
	b, err := readB(r)
	if err != nil {
		return zeroA, zeroB, err
	}
	return a, b, nil
}

// WriteTuple3 concatenates three values.
func WriteTuple3[A, B, C any](w *BufWriter, a A, b B, c C, writeA func(*BufWriter, A) error, writeB func(*BufWriter, B) error, writeC func(*BufWriter, C) error) error {
	if err := writeA(w, a); err != nil {
		return err
	}
	if err := writeB(w, b); err != nil {
		return err
	}
	return writeC(w, c)
}

// ReadTuple3 mirrors WriteTuple3.
func ReadTuple3[A, B, C any](r *BufReader, readA func(*BufReader) (A, error), readB func(*BufReader) (B, error), readC func(*BufReader) (C, error)) (A, B, C, error) {
	var zeroA A
	var zeroB B
	var zeroC C
	a, err := readA(r)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	b, err := readB(r)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	c, err := readC(r)
	if err != nil {
		return zeroA, zeroB, zeroC, err
	}
	return a, b, c, nil
}
