package shrinkwrap

import "unicode/utf8"

// WriteStr writes s as raw UTF-8 bytes with no length prefix; its
// ELEMENT_SIZE is SelfDescribing, so it must be the last field written by
// its enclosing value (or the sole content of an Unsized wrapper), and a
// reader consumes it to the end of its bounded region.
func WriteStr(w *BufWriter, s string) error {
	return w.WriteRawSlice([]byte(s))
}

// ReadStr reads every remaining byte of the reader's current region as a
// borrowed string. The returned string aliases the reader's backing
// buffer.
func ReadStr(r *BufReader) (string, error) {
	b, err := r.ReadRawSliceToEnd()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrMalformedUtf8
	}
	return string(b), nil
}

// WriteBytes writes b verbatim with no length prefix (SelfDescribing,
// same placement rule as WriteStr).
func WriteBytes(w *BufWriter, b []byte) error {
	return w.WriteRawSlice(b)
}

// ReadBytes reads every remaining byte of the reader's current region,
// copying it into a freshly allocated, owned slice (unlike the borrowing
// &[u8]/str behavior, matching Vec<u8>/String's owned semantics).
func ReadBytes(r *BufReader) ([]byte, error) {
	b, err := r.ReadRawSliceToEnd()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadBorrowedBytes reads every remaining byte of the reader's current
// region as a slice aliasing the reader's backing buffer (the &[u8]/str
// borrowing behavior).
func ReadBorrowedBytes(r *BufReader) ([]byte, error) {
	return r.ReadRawSliceToEnd()
}
