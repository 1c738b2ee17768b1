package shrinkwrap_test

import (
	"bytes"
	"testing"

	sw "github.com/wireweaver-go/wireweaver/shrinkwrap"
)

// Vector 1: (0xAA_u8, 0xBBCC_u16) -> AA CC BB (u16 little-endian, byte-aligned
// after the u8).
func TestVectorU8U16Tuple(t *testing.T) {
	buf := make([]byte, 8)
	w := sw.New(buf)
	if err := w.WriteU8(0xAA); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU16(0xBBCC); err != nil {
		t.Fatal(err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xAA, 0xCC, 0xBB}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}

	r := sw.NewReader(out)
	a, err := r.ReadU8()
	if err != nil || a != 0xAA {
		t.Fatalf("ReadU8: %v, %v", a, err)
	}
	b, err := r.ReadU16()
	if err != nil || b != 0xBBCC {
		t.Fatalf("ReadU16: %v, %v", b, err)
	}
}

// Vector 2: eight packed bools -> 0xAC (MSB-first within the byte).
func TestVectorBoolPacking(t *testing.T) {
	bits := []bool{true, false, true, false, true, true, false, false}
	buf := make([]byte, 4)
	w := sw.New(buf)
	for _, b := range bits {
		if err := w.WriteBoolValue(b); err != nil {
			t.Fatal(err)
		}
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != 0xAC {
		t.Fatalf("got % x, want [ac]", out)
	}

	r := sw.NewReader(out)
	for i, want := range bits {
		got, err := r.ReadBool()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
}

// Vector 4: [1,2,3,4,5] as a Sized [u8; 5] is a plain concatenation.
func TestVectorSizedByteArray(t *testing.T) {
	vals := []uint8{1, 2, 3, 4, 5}
	buf := make([]byte, 16)
	w := sw.New(buf)
	if err := sw.WriteArray(w, vals, func(w *sw.BufWriter, v uint8) error {
		return w.WriteU8(v)
	}, true); err != nil {
		t.Fatal(err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}

	r := sw.NewReader(out)
	got, err := sw.ReadArray(r, 5, func(r *sw.BufReader) (uint8, error) {
		return r.ReadU8()
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip got %v want %v", got, want)
	}
}

// Two raw-byte runs round-trip through a tail Nib32 length, the shape used
// by a struct whose first field is a fixed-length prefix and whose second
// is an Unsized, self-describing string.
func TestStringsRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	w := sw.New(buf)
	if err := w.WriteRawSlice([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := sw.WriteUnsized(w, func(w *sw.BufWriter) error {
		return sw.WriteStr(w, "de")
	}); err != nil {
		t.Fatal(err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}

	r := sw.NewReader(out)
	prefix, err := r.ReadRawSlice(3)
	if err != nil || string(prefix) != "abc" {
		t.Fatalf("prefix: %q, %v", prefix, err)
	}
	s, err := sw.ReadUnsized(r, sw.ReadStr)
	if err != nil || s != "de" {
		t.Fatalf("string: %q, %v", s, err)
	}
}

// A recursive, boxed linked list round-trips: outer.a=1, outer.next =
// Some(inner), inner.a=2, inner.next = None.
func TestLinkedBoxRoundTrip(t *testing.T) {
	type linked struct {
		a    uint8
		next *linked
	}
	var writeLinked func(w *sw.BufWriter, v linked) error
	writeLinked = func(w *sw.BufWriter, v linked) error {
		if err := w.WriteU8(v.a); err != nil {
			return err
		}
		return sw.WriteOption(w, v.next, func(w *sw.BufWriter, inner linked) error {
			return sw.WriteRefBox(w, inner, writeLinked)
		}, true)
	}
	var readLinked func(r *sw.BufReader) (linked, error)
	readLinked = func(r *sw.BufReader) (linked, error) {
		var v linked
		a, err := r.ReadU8()
		if err != nil {
			return v, err
		}
		v.a = a
		box, err := sw.ReadOption(r, func(r *sw.BufReader) (*sw.RefBox[linked], error) {
			return sw.ReadRefBox(r, readLinked)
		}, true)
		if err != nil {
			return v, err
		}
		if box != nil {
			inner, err := (*box).Read()
			if err != nil {
				return v, err
			}
			v.next = &inner
		}
		return v, nil
	}

	inVal := linked{a: 1, next: &linked{a: 2, next: nil}}
	buf := make([]byte, 32)
	w := sw.New(buf)
	if err := writeLinked(w, inVal); err != nil {
		t.Fatal(err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}

	// Vector 5 (flag-promoted Option<RefBox<Linked>>): the discriminant rides
	// the flag stack, so the encoding carries exactly one tail entry — the
	// RefBox's own content length — not one per level of nesting.
	want := []byte{0x01, 0x80, 0x02, 0x00, 0x02}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}

	r := sw.NewReader(out)
	got, err := readLinked(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.a != 1 || got.next == nil || got.next.a != 2 || got.next.next != nil {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

// Evolution: a reader built from an older schema (fewer trailing fields)
// can still parse a newer writer's Unsized value, discarding the unknown
// tail.
func TestEvolutionForwardCompatibility(t *testing.T) {
	buf := make([]byte, 32)
	w := sw.New(buf)
	if err := sw.WriteUnsized(w, func(w *sw.BufWriter) error {
		if err := w.WriteU8(7); err != nil {
			return err
		}
		// A field the old reader doesn't know about.
		return w.WriteU32(0xDEADBEEF)
	}); err != nil {
		t.Fatal(err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}

	r := sw.NewReader(out)
	got, err := sw.ReadUnsized(r, func(sub *sw.BufReader) (uint8, error) {
		return sub.ReadU8()
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Fatalf("got %d want 7", got)
	}
}

// Flag packing: N Options without flag promotion cost one front bit and one
// tail entry each (Some or None); with flag promotion the same N Options
// carry their discriminant bits through the flag stack and write no tail
// entries (here 5 bytes against 7).
func TestFlagPromotionSavesTailEntries(t *testing.T) {
	writeSome := func(w *sw.BufWriter, v *uint8, flagPromoted bool) error {
		return sw.WriteOption(w, v, func(w *sw.BufWriter, val uint8) error {
			return w.WriteU8(val)
		}, flagPromoted)
	}

	v1, v2 := uint8(1), uint8(2)

	plainBuf := make([]byte, 32)
	pw := sw.New(plainBuf)
	for _, v := range []*uint8{&v1, &v2, nil} {
		if err := writeSome(pw, v, false); err != nil {
			t.Fatal(err)
		}
	}
	plainOut, err := pw.Finish()
	if err != nil {
		t.Fatal(err)
	}

	flagBuf := make([]byte, 32)
	fw := sw.New(flagBuf)
	for _, v := range []*uint8{&v1, &v2, nil} {
		if err := writeSome(fw, v, true); err != nil {
			t.Fatal(err)
		}
	}
	flagOut, err := fw.Finish()
	if err != nil {
		t.Fatal(err)
	}

	if len(flagOut) >= len(plainOut) {
		t.Fatalf("expected flag-promoted encoding to be shorter: plain=%d flag=%d", len(plainOut), len(flagOut))
	}
}
