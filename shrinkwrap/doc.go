// Package shrinkwrap implements the ShrinkWrap wire codec: a dense,
// bit-level binary encoding for structured values that preserves backward
// and forward compatibility as types evolve and supports zero-copy
// deserialization of borrowed variable-length data.
//
// A value is written front-to-back into a BufWriter and, where its
// ElementSize is Unsized, its encoded length is additionally recorded as a
// Nib32 in a length table that grows backward from the tail of the
// destination buffer. Finish relocates that table next to the front region
// and returns one contiguous slice. BufReader mirrors the process: values
// read with ReadUnsized pop their length from the tail, are handed a
// bounded sub-reader, and any trailing bytes that reader's type doesn't
// know about are discarded — the mechanism that lets older readers parse
// newer writers' output. Values read with ReadUnsizedInline (Option,
// Result, Vec, Array) are decoded from the parent reader itself; bytes
// their decoder leaves unread are not skipped.
package shrinkwrap
