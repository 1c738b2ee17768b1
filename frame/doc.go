// Package frame implements WireWeaver's USB packet framing: splitting an
// arbitrary-length message into fixed-capacity packets on the way out,
// and reassembling (with CRC verification) on the way in. It sits below
// shrinkwrap (which only knows about one contiguous byte buffer) and
// above link (which owns the handshake and liveness state machine).
package frame
