package frame

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrWouldBlock means a transport made no progress and would have
	// blocked; re-exported from iox so callers built against frame's
	// non-blocking contract don't need to import iox directly.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means a Decoder.Feed call consumed a valid packet but the
	// message it belongs to isn't complete yet — more packets are
	// expected before a message is produced. It is not a failure: Feed's
	// returned Kind and any control-frame side effects are still valid,
	// the same "usable, more completions will follow" contract iox.ErrMore
	// documents for partial io.ReaderFrom/WriterTo progress.
	ErrMore = iox.ErrMore
)

var (
	// ErrUnexpectedFrame means a packet kind arrived that isn't valid given
	// the reassembler's current state (e.g. MessageContinue with no
	// in-flight MessageStart).
	ErrUnexpectedFrame = errors.New("frame: unexpected frame kind")

	// ErrCrcMismatch means a MessageEnd's trailing CRC didn't match the
	// reassembled payload.
	ErrCrcMismatch = errors.New("frame: crc mismatch")

	// ErrPacketTooShort means a packet was shorter than its header claims.
	ErrPacketTooShort = errors.New("frame: packet too short")

	// ErrPacketTooLarge means a caller asked to encode a message into a
	// packet capacity too small to hold even one header byte of payload.
	ErrPacketTooLarge = errors.New("frame: packet capacity too small")

	// ErrMessageTooLarge means a message's length exceeds what a 16-bit
	// total-length header can represent.
	ErrMessageTooLarge = errors.New("frame: message too large")
)
