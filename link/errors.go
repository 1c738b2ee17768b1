package link

import "errors"

var (
	// ErrHandshakeTimeout means no LinkSetupResult arrived within the
	// configured handshake deadline.
	ErrHandshakeTimeout = errors.New("link: handshake timeout")

	// ErrHandshakeRejected means the peer responded with accepted=false.
	ErrHandshakeRejected = errors.New("link: handshake rejected")

	// ErrLinkLost means no packet of any kind arrived for longer than the
	// ping-loss window while Connected.
	ErrLinkLost = errors.New("link: link lost (ping timeout)")

	// ErrItemTooLong means send_message was asked to transmit a message
	// longer than the negotiated maximum, checked before touching the wire.
	ErrItemTooLong = errors.New("link: message exceeds negotiated max size")

	// ErrClosed means an operation was attempted on a link that has
	// already been drained/closed.
	ErrClosed = errors.New("link: closed")
)
