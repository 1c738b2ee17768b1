package link

import "context"

// PacketSink is the obligation to deliver exactly one packet of the given
// bytes to the peer. Implementations (a USB bulk-OUT endpoint, an
// in-process loopback) own their own framing of "one write = one packet".
type PacketSink interface {
	WritePacket(ctx context.Context, pkt []byte) error
}

// PacketSource reads the next available packet into buf, returning the
// number of bytes read. buf must be sized at least as large as the
// transport's packet capacity.
type PacketSource interface {
	ReadPacket(ctx context.Context, buf []byte) (int, error)
	// PacketCapacity reports the endpoint's maximum packet size (64 for
	// full-speed USB, up to 1024 for high-speed), queried from the
	// underlying transport rather than assumed.
	PacketCapacity() int
}
