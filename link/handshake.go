package link

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/wireweaver-go/wireweaver/frame"
)

// wireProtocolVersion is the WireWeaverUsbLink framing/handshake protocol
// version this package speaks, independent of the user protocol version
// carried inside ProtocolInfo.
const wireProtocolVersion = 1

type linkSetup struct {
	linkProtocolVersion uint8
	maxRxMessageSize    uint16
	userProtocolID      uint32
	userMajor           uint8
	userMinor           uint8
}

func encodeLinkSetup(s linkSetup) []byte {
	b := make([]byte, 0, 9)
	b = append(b, s.linkProtocolVersion)
	b = append(b, byte(s.maxRxMessageSize>>8), byte(s.maxRxMessageSize))
	b = append(b, byte(s.userProtocolID>>24), byte(s.userProtocolID>>16), byte(s.userProtocolID>>8), byte(s.userProtocolID))
	b = append(b, s.userMajor, s.userMinor)
	return b
}

func decodeLinkSetup(b []byte) (linkSetup, error) {
	if len(b) < 9 {
		return linkSetup{}, frame.ErrPacketTooShort
	}
	return linkSetup{
		linkProtocolVersion: b[0],
		maxRxMessageSize:    uint16(b[1])<<8 | uint16(b[2]),
		userProtocolID:      uint32(b[3])<<24 | uint32(b[4])<<16 | uint32(b[5])<<8 | uint32(b[6]),
		userMajor:           b[7],
		userMinor:           b[8],
	}, nil
}

type linkSetupResult struct {
	accepted                 bool
	negotiatedMaxMessageSize uint16
}

func encodeLinkSetupResult(r linkSetupResult) []byte {
	accepted := byte(0)
	if r.accepted {
		accepted = 1
	}
	return []byte{accepted, byte(r.negotiatedMaxMessageSize >> 8), byte(r.negotiatedMaxMessageSize)}
}

func decodeLinkSetupResult(b []byte) (linkSetupResult, error) {
	if len(b) < 3 {
		return linkSetupResult{}, frame.ErrPacketTooShort
	}
	return linkSetupResult{
		accepted:                 b[0] != 0,
		negotiatedMaxMessageSize: uint16(b[1])<<8 | uint16(b[2]),
	}, nil
}

// handshakeBackoff retries the send side of a handshake step against
// transient transport errors, capped by the link's own HandshakeTimeout so
// connect()/accept() never block past the caller's configured deadline.
func handshakeBackoff(ctx context.Context, timeout time.Duration, op backoff.Operation) error {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     10 * time.Millisecond,
		RandomizationFactor: 0.1,
		Multiplier:          2,
		MaxInterval:         200 * time.Millisecond,
		MaxElapsedTime:      timeout,
		Clock:               backoff.SystemClock,
	}
	return backoff.Retry(func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return op()
	}, b)
}
