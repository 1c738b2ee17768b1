package link

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/wireweaver-go/wireweaver/frame"
)

// Link is a WireWeaverUsbLink: a handshake-negotiated, fragmented message
// channel over a pair of packet transports, with a background ping loop
// detecting peer loss.
type Link struct {
	sink   PacketSink
	source PacketSource
	cfg    Config
	our    ProtocolInfo

	stats Stats

	mu               sync.Mutex
	state            State
	peer             ProtocolInfo
	negotiatedMaxMsg uint16

	lastContact atomic.Int64 // unix nanoseconds

	recvCh    chan []byte
	errCh     chan error
	closeCh   chan struct{}
	closeOnce sync.Once
	tasks     *errgroup.Group
}

// New constructs a Link in StateDisconnected.
func New(sink PacketSink, source PacketSource, our ProtocolInfo, opts ...Option) *Link {
	cfg := defaultConfig
	for _, o := range opts {
		o(&cfg)
	}
	l := &Link{
		sink:    sink,
		source:  source,
		cfg:     cfg,
		our:     our,
		recvCh:  make(chan []byte, 8),
		errCh:   make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	l.state = StateDisconnected
	return l
}

func (l *Link) capacity() int {
	c := l.source.PacketCapacity()
	if c <= 0 {
		c = 64
	}
	return c
}

func (l *Link) setState(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

// State reports the link's current lifecycle state.
func (l *Link) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Stats returns a point-in-time snapshot of the link's counters.
func (l *Link) Stats() Snapshot {
	return l.stats.snapshot()
}

func (l *Link) writePacket(ctx context.Context, pkt []byte) error {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.PacketSendTimeout)
	defer cancel()
	if err := l.sink.WritePacket(ctx, pkt); err != nil {
		return err
	}
	l.stats.txBytes.Add(uint64(len(pkt)))
	l.stats.txPackets.Add(1)
	return nil
}

// Connect performs the initiator side of the handshake: send LinkSetup,
// await LinkSetupResult.
func (l *Link) Connect(ctx context.Context) (PeerInfo, error) {
	l.setState(StateHandshakeInFlight)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.HandshakeTimeout)
	defer cancel()

	setup := linkSetup{
		linkProtocolVersion: wireProtocolVersion,
		maxRxMessageSize:    l.cfg.MaxRxMessageSize,
		userProtocolID:      l.our.UserProtocolID,
		userMajor:           l.our.Major,
		userMinor:           l.our.Minor,
	}
	payload := encodeLinkSetup(setup)
	if err := handshakeBackoff(ctx, l.cfg.HandshakeTimeout, func() error {
		return frame.EncodeControl(frame.KindLinkSetup, payload, l.capacity(), func(pkt []byte) error {
			return l.writePacket(ctx, pkt)
		})
	}); err != nil {
		l.setState(StateDisconnected)
		return PeerInfo{}, err
	}

	buf := make([]byte, l.capacity())
	for {
		n, err := l.source.ReadPacket(ctx, buf)
		if err != nil {
			l.setState(StateDisconnected)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return PeerInfo{}, ErrHandshakeTimeout
			}
			return PeerInfo{}, err
		}
		f, err := frame.ParseHeader(buf[:n])
		if err != nil || f.Kind != frame.KindLinkSetupResult {
			continue
		}
		res, err := decodeLinkSetupResult(f.Payload)
		if err != nil {
			continue
		}
		if !res.accepted {
			l.setState(StateDisconnected)
			return PeerInfo{}, ErrHandshakeRejected
		}
		l.negotiatedMaxMsg = res.negotiatedMaxMessageSize
		l.peer = ProtocolInfo{UserProtocolID: setup.userProtocolID, Major: setup.userMajor, Minor: setup.userMinor}
		l.onConnected()
		return PeerInfo{Protocol: l.peer, NegotiatedMaxMessageSize: l.negotiatedMaxMsg}, nil
	}
}

// Accept performs the responder side of the handshake: await LinkSetup,
// send LinkSetupResult.
func (l *Link) Accept(ctx context.Context) (PeerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.HandshakeTimeout)
	defer cancel()

	buf := make([]byte, l.capacity())
	for {
		n, err := l.source.ReadPacket(ctx, buf)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return PeerInfo{}, ErrHandshakeTimeout
			}
			return PeerInfo{}, err
		}
		f, err := frame.ParseHeader(buf[:n])
		if err != nil || f.Kind != frame.KindLinkSetup {
			continue
		}
		setup, err := decodeLinkSetup(f.Payload)
		if err != nil {
			continue
		}
		peer := ProtocolInfo{UserProtocolID: setup.userProtocolID, Major: setup.userMajor, Minor: setup.userMinor}
		accepted := l.our.IsCompatible(peer) && setup.linkProtocolVersion == wireProtocolVersion
		negotiated := l.cfg.MaxRxMessageSize
		if setup.maxRxMessageSize < negotiated {
			negotiated = setup.maxRxMessageSize
		}
		result := linkSetupResult{accepted: accepted, negotiatedMaxMessageSize: negotiated}
		if err := handshakeBackoff(ctx, l.cfg.HandshakeTimeout, func() error {
			return frame.EncodeControl(frame.KindLinkSetupResult, encodeLinkSetupResult(result), l.capacity(), func(pkt []byte) error {
				return l.writePacket(ctx, pkt)
			})
		}); err != nil {
			return PeerInfo{}, err
		}
		if !accepted {
			return PeerInfo{}, ErrHandshakeRejected
		}
		l.negotiatedMaxMsg = negotiated
		l.peer = peer
		l.onConnected()
		return PeerInfo{Protocol: peer, NegotiatedMaxMessageSize: negotiated}, nil
	}
}

func (l *Link) onConnected() {
	l.stats.handshakesOK.Add(1)
	l.lastContact.Store(time.Now().UnixNano())
	l.setState(StateConnected)
	l.cfg.Logger.Debugf("link: connected to peer protocol=%#x major=%d minor=%d, negotiated max message size=%d",
		l.peer.UserProtocolID, l.peer.Major, l.peer.Minor, l.negotiatedMaxMsg)
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error { l.recvLoop(); return nil })
	g.Go(func() error { l.pingLoop(); return nil })
	l.tasks = g
}

// SendMessage fragments and transmits msg, returning ErrItemTooLong
// without touching the wire if it exceeds the negotiated maximum.
func (l *Link) SendMessage(ctx context.Context, msg []byte) error {
	if len(msg) > int(l.negotiatedMaxMsg) {
		return ErrItemTooLong
	}
	return frame.Encode(msg, l.capacity(), func(pkt []byte) error {
		return l.writePacket(ctx, pkt)
	})
}

// RecvMessage blocks until a full message is reassembled, the link is
// lost, or ctx is done.
func (l *Link) RecvMessage(ctx context.Context) ([]byte, error) {
	select {
	case msg := <-l.recvCh:
		return msg, nil
	case err := <-l.errCh:
		return nil, err
	case <-l.closeCh:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Link) recvLoop() {
	dec := frame.NewDecoder()
	buf := make([]byte, l.capacity())
	for {
		select {
		case <-l.closeCh:
			return
		default:
		}
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.PingLossWindow)
		n, err := l.source.ReadPacket(ctx, buf)
		cancel()
		if err != nil {
			if time.Since(time.Unix(0, l.lastContact.Load())) > l.cfg.PingLossWindow {
				l.setState(StateDisconnected)
				l.cfg.Logger.Warnf("link: lost, no packet received within ping loss window %s", l.cfg.PingLossWindow)
				select {
				case l.errCh <- ErrLinkLost:
				default:
				}
				return
			}
			continue
		}
		l.lastContact.Store(time.Now().UnixNano())
		l.stats.rxBytes.Add(uint64(n))
		l.stats.rxPackets.Add(1)

		msg, kind, err := dec.Feed(buf[:n])
		if err != nil && err != frame.ErrMore {
			switch err {
			case frame.ErrCrcMismatch:
				l.stats.crcErrors.Add(1)
				l.cfg.Logger.Warnf("link: reassembly crc mismatch on %v frame", kind)
			default:
				l.stats.reassemblyErrors.Add(1)
				l.cfg.Logger.Warnf("link: reassembly error on %v frame: %v", kind, err)
			}
			continue
		}
		switch kind {
		case frame.KindDisconnect:
			l.setState(StateDisconnected)
			l.cfg.Logger.Debugf("link: peer sent disconnect")
			select {
			case l.errCh <- ErrClosed:
			default:
			}
			return
		case frame.KindPing:
			// Any received frame already counts as liveness; no reply needed.
		default:
			if msg != nil {
				select {
				case l.recvCh <- msg:
				case <-l.closeCh:
					return
				}
			}
		}
	}
}

func (l *Link) pingLoop() {
	limiter := rate.NewLimiter(rate.Every(l.cfg.PingPeriod), 1)
	var seq uint8
	for {
		if err := limiter.Wait(context.Background()); err != nil {
			return
		}
		select {
		case <-l.closeCh:
			return
		default:
		}
		if l.State() != StateConnected {
			return
		}
		seq++
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.PacketSendTimeout)
		_ = frame.EncodeControl(frame.KindPing, []byte{seq}, l.capacity(), func(pkt []byte) error {
			return l.writePacket(ctx, pkt)
		})
		cancel()
	}
}

// Close transitions to Draining, best-effort sends a Disconnect frame,
// then releases the background tasks.
func (l *Link) Close(ctx context.Context, reason string) error {
	var err error
	l.closeOnce.Do(func() {
		l.setState(StateDraining)
		reasonBytes := []byte(reason)
		if len(reasonBytes) > 64 {
			reasonBytes = reasonBytes[:64]
		}
		payload := append([]byte{byte(len(reasonBytes))}, reasonBytes...)
		_ = frame.EncodeControl(frame.KindDisconnect, payload, l.capacity(), func(pkt []byte) error {
			return l.writePacket(ctx, pkt)
		})
		close(l.closeCh)
		if l.tasks != nil {
			_ = l.tasks.Wait()
		}
		l.setState(StateDisconnected)
	})
	return err
}
