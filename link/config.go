package link

import "time"

// Config configures link timing and size limits.
type Config struct {
	// PacketAccumulationTime is stored in the configuration but not read
	// by Link: SendMessage frames and writes each message immediately and
	// does not coalesce small writes.
	PacketAccumulationTime time.Duration
	// PacketSendTimeout bounds a single WritePacket call.
	PacketSendTimeout time.Duration
	// PingPeriod is how often a Ping is sent while Connected.
	PingPeriod time.Duration
	// PingLossWindow is how long with no received packet of any kind
	// before the link considers itself lost. Conventionally a small
	// multiple of PingPeriod.
	PingLossWindow time.Duration
	// HandshakeTimeout bounds how long connect()/accept() waits for the
	// peer's LinkSetupResult/LinkSetup.
	HandshakeTimeout time.Duration
	// MaxRxMessageSize is advertised to the peer during handshake as this
	// side's maximum receivable message size.
	MaxRxMessageSize uint16
	// Logger receives connection lifecycle and reassembly diagnostics.
	// Defaults to a silent no-op; set via WithLogger.
	Logger Logger
}

var defaultConfig = Config{
	PacketAccumulationTime: 2 * time.Millisecond,
	PacketSendTimeout:      500 * time.Millisecond,
	PingPeriod:             time.Second,
	PingLossWindow:         3 * time.Second,
	HandshakeTimeout:       2 * time.Second,
	MaxRxMessageSize:       4096,
	Logger:                 noopLogger{},
}

// Option configures a link at construction time.
type Option func(*Config)

func WithPacketAccumulationTime(d time.Duration) Option {
	return func(c *Config) { c.PacketAccumulationTime = d }
}

func WithPacketSendTimeout(d time.Duration) Option {
	return func(c *Config) { c.PacketSendTimeout = d }
}

func WithPingPeriod(d time.Duration) Option {
	return func(c *Config) {
		c.PingPeriod = d
		c.PingLossWindow = 3 * d
	}
}

func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Config) { c.HandshakeTimeout = d }
}

func WithMaxRxMessageSize(n uint16) Option {
	return func(c *Config) { c.MaxRxMessageSize = n }
}
