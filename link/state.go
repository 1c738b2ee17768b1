package link

// State is the link's position in the connection lifecycle.
type State uint8

const (
	// StateDisconnected means no handshake is in progress.
	StateDisconnected State = iota
	// StateHandshakeInFlight means LinkSetup was sent and a
	// LinkSetupResult is awaited.
	StateHandshakeInFlight
	// StateConnected means the handshake completed and the link carries
	// application messages.
	StateConnected
	// StateDraining means a local shutdown is in progress: a best-effort
	// Disconnect frame is being sent before the transport is released.
	StateDraining
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateHandshakeInFlight:
		return "HandshakeInFlight"
	case StateConnected:
		return "Connected"
	case StateDraining:
		return "Draining"
	default:
		return "Unknown"
	}
}

// ProtocolInfo identifies the application protocol riding on top of the
// link, distinct from the link protocol version itself.
type ProtocolInfo struct {
	UserProtocolID uint32
	Major          uint8
	Minor          uint8
}

// IsCompatible resolves the handshake's major/minor matching rule: when
// Major is 0 the protocol is still unstable and an exact minor match is
// required; once Major reaches 1 or above, only the major version needs
// to match and minor is ignored. This is the documented resolution of an
// inconsistency in the original handshake's minor-version handling.
func (p ProtocolInfo) IsCompatible(peer ProtocolInfo) bool {
	if p.UserProtocolID != peer.UserProtocolID || p.Major != peer.Major {
		return false
	}
	if p.Major == 0 {
		return p.Minor == peer.Minor
	}
	return true
}

// PeerInfo is returned from a successful connect()/accept().
type PeerInfo struct {
	Protocol                ProtocolInfo
	NegotiatedMaxMessageSize uint16
}
