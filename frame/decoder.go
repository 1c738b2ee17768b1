package frame

// reassemblyState is the reassembler's position in a message.
type reassemblyState uint8

const (
	stateIdle reassemblyState = iota
	stateReceiving
)

// Decoder reassembles packets produced by Encode back into complete
// messages, verifying the trailing CRC of multi-packet messages.
type Decoder struct {
	state         reassemblyState
	expectedTotal int
	accumulated   []byte
}

// NewDecoder constructs a Decoder in the Idle state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Frame is one parsed packet: its Kind plus the bytes that follow the
// header (and, for MessageStart/MessageEnd, the length/CRC fields).
type Frame struct {
	Kind    Kind
	Payload []byte
}

// ParseHeader splits a raw packet into its Kind and the bytes after the
// header nibble(s).
func ParseHeader(pkt []byte) (Frame, error) {
	if len(pkt) < 1 {
		return Frame{}, ErrPacketTooShort
	}
	kind := Kind(pkt[0] >> 4)
	lenHi := int(pkt[0] & 0x0F)

	switch kind {
	case KindMessageStartEnd:
		// Simple form: one header byte, payload length == lenHi (<=15).
		if len(pkt)-1 == lenHi {
			return Frame{Kind: kind, Payload: pkt[1:]}, nil
		}
		// Extended form: next byte is len_lo.
		if len(pkt) < 2 {
			return Frame{}, ErrPacketTooShort
		}
		length := lenHi<<8 | int(pkt[1])
		if len(pkt)-2 != length {
			return Frame{}, ErrPacketTooShort
		}
		return Frame{Kind: kind, Payload: pkt[2:]}, nil
	default:
		return Frame{Kind: kind, Payload: pkt[1:]}, nil
	}
}

// Feed processes one received packet. When it returns a nil error, that
// message is complete and verified; the Decoder returns to Idle and is
// ready for the next message. A returned ErrMore means the packet was
// consumed without error but no complete message is ready yet — callers
// loop and feed the next packet, mirroring the teacher's ReadFrom/WriteTo
// "consume iox.ErrMore, keep going" retry shape. Control frames (Ping/
// LinkSetup/LinkSetupResult/Disconnect) are always reported via ErrMore
// with a nil message — the caller dispatches them separately from message
// reassembly.
func (d *Decoder) Feed(pkt []byte) (message []byte, kind Kind, err error) {
	f, err := ParseHeader(pkt)
	if err != nil {
		return nil, 0, err
	}

	switch f.Kind {
	case KindMessageStartEnd:
		if d.state != stateIdle {
			d.reset()
			return nil, f.Kind, ErrUnexpectedFrame
		}
		return f.Payload, f.Kind, nil

	case KindMessageStart:
		if d.state != stateIdle {
			d.reset()
			return nil, f.Kind, ErrUnexpectedFrame
		}
		if len(f.Payload) < 2 {
			return nil, f.Kind, ErrPacketTooShort
		}
		total := int(f.Payload[0])<<8 | int(f.Payload[1])
		d.state = stateReceiving
		d.expectedTotal = total
		d.accumulated = append(d.accumulated[:0], f.Payload[2:]...)
		return nil, f.Kind, ErrMore

	case KindMessageContinue:
		if d.state != stateReceiving {
			d.reset()
			return nil, f.Kind, ErrUnexpectedFrame
		}
		d.accumulated = append(d.accumulated, f.Payload...)
		return nil, f.Kind, ErrMore

	case KindMessageEnd:
		if d.state != stateReceiving {
			d.reset()
			return nil, f.Kind, ErrUnexpectedFrame
		}
		if len(f.Payload) < 2 {
			d.reset()
			return nil, f.Kind, ErrPacketTooShort
		}
		body := f.Payload[:len(f.Payload)-2]
		wantCRC := uint16(f.Payload[len(f.Payload)-2])<<8 | uint16(f.Payload[len(f.Payload)-1])
		d.accumulated = append(d.accumulated, body...)
		expected := d.expectedTotal
		got := CRC16(d.accumulated)
		msg := d.accumulated
		d.reset()
		if len(msg) != expected {
			return nil, f.Kind, ErrUnexpectedFrame
		}
		if got != wantCRC {
			return nil, f.Kind, ErrCrcMismatch
		}
		return msg, f.Kind, nil

	default:
		// Ping / LinkSetup / LinkSetupResult / Disconnect: single-packet
		// control frames, not part of message reassembly.
		return nil, f.Kind, ErrMore
	}
}

func (d *Decoder) reset() {
	d.state = stateIdle
	d.expectedTotal = 0
	d.accumulated = nil
}
