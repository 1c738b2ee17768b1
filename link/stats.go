package link

import "sync/atomic"

// Stats holds the link's running counters, each safe for concurrent
// access from the send/receive tasks.
type Stats struct {
	txBytes           atomic.Uint64
	rxBytes           atomic.Uint64
	txPackets         atomic.Uint64
	rxPackets         atomic.Uint64
	crcErrors         atomic.Uint64
	reassemblyErrors  atomic.Uint64
	handshakesOK      atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats, safe to read without races.
type Snapshot struct {
	TxBytes          uint64
	RxBytes          uint64
	TxPackets        uint64
	RxPackets        uint64
	CrcErrors        uint64
	ReassemblyErrors uint64
	HandshakesOK     uint64
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		TxBytes:          s.txBytes.Load(),
		RxBytes:          s.rxBytes.Load(),
		TxPackets:        s.txPackets.Load(),
		RxPackets:        s.rxPackets.Load(),
		CrcErrors:        s.crcErrors.Load(),
		ReassemblyErrors: s.reassemblyErrors.Load(),
		HandshakesOK:     s.handshakesOK.Load(),
	}
}
