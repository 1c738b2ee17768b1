// Package link implements the WireWeaver USB link state machine: a
// handshake that negotiates protocol version and message size, a
// liveness-tracking ping loop, and fragmented message send/receive built
// on top of package frame.
package link
