package frame_test

import (
	"bytes"
	"testing"

	"github.com/wireweaver-go/wireweaver/frame"
)

func collect(t *testing.T, msg []byte, capacity int) [][]byte {
	t.Helper()
	var packets [][]byte
	err := frame.Encode(msg, capacity, func(pkt []byte) error {
		cp := append([]byte(nil), pkt...)
		packets = append(packets, cp)
		return nil
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return packets
}

// A 3-byte message with packet capacity 8 emits one MessageStartEnd frame.
func TestSinglePacketMessage(t *testing.T) {
	msg := []byte{0x11, 0x22, 0x33}
	packets := collect(t, msg, 8)
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
	want := []byte{0x03, 0x11, 0x22, 0x33}
	if !bytes.Equal(packets[0], want) {
		t.Fatalf("got % x, want % x", packets[0], want)
	}

	d := frame.NewDecoder()
	got, kind, err := d.Feed(packets[0])
	if err != nil {
		t.Fatal(err)
	}
	if kind != frame.KindMessageStartEnd || !bytes.Equal(got, msg) {
		t.Fatalf("got %v %v, want %v", kind, got, msg)
	}
}

// A 20-byte message with packet capacity 8 emits three frames (Start,
// one Continue, End-with-CRC) and reassembles exactly.
func TestMultiPacketMessage(t *testing.T) {
	msg := make([]byte, 20)
	for i := range msg {
		msg[i] = byte(i + 1)
	}
	packets := collect(t, msg, 8)
	if len(packets) != 3 {
		t.Fatalf("got %d packets, want 3", len(packets))
	}
	for i, pkt := range packets {
		if len(pkt) > 8 {
			t.Fatalf("packet %d is %d bytes, exceeds capacity 8", i, len(pkt))
		}
	}

	d := frame.NewDecoder()
	var reassembled []byte
	var gotKind frame.Kind
	for _, pkt := range packets {
		m, kind, err := d.Feed(pkt)
		if err != nil && err != frame.ErrMore {
			t.Fatal(err)
		}
		if m != nil {
			reassembled = m
			gotKind = kind
		}
	}
	if gotKind != frame.KindMessageEnd {
		t.Fatalf("final frame kind = %v, want MessageEnd", gotKind)
	}
	if !bytes.Equal(reassembled, msg) {
		t.Fatalf("got % x, want % x", reassembled, msg)
	}
}

// A 13-byte message with packet capacity 8 leaves 8 bytes after the Start
// packet's 5, more than an End packet can hold (5), so a Continue packet
// is needed in between; regression test for an off-by-capacity error in
// the continuation loop bound.
func TestMultiPacketMessageTightFit(t *testing.T) {
	msg := make([]byte, 13)
	for i := range msg {
		msg[i] = byte(i + 1)
	}
	packets := collect(t, msg, 8)
	for i, pkt := range packets {
		if len(pkt) > 8 {
			t.Fatalf("packet %d is %d bytes, exceeds capacity 8", i, len(pkt))
		}
	}

	d := frame.NewDecoder()
	var reassembled []byte
	for _, pkt := range packets {
		m, _, err := d.Feed(pkt)
		if err != nil && err != frame.ErrMore {
			t.Fatal(err)
		}
		if m != nil {
			reassembled = m
		}
	}
	if !bytes.Equal(reassembled, msg) {
		t.Fatalf("got % x, want % x", reassembled, msg)
	}
}

// Flipping any single payload bit in a multi-frame message causes a CRC
// mismatch on reassembly.
func TestBitFlipCausesCrcMismatch(t *testing.T) {
	msg := make([]byte, 20)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	packets := collect(t, msg, 8)
	// Flip a bit in the MessageStart payload (after the 1-byte header and
	// 2-byte length field).
	packets[0][3] ^= 0x01

	d := frame.NewDecoder()
	var err error
	for _, pkt := range packets {
		_, _, e := d.Feed(pkt)
		if e != nil {
			err = e
		}
	}
	if err != frame.ErrCrcMismatch {
		t.Fatalf("got %v, want ErrCrcMismatch", err)
	}
}

func TestUnexpectedFrameResetsState(t *testing.T) {
	d := frame.NewDecoder()
	// MessageContinue with no prior MessageStart.
	_, _, err := d.Feed([]byte{byte(frame.KindMessageContinue) << 4, 0x01})
	if err != frame.ErrUnexpectedFrame {
		t.Fatalf("got %v, want ErrUnexpectedFrame", err)
	}
	// Back in Idle: a fresh single-packet message decodes normally.
	got, _, err := d.Feed([]byte{byte(frame.KindMessageStartEnd)<<4 | 1, 0xAA})
	if err != nil || !bytes.Equal(got, []byte{0xAA}) {
		t.Fatalf("after unexpected frame: got % x, %v; want aa, nil", got, err)
	}
}
