package frame

import "github.com/snksoft/crc"

var crcTable = crc.NewTable(crc.X25)

// CRC16 computes CRC-16/IBM-SDLC (X.25) over b, the checksum used to
// protect a reassembled multi-packet message.
func CRC16(b []byte) uint16 {
	return uint16(crc.CalculateCRC(crcTable, b))
}
